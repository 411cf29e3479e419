package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type testPatch struct {
	Title *string `json:"title" validate:"omitnil,min=1,max=5"`
}

type testQuery struct {
	Query string `query:"query" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))
		var creds testCredentials
		require.NoError(t, DecodeJSON(req, &creds))
		assert.Equal(t, "a@b.com", creds.Email)
		assert.Equal(t, "secret1", creds.Password)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var creds testCredentials
		assert.Error(t, DecodeJSON(req, &creds))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var creds testCredentials
		assert.Error(t, DecodeJSON(req, &creds))
	})
}

func TestValidateRequest(t *testing.T) {
	empty := ""
	long := "abcdefg"
	ok := "abc"

	tests := []struct {
		name    string
		input   interface{}
		wantErr []FieldError
	}{
		{
			name:  "valid credentials",
			input: &testCredentials{Email: "a@b.com", Password: "secret1"},
		},
		{
			name:  "bad email",
			input: &testCredentials{Email: "not-an-email", Password: "secret1"},
			wantErr: []FieldError{
				{Field: "email", Error: "Invalid email format"},
			},
		},
		{
			name:  "missing email and short password",
			input: &testCredentials{Password: "12345"},
			wantErr: []FieldError{
				{Field: "email", Error: "Email is required"},
				{Field: "password", Error: "Password must be at least 6 characters long"},
			},
		},
		{
			name:  "nil optional title",
			input: &testPatch{},
		},
		{
			name:  "present title within bounds",
			input: &testPatch{Title: &ok},
		},
		{
			name:    "present empty title",
			input:   &testPatch{Title: &empty},
			wantErr: []FieldError{{Field: "title", Error: "Title is required"}},
		},
		{
			name:    "present long title",
			input:   &testPatch{Title: &long},
			wantErr: []FieldError{{Field: "title", Error: "Title must be 5 characters or fewer"}},
		},
		{
			name:    "query tag name",
			input:   &testQuery{},
			wantErr: []FieldError{{Field: "query", Error: "Query is required"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantErr, ValidateRequest(tc.input))
		})
	}
}

func TestValidateRequestCountsRunes(t *testing.T) {
	title := "ééééé"
	assert.Nil(t, ValidateRequest(&testPatch{Title: &title}))
}

func TestValidateRequestNonStruct(t *testing.T) {
	details := ValidateRequest("not a struct")
	require.Len(t, details, 1)
	assert.Equal(t, "request", details[0].Field)
}
