package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
)

// HandlerOption customizes a resource handler.
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	now func() time.Time
}

// WithClock sets the clock used for updated_at stamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(o *handlerOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func applyOptions(opts []HandlerOption) handlerOptions {
	o := handlerOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// decodeAndValidate parses the JSON body into v and validates it, writing
// the 400 response itself when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return false
	}
	return validate(w, r, v)
}

func validate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if details := shared.ValidateRequest(v); len(details) > 0 {
		shared.RespondWithValidationErrors(w, r, details)
		return false
	}
	return true
}

// requireIdentity returns the caller attached by the auth middleware or
// writes a 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*domain.Identity, bool) {
	identity, ok := shared.GetIdentity(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return nil, false
	}
	return identity, true
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
