// Package mocks provides centralized mock implementations for testing.
//
// Each mock has one function field per interface method (named after the
// method with an Fn suffix) plus default return values and recorded calls,
// so a test overrides only the behavior it cares about:
//
//	posts := &mocks.MockPostStore{
//	    GetByIDFn: func(ctx context.Context, id string) (*domain.Post, error) {
//	        return nil, store.ErrPostNotFound
//	    },
//	}
//
// MemoryBackend is a small in-memory implementation of every collaborator
// interface, used to drive the router end to end.
package mocks
