// Package store defines the data side of the backend collaborator: the
// interfaces the HTTP handlers persist posts and comments through, the user
// store backing the self-hosted auth provider, the search filter type, and
// the errors every implementation reports.
//
// Implementations live under internal/platform (postgres, supabase) and
// internal/mocks (in-memory).
package store
