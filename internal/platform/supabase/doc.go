// Package supabase implements the auth and data collaborators against a
// hosted Supabase project: accounts and sessions through the GoTrue auth API
// under /auth/v1, posts and comments through the PostgREST API under /rest/v1.
//
// Data requests carry the caller's access token when a TokenSource is
// configured so row-level security policies apply to the end user.
package supabase
