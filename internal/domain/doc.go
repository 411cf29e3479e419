// Package domain defines the entities exchanged between the HTTP layer and
// the backend collaborator: posts, comments, identities and sessions, along
// with the errors shared across packages.
//
// The types here carry no persistence logic. Stores and the auth service
// accept and return them, and the api package serializes them directly.
package domain
