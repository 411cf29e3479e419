// Package auth defines the authentication collaborator used by the HTTP
// layer and provides the self-hosted implementation behind it: bcrypt
// password hashes, HMAC-signed JWT bearer tokens, and a Redis-backed
// revocation list that makes logout effective before a token expires.
package auth
