// Package api handles incoming HTTP requests, request validation, and
// response formatting for the blog endpoints. Handlers validate input,
// forward one call (or a parent-post check followed by one call) to the
// injected collaborators, and map the outcome to a status code and JSON body.
package api
