// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. It provides type-safe access to the settings each component
// needs while keeping configuration details separate from request handling.
package config
