// Package config handles configuration loading, parsing, and validation
// from .env files, an optional config.yaml and COLIS_* environment variables.
// It provides type-safe access to the settings needed by the server, the
// stores and the auth layer while keeping configuration details separate
// from business logic.
package config
