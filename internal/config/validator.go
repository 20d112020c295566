// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// `Load()` calls `validateStruct` after unmarshalling and secret
// resolution, so the binary never runs with partial configuration.  The
// `min=16` rule on the auth secret exists because a short HMAC key makes
// the session tokens brute-forceable; it is validated here rather than
// trusted to deployment discipline.

package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
