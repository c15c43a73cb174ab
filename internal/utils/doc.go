// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing, request identifier generation,
// and JWT token generation and validation.
package utils
