// Package constants centralizes defaults shared across the CLI.
//
// File permissions, response size caps, and the HTTP timeout used when the
// operator does not pass one live here so cmd/ and internal/ agree on them
// without importing each other.
package constants
