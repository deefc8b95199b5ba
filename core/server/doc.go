// Package server holds the HTTP server configuration used by the serve command.
//
// # Configuration
//
// The Config struct defines the HTTP port and the optional API key protecting
// the table endpoints.
package server
