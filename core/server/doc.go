// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the settings it reads: the listen port, the API key protecting
// every route and the request body limit for import requests.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
