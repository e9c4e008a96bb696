// Package handler implements the HTTP request handler for the long-running
// server deployment. Every request receives the same fixed body and
// connection headers.
package handler
