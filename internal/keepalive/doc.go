// Package keepalive computes the Connection and Keep-Alive response headers
// shared by both deployment targets of the demo endpoint. Header inclusion is
// driven by optional query parameters that default to enabled when absent.
package keepalive
