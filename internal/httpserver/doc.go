// Package httpserver wraps http.Server with address validation and graceful
// shutdown. The idle timeout is configurable so the connection reuse window
// can match the Keep-Alive timeout the handler advertises.
package httpserver
