// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the server address, environment,
// logging level, and the idle timeout backing the advertised Keep-Alive
// window.
package config
