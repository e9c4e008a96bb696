package keepalive

const (
	// ConnectionHeader and KeepAliveHeader are the response headers this
	// package controls.
	ConnectionHeader = "Connection"
	KeepAliveHeader  = "Keep-Alive"

	// ConnectionValue and KeepAliveValue are the fixed header values
	// advertised to clients.
	ConnectionValue = "keep-alive"
	KeepAliveValue  = "timeout=72"

	// ConnectionParam and KeepAliveParam are the query parameters that
	// toggle the corresponding header.
	ConnectionParam = "connection"
	KeepAliveParam  = "keep-alive"
)

// Only the literal string "true" enables a header. Any other value,
// including "false" and the empty string, suppresses it.
const enabled = "true"

// Headers computes the connection headers for one request or invocation.
// A nil or empty params map means both parameters are absent, which defaults
// every header to enabled. The returned map has 0 to 2 entries.
func Headers(params map[string]string) map[string]string {
	headers := make(map[string]string, 2)

	if resolve(params, ConnectionParam) == enabled {
		headers[ConnectionHeader] = ConnectionValue
	}
	if resolve(params, KeepAliveParam) == enabled {
		headers[KeepAliveHeader] = KeepAliveValue
	}

	return headers
}

func resolve(params map[string]string, key string) string {
	value, ok := params[key]
	if !ok {
		return enabled
	}
	return value
}
