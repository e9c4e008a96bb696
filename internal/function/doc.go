// Package function implements the Lambda deployment of the demo endpoint.
// Unlike the server handler, the connection headers are driven by the
// invocation event's query parameters.
package function
