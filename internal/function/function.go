package function

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/akyratzis/keepalive-demo/internal/keepalive"
)

// ResponseBody is returned verbatim on every invocation.
const ResponseBody = "Successful request to Lambda without web adapter (python)"

// Handler responds to an API Gateway proxy event. The connection and
// keep-alive query parameters toggle the corresponding response headers;
// a missing parameter counts as enabled. QueryStringParameters is nil when
// the event carries no query string, which yields both headers.
//
// There is no failure mode: every input maps to a 200 response and the
// returned error is always nil.
func Handler(_ context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    keepalive.Headers(event.QueryStringParameters),
		Body:       ResponseBody,
	}, nil
}
