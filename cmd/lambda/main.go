package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/akyratzis/keepalive-demo/internal/function"
)

func main() {
	lambda.Start(function.Handler)
}
