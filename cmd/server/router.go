package main

import (
	"net/http"

	"github.com/akyratzis/keepalive-demo/internal/handler"
)

func setupRouter(staticHandler *handler.StaticHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", staticHandler.ServeHTTP)

	return mux
}
