package handler

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/akyratzis/keepalive-demo/internal/keepalive"
)

// ResponseBody is returned verbatim on every request.
const ResponseBody = "Successful request to EC2 (python)"

// StaticHandler serves the fixed demo response. It inspects nothing on the
// request beyond what is logged.
type StaticHandler struct {
	logger *slog.Logger
}

func NewStaticHandler(logger *slog.Logger) *StaticHandler {
	return &StaticHandler{logger: logger}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Received request",
		slog.String("from", extractClientIP(r)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("proto", r.Proto),
		slog.String("user_agent", r.UserAgent()))

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set(keepalive.ConnectionHeader, keepalive.ConnectionValue)
	w.Header().Set(keepalive.KeepAliveHeader, keepalive.KeepAliveValue)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(ResponseBody)); err != nil {
		h.logger.Warn("Failed to write response", slog.Any("err", err))
	}
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
