package http

import (
	"encoding/json"
	"net/http"
)

const healthPath = "/healthz"

func WithHealthCheck() ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(srv *server) {
		srv.router.
			Methods(http.MethodGet).
			Path(healthPath).
			HandlerFunc(handler)
	}
}
