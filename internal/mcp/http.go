package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// Router builds the HTTP surface: JSON-RPC via POST to the root path,
// plus a health probe. One request per POST.
func Router(server *Server, log *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var rpcReq protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&rpcReq); err != nil {
			writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp, err := server.Handle(req.Context(), rpcReq)
		if err != nil {
			log.WithError(err).Error("request handling failed")
			writeJSON(w, WriteError(rpcReq.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	})

	return r
}

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	log.Infof("HTTP MCP server listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(server, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
