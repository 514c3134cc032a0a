package server

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/potionshop/internal/logger"
)

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the body of /version
type VersionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleVersion reports the running build
func HandleVersion(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, VersionResponse{Service: service, Version: version})
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set(HeaderContentType, HeaderValueJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("Failed to encode response", "error", err)
	}
}
