package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
)

// ErrorResponse represents an error returned by the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Short error description
	// default: Invalid request body
	Error string `json:"error"`

	// Details of the failure, when available
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Detail: detail})
}
