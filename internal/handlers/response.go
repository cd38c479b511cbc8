package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
	"github.com/sbilibin2017/paperplane-redeem/internal/middlewares"
	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

// Fixed response messages.
const (
	msgContactNotFound = "Contact not found"
	msgContactDeleted  = "Contact deleted successfully"
	msgRedeemEmailSent = "Redeem email sent successfully!"
	msgInternalError   = "Internal server error"
)

// requestLogger tags log lines with the id assigned by the logging middleware.
func requestLogger(r *http.Request) *zap.SugaredLogger {
	return logger.Log.With("request_id", middlewares.RequestIDFromContext(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: msgContactNotFound})
}
