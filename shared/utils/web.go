package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	internal_errors "github.com/itchan-dev/threadline/shared/errors"
	"github.com/itchan-dev/threadline/shared/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	// default error is 500
	logger.Log.Error("request failed", "error", err)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func WriteJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func WriteHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Log.Error("failed to write response", "error", err)
	}
}
