package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the core's error taxonomy onto {"error": ...}
// responses. Anything outside the taxonomy is a 500 with a generic
// body; the details go to the log only.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, map[string]string{"error": err.Error()})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
