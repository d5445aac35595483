package utils

import (
	"encoding/json"
	"net/http"

	"TRIPMATE_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error body with the given status. The
// message is the short human-readable summary; detail carries context safe to
// expose to clients.
func WriteErrorResponse(w http.ResponseWriter, status int, message, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message, Detail: detail})
}

// WriteMessageResponse writes a JSON body of the form {"message": ...}.
func WriteMessageResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.MessageResponse{Message: message})
}

// DecodeJSONRequest decodes the request body into dst, writing a 400 response
// on failure. Callers should return immediately when an error is reported.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
