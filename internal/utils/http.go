package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Message writes {"message": "..."} with a given status. All error
// responses use this envelope.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// DecodeJSON parses the JSON body into v and handles invalid JSON.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		Message(w, http.StatusBadRequest, "Cuerpo de la solicitud vacío.")
		return http.ErrBodyNotAllowed
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Message(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
		return err
	}

	return nil
}
