package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the generic body used for errors and delete confirmations
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseJSON writes any payload with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 200 OK with a {message} body
func ResponseMessage(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, MessageResponse{Message: message})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}

// returns 501 Not Implemented
func ResponseNotImplemented(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotImplemented, MessageResponse{Message: message})
}
