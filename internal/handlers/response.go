package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fizzlab/sodacraft/internal/validation"
)

// Error codes carried in the response envelope
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorBody is the error half of the response envelope
type ErrorBody struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// Envelope is the uniform response shape: success with data, or an error
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// writeData writes a success envelope
func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Envelope{Success: true, Data: data}); err != nil {
		// Headers are gone; nothing left to do
		return
	}
}

// writeError writes an error envelope
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeErrorFields(w, status, code, message, nil)
}

// writeValidationError maps a validation failure onto a 400 envelope with
// per-field details
func writeValidationError(w http.ResponseWriter, err *validation.RequestError) {
	writeErrorFields(w, http.StatusBadRequest, CodeValidation, "request validation failed", err.Fields)
}

func writeErrorFields(w http.ResponseWriter, status int, code, message string, fields []validation.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := Envelope{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message, Fields: fields},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return
	}
}
