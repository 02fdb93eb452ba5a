package common

import (
	"encoding/json"
	"go-social-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Envelope is the body shape shared by every response.
type Envelope struct {
	Status  string `json:"status" example:"Success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	WriteJSON(w, e.Code, Envelope{Status: StatusError, Message: e.Message})
}

// ValidationError reports malformed or missing input. Message is safe to
// return to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Success writes a success envelope carrying data.
func Success(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Data: data})
}

// SuccessMessage writes a success envelope carrying only a message.
func SuccessMessage(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Message: message})
}

func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response body")
	}
}
