package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// Values of the "status" field carried by every JSON response.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// The JSON response has the form:
//
//	{
//	  "status": "error",
//	  "message": "NFT 42 not found"
//	}
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK writes payload as a JSON-encoded success response with status 200.
//
// The payload is expected to carry its own "status" field.
func OK(w http.ResponseWriter, payload any) {
	response.JSON(w, http.StatusOK, payload)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged using slog at Error level with the key "reason" and is
// never sent to the client; msg is.
func Fail(w http.ResponseWriter, status int, reason error, msg string) {
	slog.Error("request failed", "status", status, "reason", reason)
	payload := &ErrorResponse{
		Status:  StatusError,
		Message: msg,
	}
	response.JSON(w, status, payload)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusBadRequest, err, msg)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusNotFound, err, msg)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg)
}

// RespondInternalServerError reports err to the client verbatim.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, err.Error())
}
