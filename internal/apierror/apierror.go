// Package apierror defines the API's error taxonomy and the JSON envelope every
// failure response shares, regardless of whether it was raised by a handler, a
// service, or the router itself.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel errors returned (wrapped) by the service layer. Controllers map them
// to HTTP statuses with Status; anything unrecognized becomes a 500.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable entity")
)

// Envelope is the body of every failure response.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// messages fixes the reason phrase per status. These are part of the API
// contract and must not drift with net/http's wording.
var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusNotImplemented:      "Not Implemented",
	http.StatusBadGateway:          "Bad Gateway",
	http.StatusServiceUnavailable:  "Service Unavailable",
	http.StatusGatewayTimeout:      "Gateway Timeout",
}

// Message returns the fixed reason phrase for status, falling back to the
// standard text for statuses outside the defined table.
func Message(status int) string {
	if m, ok := messages[status]; ok {
		return m
	}
	return http.StatusText(status)
}

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the failure envelope for the given status.
func Respond(ctx *gin.Context, status int) {
	ctx.JSON(status, Envelope{Success: false, Error: status, Message: Message(status)})
}

// RespondError maps err through Status and writes the matching envelope.
func RespondError(ctx *gin.Context, err error) {
	Respond(ctx, Status(err))
}
