package errorx

import (
	"fmt"
	"net/http"
)

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// HTTPStatus returns the status code sent to client when this error reaches
// the request boundary.
func (e Error) HTTPStatus() int {
	switch e.Code {
	case BadRequest, AlreadyMember, NotMember:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
