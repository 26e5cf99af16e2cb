package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of PENDING, IN_PROGRESS, COMPLETED",
	StatusCode: http.StatusBadRequest,
}
