package gin

import (
	"net/http"

	"github.com/fwojciec/digest"
)

// statusCodes maps application error codes to HTTP status codes.
var statusCodes = map[string]int{
	digest.ECONFLICT:       http.StatusConflict,
	digest.EINVALID:        http.StatusBadRequest,
	digest.ENOTFOUND:       http.StatusNotFound,
	digest.ENOTIMPLEMENTED: http.StatusNotImplemented,
	digest.EUNAVAILABLE:    http.StatusServiceUnavailable,
	digest.EINTERNAL:       http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := statusCodes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
