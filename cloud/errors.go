package cloud

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes recorded on FAILED scaling histories. The codes are part of
// the audit record format, so they are stable strings rather than error
// values.
const (
	ErrorCodeQuotaExceeded = "CloudQuotaExceeded"
	ErrorCodeNotFound      = "CloudResourceNotFound"
	ErrorCodeInternal      = "CloudInternalError"
)

var _ error = &Error{}

// Error is a classified cloud-provider failure.
type Error struct {
	Code       string
	AppId      string
	StatusCode int
	Message    string
}

func NewError(code string, appId string, statusCode int, message string) *Error {
	return &Error{
		Code:       code,
		AppId:      appId,
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("cloud api error app '%s' code '%s' status %d: %s", e.AppId, e.Code, e.StatusCode, e.Message)
}

func (e *Error) IsNotFound() bool {
	return e.Code == ErrorCodeNotFound || e.StatusCode == 404
}

func (e *Error) IsQuotaExceeded() bool {
	return e.Code == ErrorCodeQuotaExceeded
}

func IsNotFound(err error) bool {
	var cloudError *Error
	if errors.As(err, &cloudError) {
		return cloudError.IsNotFound()
	}
	// eventually-consistent providers surface a deleted app as a plain 404
	return err != nil && strings.Contains(err.Error(), "404")
}

func IsQuotaExceeded(err error) bool {
	var cloudError *Error
	return errors.As(err, &cloudError) && cloudError.IsQuotaExceeded()
}

// ClassifyErrorCode maps a cloud call failure onto the audit error code
// taxonomy, collapsing everything unclassified into the internal code.
func ClassifyErrorCode(err error) string {
	var cloudError *Error
	if errors.As(err, &cloudError) {
		switch cloudError.Code {
		case ErrorCodeQuotaExceeded, ErrorCodeNotFound:
			return cloudError.Code
		}
	}
	return ErrorCodeInternal
}
