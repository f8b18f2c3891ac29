package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// ErrorBody is the error envelope returned by every operation. It keeps the
// success/message shape clients already parse for verdicts.
type ErrorBody struct {
	status  int
	Success bool     `json:"success" doc:"Always false for errors"`
	Message string   `json:"message" doc:"Human-readable error"`
	Errors  []string `json:"errors,omitempty" doc:"Validation details"`
}

func (e *ErrorBody) Error() string  { return e.Message }
func (e *ErrorBody) GetStatus() int { return e.status }

// UseErrorEnvelope replaces huma's problem+json errors with ErrorBody
func UseErrorEnvelope() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) == 0 {
			details = nil
		}
		return &ErrorBody{status: status, Message: msg, Errors: details}
	}
}
