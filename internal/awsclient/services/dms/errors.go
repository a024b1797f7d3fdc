package dms

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/awsclient"
	"github.com/nandemo-ya/dms-go/internal/shape"
)

// InvalidParamsError is returned when a request is missing required
// members. No request is sent in that case.
type InvalidParamsError = shape.InvalidParamsError

// ResponseError wraps the API error returned by the service with the HTTP
// details of the failed call. errors.As reaches the typed fault through
// Unwrap.
type ResponseError struct {
	Operation  string
	StatusCode int
	RequestID  string
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("operation %s, https response error StatusCode: %d, RequestID: %s, %v",
		e.Operation, e.StatusCode, e.RequestID, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// decodeError turns an error response into a *ResponseError. Known codes
// map to the typed api faults.
func decodeError(operation string, statusCode int, header http.Header, body []byte) error {
	var envelope struct {
		Message      string `json:"message"`
		MessageUpper string `json:"Message"`
	}
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Message
	if message == "" {
		message = envelope.MessageUpper
	}

	code := awsclient.ParseErrorCode(header, body)
	if code == "" {
		code = http.StatusText(statusCode)
		if message == "" {
			message = string(body)
		}
	}

	apiErr := api.NewAPIError(code, message)
	if generic, ok := apiErr.(*smithy.GenericAPIError); ok && statusCode >= 500 {
		generic.Fault = smithy.FaultServer
	}

	return &ResponseError{
		Operation:  operation,
		StatusCode: statusCode,
		RequestID:  header.Get("x-amzn-RequestId"),
		Err:        apiErr,
	}
}
