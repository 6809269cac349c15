package api

import (
	"errors"
	"fmt"
)

// Kind classifies why a call to the productos API produced no result.
type Kind string

const (
	KindEncode    Kind = "encode"    // request body could not be serialized
	KindTransport Kind = "transport" // no response: dial, TLS, timeout, cancellation
	KindStatus    Kind = "status"    // non-2xx response
	KindDecode    Kind = "decode"    // 2xx response with a body that is not the expected JSON
	KindShape     Kind = "shape"     // valid JSON of the wrong shape (object where a list was expected)
)

// Codes mirror the application error codes logged and traced elsewhere.
var kindCodes = map[Kind]string{
	KindEncode:    "INTERNAL_PROCESSING_ERROR",
	KindTransport: "NETWORK_ERROR",
	KindStatus:    "SERVICE_UNAVAILABLE",
	KindDecode:    "MALFORMED_DATA",
	KindShape:     "MALFORMED_DATA",
}

// Error is returned by every Client method.
type Error struct {
	Kind   Kind
	Method string
	URL    string
	Status int    // KindStatus only
	Body   string // response text for KindStatus, raw JSON for KindShape
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("Error %d: %s", e.Status, e.Body)
	case KindShape:
		return fmt.Sprintf("unexpected response shape from %s %s: %s", e.Method, e.URL, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: %s failure", e.Method, e.URL, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns the application error code for the kind.
func (e *Error) Code() string {
	if code, ok := kindCodes[e.Kind]; ok {
		return code
	}
	return "UNKNOWN_ERROR"
}

// KindOf reports the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
