package dav

import (
	"encoding/xml"
	"fmt"

	"github.com/xxxsen/nswebdav/model"
)

// InvalidPathError rejects a malformed or unsafe path before any request is
// sent.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path, path:%s, reason:%s", e.Path, e.Reason)
}

// UnsupportedOperationError reports an operation the builder does not know.
type UnsupportedOperationError struct {
	Operation Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation, op:%s", e.Operation)
}

// ParseError reports a response body that cannot be interpreted for the
// requested operation.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse response failed, reason:%s, err:%v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse response failed, reason:%s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(reason string, err error) *ParseError {
	return &ParseError{Reason: reason, Err: err}
}

// HTTPError carries a non-success response. Exception and Message are
// extracted from the vendor error body when it is valid xml.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Exception  string
	Message    string
}

func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{
		StatusCode: status,
		Body:       body,
	}
	rsp := &model.ErrorResponse{}
	if err := xml.Unmarshal(body, rsp); err == nil {
		e.Exception = rsp.Exception
		e.Message = rsp.Message
	}
	return e
}

func (e *HTTPError) Error() string {
	exception := e.Exception
	if len(exception) == 0 {
		exception = "empty exception"
	}
	message := e.Message
	if len(message) == 0 {
		message = "empty message"
	}
	return fmt.Sprintf("request failed, status:%d, exception:%s, message:%s", e.StatusCode, exception, message)
}
