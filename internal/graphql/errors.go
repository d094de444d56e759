package graphql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// Kind tags the three ways a request can fail.
type Kind int

const (
	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP Kind = iota + 1
	// KindNoResponse means the request was sent but nothing usable came back.
	KindNoResponse
	// KindOther covers everything that failed before a request went out.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindNoResponse:
		return "no_response"
	case KindOther:
		return "other"
	}
	return "unknown"
}

// TransportError is the classified failure returned by Client.Post.
type TransportError struct {
	Kind       Kind
	Status     int
	StatusText string
	Message    string
	Err        error
}

// Reason renders the error the way it appears inside violation messages.
func (e *TransportError) Reason() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.StatusText)
	case KindNoResponse:
		return "No response from server"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown transport error"
}

func (e *TransportError) Error() string {
	if e.Kind == KindNoResponse && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason(), e.Err)
	}
	return e.Reason()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Reason extracts the violation text for any error returned by Post. Errors that were not
// classified by the transport fall back to their own message.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Reason()
	}
	return err.Error()
}

// KindOf reports the classification of err, or 0 when err is not a TransportError.
func KindOf(err error) Kind {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Kind
	}
	return 0
}

func newHTTPError(resp *http.Response) *TransportError {
	return &TransportError{
		Kind:       KindHTTP,
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
	}
}

func newOtherError(err error) *TransportError {
	return &TransportError{Kind: KindOther, Message: err.Error(), Err: err}
}

// classifyDoError separates "sent but never answered" from local failures such as an
// unsupported scheme.
func classifyDoError(err error) *TransportError {
	if isNoResponse(err) {
		return &TransportError{Kind: KindNoResponse, Err: err}
	}
	return newOtherError(err)
}

func isNoResponse(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// statusText strips the numeric prefix from resp.Status, falling back to the canonical text.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
