// Package errors provides the typed failures surfaced by the horizon client.
package errors

import (
	"errors"
	"fmt"

	fhttp "github.com/bogdanfinn/fhttp"
)

// Sentinel errors for the named HTTP failure cases.
var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrForbidden    = errors.New("Forbidden")
	ErrNotFound     = errors.New("Not Found")
)

// StatusError represents a non-200 response from the API. Its string form is
// the bare reason ("Unauthorized", "Forbidden", "Not Found", or a generic
// reason embedding the real status code) so callers can compare against the
// documented reason strings directly.
type StatusError struct {
	Reason     string
	StatusCode int
	Headers    fhttp.Header
	Body       string
}

func (e *StatusError) Error() string {
	return e.Reason
}

// MatchesReason reports whether the error's reason equals the given string.
// This is the loose half of the equality contract.
func (e *StatusError) MatchesReason(reason string) bool {
	return e.Reason == reason
}

// Equal reports whether both reason and headers match. This is the strict
// half of the equality contract.
func (e *StatusError) Equal(other *StatusError) bool {
	if other == nil {
		return false
	}
	if e.Reason != other.Reason {
		return false
	}
	if len(e.Headers) != len(other.Headers) {
		return false
	}
	for k, vs := range e.Headers {
		ovs, ok := other.Headers[k]
		if !ok || len(vs) != len(ovs) {
			return false
		}
		for i := range vs {
			if vs[i] != ovs[i] {
				return false
			}
		}
	}
	return true
}

// Is allows errors.Is comparison with the sentinel errors above.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Reason == ErrUnauthorized.Error()
	case ErrForbidden:
		return e.Reason == ErrForbidden.Error()
	case ErrNotFound:
		return e.Reason == ErrNotFound.Error()
	}
	t, ok := target.(*StatusError)
	return ok && e.Reason == t.Reason
}

// NewStatusError classifies a non-200 status code into a StatusError.
func NewStatusError(statusCode int, headers fhttp.Header, body string) *StatusError {
	reason := fmt.Sprintf("HTTP Error %d", statusCode)
	switch statusCode {
	case 401:
		reason = "Unauthorized"
	case 403:
		reason = "Forbidden"
	case 404:
		reason = "Not Found"
	}
	return &StatusError{
		Reason:     reason,
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
	}
}

// MissingHeaderError signals that a successful response lacked a header the
// client depends on.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("response is missing required header %s", e.Header)
}

// NewMissingHeaderError creates a new MissingHeaderError.
func NewMissingHeaderError(header string) *MissingHeaderError {
	return &MissingHeaderError{Header: header}
}

// NetworkError represents a transport-level failure before any status code
// was received.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// DownloadError represents a failed image download or the failed write of a
// downloaded image.
type DownloadError struct {
	URL     string
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("download of %s failed: %s: %v", e.URL, e.Message, e.Err)
	}
	return fmt.Sprintf("download of %s failed: %s", e.URL, e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// NewDownloadError creates a new DownloadError.
func NewDownloadError(url, message string, err error) *DownloadError {
	return &DownloadError{URL: url, Message: message, Err: err}
}

// FileWriteError represents a failed write of downloaded content to disk.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// NewFileWriteError creates a new FileWriteError.
func NewFileWriteError(path string, err error) *FileWriteError {
	return &FileWriteError{Path: path, Err: err}
}

// PathResolveError signals that an access path no longer resolves against the
// body it was derived from.
type PathResolveError struct {
	Segment any
	Message string
}

func (e *PathResolveError) Error() string {
	return fmt.Sprintf("path segment %v: %s", e.Segment, e.Message)
}

// NewPathResolveError creates a new PathResolveError.
func NewPathResolveError(segment any, message string) *PathResolveError {
	return &PathResolveError{Segment: segment, Message: message}
}
