package errors

import (
	"fmt"
	"net/http"

	"github.com/googleapis/gax-go/v2/apierror"
	pkgerrors "github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

const (
	ProviderCompute = "compute"
	ProviderGKE     = "gke"
)

// grpcHTTPCodes maps the gRPC codes a provider returns to their HTTP
// equivalents. Unlisted codes leave Code at 0.
var grpcHTTPCodes = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
}

// ErrRemoteAPI wraps an error returned by a provider client, carrying the
// provider HTTP code and message when the client exposed them. Code is 0 when
// the request never produced a provider response.
type ErrRemoteAPI struct {
	Provider string
	Code     int
	Message  string
	err      error
}

func (e *ErrRemoteAPI) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s api: %v", e.Provider, e.err)
	}
	return fmt.Sprintf("%s api: %d: %s", e.Provider, e.Code, e.Message)
}

func (e *ErrRemoteAPI) Unwrap() error {
	return e.err
}

// NewErrRemoteAPI classifies an error returned by a provider client. A 404 is
// reported as an ErrNotFound wrapping the ErrRemoteAPI; the client error stays
// reachable through Unwrap in every case.
func NewErrRemoteAPI(provider string, err error) error {
	if err == nil {
		return nil
	}

	remote := &ErrRemoteAPI{
		Provider: provider,
		err:      err,
	}

	var gErr *googleapi.Error
	var aErr *apierror.APIError
	switch {
	case pkgerrors.As(err, &gErr):
		remote.Code = gErr.Code
		remote.Message = gErr.Message
	case pkgerrors.As(err, &aErr):
		remote.Message = aErr.Error()
		if s := aErr.GRPCStatus(); s != nil {
			remote.Code = grpcHTTPCodes[s.Code()]
			remote.Message = s.Message()
		}
	}

	if remote.Message == "" && remote.Code != 0 {
		remote.Message = http.StatusText(remote.Code)
	}

	if remote.Code == http.StatusNotFound {
		return &ErrNotFound{err: remote}
	}

	return remote
}

// ErrNotFound is returned when the addressed resource does not exist.
type ErrNotFound struct {
	err error
}

func (e *ErrNotFound) Error() string {
	return "not found: " + e.err.Error()
}

func (e *ErrNotFound) Unwrap() error {
	return e.err
}

// ErrNotReady is returned when a resource is read before its asynchronous
// provisioning has completed.
type ErrNotReady struct {
	Resource string
	Status   string
}

func (e *ErrNotReady) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("%s is not ready yet", e.Resource)
	}
	return fmt.Sprintf("%s is not ready yet: %s", e.Resource, e.Status)
}

func NewErrNotReady(resource, status string) error {
	return &ErrNotReady{
		Resource: resource,
		Status:   status,
	}
}

// ErrIO is returned when a template cannot be read or a rendered file cannot
// be written.
type ErrIO struct {
	Path string
	err  error
}

func (e *ErrIO) Error() string {
	return e.err.Error()
}

func (e *ErrIO) Unwrap() error {
	return e.err
}

func NewErrIO(err error, path string) error {
	return &ErrIO{
		Path: path,
		err:  pkgerrors.Wrapf(err, "io error on %s", path),
	}
}

// ErrUnexpectedStatus is returned when a provider answers with a value
// outside of the documented set.
type ErrUnexpectedStatus struct {
	msg string
}

func (e *ErrUnexpectedStatus) Error() string {
	return e.msg
}

func NewErrUnexpectedStatus(msg string, vars ...interface{}) error {
	return &ErrUnexpectedStatus{
		msg: fmt.Sprintf(msg, vars...),
	}
}

// ErrInvalidSpec is returned when a request is rejected locally, before any
// provider call is made.
type ErrInvalidSpec struct {
	err error
}

func (e *ErrInvalidSpec) Error() string {
	return "invalid spec: " + e.err.Error()
}

func (e *ErrInvalidSpec) Unwrap() error {
	return e.err
}

func NewErrInvalidSpec(err error) error {
	return &ErrInvalidSpec{err: err}
}

// IsNotFound reports whether err, or any error it wraps, is an ErrNotFound.
func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return pkgerrors.As(err, &notFound)
}

// IsNotReady reports whether err, or any error it wraps, is an ErrNotReady.
func IsNotReady(err error) bool {
	var notReady *ErrNotReady
	return pkgerrors.As(err, &notReady)
}
