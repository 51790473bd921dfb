package llm

import "fmt"

// ErrorKind classifies backend failures so the send coordinator can react
// without string matching.
type ErrorKind string

const (
	// KindNetwork covers transport failures and non-2xx responses.
	KindNetwork ErrorKind = "network"
	// KindShape means the response body matched none of the accepted shapes.
	KindShape ErrorKind = "shape"
)

// BackendError is returned by providers when the remote call fails or the
// response cannot be interpreted. It carries either a server-supplied error
// string or the HTTP status code.
type BackendError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 when the request never completed
	Message string // server-supplied detail or a short description
	Err     error  // underlying transport error, if any
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("llm backend error (%s): %s", e.Kind, e.Message)
	}
	if e.Status != 0 {
		return fmt.Sprintf("llm backend error (%s): status %d", e.Kind, e.Status)
	}
	return fmt.Sprintf("llm backend error (%s)", e.Kind)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(err error) *BackendError {
	return &BackendError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// NewStatusError builds an error for a non-success response. detail is the
// server-supplied error string when one could be extracted.
func NewStatusError(status int, detail string) *BackendError {
	return &BackendError{Kind: KindNetwork, Status: status, Message: detail}
}

// NewShapeError marks a response body that matched no accepted shape.
func NewShapeError() *BackendError {
	return &BackendError{Kind: KindShape, Message: "unexpected response shape"}
}
