package hue

import (
	"fmt"
	"strings"

	"github.com/fussel132/hue-controller/internal/constants"
)

type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnauthorized:
		return "unauthorized"
	default:
		return "other"
	}
}

// ClassifyError decides what kind of failure a bridge error description reports.
// The bridge only exposes this through free text, so this is the single place that inspects it.
func ClassifyError(description string) ErrorKind {
	if strings.Contains(description, constants.UnauthorizedDescription) {
		return ErrorKindUnauthorized
	}
	return ErrorKindOther
}

// TransportError is returned when the bridge could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error contacting hue bridge: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BridgeError is an error reported by the bridge itself.
type BridgeError struct {
	Kind        ErrorKind
	Type        int
	Address     string
	Description string
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("hue bridge error (%s, type %d): %s", e.Kind, e.Type, e.Description)
}

func newBridgeError(e SingleError) *BridgeError {
	return &BridgeError{
		Kind:        ClassifyError(e.Description),
		Type:        e.Type,
		Address:     e.Address,
		Description: e.Description,
	}
}

// ResponseError is returned when the bridge answered with something other than a usable document.
type ResponseError struct {
	Status int
	Err    error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response from hue bridge (status %d): %v", e.Status, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
