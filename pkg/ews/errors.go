package ews

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors in this package unwrap to one of these so
// callers can branch with errors.Is.
var (
	ErrInvalidIdentity      = errors.New("ews: invalid item identity")
	ErrParse                = errors.New("ews: parse error")
	ErrMalformedElement     = errors.New("ews: malformed element")
	ErrMissingRequiredField = errors.New("ews: missing required field")
	ErrInvalidTimestamp     = errors.New("ews: invalid timestamp")
	ErrInvalidChange        = errors.New("ews: invalid update change")
	ErrNilItem              = errors.New("ews: nil item")
	ErrNilRestriction       = errors.New("ews: nil restriction node")
)

// DecodeError reports wire data that violates the expected structure.
type DecodeError struct {
	// Kind is one of ErrParse, ErrMalformedElement, ErrMissingRequiredField
	// or ErrInvalidTimestamp.
	Kind error
	// Element is the local name of the offending element, if known.
	Element string
	// Detail is a short human-readable description.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Element != "" {
		b.WriteString(" <" + e.Element + ">")
	}
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the kind sentinel and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformed(element, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: ErrMalformedElement, Element: element, Detail: fmt.Sprintf(format, args...)}
}

func missing(element, parent string) *DecodeError {
	return &DecodeError{Kind: ErrMissingRequiredField, Element: element, Detail: "required in <" + parent + ">"}
}

// TransportError wraps any failure reported by the Transport. It is fatal
// for the call and never retried.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ews: %s: transport: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FaultError is an envelope-level SOAP fault. No per-item results are
// produced when a call faults.
type FaultError struct {
	Operation string
	Code      string
	String    string
	// ResponseCode is decoded from the fault detail when the server supplies one.
	ResponseCode ResponseCode
	// Token is the raw response code text from the fault detail.
	Token string
}

func (e *FaultError) Error() string {
	msg := fmt.Sprintf("ews: %s: soap fault %s: %s", e.Operation, e.Code, e.String)
	if e.Token != "" {
		msg += " (" + e.Token + ")"
	}
	return msg
}

// ExchangeError is a per-item failure carried by a response message whose
// class is not Success.
type ExchangeError struct {
	// Code is the resolved response code; ResponseCodeUnrecognized when the
	// token is not in the table.
	Code ResponseCode
	// Token is the wire token exactly as received.
	Token string
	// Message is the canonical message for Code.
	Message string
	// ServerMessage is the MessageText the server sent, if any.
	ServerMessage string
	// Class is Warning or Error.
	Class ResponseClass

	local bool
}

func newExchangeError(class ResponseClass, token, serverMessage string) *ExchangeError {
	code, msg := LookupResponseCode(token)
	return &ExchangeError{
		Code:          code,
		Token:         token,
		Message:       msg,
		ServerMessage: serverMessage,
		Class:         class,
	}
}

// invalidIdentity is raised before any transport call when an operation is
// given an ItemID without an id. It reports ErrorInvalidIdEmpty, the same code
// the server would answer with.
func invalidIdentity() *ExchangeError {
	e := newExchangeError(ResponseClassError, ErrorInvalidIDEmpty.String(), "")
	e.local = true
	return e
}

func (e *ExchangeError) Error() string {
	return e.Message
}

// Is reports ErrInvalidIdentity for identity failures detected locally.
func (e *ExchangeError) Is(target error) bool {
	return target == ErrInvalidIdentity && e.local
}

// HasResponseCode reports whether err is (or wraps) an ExchangeError or
// FaultError carrying code.
func HasResponseCode(err error, code ResponseCode) bool {
	var xe *ExchangeError
	if errors.As(err, &xe) {
		return xe.Code == code
	}
	var fe *FaultError
	if errors.As(err, &fe) {
		return fe.Token != "" && fe.ResponseCode == code
	}
	return false
}
