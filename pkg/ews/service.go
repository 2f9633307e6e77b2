package ews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/getmockd/ews/pkg/logging"
	"github.com/getmockd/ews/pkg/soap"
)

// Namespace URIs of the Exchange Web Services schema.
const (
	TypesNamespace    = "http://schemas.microsoft.com/exchange/services/2006/types"
	MessagesNamespace = "http://schemas.microsoft.com/exchange/services/2006/messages"
	ErrorsNamespace   = "http://schemas.microsoft.com/exchange/services/2006/errors"
)

// Namespaces returns the prefix bindings used in requests and responses.
func Namespaces() []soap.Namespace {
	return []soap.Namespace{
		{Prefix: "m", URI: MessagesNamespace},
		{Prefix: "t", URI: TypesNamespace},
	}
}

// ServerVersion is the schema version requested in every call.
type ServerVersion string

const (
	Exchange2013    ServerVersion = "Exchange2013"
	Exchange2013SP1 ServerVersion = "Exchange2013_SP1"
	Exchange2016    ServerVersion = "Exchange2016"
)

// Valid reports whether v is a version this package models.
func (v ServerVersion) Valid() bool {
	switch v {
	case Exchange2013, Exchange2013SP1, Exchange2016:
		return true
	}
	return false
}

// Transport exchanges one serialized request for one serialized response.
// Timeouts, retries and authentication are its concern.
type Transport interface {
	Send(ctx context.Context, request []byte) ([]byte, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, request []byte) ([]byte, error)

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, request []byte) ([]byte, error) {
	return f(ctx, request)
}

// Service issues operations over a Transport. It holds no per-call state and
// is safe for concurrent use.
type Service struct {
	transport   Transport
	version     ServerVersion
	impersonate string
	baseShape   BaseShape
	logger      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithServerVersion sets the requested schema version. Defaults to
// Exchange2013_SP1.
func WithServerVersion(v ServerVersion) Option {
	return func(s *Service) { s.version = v }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithImpersonation acts on behalf of the mailbox with the given primary
// SMTP address.
func WithImpersonation(smtp string) Option {
	return func(s *Service) { s.impersonate = smtp }
}

// WithBaseShape sets the default item shape of get and find operations.
func WithBaseShape(shape BaseShape) Option {
	return func(s *Service) { s.baseShape = shape }
}

// NewService returns a Service sending requests through t.
func NewService(t Transport, opts ...Option) *Service {
	s := &Service{
		transport: t,
		version:   Exchange2013SP1,
		baseShape: ShapeAllProperties,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.Component(s.logger, "ews")
	return s
}

func (s *Service) envelope(payload *etree.Element) *soap.Envelope {
	env := soap.NewEnvelope(soap.SOAP11, Namespaces()...)
	version := etree.NewElement("t:RequestServerVersion")
	version.CreateAttr("Version", string(s.version))
	env.AddHeader(version)
	if s.impersonate != "" {
		imp := etree.NewElement("t:ExchangeImpersonation")
		imp.CreateElement("t:ConnectingSID").CreateElement("t:PrimarySmtpAddress").SetText(s.impersonate)
		env.AddHeader(imp)
	}
	env.SetPayload(payload)
	return env
}

// call runs one request through Building, Sent and Parsing and returns the
// response message elements in order.
func (s *Service) call(ctx context.Context, op string, payload *etree.Element) ([]*etree.Element, error) {
	req, err := s.envelope(payload).Bytes()
	if err != nil {
		return nil, fmt.Errorf("ews: %s: encode request: %w", op, err)
	}

	resp, err := s.transport.Send(ctx, req)
	if err != nil {
		return nil, &TransportError{Operation: op, Err: err}
	}

	env, err := soap.ParseEnvelope(resp)
	if err != nil {
		return nil, &DecodeError{Kind: ErrParse, Element: "Envelope", Detail: op + " response", Err: err}
	}
	if f := env.Fault(); f != nil {
		return nil, faultError(op, f)
	}

	body := env.Payload()
	if body == nil || body.Tag != op+"Response" {
		return nil, malformed("Body", "expected %sResponse", op)
	}
	messages := body.SelectElement("ResponseMessages")
	if messages == nil {
		return nil, missing("ResponseMessages", body.Tag)
	}
	return messages.ChildElements(), nil
}

func faultError(op string, f *soap.Fault) *FaultError {
	fe := &FaultError{Operation: op, Code: f.Code, String: f.String}
	if token := f.DetailText("ResponseCode"); token != "" {
		fe.Token = token
		fe.ResponseCode, _ = LookupResponseCode(token)
	}
	return fe
}

// run performs a call expecting n response messages and decodes each with
// decode. On a fault the returned result carries the fault and err is the
// same *FaultError.
func run[T any](ctx context.Context, s *Service, op string, req *etree.Element, n int, decode func(*etree.Element) (T, error)) (*BatchResult[T], error) {
	start := time.Now()
	msgs, err := s.call(ctx, op, req)
	if err != nil {
		s.logger.Debug("call failed", "operation", op, "items", n, "duration", time.Since(start), "error", err)
		var fe *FaultError
		if errors.As(err, &fe) {
			return &BatchResult[T]{Fault: fe}, err
		}
		return nil, err
	}
	if len(msgs) != n {
		return nil, malformed("ResponseMessages", "expected %d response messages, got %d", n, len(msgs))
	}

	r := &BatchResult[T]{Outcomes: make([]Outcome[T], len(msgs))}
	for i, m := range msgs {
		r.Outcomes[i] = outcomeOf(m, decode)
		if r.Outcomes[i].Class == ResponseClassWarning {
			s.logger.Warn("item warning", "operation", op, "index", i, "code", r.Outcomes[i].Code.String())
		}
	}
	s.logger.Debug("call finished", "operation", op, "items", n, "state", r.State().String(), "duration", time.Since(start))
	return r, nil
}

func outcomeOf[T any](m *etree.Element, decode func(*etree.Element) (T, error)) Outcome[T] {
	o := Outcome[T]{Class: ResponseClass(m.SelectAttrValue("ResponseClass", ""))}
	switch o.Class {
	case ResponseClassSuccess:
		o.Code = NoError
	case ResponseClassWarning, ResponseClassError:
		xe := newExchangeError(o.Class, childText(m, "ResponseCode"), childText(m, "MessageText"))
		o.Code, o.Err = xe.Code, xe
		if o.Class == ResponseClassError {
			return o
		}
	default:
		o.Err = malformed(m.Tag, "invalid ResponseClass %s", quote(string(o.Class)))
		o.Class = ResponseClassError
		return o
	}

	v, err := decode(m)
	if err != nil {
		if o.Err == nil {
			o.Err = err
		} else {
			o.Err = errors.Join(o.Err, err)
		}
		return o
	}
	o.Value = v
	return o
}

// single unwraps a one-item batch. Warnings are reported as errors.
func single[T any](r *BatchResult[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	o := r.Outcomes[0]
	if o.Err != nil {
		return zero, o.Err
	}
	return o.Value, nil
}

func childText(elem *etree.Element, tag string) string {
	if c := elem.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// decodeResponseItem reads the single item inside a response message's
// m:Items element.
func decodeResponseItem(m *etree.Element) (Item, error) {
	items := m.SelectElement("Items")
	if items == nil {
		return nil, missing("Items", m.Tag)
	}
	children := items.ChildElements()
	if len(children) == 0 {
		return nil, missing("Item", items.Tag)
	}
	return parseIdentifiedItem(children[0])
}

func anyOfKind(items []Item, k ItemKind) bool {
	for _, it := range items {
		if it.Kind() == k {
			return true
		}
	}
	return false
}
