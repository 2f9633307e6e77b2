package soap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
)

// maxSOAPBodySize bounds request and response bodies.
const maxSOAPBodySize = 10 << 20 // 10MB

// Request is a parsed inbound SOAP request.
type Request struct {
	Envelope *Envelope
	// Operation is the local name of the body payload element.
	Operation string
	// Action is the SOAPAction header (1.1) or Content-Type action (1.2).
	Action string
}

// Payload returns the operation element.
func (r *Request) Payload() *etree.Element { return r.Envelope.Payload() }

// Response is what an OperationFunc produces: either a payload for the
// response body or a fault.
type Response struct {
	Payload *etree.Element
	Fault   *Fault
}

// OperationFunc serves one operation.
type OperationFunc func(ctx context.Context, req *Request) Response

// Handler dispatches SOAP requests to registered operations by the name of the
// body payload element.
type Handler struct {
	mu         sync.RWMutex
	operations map[string]OperationFunc
	namespaces []Namespace
	logger     *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithNamespaces declares prefixes on every response envelope.
func WithNamespaces(ns ...Namespace) HandlerOption {
	return func(h *Handler) { h.namespaces = append(h.namespaces, ns...) }
}

// WithHandlerLogger sets the logger. The default discards output.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) { h.logger = l }
}

// NewHandler creates a Handler with no operations.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		operations: make(map[string]OperationFunc),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle registers fn for operation name, replacing any earlier registration.
func (h *Handler) Handle(name string, fn OperationFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.operations[name] = fn
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only accept POST for SOAP operations
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSOAPBodySize))
	defer func() { _ = r.Body.Close() }()
	if err != nil {
		h.writeEnvelope(w, NewFaultEnvelope(SOAP11, ClientFault("Failed to read request body")), true)
		return
	}

	env, isFault := h.dispatch(r.Context(), body, func(v SOAPVersion) string { return getSOAPAction(r, v) })
	h.writeEnvelope(w, env, isFault)
}

// Serve handles a request given as raw bytes and returns the serialized
// response. isFault reports whether the response carries a fault, which over
// HTTP is sent with status 500.
func (h *Handler) Serve(ctx context.Context, body []byte) (resp []byte, isFault bool, err error) {
	env, isFault := h.dispatch(ctx, body, func(SOAPVersion) string { return "" })
	resp, err = env.Bytes()
	return resp, isFault, err
}

func (h *Handler) dispatch(ctx context.Context, body []byte, action func(SOAPVersion) string) (*Envelope, bool) {
	startTime := time.Now()

	env, err := ParseEnvelope(body)
	if err != nil {
		h.logger.Debug("rejecting request", "error", err)
		return NewFaultEnvelope(SOAP11, ClientFault("Failed to parse SOAP envelope: "+err.Error()), h.namespaces...), true
	}

	payload := env.Payload()
	if payload == nil {
		return NewFaultEnvelope(env.Version, ClientFault("no operation element found in Body"), h.namespaces...), true
	}

	h.mu.RLock()
	fn, ok := h.operations[payload.Tag]
	h.mu.RUnlock()
	if !ok {
		return NewFaultEnvelope(env.Version, ClientFault("Unknown operation: "+payload.Tag), h.namespaces...), true
	}

	resp := fn(ctx, &Request{Envelope: env, Operation: payload.Tag, Action: action(env.Version)})
	h.logger.Debug("served operation",
		"operation", payload.Tag,
		"fault", resp.Fault != nil,
		"duration", time.Since(startTime),
	)
	if resp.Fault != nil {
		return NewFaultEnvelope(env.Version, resp.Fault, h.namespaces...), true
	}
	if resp.Payload == nil {
		return NewFaultEnvelope(env.Version, ServerFault(fmt.Sprintf("operation %s produced no response", payload.Tag)), h.namespaces...), true
	}
	out := NewEnvelope(env.Version, h.namespaces...)
	out.SetPayload(resp.Payload)
	return out, false
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, env *Envelope, isFault bool) {
	data, err := env.Bytes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", env.Version.ContentType())
	if isFault {
		w.WriteHeader(http.StatusInternalServerError)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_, _ = w.Write(data)
}

// getSOAPAction extracts the SOAPAction from request headers.
func getSOAPAction(r *http.Request, version SOAPVersion) string {
	if version == SOAP12 {
		// SOAP 1.2 uses action parameter in Content-Type
		for _, part := range strings.Split(r.Header.Get("Content-Type"), ";") {
			part = strings.TrimSpace(part)
			if action, ok := strings.CutPrefix(part, "action="); ok {
				return strings.Trim(action, "\"")
			}
		}
	}
	return strings.Trim(r.Header.Get("SOAPAction"), "\"")
}

// writeError writes an HTTP error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
