package ewstest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/getmockd/ews/internal/storage"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/getmockd/ews/pkg/logging"
	"github.com/getmockd/ews/pkg/soap"
)

// Server is an in-memory Exchange endpoint serving GetItem, CreateItem,
// DeleteItem, UpdateItem and FindItem. It implements both http.Handler and
// ews.Transport, so a Service can talk to it in-process.
type Server struct {
	handler *soap.Handler
	store   storage.ItemStore
	matcher *matcher
	logger  *slog.Logger
	now     func() time.Time
	faults  []faultRule
}

// faultRule answers matching requests with a SOAP fault instead of running
// the operation.
type faultRule struct {
	operation  string
	conditions map[string]string
	code       ews.ResponseCode
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// FaultWhen makes the server fault requests for operation whose payload
// matches every condition. Conditions map a path relative to the payload
// element, such as "ItemIds/ItemId/@Id", to the expected value; no
// conditions match every request. The fault detail carries code.
func FaultWhen(operation string, conditions map[string]string, code ews.ResponseCode) Option {
	return func(s *Server) {
		s.faults = append(s.faults, faultRule{operation: operation, conditions: conditions, code: code})
	}
}

// WithStore replaces the item store.
func WithStore(store storage.ItemStore) Option {
	return func(s *Server) { s.store = store }
}

// WithClock sets the time source for server-computed timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer returns a Server with an empty store.
func NewServer(opts ...Option) *Server {
	s := &Server{
		store:   storage.NewInMemoryItemStore(),
		matcher: newMatcher(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.Component(s.logger, "ewstest")

	ns := append(ews.Namespaces(), soap.Namespace{Prefix: "e", URI: ews.ErrorsNamespace})
	s.handler = soap.NewHandler(soap.WithNamespaces(ns...), soap.WithHandlerLogger(s.logger))
	s.handler.Handle("GetItem", s.guard(s.getItem))
	s.handler.Handle("CreateItem", s.guard(s.createItem))
	s.handler.Handle("DeleteItem", s.guard(s.deleteItem))
	s.handler.Handle("UpdateItem", s.guard(s.updateItem))
	s.handler.Handle("FindItem", s.guard(s.findItem))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Send implements ews.Transport without a network round trip.
func (s *Server) Send(ctx context.Context, request []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, _, err := s.handler.Serve(ctx, request)
	return resp, err
}

// Store returns the backing store, for seeding and inspecting state.
func (s *Server) Store() storage.ItemStore { return s.store }

// guard applies the FaultWhen rules, then rejects requests whose
// RequestServerVersion is not one the endpoint models. Requests without the
// header are accepted.
func (s *Server) guard(fn soap.OperationFunc) soap.OperationFunc {
	return func(ctx context.Context, req *soap.Request) soap.Response {
		for _, rule := range s.faults {
			if rule.operation == req.Operation && soap.MatchXPath(req.Payload(), rule.conditions) {
				s.logger.Debug("injecting fault", "operation", req.Operation, "code", rule.code)
				return soap.Response{Fault: codeFault(rule.code, "Injected fault for "+req.Operation+".")}
			}
		}
		if req.Envelope.Header != nil {
			v := soap.ExtractXPathFromElement(req.Envelope.Header, "RequestServerVersion/@Version")
			if v != "" && !ews.ServerVersion(v).Valid() {
				s.logger.Debug("rejecting server version", "version", v)
				return soap.Response{Fault: codeFault(ews.ErrorInvalidServerVersion, "The specified server version is invalid.")}
			}
		}
		return fn(ctx, req)
	}
}

// codeFault builds a client fault whose detail carries an EWS response code.
func codeFault(code ews.ResponseCode, msg string) *soap.Fault {
	detail := etree.NewElement("e:ResponseCode")
	detail.SetText(code.String())
	f := soap.ClientFault(msg)
	f.Detail = detail
	return f
}
