// Package soap provides SOAP 1.1 and 1.2 envelopes over beevik/etree, an HTTP
// transport for posting them and a Handler for serving them.
//
// # Envelopes
//
// NewEnvelope creates an outbound message; ParseEnvelope reads one, decoding
// non-UTF-8 documents through golang.org/x/net/html/charset:
//
//	env := soap.NewEnvelope(soap.SOAP11, soap.Namespace{Prefix: "m", URI: messagesNS})
//	env.AddHeader(versionHeader)
//	env.SetPayload(getItem)
//	data, err := env.Bytes()
//
// A parsed envelope exposes its header, body payload and, when present, the
// Fault of either protocol version.
//
// # Transport
//
// HTTPTransport posts envelopes with Basic or bearer authentication. Bearer
// tokens that are JWTs are checked for expiry before the request is sent.
// Responses with status 200 or 500 are returned as bodies so faults reach
// the caller; other statuses produce a *StatusError.
//
// # Serving
//
// Handler dispatches requests by the local name of the body payload element
// to registered OperationFuncs. It writes faults with status 500 and maps
// Client/Server fault codes to Sender/Receiver for SOAP 1.2.
package soap
