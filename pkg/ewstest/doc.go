// Package ewstest provides an in-memory Exchange Web Services endpoint for
// tests.
//
// A Server answers GetItem, CreateItem, DeleteItem, UpdateItem and FindItem
// with the response messages a real server sends, including per-item
// failures:
//
//   - ErrorInvalidIdEmpty, ErrorInvalidIdMalformed and ErrorItemNotFound for
//     bad references
//   - ErrorChangeKeyRequiredForWriteOperations when an update omits the
//     ChangeKey and does not use AlwaysOverwrite
//   - ErrorIrresolvableConflict for a stale ChangeKey under NeverOverwrite
//
// Requests naming an unsupported RequestServerVersion get a SOAP fault with
// ErrorInvalidServerVersion in its detail.
//
// The Server is both an http.Handler and an ews.Transport:
//
//	srv := ewstest.NewServer()
//	svc := ews.NewService(srv)               // in-process
//	hs := httptest.NewServer(srv)            // over HTTP
//	svc = ews.NewService(soap.NewHTTPTransport(hs.URL))
//
// FindItem restrictions are compiled to expr programs over the item's field
// texts and cached, so repeated queries are not recompiled.
package ewstest
