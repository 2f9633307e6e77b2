// Package ews is a client for the item operations of Exchange Web Services.
//
// It maps items, identities and search predicates to and from the EWS XML
// schema, builds SOAP request envelopes for GetItem, CreateItem, DeleteItem,
// UpdateItem and FindItem, and reports envelope faults and per-item response
// codes through one error model.
//
// # Items
//
// Item is a closed sum over *GenericItem, *Task, *CalendarItem, *Contact and
// *Message. Every variant embeds ItemBase for the common fields. Fields are
// individually optional: getters of unset fields return the zero value and
// Has reports presence. Only present fields are written, in schema order.
//
//	task := ews.NewTask()
//	task.SetSubject("Write poem")
//	task.SetStartDate(ews.MustParseDateTime("2015-01-17T12:00:00Z"))
//
// # Operations
//
// A Service sends requests through a Transport, usually a
// *soap.HTTPTransport:
//
//	svc := ews.NewService(soap.NewHTTPTransport(endpoint, soap.WithBasicAuth(user, pass)))
//	id, err := svc.CreateItem(ctx, task)
//
// Batch forms return a BatchResult with one Outcome per requested item in
// request order. An error in one item never affects its siblings; the result
// State is PartiallyFailed when any item did not succeed. A SOAP fault aborts
// the whole call with a *FaultError.
//
// DeleteItem and DeleteItems consume their arguments: on success the item is
// reset to the state of a newly constructed item.
//
// # Errors
//
// Operations given an ItemID without an id fail before contacting the
// server with an *ExchangeError for ErrorInvalidIdEmpty that also matches
// ErrInvalidIdentity. Per-item failures are *ExchangeError values carrying
// the ResponseCode and the wire token; unknown tokens map to
// ResponseCodeUnrecognized. Malformed responses produce *DecodeError values
// that unwrap to ErrParse, ErrMalformedElement, ErrMissingRequiredField or
// ErrInvalidTimestamp.
//
// # Restrictions
//
// FindItem filters with a Restriction tree:
//
//	r := ews.AndOf(
//		ews.IsEqualTo(ews.TaskPath.IsComplete, false),
//		ews.ContainsSubstring(ews.ItemPath.Subject, "poem"),
//	)
//	res, err := svc.FindItem(ctx, ews.Distinguished(ews.FolderTasks), r)
package ews
