// Package id generates the opaque identities issued by the fake Exchange
// endpoint.
//
//   - ItemID: a random UUID (github.com/google/uuid) in standard base64
//   - ChangeKey: a time-ordered key that differs on every call, issued on
//     each successful create or update
//
// ParseItemID and ValidItemID let the endpoint reject identifiers it could
// not have issued with ErrorInvalidIdMalformed rather than ErrorItemNotFound.
package id
