package ews

import "errors"

// CallState is the final state of one operation call.
type CallState int

const (
	// StateSucceeded means every response message had class Success.
	StateSucceeded CallState = iota
	// StatePartiallyFailed means at least one item did not succeed. Siblings
	// are unaffected and must be inspected individually.
	StatePartiallyFailed
	// StateFaulted means the envelope carried a fault and no per-item
	// results exist.
	StateFaulted
)

func (s CallState) String() string {
	switch s {
	case StateSucceeded:
		return "Succeeded"
	case StatePartiallyFailed:
		return "PartiallyFailed"
	case StateFaulted:
		return "Faulted"
	}
	return "Unknown"
}

// Outcome is the result for one item of a batch.
type Outcome[T any] struct {
	Class ResponseClass
	// Code is NoError for successes.
	Code ResponseCode
	// Value is set for Success and Warning outcomes that decoded cleanly.
	Value T
	// Err is an *ExchangeError for non-success classes or a *DecodeError when
	// the item could not be decoded.
	Err error
}

// OK reports whether the item succeeded without warnings.
func (o Outcome[T]) OK() bool {
	return o.Class == ResponseClassSuccess && o.Err == nil
}

// BatchResult holds the per-item outcomes of a call in request order.
type BatchResult[T any] struct {
	Outcomes []Outcome[T]
	// Fault is set when the call faulted.
	Fault *FaultError
}

// State derives the call state from the outcomes.
func (r *BatchResult[T]) State() CallState {
	if r.Fault != nil {
		return StateFaulted
	}
	for _, o := range r.Outcomes {
		if !o.OK() {
			return StatePartiallyFailed
		}
	}
	return StateSucceeded
}

// Values returns the values of successful outcomes in order.
func (r *BatchResult[T]) Values() []T {
	out := make([]T, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o.Value)
		}
	}
	return out
}

// Err joins the errors of all failed outcomes, or returns the fault.
func (r *BatchResult[T]) Err() error {
	if r.Fault != nil {
		return r.Fault
	}
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// FindResult is the result of FindItem. Each found item is one outcome so a
// single undecodable item does not hide the others.
type FindResult struct {
	BatchResult[Item]
	TotalItemsInView        int
	IncludesLastItemInRange bool
}

// Items returns the decoded items in server order.
func (r *FindResult) Items() []Item { return r.Values() }
