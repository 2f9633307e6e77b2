package ews

import (
	"time"

	"github.com/beevik/etree"
)

// dateTimeLayout is the only timestamp profile accepted on the wire.
const dateTimeLayout = "2006-01-02T15:04:05Z"

// DateTime is an instant normalized to UTC with second precision. The zero
// value means "unset".
type DateTime struct {
	t time.Time
}

// NewDateTime converts t to UTC and truncates it to whole seconds.
func NewDateTime(t time.Time) DateTime {
	if t.IsZero() {
		return DateTime{}
	}
	return DateTime{t: t.UTC().Truncate(time.Second)}
}

// ParseDateTime parses s strictly as YYYY-MM-DDThh:mm:ssZ.
func ParseDateTime(s string) (DateTime, error) {
	// time.Parse tolerates fractional seconds the layout does not mention.
	if len(s) != len(dateTimeLayout) {
		return DateTime{}, &DecodeError{Kind: ErrInvalidTimestamp, Detail: "unexpected length in " + quote(s)}
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return DateTime{}, &DecodeError{Kind: ErrInvalidTimestamp, Detail: quote(s), Err: err}
	}
	return DateTime{t: t.UTC()}, nil
}

// MustParseDateTime is like ParseDateTime but panics on error. It is meant
// for literals in tests and examples.
func MustParseDateTime(s string) DateTime {
	d, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecodeDateTime reads the text of elem as a DateTime.
func DecodeDateTime(elem *etree.Element) (DateTime, error) {
	d, err := ParseDateTime(elem.Text())
	if err != nil {
		var de *DecodeError
		if asDecodeError(err, &de) {
			de.Element = elem.Tag
		}
		return DateTime{}, err
	}
	return d, nil
}

// Encode renders d as an element named tag.
func (d DateTime) Encode(tag string) *etree.Element {
	elem := etree.NewElement(tag)
	elem.SetText(d.String())
	return elem
}

// Time returns the instant as a UTC time.Time.
func (d DateTime) Time() time.Time { return d.t }

// IsZero reports whether d is unset.
func (d DateTime) IsZero() bool { return d.t.IsZero() }

// Equal compares instants, not text.
func (d DateTime) Equal(o DateTime) bool { return d.t.Equal(o.t) }

// Before reports whether d is before o.
func (d DateTime) Before(o DateTime) bool { return d.t.Before(o.t) }

// After reports whether d is after o.
func (d DateTime) After(o DateTime) bool { return d.t.After(o.t) }

// Add returns d shifted by dur.
func (d DateTime) Add(dur time.Duration) DateTime { return DateTime{t: d.t.Add(dur)} }

// String renders the wire profile, or "" for the zero value.
func (d DateTime) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateTimeLayout)
}
