package ews

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// Restriction is a node of a search predicate tree. The set of node types is
// closed: Comparison, Contains, Exists, And, Or and Not.
type Restriction interface {
	element() *etree.Element
}

// ComparisonOp is the element name of a two-operand comparison.
type ComparisonOp string

const (
	OpIsEqualTo              ComparisonOp = "IsEqualTo"
	OpIsNotEqualTo           ComparisonOp = "IsNotEqualTo"
	OpIsGreaterThan          ComparisonOp = "IsGreaterThan"
	OpIsGreaterThanOrEqualTo ComparisonOp = "IsGreaterThanOrEqualTo"
	OpIsLessThan             ComparisonOp = "IsLessThan"
	OpIsLessThanOrEqualTo    ComparisonOp = "IsLessThanOrEqualTo"
)

func (op ComparisonOp) valid() bool {
	switch op {
	case OpIsEqualTo, OpIsNotEqualTo, OpIsGreaterThan, OpIsGreaterThanOrEqualTo,
		OpIsLessThan, OpIsLessThanOrEqualTo:
		return true
	}
	return false
}

// Comparison compares a field with a constant. Value holds the constant in
// its wire form.
type Comparison struct {
	Op    ComparisonOp
	Path  PropertyPath
	Value string
}

// ContainmentMode selects which part of a string a Contains node matches.
type ContainmentMode string

const (
	ContainFullString    ContainmentMode = "FullString"
	ContainPrefixed      ContainmentMode = "Prefixed"
	ContainSubstring     ContainmentMode = "Substring"
	ContainPrefixOnWords ContainmentMode = "PrefixOnWords"
	ContainExactPhrase   ContainmentMode = "ExactPhrase"
)

// ContainmentComparison selects how strictly a Contains node matches.
type ContainmentComparison string

const (
	CompareExact      ContainmentComparison = "Exact"
	CompareIgnoreCase ContainmentComparison = "IgnoreCase"
	CompareLoose      ContainmentComparison = "Loose"
)

// Contains matches string fields by containment.
type Contains struct {
	Path       PropertyPath
	Value      string
	Mode       ContainmentMode
	Comparison ContainmentComparison
}

// Exists matches items on which the field is present.
type Exists struct {
	Path PropertyPath
}

// And matches when every child matches.
type And struct {
	Children []Restriction
}

// Or matches when at least one child matches.
type Or struct {
	Children []Restriction
}

// Not inverts its child.
type Not struct {
	Child Restriction
}

func IsEqualTo(p PropertyPath, v any) Restriction     { return compare(OpIsEqualTo, p, v) }
func IsNotEqualTo(p PropertyPath, v any) Restriction  { return compare(OpIsNotEqualTo, p, v) }
func IsGreaterThan(p PropertyPath, v any) Restriction { return compare(OpIsGreaterThan, p, v) }
func IsLessThan(p PropertyPath, v any) Restriction    { return compare(OpIsLessThan, p, v) }

func IsGreaterThanOrEqualTo(p PropertyPath, v any) Restriction {
	return compare(OpIsGreaterThanOrEqualTo, p, v)
}

func IsLessThanOrEqualTo(p PropertyPath, v any) Restriction {
	return compare(OpIsLessThanOrEqualTo, p, v)
}

func compare(op ComparisonOp, p PropertyPath, v any) Comparison {
	return Comparison{Op: op, Path: p, Value: FormatLiteral(v)}
}

// ContainsSubstring matches fields containing s, ignoring case.
func ContainsSubstring(p PropertyPath, s string) Restriction {
	return Contains{Path: p, Value: s, Mode: ContainSubstring, Comparison: CompareIgnoreCase}
}

// StartsWith matches fields beginning with s, ignoring case.
func StartsWith(p PropertyPath, s string) Restriction {
	return Contains{Path: p, Value: s, Mode: ContainPrefixed, Comparison: CompareIgnoreCase}
}

// FieldExists matches items on which p is set.
func FieldExists(p PropertyPath) Restriction { return Exists{Path: p} }

// AndOf combines rs into a conjunction. No flattening is performed.
func AndOf(rs ...Restriction) Restriction { return And{Children: rs} }

// OrOf combines rs into a disjunction.
func OrOf(rs ...Restriction) Restriction { return Or{Children: rs} }

// NotOf negates r.
func NotOf(r Restriction) Restriction { return Not{Child: r} }

// FormatLiteral renders v the way a constant of that type is written on the
// wire: booleans as true/false, timestamps in the DateTime profile, enums by
// their token.
func FormatLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return formatBool(x)
	case DateTime:
		return x.String()
	case time.Time:
		return NewDateTime(x).String()
	}
	if n, ok := toInt(v); ok {
		return fmt.Sprint(n)
	}
	if s, ok := enumString(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// RestrictionElement renders r inside an m:Restriction element.
func RestrictionElement(r Restriction) *etree.Element {
	elem := etree.NewElement("m:Restriction")
	elem.AddChild(r.element())
	return elem
}

func (c Comparison) element() *etree.Element {
	elem := etree.NewElement("t:" + string(c.Op))
	elem.AddChild(c.Path.Encode())
	elem.CreateElement("t:FieldURIOrConstant").CreateElement("t:Constant").CreateAttr("Value", c.Value)
	return elem
}

func (c Contains) element() *etree.Element {
	elem := etree.NewElement("t:Contains")
	mode, cmp := c.Mode, c.Comparison
	if mode == "" {
		mode = ContainSubstring
	}
	if cmp == "" {
		cmp = CompareExact
	}
	elem.CreateAttr("ContainmentMode", string(mode))
	elem.CreateAttr("ContainmentComparison", string(cmp))
	elem.AddChild(c.Path.Encode())
	elem.CreateElement("t:Constant").CreateAttr("Value", c.Value)
	return elem
}

func (e Exists) element() *etree.Element {
	elem := etree.NewElement("t:Exists")
	elem.AddChild(e.Path.Encode())
	return elem
}

func (a And) element() *etree.Element { return group("t:And", a.Children) }
func (o Or) element() *etree.Element  { return group("t:Or", o.Children) }

func (n Not) element() *etree.Element {
	elem := etree.NewElement("t:Not")
	if n.Child != nil {
		elem.AddChild(n.Child.element())
	}
	return elem
}

func group(tag string, children []Restriction) *etree.Element {
	elem := etree.NewElement(tag)
	for _, c := range children {
		if c != nil {
			elem.AddChild(c.element())
		}
	}
	return elem
}

// checkRestriction rejects trees with nil nodes, which render as elements
// the server refuses.
func checkRestriction(r Restriction) error {
	switch n := r.(type) {
	case nil:
		return ErrNilRestriction
	case And:
		return checkChildren("And", n.Children)
	case Or:
		return checkChildren("Or", n.Children)
	case Not:
		if n.Child == nil {
			return fmt.Errorf("%w: Not has no child", ErrNilRestriction)
		}
		return checkRestriction(n.Child)
	}
	return nil
}

func checkChildren(tag string, children []Restriction) error {
	for i, c := range children {
		if c == nil {
			return fmt.Errorf("%w: %s child %d", ErrNilRestriction, tag, i)
		}
		if err := checkRestriction(c); err != nil {
			return err
		}
	}
	return nil
}

// ParseRestriction reads a restriction tree. elem may be the m:Restriction
// wrapper or any node inside it.
func ParseRestriction(elem *etree.Element) (Restriction, error) {
	if elem.Tag == "Restriction" {
		children := elem.ChildElements()
		if len(children) != 1 {
			return nil, malformed(elem.Tag, "expected exactly one child, got %d", len(children))
		}
		elem = children[0]
	}
	if op := ComparisonOp(elem.Tag); op.valid() {
		return parseComparison(op, elem)
	}
	switch elem.Tag {
	case "Contains":
		path, err := firstPath(elem)
		if err != nil {
			return nil, err
		}
		constant := elem.SelectElement("Constant")
		if constant == nil {
			return nil, missing("Constant", elem.Tag)
		}
		return Contains{
			Path:       path,
			Value:      constant.SelectAttrValue("Value", ""),
			Mode:       ContainmentMode(elem.SelectAttrValue("ContainmentMode", string(ContainSubstring))),
			Comparison: ContainmentComparison(elem.SelectAttrValue("ContainmentComparison", string(CompareExact))),
		}, nil
	case "Exists":
		path, err := firstPath(elem)
		if err != nil {
			return nil, err
		}
		return Exists{Path: path}, nil
	case "And", "Or":
		var children []Restriction
		for _, c := range elem.ChildElements() {
			r, err := ParseRestriction(c)
			if err != nil {
				return nil, err
			}
			children = append(children, r)
		}
		if elem.Tag == "And" {
			return And{Children: children}, nil
		}
		return Or{Children: children}, nil
	case "Not":
		children := elem.ChildElements()
		if len(children) != 1 {
			return nil, malformed(elem.Tag, "expected exactly one child, got %d", len(children))
		}
		r, err := ParseRestriction(children[0])
		if err != nil {
			return nil, err
		}
		return Not{Child: r}, nil
	}
	return nil, malformed(elem.Tag, "unknown restriction element")
}

func parseComparison(op ComparisonOp, elem *etree.Element) (Restriction, error) {
	path, err := firstPath(elem)
	if err != nil {
		return nil, err
	}
	operand := elem.SelectElement("FieldURIOrConstant")
	if operand == nil {
		return nil, missing("FieldURIOrConstant", elem.Tag)
	}
	constant := operand.SelectElement("Constant")
	if constant == nil {
		return nil, missing("Constant", operand.Tag)
	}
	return Comparison{Op: op, Path: path, Value: constant.SelectAttrValue("Value", "")}, nil
}

func firstPath(elem *etree.Element) (PropertyPath, error) {
	uri := elem.SelectElement("FieldURI")
	if uri == nil {
		return PropertyPath{}, missing("FieldURI", elem.Tag)
	}
	return DecodePropertyPath(uri)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	}
	return 0, false
}

func toDateTime(v any) (DateTime, bool) {
	switch d := v.(type) {
	case DateTime:
		return d, true
	case time.Time:
		return NewDateTime(d), true
	case string:
		parsed, err := ParseDateTime(d)
		return parsed, err == nil
	}
	return DateTime{}, false
}
