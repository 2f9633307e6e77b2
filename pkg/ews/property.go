package ews

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// fieldKind selects the codec of a property.
type fieldKind int

const (
	stringField fieldKind = iota
	boolField
	intField
	dateTimeField
	itemIDField
	bodyField
	stringListField
	rightsField
	flagField
	mailboxField
	mailboxListField
	entriesField
)

// fieldDef describes one child element of an item.
type fieldDef struct {
	name string
	kind fieldKind
	// readOnly fields are computed by the server and left out of CreateItem.
	readOnly bool
}

// schema is an ordered list of fields. The order is the sequence the wire
// schema declares and is significant for validity.
type schema struct {
	uriPrefix string
	fields    []fieldDef
	index     map[string]int
}

func newSchema(uriPrefix string, fields ...fieldDef) *schema {
	s := &schema{uriPrefix: uriPrefix, fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.name]; dup {
			panic("ews: duplicate field " + f.name + " in " + uriPrefix + " schema")
		}
		s.index[f.name] = i
	}
	return s
}

func (s *schema) lookup(name string) (fieldDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return fieldDef{}, false
	}
	return s.fields[i], true
}

func (s *schema) path(name string) PropertyPath {
	if _, ok := s.index[name]; !ok {
		panic("ews: unknown field " + name + " in " + s.uriPrefix + " schema")
	}
	return PropertyPath{URI: s.uriPrefix + ":" + name}
}

// propertyBag stores present fields only. A missing key means "unset"; the
// zero value is an empty bag.
type propertyBag struct {
	values map[string]any
}

func (b *propertyBag) set(name string, v any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	b.values[name] = v
}

func (b *propertyBag) has(name string) bool {
	_, ok := b.values[name]
	return ok
}

func (b *propertyBag) unset(name string) {
	delete(b.values, name)
}

func (b *propertyBag) len() int { return len(b.values) }

func getField[T any](b *propertyBag, name string) T {
	v, _ := b.values[name].(T)
	return v
}

func getList[T any](b *propertyBag, name string) []T {
	v, _ := b.values[name].([]T)
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

func setList[T any](b *propertyBag, name string, v []T) {
	cp := make([]T, len(v))
	copy(cp, v)
	b.set(name, cp)
}

// decodeInto reads every child of elem that s recognizes into b. Unknown
// children are skipped.
func decodeInto(b *propertyBag, s *schema, elem *etree.Element) error {
	for _, child := range elem.ChildElements() {
		def, ok := s.lookup(child.Tag)
		if !ok {
			continue
		}
		v, err := decodeValue(def, child)
		if err != nil {
			return err
		}
		b.set(def.name, v)
	}
	return nil
}

// encodeFrom appends the present fields of b to parent in schema order.
func encodeFrom(parent *etree.Element, b *propertyBag, s *schema, skipReadOnly bool) {
	for _, def := range s.fields {
		v, ok := b.values[def.name]
		if !ok || (skipReadOnly && def.readOnly) {
			continue
		}
		parent.AddChild(encodeValue(def, v))
	}
}

func decodeValue(def fieldDef, elem *etree.Element) (any, error) {
	switch def.kind {
	case stringField:
		return elem.Text(), nil
	case boolField:
		return parseBool(elem.Tag, elem.Text())
	case intField:
		return parseInt(elem.Tag, elem.Text())
	case dateTimeField:
		return DecodeDateTime(elem)
	case itemIDField:
		return DecodeItemID(elem)
	case bodyField:
		return decodeBody(elem)
	case stringListField:
		var out []string
		for _, c := range elem.SelectElements("String") {
			out = append(out, c.Text())
		}
		return out, nil
	case rightsField:
		return decodeEffectiveRights(elem)
	case flagField:
		return decodeFlag(elem)
	case mailboxField:
		mb := elem.SelectElement("Mailbox")
		if mb == nil {
			return nil, missing("Mailbox", elem.Tag)
		}
		return decodeMailbox(mb), nil
	case mailboxListField:
		var out []Mailbox
		for _, c := range elem.SelectElements("Mailbox") {
			out = append(out, decodeMailbox(c))
		}
		return out, nil
	case entriesField:
		var out []Entry
		for _, c := range elem.SelectElements("Entry") {
			key := c.SelectAttr("Key")
			if key == nil {
				return nil, malformed(c.Tag, "missing Key attribute")
			}
			out = append(out, Entry{Key: key.Value, Value: c.Text()})
		}
		return out, nil
	}
	return nil, fmt.Errorf("ews: no codec for field %s", def.name)
}

func encodeValue(def fieldDef, v any) *etree.Element {
	tag := "t:" + def.name
	switch def.kind {
	case boolField:
		elem := etree.NewElement(tag)
		elem.SetText(formatBool(v.(bool)))
		return elem
	case intField:
		elem := etree.NewElement(tag)
		elem.SetText(strconv.Itoa(v.(int)))
		return elem
	case dateTimeField:
		return v.(DateTime).Encode(tag)
	case itemIDField:
		return v.(ItemID).Encode(tag)
	case bodyField:
		return v.(Body).encode(tag)
	case stringListField:
		elem := etree.NewElement(tag)
		for _, s := range v.([]string) {
			elem.CreateElement("t:String").SetText(s)
		}
		return elem
	case rightsField:
		return v.(EffectiveRights).encode(tag)
	case flagField:
		return v.(Flag).encode(tag)
	case mailboxField:
		elem := etree.NewElement(tag)
		elem.AddChild(v.(Mailbox).encode())
		return elem
	case mailboxListField:
		elem := etree.NewElement(tag)
		for _, m := range v.([]Mailbox) {
			elem.AddChild(m.encode())
		}
		return elem
	case entriesField:
		elem := etree.NewElement(tag)
		for _, e := range v.([]Entry) {
			c := elem.CreateElement("t:Entry")
			c.CreateAttr("Key", e.Key)
			c.SetText(e.Value)
		}
		return elem
	default:
		elem := etree.NewElement(tag)
		elem.SetText(v.(string))
		return elem
	}
}

// coerceValue converts a caller-supplied value for def into the type the
// bag stores, so update requests can be rendered with the field's codec.
func coerceValue(def fieldDef, v any) (any, error) {
	switch def.kind {
	case stringField:
		switch s := v.(type) {
		case string:
			return s, nil
		case fmt.Stringer:
			return s.String(), nil
		}
		if s, ok := enumString(v); ok {
			return s, nil
		}
	case boolField:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case intField:
		if n, ok := toInt(v); ok {
			return n, nil
		}
	case dateTimeField:
		if d, ok := toDateTime(v); ok {
			return d, nil
		}
	case itemIDField:
		if id, ok := v.(ItemID); ok {
			return id, nil
		}
	case bodyField:
		switch b := v.(type) {
		case Body:
			return b.withDefaults(), nil
		case string:
			return NewBody(b), nil
		}
	case stringListField:
		if l, ok := v.([]string); ok {
			return l, nil
		}
	case rightsField:
		if r, ok := v.(EffectiveRights); ok {
			return r, nil
		}
	case flagField:
		if f, ok := v.(Flag); ok {
			return f, nil
		}
	case mailboxField:
		if m, ok := v.(Mailbox); ok {
			return m, nil
		}
	case mailboxListField:
		if l, ok := v.([]Mailbox); ok {
			return l, nil
		}
	case entriesField:
		if l, ok := v.([]Entry); ok {
			return l, nil
		}
	}
	return nil, fmt.Errorf("ews: value of type %T cannot be stored in %s", v, def.name)
}

// enumString accepts the package's typed string enumerations.
func enumString(v any) (string, bool) {
	switch e := v.(type) {
	case Sensitivity:
		return string(e), true
	case Importance:
		return string(e), true
	case TaskStatus:
		return string(e), true
	case LegacyFreeBusyStatus:
		return string(e), true
	case CalendarItemType:
		return string(e), true
	case ResponseType:
		return string(e), true
	case FlagStatus:
		return string(e), true
	case BodyType:
		return string(e), true
	}
	return "", false
}
