package ews

import (
	"github.com/beevik/etree"
	"golang.org/x/text/language"
)

// ItemKind is the tag of an item variant. Its value is the element name the
// variant uses on the wire.
type ItemKind string

const (
	KindItem         ItemKind = "Item"
	KindTask         ItemKind = "Task"
	KindCalendarItem ItemKind = "CalendarItem"
	KindContact      ItemKind = "Contact"
	KindMessage      ItemKind = "Message"
)

// Item is the closed set of item variants: *GenericItem, *Task,
// *CalendarItem, *Contact and *Message. Use a type switch to branch on the
// variant.
type Item interface {
	// Kind returns the variant tag.
	Kind() ItemKind
	// Base returns the fields every variant shares.
	Base() *ItemBase
	// ToXML renders the present fields in schema order.
	ToXML() *etree.Element

	variant() (*propertyBag, *schema)
}

var itemSchema = newSchema("item",
	fieldDef{name: "ItemId", kind: itemIDField, readOnly: true},
	fieldDef{name: "ParentFolderId", kind: itemIDField, readOnly: true},
	fieldDef{name: "ItemClass", kind: stringField},
	fieldDef{name: "Subject", kind: stringField},
	fieldDef{name: "Sensitivity", kind: stringField},
	fieldDef{name: "Body", kind: bodyField},
	fieldDef{name: "DateTimeReceived", kind: dateTimeField, readOnly: true},
	fieldDef{name: "Size", kind: intField, readOnly: true},
	fieldDef{name: "Categories", kind: stringListField},
	fieldDef{name: "Importance", kind: stringField},
	fieldDef{name: "InReplyTo", kind: stringField},
	fieldDef{name: "IsSubmitted", kind: boolField, readOnly: true},
	fieldDef{name: "IsDraft", kind: boolField, readOnly: true},
	fieldDef{name: "IsFromMe", kind: boolField, readOnly: true},
	fieldDef{name: "IsResend", kind: boolField, readOnly: true},
	fieldDef{name: "IsUnmodified", kind: boolField, readOnly: true},
	fieldDef{name: "DateTimeSent", kind: dateTimeField, readOnly: true},
	fieldDef{name: "DateTimeCreated", kind: dateTimeField, readOnly: true},
	fieldDef{name: "ReminderDueBy", kind: dateTimeField},
	fieldDef{name: "ReminderIsSet", kind: boolField},
	fieldDef{name: "ReminderMinutesBeforeStart", kind: intField},
	fieldDef{name: "DisplayCc", kind: stringField, readOnly: true},
	fieldDef{name: "DisplayTo", kind: stringField, readOnly: true},
	fieldDef{name: "HasAttachments", kind: boolField, readOnly: true},
	fieldDef{name: "Culture", kind: stringField},
	fieldDef{name: "EffectiveRights", kind: rightsField, readOnly: true},
	fieldDef{name: "LastModifiedName", kind: stringField, readOnly: true},
	fieldDef{name: "LastModifiedTime", kind: dateTimeField, readOnly: true},
	fieldDef{name: "IsAssociated", kind: boolField, readOnly: true},
	fieldDef{name: "Flag", kind: flagField},
	fieldDef{name: "InstanceKey", kind: stringField, readOnly: true},
)

// ItemBase holds the fields shared by every item variant. Getters of unset
// fields return the zero value; use Has to tell "unset" from "set to zero".
type ItemBase struct {
	props propertyBag
}

// Has reports whether the field addressed by p is present on the item.
func (b *ItemBase) Has(p PropertyPath) bool {
	return p.prefix() == itemSchema.uriPrefix && b.props.has(p.Element())
}

// ItemID returns the server identity, or the zero ItemID for a transient item.
func (b *ItemBase) ItemID() ItemID { return getField[ItemID](&b.props, "ItemId") }

// SetItemID sets the server identity.
func (b *ItemBase) SetItemID(id ItemID) { b.props.set("ItemId", id) }

// ParentFolderID identifies the folder holding the item. Server-set.
func (b *ItemBase) ParentFolderID() ItemID  { return getField[ItemID](&b.props, "ParentFolderId") }
func (b *ItemBase) SetParentFolderID(id ItemID) { b.props.set("ParentFolderId", id) }

// ItemClass is the message class, e.g. IPM.Task.
func (b *ItemBase) ItemClass() string     { return getField[string](&b.props, "ItemClass") }
func (b *ItemBase) SetItemClass(c string) { b.props.set("ItemClass", c) }

// Subject is the item title shown in folder views.
func (b *ItemBase) Subject() string     { return getField[string](&b.props, "Subject") }
func (b *ItemBase) SetSubject(s string) { b.props.set("Subject", s) }

// Sensitivity is the privacy marking: Normal, Personal, Private or Confidential.
func (b *ItemBase) Sensitivity() Sensitivity {
	return Sensitivity(getField[string](&b.props, "Sensitivity"))
}
func (b *ItemBase) SetSensitivity(s Sensitivity) { b.props.set("Sensitivity", string(s)) }

// Body is the item's text and its content type.
func (b *ItemBase) Body() Body { return getField[Body](&b.props, "Body") }

// SetBody sets the body. An empty Type is stored as Text.
func (b *ItemBase) SetBody(body Body) { b.props.set("Body", body.withDefaults()) }

// DateTimeReceived is when the item arrived in the mailbox. Server-set.
func (b *ItemBase) DateTimeReceived() DateTime     { return getField[DateTime](&b.props, "DateTimeReceived") }
func (b *ItemBase) SetDateTimeReceived(d DateTime) { b.props.set("DateTimeReceived", d) }

// Size is the item size in bytes as reported by the server.
func (b *ItemBase) Size() int     { return getField[int](&b.props, "Size") }
func (b *ItemBase) SetSize(n int) { b.props.set("Size", n) }

// Categories returns a copy of the item's category labels.
func (b *ItemBase) Categories() []string     { return getList[string](&b.props, "Categories") }
func (b *ItemBase) SetCategories(c []string) { setList(&b.props, "Categories", c) }

// Importance is Low, Normal or High.
func (b *ItemBase) Importance() Importance {
	return Importance(getField[string](&b.props, "Importance"))
}
func (b *ItemBase) SetImportance(i Importance) { b.props.set("Importance", string(i)) }

// InReplyTo is the Internet message id this item answers.
func (b *ItemBase) InReplyTo() string     { return getField[string](&b.props, "InReplyTo") }
func (b *ItemBase) SetInReplyTo(s string) { b.props.set("InReplyTo", s) }

// IsSubmitted reports whether a message has been handed to the outbox.
func (b *ItemBase) IsSubmitted() bool     { return getField[bool](&b.props, "IsSubmitted") }
func (b *ItemBase) SetIsSubmitted(v bool) { b.props.set("IsSubmitted", v) }

func (b *ItemBase) IsDraft() bool     { return getField[bool](&b.props, "IsDraft") }
func (b *ItemBase) SetIsDraft(v bool) { b.props.set("IsDraft", v) }

// IsFromMe reports whether the mailbox owner sent the item to themselves.
func (b *ItemBase) IsFromMe() bool     { return getField[bool](&b.props, "IsFromMe") }
func (b *ItemBase) SetIsFromMe(v bool) { b.props.set("IsFromMe", v) }

// IsResend reports whether the item was sent before.
func (b *ItemBase) IsResend() bool     { return getField[bool](&b.props, "IsResend") }
func (b *ItemBase) SetIsResend(v bool) { b.props.set("IsResend", v) }

// IsUnmodified reports whether the item is unchanged since it was sent or received.
func (b *ItemBase) IsUnmodified() bool     { return getField[bool](&b.props, "IsUnmodified") }
func (b *ItemBase) SetIsUnmodified(v bool) { b.props.set("IsUnmodified", v) }

func (b *ItemBase) DateTimeSent() DateTime     { return getField[DateTime](&b.props, "DateTimeSent") }
func (b *ItemBase) SetDateTimeSent(d DateTime) { b.props.set("DateTimeSent", d) }

// DateTimeCreated is when the item was stored. Server-set.
func (b *ItemBase) DateTimeCreated() DateTime     { return getField[DateTime](&b.props, "DateTimeCreated") }
func (b *ItemBase) SetDateTimeCreated(d DateTime) { b.props.set("DateTimeCreated", d) }

// ReminderDueBy is when the reminder fires.
func (b *ItemBase) ReminderDueBy() DateTime     { return getField[DateTime](&b.props, "ReminderDueBy") }
func (b *ItemBase) SetReminderDueBy(d DateTime) { b.props.set("ReminderDueBy", d) }

// ReminderEnabled reports the ReminderIsSet field.
func (b *ItemBase) ReminderEnabled() bool     { return getField[bool](&b.props, "ReminderIsSet") }
func (b *ItemBase) SetReminderEnabled(v bool) { b.props.set("ReminderIsSet", v) }

// ReminderMinutesBeforeStart is the reminder lead time for calendar items.
func (b *ItemBase) ReminderMinutesBeforeStart() int {
	return getField[int](&b.props, "ReminderMinutesBeforeStart")
}
func (b *ItemBase) SetReminderMinutesBeforeStart(n int) {
	b.props.set("ReminderMinutesBeforeStart", n)
}

// DisplayCc is the server-rendered list of Cc recipient names.
func (b *ItemBase) DisplayCc() string     { return getField[string](&b.props, "DisplayCc") }
func (b *ItemBase) SetDisplayCc(s string) { b.props.set("DisplayCc", s) }

// DisplayTo is the server-rendered list of To recipient names.
func (b *ItemBase) DisplayTo() string     { return getField[string](&b.props, "DisplayTo") }
func (b *ItemBase) SetDisplayTo(s string) { b.props.set("DisplayTo", s) }

func (b *ItemBase) HasAttachments() bool     { return getField[bool](&b.props, "HasAttachments") }
func (b *ItemBase) SetHasAttachments(v bool) { b.props.set("HasAttachments", v) }

// Culture is the raw culture text, e.g. "en-US".
func (b *ItemBase) Culture() string { return getField[string](&b.props, "Culture") }

// CultureTag parses Culture as a BCP 47 language tag.
func (b *ItemBase) CultureTag() (language.Tag, error) {
	return language.Parse(b.Culture())
}

// SetCulture stores the canonical form of tag.
func (b *ItemBase) SetCulture(tag language.Tag) { b.props.set("Culture", tag.String()) }

// EffectiveRights is what the caller may do with the item. Server-set.
func (b *ItemBase) EffectiveRights() EffectiveRights {
	return getField[EffectiveRights](&b.props, "EffectiveRights")
}
func (b *ItemBase) SetEffectiveRights(r EffectiveRights) { b.props.set("EffectiveRights", r) }

// LastModifiedName is the display name of the last editor. Server-set.
func (b *ItemBase) LastModifiedName() string     { return getField[string](&b.props, "LastModifiedName") }
func (b *ItemBase) SetLastModifiedName(s string) { b.props.set("LastModifiedName", s) }

// LastModifiedTime is when the item last changed. Server-set.
func (b *ItemBase) LastModifiedTime() DateTime     { return getField[DateTime](&b.props, "LastModifiedTime") }
func (b *ItemBase) SetLastModifiedTime(d DateTime) { b.props.set("LastModifiedTime", d) }

// IsAssociated reports whether the item is hidden folder-associated data.
func (b *ItemBase) IsAssociated() bool     { return getField[bool](&b.props, "IsAssociated") }
func (b *ItemBase) SetIsAssociated(v bool) { b.props.set("IsAssociated", v) }

// Flag is the follow-up flag.
func (b *ItemBase) Flag() Flag     { return getField[Flag](&b.props, "Flag") }
func (b *ItemBase) SetFlag(f Flag) { b.props.set("Flag", f) }

// InstanceKey identifies the item within one search result. Server-set.
func (b *ItemBase) InstanceKey() string     { return getField[string](&b.props, "InstanceKey") }
func (b *ItemBase) SetInstanceKey(s string) { b.props.set("InstanceKey", s) }

// GenericItem is an item of no more specific variant.
type GenericItem struct {
	ItemBase
	ext propertyBag
}

// NewItem returns an empty GenericItem.
func NewItem() *GenericItem { return &GenericItem{} }

func (*GenericItem) Kind() ItemKind                     { return KindItem }
func (g *GenericItem) Base() *ItemBase                  { return &g.ItemBase }
func (g *GenericItem) ToXML() *etree.Element            { return encodeItem(g, false) }
func (g *GenericItem) variant() (*propertyBag, *schema) { return &g.ext, genericSchema }

var genericSchema = newSchema("item")

// ParseItem decodes an item element, choosing the variant from the element
// name. Children the variant does not know are ignored.
func ParseItem(elem *etree.Element) (Item, error) {
	it, err := newItemOfKind(ItemKind(elem.Tag))
	if err != nil {
		return nil, err
	}
	if err := decodeInto(&it.Base().props, itemSchema, elem); err != nil {
		return nil, err
	}
	bag, s := it.variant()
	if err := decodeInto(bag, s, elem); err != nil {
		return nil, err
	}
	return it, nil
}

// parseIdentifiedItem is ParseItem for contexts where the server must have
// sent the item's identity.
func parseIdentifiedItem(elem *etree.Element) (Item, error) {
	if elem.SelectElement("ItemId") == nil {
		return nil, missing("ItemId", elem.Tag)
	}
	return ParseItem(elem)
}

func newItemOfKind(k ItemKind) (Item, error) {
	switch k {
	case KindItem:
		return NewItem(), nil
	case KindTask:
		return NewTask(), nil
	case KindCalendarItem:
		return NewCalendarItem(), nil
	case KindContact:
		return NewContact(), nil
	case KindMessage:
		return NewMessage(), nil
	}
	return nil, malformed(string(k), "unknown item type")
}

func encodeItem(it Item, forCreate bool) *etree.Element {
	elem := etree.NewElement("t:" + string(it.Kind()))
	encodeFrom(elem, &it.Base().props, itemSchema, forCreate)
	bag, s := it.variant()
	encodeFrom(elem, bag, s, forCreate)
	return elem
}

// hasField reports presence of p on either record of it.
func hasField(it Item, p PropertyPath) bool {
	if it.Base().Has(p) {
		return true
	}
	bag, s := it.variant()
	return p.prefix() == s.uriPrefix && bag.has(p.Element())
}

// lookupField resolves p against the common fields and the variant of it.
func lookupField(it Item, p PropertyPath) (fieldDef, bool) {
	switch _, s := it.variant(); p.prefix() {
	case itemSchema.uriPrefix:
		return itemSchema.lookup(p.Element())
	case s.uriPrefix:
		return s.lookup(p.Element())
	}
	return fieldDef{}, false
}

// reset returns it to the state of a newly constructed item. Only the delete
// operations call it.
func reset(it Item) {
	*it.Base() = ItemBase{}
	bag, _ := it.variant()
	*bag = propertyBag{}
}

// isEmpty reports whether no field at all is present.
func isEmpty(it Item) bool {
	bag, _ := it.variant()
	return it.Base().props.len() == 0 && bag.len() == 0
}
