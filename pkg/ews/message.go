package ews

import "github.com/beevik/etree"

var messageSchema = newSchema("message",
	fieldDef{name: "Sender", kind: mailboxField},
	fieldDef{name: "ToRecipients", kind: mailboxListField},
	fieldDef{name: "CcRecipients", kind: mailboxListField},
	fieldDef{name: "BccRecipients", kind: mailboxListField},
	fieldDef{name: "IsReadReceiptRequested", kind: boolField},
	fieldDef{name: "IsDeliveryReceiptRequested", kind: boolField},
	fieldDef{name: "ConversationIndex", kind: stringField, readOnly: true},
	fieldDef{name: "ConversationTopic", kind: stringField, readOnly: true},
	fieldDef{name: "From", kind: mailboxField},
	fieldDef{name: "InternetMessageId", kind: stringField},
	fieldDef{name: "IsRead", kind: boolField},
	fieldDef{name: "IsResponseRequested", kind: boolField},
	fieldDef{name: "References", kind: stringField},
	fieldDef{name: "ReplyTo", kind: mailboxListField},
)

// Message is an e-mail message.
type Message struct {
	ItemBase
	msg propertyBag
}

// NewMessage returns a transient message with no fields set.
func NewMessage() *Message { return &Message{} }

func (*Message) Kind() ItemKind                     { return KindMessage }
func (m *Message) Base() *ItemBase                  { return &m.ItemBase }
func (m *Message) ToXML() *etree.Element            { return encodeItem(m, false) }
func (m *Message) variant() (*propertyBag, *schema) { return &m.msg, messageSchema }

func (m *Message) Has(p PropertyPath) bool { return hasField(m, p) }

// Sender is the mailbox that actually sent the message; From may differ when sending on behalf.
func (m *Message) Sender() Mailbox     { return getField[Mailbox](&m.msg, "Sender") }
func (m *Message) SetSender(mb Mailbox) { m.msg.set("Sender", mb) }

func (m *Message) ToRecipients() []Mailbox      { return getList[Mailbox](&m.msg, "ToRecipients") }
func (m *Message) SetToRecipients(r []Mailbox)  { setList(&m.msg, "ToRecipients", r) }
func (m *Message) CcRecipients() []Mailbox      { return getList[Mailbox](&m.msg, "CcRecipients") }
func (m *Message) SetCcRecipients(r []Mailbox)  { setList(&m.msg, "CcRecipients", r) }
func (m *Message) BccRecipients() []Mailbox     { return getList[Mailbox](&m.msg, "BccRecipients") }
func (m *Message) SetBccRecipients(r []Mailbox) { setList(&m.msg, "BccRecipients", r) }

func (m *Message) IsReadReceiptRequested() bool { return getField[bool](&m.msg, "IsReadReceiptRequested") }
func (m *Message) SetIsReadReceiptRequested(v bool) {
	m.msg.set("IsReadReceiptRequested", v)
}

func (m *Message) IsDeliveryReceiptRequested() bool {
	return getField[bool](&m.msg, "IsDeliveryReceiptRequested")
}
func (m *Message) SetIsDeliveryReceiptRequested(v bool) {
	m.msg.set("IsDeliveryReceiptRequested", v)
}

// ConversationIndex is the base64 thread index assigned by the server.
func (m *Message) ConversationIndex() string     { return getField[string](&m.msg, "ConversationIndex") }
func (m *Message) SetConversationIndex(s string) { m.msg.set("ConversationIndex", s) }

func (m *Message) ConversationTopic() string     { return getField[string](&m.msg, "ConversationTopic") }
func (m *Message) SetConversationTopic(s string) { m.msg.set("ConversationTopic", s) }

func (m *Message) From() Mailbox      { return getField[Mailbox](&m.msg, "From") }
func (m *Message) SetFrom(mb Mailbox) { m.msg.set("From", mb) }

// InternetMessageID is the RFC 5322 Message-ID header.
func (m *Message) InternetMessageID() string     { return getField[string](&m.msg, "InternetMessageId") }
func (m *Message) SetInternetMessageID(s string) { m.msg.set("InternetMessageId", s) }

func (m *Message) IsRead() bool     { return getField[bool](&m.msg, "IsRead") }
func (m *Message) SetIsRead(v bool) { m.msg.set("IsRead", v) }

func (m *Message) IsResponseRequested() bool     { return getField[bool](&m.msg, "IsResponseRequested") }
func (m *Message) SetIsResponseRequested(v bool) { m.msg.set("IsResponseRequested", v) }

// References is the RFC 5322 References header.
func (m *Message) References() string     { return getField[string](&m.msg, "References") }
func (m *Message) SetReferences(s string) { m.msg.set("References", s) }

func (m *Message) ReplyTo() []Mailbox     { return getList[Mailbox](&m.msg, "ReplyTo") }
func (m *Message) SetReplyTo(r []Mailbox) { setList(&m.msg, "ReplyTo", r) }
