package ews

import (
	"errors"
	"strconv"

	"github.com/beevik/etree"
)

// BodyType is the content type of a Body.
type BodyType string

const (
	BodyTypeText BodyType = "Text"
	BodyTypeHTML BodyType = "HTML"
)

// Body is the text of an item plus its content type.
type Body struct {
	Text        string
	Type        BodyType
	IsTruncated bool
}

// NewBody returns a plain-text body.
func NewBody(text string) Body {
	return Body{Text: text, Type: BodyTypeText}
}

// withDefaults returns b with an empty Type set to Text, the type the body
// is sent with.
func (b Body) withDefaults() Body {
	if b.Type == "" {
		b.Type = BodyTypeText
	}
	return b
}

func decodeBody(elem *etree.Element) (Body, error) {
	b := Body{Text: elem.Text(), Type: BodyType(elem.SelectAttrValue("BodyType", ""))}
	if b.Type == "" {
		return Body{}, malformed(elem.Tag, "missing BodyType attribute")
	}
	if attr := elem.SelectAttr("IsTruncated"); attr != nil {
		v, err := parseBool(elem.Tag, attr.Value)
		if err != nil {
			return Body{}, err
		}
		b.IsTruncated = v
	}
	return b, nil
}

func (b Body) encode(tag string) *etree.Element {
	elem := etree.NewElement(tag)
	elem.CreateAttr("BodyType", string(b.withDefaults().Type))
	if b.IsTruncated {
		elem.CreateAttr("IsTruncated", "true")
	}
	elem.SetText(b.Text)
	return elem
}

// Mailbox identifies a mail-enabled recipient.
type Mailbox struct {
	Name         string
	EmailAddress string
	RoutingType  string
	MailboxType  string
}

func decodeMailbox(elem *etree.Element) Mailbox {
	var m Mailbox
	for _, c := range elem.ChildElements() {
		switch c.Tag {
		case "Name":
			m.Name = c.Text()
		case "EmailAddress":
			m.EmailAddress = c.Text()
		case "RoutingType":
			m.RoutingType = c.Text()
		case "MailboxType":
			m.MailboxType = c.Text()
		}
	}
	return m
}

func (m Mailbox) encode() *etree.Element {
	elem := etree.NewElement("t:Mailbox")
	if m.Name != "" {
		elem.CreateElement("t:Name").SetText(m.Name)
	}
	if m.EmailAddress != "" {
		elem.CreateElement("t:EmailAddress").SetText(m.EmailAddress)
	}
	if m.RoutingType != "" {
		elem.CreateElement("t:RoutingType").SetText(m.RoutingType)
	}
	if m.MailboxType != "" {
		elem.CreateElement("t:MailboxType").SetText(m.MailboxType)
	}
	return elem
}

// EffectiveRights are the caller's permissions on an item.
type EffectiveRights struct {
	CreateAssociated bool
	CreateContents   bool
	CreateHierarchy  bool
	Delete           bool
	Modify           bool
	Read             bool
	ViewPrivateItems bool
}

func (r *EffectiveRights) flags() []struct {
	name string
	v    *bool
} {
	return []struct {
		name string
		v    *bool
	}{
		{"CreateAssociated", &r.CreateAssociated},
		{"CreateContents", &r.CreateContents},
		{"CreateHierarchy", &r.CreateHierarchy},
		{"Delete", &r.Delete},
		{"Modify", &r.Modify},
		{"Read", &r.Read},
		{"ViewPrivateItems", &r.ViewPrivateItems},
	}
}

func decodeEffectiveRights(elem *etree.Element) (EffectiveRights, error) {
	var r EffectiveRights
	for _, f := range r.flags() {
		c := elem.SelectElement(f.name)
		if c == nil {
			continue
		}
		v, err := parseBool(c.Tag, c.Text())
		if err != nil {
			return EffectiveRights{}, err
		}
		*f.v = v
	}
	return r, nil
}

func (r EffectiveRights) encode(tag string) *etree.Element {
	elem := etree.NewElement(tag)
	for _, f := range r.flags() {
		elem.CreateElement("t:" + f.name).SetText(formatBool(*f.v))
	}
	return elem
}

// FlagStatus is the follow-up state of an item.
type FlagStatus string

const (
	FlagNotFlagged FlagStatus = "NotFlagged"
	FlagFlagged    FlagStatus = "Flagged"
	FlagComplete   FlagStatus = "Complete"
)

// Flag is the follow-up flag block of an item.
type Flag struct {
	Status       FlagStatus
	StartDate    DateTime
	DueDate      DateTime
	CompleteDate DateTime
}

func decodeFlag(elem *etree.Element) (Flag, error) {
	var f Flag
	for _, c := range elem.ChildElements() {
		var err error
		switch c.Tag {
		case "FlagStatus":
			f.Status = FlagStatus(c.Text())
		case "StartDate":
			f.StartDate, err = DecodeDateTime(c)
		case "DueDate":
			f.DueDate, err = DecodeDateTime(c)
		case "CompleteDate":
			f.CompleteDate, err = DecodeDateTime(c)
		}
		if err != nil {
			return Flag{}, err
		}
	}
	return f, nil
}

func (f Flag) encode(tag string) *etree.Element {
	elem := etree.NewElement(tag)
	elem.CreateElement("t:FlagStatus").SetText(string(f.Status))
	if !f.StartDate.IsZero() {
		elem.AddChild(f.StartDate.Encode("t:StartDate"))
	}
	if !f.DueDate.IsZero() {
		elem.AddChild(f.DueDate.Encode("t:DueDate"))
	}
	if !f.CompleteDate.IsZero() {
		elem.AddChild(f.CompleteDate.Encode("t:CompleteDate"))
	}
	return elem
}

// Entry is one keyed value of a dictionary property such as a contact's
// EmailAddresses or PhoneNumbers.
type Entry struct {
	Key   string
	Value string
}

// Sensitivity of an item.
type Sensitivity string

const (
	SensitivityNormal       Sensitivity = "Normal"
	SensitivityPersonal     Sensitivity = "Personal"
	SensitivityPrivate      Sensitivity = "Private"
	SensitivityConfidential Sensitivity = "Confidential"
)

// Importance of an item.
type Importance string

const (
	ImportanceLow    Importance = "Low"
	ImportanceNormal Importance = "Normal"
	ImportanceHigh   Importance = "High"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskNotStarted      TaskStatus = "NotStarted"
	TaskInProgress      TaskStatus = "InProgress"
	TaskCompleted       TaskStatus = "Completed"
	TaskWaitingOnOthers TaskStatus = "WaitingOnOthers"
	TaskDeferred        TaskStatus = "Deferred"
)

// LegacyFreeBusyStatus is how a calendar item shows on a schedule.
type LegacyFreeBusyStatus string

const (
	FreeBusyFree             LegacyFreeBusyStatus = "Free"
	FreeBusyTentative        LegacyFreeBusyStatus = "Tentative"
	FreeBusyBusy             LegacyFreeBusyStatus = "Busy"
	FreeBusyOOF              LegacyFreeBusyStatus = "OOF"
	FreeBusyWorkingElsewhere LegacyFreeBusyStatus = "WorkingElsewhere"
	FreeBusyNoData           LegacyFreeBusyStatus = "NoData"
)

// CalendarItemType distinguishes single, recurring and exceptional occurrences.
type CalendarItemType string

const (
	CalendarSingle          CalendarItemType = "Single"
	CalendarOccurrence      CalendarItemType = "Occurrence"
	CalendarException       CalendarItemType = "Exception"
	CalendarRecurringMaster CalendarItemType = "RecurringMaster"
)

// ResponseType is an attendee's answer to a meeting request.
type ResponseType string

const (
	ResponseUnknown            ResponseType = "Unknown"
	ResponseOrganizer          ResponseType = "Organizer"
	ResponseTentative          ResponseType = "Tentative"
	ResponseAccept             ResponseType = "Accept"
	ResponseDecline            ResponseType = "Decline"
	ResponseNoResponseReceived ResponseType = "NoResponseReceived"
)

func parseBool(element, s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, malformed(element, "invalid boolean %s", quote(s))
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseInt(element, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed(element, "invalid integer %s", quote(s))
	}
	return n, nil
}

func quote(s string) string { return strconv.Quote(s) }

func asDecodeError(err error, target **DecodeError) bool {
	return errors.As(err, target)
}
