package ews

import "github.com/beevik/etree"

var calendarSchema = newSchema("calendar",
	fieldDef{name: "UID", kind: stringField},
	fieldDef{name: "DateTimeStamp", kind: dateTimeField},
	fieldDef{name: "Start", kind: dateTimeField},
	fieldDef{name: "End", kind: dateTimeField},
	fieldDef{name: "OriginalStart", kind: dateTimeField, readOnly: true},
	fieldDef{name: "IsAllDayEvent", kind: boolField},
	fieldDef{name: "LegacyFreeBusyStatus", kind: stringField},
	fieldDef{name: "Location", kind: stringField},
	fieldDef{name: "When", kind: stringField},
	fieldDef{name: "IsMeeting", kind: boolField, readOnly: true},
	fieldDef{name: "IsCancelled", kind: boolField, readOnly: true},
	fieldDef{name: "IsRecurring", kind: boolField, readOnly: true},
	fieldDef{name: "MeetingRequestWasSent", kind: boolField, readOnly: true},
	fieldDef{name: "IsResponseRequested", kind: boolField},
	fieldDef{name: "CalendarItemType", kind: stringField, readOnly: true},
	fieldDef{name: "MyResponseType", kind: stringField, readOnly: true},
	fieldDef{name: "Organizer", kind: mailboxField, readOnly: true},
	fieldDef{name: "Duration", kind: stringField, readOnly: true},
	fieldDef{name: "TimeZone", kind: stringField, readOnly: true},
	fieldDef{name: "AppointmentSequenceNumber", kind: intField, readOnly: true},
	fieldDef{name: "AppointmentState", kind: intField, readOnly: true},
	fieldDef{name: "ConferenceType", kind: intField},
	fieldDef{name: "AllowNewTimeProposal", kind: boolField},
	fieldDef{name: "IsOnlineMeeting", kind: boolField},
	fieldDef{name: "MeetingWorkspaceUrl", kind: stringField},
	fieldDef{name: "NetShowUrl", kind: stringField},
)

// CalendarItem is an appointment or meeting.
type CalendarItem struct {
	ItemBase
	cal propertyBag
}

// NewCalendarItem returns a transient calendar item with no fields set.
func NewCalendarItem() *CalendarItem { return &CalendarItem{} }

func (*CalendarItem) Kind() ItemKind                     { return KindCalendarItem }
func (c *CalendarItem) Base() *ItemBase                  { return &c.ItemBase }
func (c *CalendarItem) ToXML() *etree.Element            { return encodeItem(c, false) }
func (c *CalendarItem) variant() (*propertyBag, *schema) { return &c.cal, calendarSchema }

func (c *CalendarItem) Has(p PropertyPath) bool { return hasField(c, p) }

// UID is the iCalendar UID shared by all copies of a meeting.
func (c *CalendarItem) UID() string     { return getField[string](&c.cal, "UID") }
func (c *CalendarItem) SetUID(s string) { c.cal.set("UID", s) }

// DateTimeStamp is when the meeting request was last stamped. Server-set.
func (c *CalendarItem) DateTimeStamp() DateTime     { return getField[DateTime](&c.cal, "DateTimeStamp") }
func (c *CalendarItem) SetDateTimeStamp(d DateTime) { c.cal.set("DateTimeStamp", d) }

func (c *CalendarItem) Start() DateTime     { return getField[DateTime](&c.cal, "Start") }
func (c *CalendarItem) SetStart(d DateTime) { c.cal.set("Start", d) }

func (c *CalendarItem) End() DateTime     { return getField[DateTime](&c.cal, "End") }
func (c *CalendarItem) SetEnd(d DateTime) { c.cal.set("End", d) }

// OriginalStart is the scheduled start of a recurrence instance before any change.
func (c *CalendarItem) OriginalStart() DateTime     { return getField[DateTime](&c.cal, "OriginalStart") }
func (c *CalendarItem) SetOriginalStart(d DateTime) { c.cal.set("OriginalStart", d) }

func (c *CalendarItem) IsAllDayEvent() bool     { return getField[bool](&c.cal, "IsAllDayEvent") }
func (c *CalendarItem) SetIsAllDayEvent(v bool) { c.cal.set("IsAllDayEvent", v) }

// LegacyFreeBusyStatus is how the item shows on the owner's free/busy schedule.
func (c *CalendarItem) LegacyFreeBusyStatus() LegacyFreeBusyStatus {
	return LegacyFreeBusyStatus(getField[string](&c.cal, "LegacyFreeBusyStatus"))
}
func (c *CalendarItem) SetLegacyFreeBusyStatus(s LegacyFreeBusyStatus) {
	c.cal.set("LegacyFreeBusyStatus", string(s))
}

func (c *CalendarItem) Location() string     { return getField[string](&c.cal, "Location") }
func (c *CalendarItem) SetLocation(s string) { c.cal.set("Location", s) }

// When is a free-text description of the meeting time.
func (c *CalendarItem) When() string     { return getField[string](&c.cal, "When") }
func (c *CalendarItem) SetWhen(s string) { c.cal.set("When", s) }

func (c *CalendarItem) IsMeeting() bool     { return getField[bool](&c.cal, "IsMeeting") }
func (c *CalendarItem) SetIsMeeting(v bool) { c.cal.set("IsMeeting", v) }

func (c *CalendarItem) IsCancelled() bool     { return getField[bool](&c.cal, "IsCancelled") }
func (c *CalendarItem) SetIsCancelled(v bool) { c.cal.set("IsCancelled", v) }

func (c *CalendarItem) IsRecurring() bool     { return getField[bool](&c.cal, "IsRecurring") }
func (c *CalendarItem) SetIsRecurring(v bool) { c.cal.set("IsRecurring", v) }

// MeetingRequestWasSent reports whether invitations went out. Server-set.
func (c *CalendarItem) MeetingRequestWasSent() bool {
	return getField[bool](&c.cal, "MeetingRequestWasSent")
}
func (c *CalendarItem) SetMeetingRequestWasSent(v bool) { c.cal.set("MeetingRequestWasSent", v) }

func (c *CalendarItem) IsResponseRequested() bool     { return getField[bool](&c.cal, "IsResponseRequested") }
func (c *CalendarItem) SetIsResponseRequested(v bool) { c.cal.set("IsResponseRequested", v) }

// CalendarItemType tells single items from recurring masters, occurrences and exceptions.
func (c *CalendarItem) CalendarItemType() CalendarItemType {
	return CalendarItemType(getField[string](&c.cal, "CalendarItemType"))
}
func (c *CalendarItem) SetCalendarItemType(t CalendarItemType) {
	c.cal.set("CalendarItemType", string(t))
}

// MyResponseType is the mailbox owner's answer to the meeting.
func (c *CalendarItem) MyResponseType() ResponseType {
	return ResponseType(getField[string](&c.cal, "MyResponseType"))
}
func (c *CalendarItem) SetMyResponseType(t ResponseType) { c.cal.set("MyResponseType", string(t)) }

func (c *CalendarItem) Organizer() Mailbox     { return getField[Mailbox](&c.cal, "Organizer") }
func (c *CalendarItem) SetOrganizer(m Mailbox) { c.cal.set("Organizer", m) }

// Duration is an xs:duration such as PT30M.
func (c *CalendarItem) Duration() string     { return getField[string](&c.cal, "Duration") }
func (c *CalendarItem) SetDuration(s string) { c.cal.set("Duration", s) }

// TimeZone is the display name of the time zone Start and End were set in.
func (c *CalendarItem) TimeZone() string     { return getField[string](&c.cal, "TimeZone") }
func (c *CalendarItem) SetTimeZone(s string) { c.cal.set("TimeZone", s) }

// AppointmentSequenceNumber orders updates to a meeting.
func (c *CalendarItem) AppointmentSequenceNumber() int {
	return getField[int](&c.cal, "AppointmentSequenceNumber")
}
func (c *CalendarItem) SetAppointmentSequenceNumber(n int) {
	c.cal.set("AppointmentSequenceNumber", n)
}

// AppointmentState is the bit mask of meeting state flags. Server-set.
func (c *CalendarItem) AppointmentState() int     { return getField[int](&c.cal, "AppointmentState") }
func (c *CalendarItem) SetAppointmentState(n int) { c.cal.set("AppointmentState", n) }

// ConferenceType is 0 for NetMeeting, 1 for NetShow and 2 for Chat.
func (c *CalendarItem) ConferenceType() int     { return getField[int](&c.cal, "ConferenceType") }
func (c *CalendarItem) SetConferenceType(n int) { c.cal.set("ConferenceType", n) }

func (c *CalendarItem) AllowNewTimeProposal() bool     { return getField[bool](&c.cal, "AllowNewTimeProposal") }
func (c *CalendarItem) SetAllowNewTimeProposal(v bool) { c.cal.set("AllowNewTimeProposal", v) }

func (c *CalendarItem) IsOnlineMeeting() bool     { return getField[bool](&c.cal, "IsOnlineMeeting") }
func (c *CalendarItem) SetIsOnlineMeeting(v bool) { c.cal.set("IsOnlineMeeting", v) }

func (c *CalendarItem) MeetingWorkspaceURL() string     { return getField[string](&c.cal, "MeetingWorkspaceUrl") }
func (c *CalendarItem) SetMeetingWorkspaceURL(s string) { c.cal.set("MeetingWorkspaceUrl", s) }

func (c *CalendarItem) NetShowURL() string     { return getField[string](&c.cal, "NetShowUrl") }
func (c *CalendarItem) SetNetShowURL(s string) { c.cal.set("NetShowUrl", s) }
