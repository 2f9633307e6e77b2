package ews

import (
	"strings"

	"github.com/beevik/etree"
)

// PropertyPath names a schema field, e.g. "task:IsComplete". It is used in
// restrictions, update change lists and additional-property shapes and never
// carries a value.
type PropertyPath struct {
	URI string
}

// Element returns the local name of the item child element p addresses.
func (p PropertyPath) Element() string {
	_, name, _ := strings.Cut(p.URI, ":")
	return name
}

func (p PropertyPath) prefix() string {
	prefix, _, _ := strings.Cut(p.URI, ":")
	return prefix
}

func (p PropertyPath) String() string { return p.URI }

// Encode renders p as a t:FieldURI element.
func (p PropertyPath) Encode() *etree.Element {
	elem := etree.NewElement("t:FieldURI")
	elem.CreateAttr("FieldURI", p.URI)
	return elem
}

// DecodePropertyPath reads a t:FieldURI element.
func DecodePropertyPath(elem *etree.Element) (PropertyPath, error) {
	if elem.Tag != "FieldURI" {
		return PropertyPath{}, malformed(elem.Tag, "expected FieldURI")
	}
	uri := elem.SelectAttrValue("FieldURI", "")
	if !strings.Contains(uri, ":") {
		return PropertyPath{}, malformed(elem.Tag, "invalid FieldURI %s", quote(uri))
	}
	return PropertyPath{URI: uri}, nil
}

// ItemPath addresses the fields every item has.
var ItemPath = struct {
	ItemID, ParentFolderID, ItemClass, Subject, Sensitivity, Body             PropertyPath
	DateTimeReceived, Size, Categories, Importance, InReplyTo                 PropertyPath
	IsSubmitted, IsDraft, IsFromMe, IsResend, IsUnmodified                    PropertyPath
	DateTimeSent, DateTimeCreated, ReminderDueBy, ReminderIsSet               PropertyPath
	ReminderMinutesBeforeStart, DisplayCc, DisplayTo, HasAttachments, Culture PropertyPath
	EffectiveRights, LastModifiedName, LastModifiedTime, IsAssociated, Flag   PropertyPath
	InstanceKey                                                               PropertyPath
}{
	ItemID:                     itemSchema.path("ItemId"),
	ParentFolderID:             itemSchema.path("ParentFolderId"),
	ItemClass:                  itemSchema.path("ItemClass"),
	Subject:                    itemSchema.path("Subject"),
	Sensitivity:                itemSchema.path("Sensitivity"),
	Body:                       itemSchema.path("Body"),
	DateTimeReceived:           itemSchema.path("DateTimeReceived"),
	Size:                       itemSchema.path("Size"),
	Categories:                 itemSchema.path("Categories"),
	Importance:                 itemSchema.path("Importance"),
	InReplyTo:                  itemSchema.path("InReplyTo"),
	IsSubmitted:                itemSchema.path("IsSubmitted"),
	IsDraft:                    itemSchema.path("IsDraft"),
	IsFromMe:                   itemSchema.path("IsFromMe"),
	IsResend:                   itemSchema.path("IsResend"),
	IsUnmodified:               itemSchema.path("IsUnmodified"),
	DateTimeSent:               itemSchema.path("DateTimeSent"),
	DateTimeCreated:            itemSchema.path("DateTimeCreated"),
	ReminderDueBy:              itemSchema.path("ReminderDueBy"),
	ReminderIsSet:              itemSchema.path("ReminderIsSet"),
	ReminderMinutesBeforeStart: itemSchema.path("ReminderMinutesBeforeStart"),
	DisplayCc:                  itemSchema.path("DisplayCc"),
	DisplayTo:                  itemSchema.path("DisplayTo"),
	HasAttachments:             itemSchema.path("HasAttachments"),
	Culture:                    itemSchema.path("Culture"),
	EffectiveRights:            itemSchema.path("EffectiveRights"),
	LastModifiedName:           itemSchema.path("LastModifiedName"),
	LastModifiedTime:           itemSchema.path("LastModifiedTime"),
	IsAssociated:               itemSchema.path("IsAssociated"),
	Flag:                       itemSchema.path("Flag"),
	InstanceKey:                itemSchema.path("InstanceKey"),
}

// TaskPath addresses task fields.
var TaskPath = struct {
	ActualWork, AssignedTime, BillingInformation, ChangeCount, Companies    PropertyPath
	CompleteDate, Contacts, DelegationState, Delegator, DueDate             PropertyPath
	IsAssignmentEditable, IsComplete, IsRecurring, IsTeamTask, Mileage      PropertyPath
	Owner, PercentComplete, StartDate, Status, StatusDescription, TotalWork PropertyPath
}{
	ActualWork:           taskSchema.path("ActualWork"),
	AssignedTime:         taskSchema.path("AssignedTime"),
	BillingInformation:   taskSchema.path("BillingInformation"),
	ChangeCount:          taskSchema.path("ChangeCount"),
	Companies:            taskSchema.path("Companies"),
	CompleteDate:         taskSchema.path("CompleteDate"),
	Contacts:             taskSchema.path("Contacts"),
	DelegationState:      taskSchema.path("DelegationState"),
	Delegator:            taskSchema.path("Delegator"),
	DueDate:              taskSchema.path("DueDate"),
	IsAssignmentEditable: taskSchema.path("IsAssignmentEditable"),
	IsComplete:           taskSchema.path("IsComplete"),
	IsRecurring:          taskSchema.path("IsRecurring"),
	IsTeamTask:           taskSchema.path("IsTeamTask"),
	Mileage:              taskSchema.path("Mileage"),
	Owner:                taskSchema.path("Owner"),
	PercentComplete:      taskSchema.path("PercentComplete"),
	StartDate:            taskSchema.path("StartDate"),
	Status:               taskSchema.path("Status"),
	StatusDescription:    taskSchema.path("StatusDescription"),
	TotalWork:            taskSchema.path("TotalWork"),
}

// CalendarPath addresses calendar item fields.
var CalendarPath = struct {
	UID, DateTimeStamp, Start, End, OriginalStart, IsAllDayEvent              PropertyPath
	LegacyFreeBusyStatus, Location, When, IsMeeting, IsCancelled, IsRecurring PropertyPath
	MeetingRequestWasSent, IsResponseRequested, CalendarItemType              PropertyPath
	MyResponseType, Organizer, Duration, TimeZone, AppointmentSequenceNumber  PropertyPath
	AppointmentState, ConferenceType, AllowNewTimeProposal, IsOnlineMeeting   PropertyPath
	MeetingWorkspaceURL, NetShowURL                                           PropertyPath
}{
	UID:                       calendarSchema.path("UID"),
	DateTimeStamp:             calendarSchema.path("DateTimeStamp"),
	Start:                     calendarSchema.path("Start"),
	End:                       calendarSchema.path("End"),
	OriginalStart:             calendarSchema.path("OriginalStart"),
	IsAllDayEvent:             calendarSchema.path("IsAllDayEvent"),
	LegacyFreeBusyStatus:      calendarSchema.path("LegacyFreeBusyStatus"),
	Location:                  calendarSchema.path("Location"),
	When:                      calendarSchema.path("When"),
	IsMeeting:                 calendarSchema.path("IsMeeting"),
	IsCancelled:               calendarSchema.path("IsCancelled"),
	IsRecurring:               calendarSchema.path("IsRecurring"),
	MeetingRequestWasSent:     calendarSchema.path("MeetingRequestWasSent"),
	IsResponseRequested:       calendarSchema.path("IsResponseRequested"),
	CalendarItemType:          calendarSchema.path("CalendarItemType"),
	MyResponseType:            calendarSchema.path("MyResponseType"),
	Organizer:                 calendarSchema.path("Organizer"),
	Duration:                  calendarSchema.path("Duration"),
	TimeZone:                  calendarSchema.path("TimeZone"),
	AppointmentSequenceNumber: calendarSchema.path("AppointmentSequenceNumber"),
	AppointmentState:          calendarSchema.path("AppointmentState"),
	ConferenceType:            calendarSchema.path("ConferenceType"),
	AllowNewTimeProposal:      calendarSchema.path("AllowNewTimeProposal"),
	IsOnlineMeeting:           calendarSchema.path("IsOnlineMeeting"),
	MeetingWorkspaceURL:       calendarSchema.path("MeetingWorkspaceUrl"),
	NetShowURL:                calendarSchema.path("NetShowUrl"),
}

// ContactPath addresses contact fields.
var ContactPath = struct {
	FileAs, DisplayName, GivenName, Initials, MiddleName, Nickname, CompanyName PropertyPath
	EmailAddresses, PhoneNumbers, AssistantName, Birthday, BusinessHomePage     PropertyPath
	Children, Companies, Department, Generation, JobTitle, Manager, Mileage     PropertyPath
	OfficeLocation, Profession, SpouseName, Surname, WeddingAnniversary         PropertyPath
}{
	FileAs:             contactSchema.path("FileAs"),
	DisplayName:        contactSchema.path("DisplayName"),
	GivenName:          contactSchema.path("GivenName"),
	Initials:           contactSchema.path("Initials"),
	MiddleName:         contactSchema.path("MiddleName"),
	Nickname:           contactSchema.path("Nickname"),
	CompanyName:        contactSchema.path("CompanyName"),
	EmailAddresses:     contactSchema.path("EmailAddresses"),
	PhoneNumbers:       contactSchema.path("PhoneNumbers"),
	AssistantName:      contactSchema.path("AssistantName"),
	Birthday:           contactSchema.path("Birthday"),
	BusinessHomePage:   contactSchema.path("BusinessHomePage"),
	Children:           contactSchema.path("Children"),
	Companies:          contactSchema.path("Companies"),
	Department:         contactSchema.path("Department"),
	Generation:         contactSchema.path("Generation"),
	JobTitle:           contactSchema.path("JobTitle"),
	Manager:            contactSchema.path("Manager"),
	Mileage:            contactSchema.path("Mileage"),
	OfficeLocation:     contactSchema.path("OfficeLocation"),
	Profession:         contactSchema.path("Profession"),
	SpouseName:         contactSchema.path("SpouseName"),
	Surname:            contactSchema.path("Surname"),
	WeddingAnniversary: contactSchema.path("WeddingAnniversary"),
}

// MessagePath addresses message fields.
var MessagePath = struct {
	Sender, ToRecipients, CcRecipients, BccRecipients             PropertyPath
	IsReadReceiptRequested, IsDeliveryReceiptRequested            PropertyPath
	ConversationIndex, ConversationTopic, From, InternetMessageID PropertyPath
	IsRead, IsResponseRequested, References, ReplyTo              PropertyPath
}{
	Sender:                     messageSchema.path("Sender"),
	ToRecipients:               messageSchema.path("ToRecipients"),
	CcRecipients:               messageSchema.path("CcRecipients"),
	BccRecipients:              messageSchema.path("BccRecipients"),
	IsReadReceiptRequested:     messageSchema.path("IsReadReceiptRequested"),
	IsDeliveryReceiptRequested: messageSchema.path("IsDeliveryReceiptRequested"),
	ConversationIndex:          messageSchema.path("ConversationIndex"),
	ConversationTopic:          messageSchema.path("ConversationTopic"),
	From:                       messageSchema.path("From"),
	InternetMessageID:          messageSchema.path("InternetMessageId"),
	IsRead:                     messageSchema.path("IsRead"),
	IsResponseRequested:        messageSchema.path("IsResponseRequested"),
	References:                 messageSchema.path("References"),
	ReplyTo:                    messageSchema.path("ReplyTo"),
}

// PathOf resolves the child element name of an item of kind k to its
// property path. It reports false for elements the kind does not define.
func PathOf(k ItemKind, element string) (PropertyPath, bool) {
	if _, ok := itemSchema.lookup(element); ok {
		return itemSchema.path(element), true
	}
	it, err := newItemOfKind(k)
	if err != nil {
		return PropertyPath{}, false
	}
	if _, s := it.variant(); s != genericSchema {
		if _, ok := s.lookup(element); ok {
			return s.path(element), true
		}
	}
	return PropertyPath{}, false
}
