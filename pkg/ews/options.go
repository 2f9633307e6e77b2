package ews

// BaseShape selects the default property set returned for items.
type BaseShape string

const (
	ShapeIDOnly        BaseShape = "IdOnly"
	ShapeDefault       BaseShape = "Default"
	ShapeAllProperties BaseShape = "AllProperties"
)

// DeleteType selects how DeleteItem removes an item.
type DeleteType string

const (
	HardDelete         DeleteType = "HardDelete"
	SoftDelete         DeleteType = "SoftDelete"
	MoveToDeletedItems DeleteType = "MoveToDeletedItems"
)

// AffectedTaskOccurrences selects which occurrences of a recurring task a
// delete applies to.
type AffectedTaskOccurrences string

const (
	AllOccurrences          AffectedTaskOccurrences = "AllOccurrences"
	SpecifiedOccurrenceOnly AffectedTaskOccurrences = "SpecifiedOccurrenceOnly"
)

// MeetingNotice selects whether attendees are notified when a calendar item is
// created, updated or deleted.
type MeetingNotice string

const (
	SendToNone           MeetingNotice = "SendToNone"
	SendOnlyToAll        MeetingNotice = "SendOnlyToAll"
	SendOnlyToChanged    MeetingNotice = "SendOnlyToChanged"
	SendToAllAndSaveCopy MeetingNotice = "SendToAllAndSaveCopy"
)

// MessageDisposition selects whether created or updated messages are sent.
type MessageDisposition string

const (
	SaveOnly        MessageDisposition = "SaveOnly"
	SendOnly        MessageDisposition = "SendOnly"
	SendAndSaveCopy MessageDisposition = "SendAndSaveCopy"
)

// ConflictResolution selects how UpdateItem handles a stale ChangeKey.
type ConflictResolution string

const (
	NeverOverwrite  ConflictResolution = "NeverOverwrite"
	AutoResolve     ConflictResolution = "AutoResolve"
	AlwaysOverwrite ConflictResolution = "AlwaysOverwrite"
)

// Traversal selects how deep FindItem searches.
type Traversal string

const (
	Shallow     Traversal = "Shallow"
	SoftDeleted Traversal = "SoftDeleted"
	Associated  Traversal = "Associated"
)

type callOptions struct {
	shape              BaseShape
	additional         []PropertyPath
	messageDisposition MessageDisposition
	invitations        MeetingNotice
	cancellations      MeetingNotice
	conflict           ConflictResolution
	savedFolder        BaseFolderID
	traversal          Traversal
	paged              bool
	maxEntries         int
	offset             int
}

// CallOption adjusts a single operation call. Options that do not apply to
// an operation are ignored by it.
type CallOption func(*callOptions)

// WithShape overrides the base shape for get and find.
func WithShape(shape BaseShape) CallOption {
	return func(o *callOptions) { o.shape = shape }
}

// WithAdditionalProperties requests fields beyond the base shape.
func WithAdditionalProperties(paths ...PropertyPath) CallOption {
	return func(o *callOptions) { o.additional = append(o.additional, paths...) }
}

// WithMessageDisposition applies to creating and updating messages. The
// default is SaveOnly.
func WithMessageDisposition(d MessageDisposition) CallOption {
	return func(o *callOptions) { o.messageDisposition = d }
}

// WithMeetingInvitations applies to creating and updating calendar items. The
// default is SendToNone.
func WithMeetingInvitations(n MeetingNotice) CallOption {
	return func(o *callOptions) { o.invitations = n }
}

// WithMeetingCancellations applies to deleting calendar items. The default is
// SendToNone.
func WithMeetingCancellations(n MeetingNotice) CallOption {
	return func(o *callOptions) { o.cancellations = n }
}

// WithConflictResolution applies to updates. The default is AutoResolve.
func WithConflictResolution(c ConflictResolution) CallOption {
	return func(o *callOptions) { o.conflict = c }
}

// WithSavedItemFolder sets the folder created or updated items are saved in.
func WithSavedItemFolder(f BaseFolderID) CallOption {
	return func(o *callOptions) { o.savedFolder = f }
}

// WithTraversal applies to FindItem. The default is Shallow.
func WithTraversal(t Traversal) CallOption {
	return func(o *callOptions) { o.traversal = t }
}

// WithPaging limits FindItem to maxEntries items starting at offset.
func WithPaging(maxEntries, offset int) CallOption {
	return func(o *callOptions) {
		o.paged, o.maxEntries, o.offset = true, maxEntries, offset
	}
}

func (s *Service) callOptions(opts []CallOption) *callOptions {
	o := &callOptions{
		shape:              s.baseShape,
		messageDisposition: SaveOnly,
		invitations:        SendToNone,
		cancellations:      SendToNone,
		conflict:           AutoResolve,
		traversal:          Shallow,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
