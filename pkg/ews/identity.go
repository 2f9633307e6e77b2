package ews

import (
	"github.com/beevik/etree"
)

// ItemID is the opaque identity pair the server assigns to an item. The
// ChangeKey changes on every successful mutation.
//
// An ItemID with an empty ID is a valid in-memory value meaning "no identity
// yet", but operations reject it as an argument.
type ItemID struct {
	ID        string
	ChangeKey string
}

// NewItemID returns an ItemID for id and changeKey.
func NewItemID(id, changeKey string) ItemID {
	return ItemID{ID: id, ChangeKey: changeKey}
}

// IsValid reports whether the id can be used to address an item.
func (i ItemID) IsValid() bool { return i.ID != "" }

// DecodeItemID reads an ItemId-shaped element. Both the Id and ChangeKey
// attributes must be present.
func DecodeItemID(elem *etree.Element) (ItemID, error) {
	id, ck, err := decodeIDPair(elem)
	if err != nil {
		return ItemID{}, err
	}
	return ItemID{ID: id, ChangeKey: ck}, nil
}

// Encode renders the id as an element named tag carrying both attributes.
func (i ItemID) Encode(tag string) *etree.Element {
	elem := etree.NewElement(tag)
	elem.CreateAttr("Id", i.ID)
	elem.CreateAttr("ChangeKey", i.ChangeKey)
	return elem
}

// reference renders the id for use in a request, leaving out an empty
// ChangeKey so the server does not treat it as a stale key.
func (i ItemID) reference() *etree.Element {
	elem := etree.NewElement("t:ItemId")
	elem.CreateAttr("Id", i.ID)
	if i.ChangeKey != "" {
		elem.CreateAttr("ChangeKey", i.ChangeKey)
	}
	return elem
}

func decodeIDPair(elem *etree.Element) (id, changeKey string, err error) {
	idAttr := elem.SelectAttr("Id")
	if idAttr == nil {
		return "", "", malformed(elem.Tag, "missing Id attribute")
	}
	ckAttr := elem.SelectAttr("ChangeKey")
	if ckAttr == nil {
		return "", "", malformed(elem.Tag, "missing ChangeKey attribute")
	}
	return idAttr.Value, ckAttr.Value, nil
}

// BaseFolderID addresses a folder in FindItem and CreateItem requests. It is
// implemented by FolderID and DistinguishedFolderID.
type BaseFolderID interface {
	folderElement() *etree.Element
}

// FolderID is the server-assigned identity of a folder.
type FolderID struct {
	ID        string
	ChangeKey string
}

// DecodeFolderID reads a FolderId-shaped element.
func DecodeFolderID(elem *etree.Element) (FolderID, error) {
	id, ck, err := decodeIDPair(elem)
	if err != nil {
		return FolderID{}, err
	}
	return FolderID{ID: id, ChangeKey: ck}, nil
}

func (f FolderID) folderElement() *etree.Element {
	elem := etree.NewElement("t:FolderId")
	elem.CreateAttr("Id", f.ID)
	if f.ChangeKey != "" {
		elem.CreateAttr("ChangeKey", f.ChangeKey)
	}
	return elem
}

// StandardFolder names a well-known folder.
type StandardFolder string

// Well-known folders.
const (
	FolderCalendar      StandardFolder = "calendar"
	FolderContacts      StandardFolder = "contacts"
	FolderDeletedItems  StandardFolder = "deleteditems"
	FolderDrafts        StandardFolder = "drafts"
	FolderInbox         StandardFolder = "inbox"
	FolderJournal       StandardFolder = "journal"
	FolderNotes         StandardFolder = "notes"
	FolderOutbox        StandardFolder = "outbox"
	FolderSentItems     StandardFolder = "sentitems"
	FolderTasks         StandardFolder = "tasks"
	FolderMsgFolderRoot StandardFolder = "msgfolderroot"
	FolderRoot          StandardFolder = "root"
	FolderJunkEmail     StandardFolder = "junkemail"
	FolderSearchFolders StandardFolder = "searchfolders"
	FolderVoiceMail     StandardFolder = "voicemail"
)

// DistinguishedFolderID addresses a well-known folder, optionally in another
// mailbox.
type DistinguishedFolderID struct {
	Folder  StandardFolder
	Mailbox string
}

// Distinguished returns the DistinguishedFolderID of f in the caller's mailbox.
func Distinguished(f StandardFolder) DistinguishedFolderID {
	return DistinguishedFolderID{Folder: f}
}

// DecodeDistinguishedFolderID reads a DistinguishedFolderId element.
func DecodeDistinguishedFolderID(elem *etree.Element) (DistinguishedFolderID, error) {
	id := elem.SelectAttr("Id")
	if id == nil || id.Value == "" {
		return DistinguishedFolderID{}, malformed(elem.Tag, "missing Id attribute")
	}
	d := DistinguishedFolderID{Folder: StandardFolder(id.Value)}
	if mb := elem.SelectElement("Mailbox"); mb != nil {
		if addr := mb.SelectElement("EmailAddress"); addr != nil {
			d.Mailbox = addr.Text()
		}
	}
	return d, nil
}

func (d DistinguishedFolderID) folderElement() *etree.Element {
	elem := etree.NewElement("t:DistinguishedFolderId")
	elem.CreateAttr("Id", string(d.Folder))
	if d.Mailbox != "" {
		elem.CreateElement("t:Mailbox").CreateElement("t:EmailAddress").SetText(d.Mailbox)
	}
	return elem
}
