package ewstest

import (
	"context"
	"strconv"

	"github.com/beevik/etree"
	"github.com/getmockd/ews/internal/id"
	"github.com/getmockd/ews/internal/storage"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/getmockd/ews/pkg/soap"
)

// Folders items are moved to by non-hard deletes.
const (
	deletedItemsFolder = "deleteditems"
	recoverableFolder  = "recoverableitemsdeletions"
)

// folderChangeKey is the ChangeKey reported on ParentFolderId. Folders are
// never modified, so it is constant.
const folderChangeKey = "AQAAAA=="

type failure struct {
	code ews.ResponseCode
	text string
}

var (
	errIDEmpty     = &failure{ews.ErrorInvalidIDEmpty, "Id must be non-empty."}
	errIDMalformed = &failure{ews.ErrorInvalidIDMalformed, "Id is malformed."}
	errNotFound    = &failure{ews.ErrorItemNotFound, "The specified object was not found in the store."}
	errNeedKey     = &failure{ews.ErrorChangeKeyRequiredForWriteOperations, "When making a request that requires a ChangeKey, the ChangeKey must be supplied."}
	errConflict    = &failure{ews.ErrorIrresolvableConflict, "The change key passed in the request does not match the current change key for the item."}
)

func fail(code ews.ResponseCode, text string) *failure { return &failure{code, text} }

type response struct {
	op   string
	root *etree.Element
	msgs *etree.Element
}

func newResponse(op string) *response {
	root := etree.NewElement("m:" + op + "Response")
	return &response{op: op, root: root, msgs: root.CreateElement("m:ResponseMessages")}
}

// success appends a Success message and returns it for the caller to fill.
func (r *response) success() *etree.Element {
	m := r.msgs.CreateElement("m:" + r.op + "ResponseMessage")
	m.CreateAttr("ResponseClass", string(ews.ResponseClassSuccess))
	m.CreateElement("m:ResponseCode").SetText(ews.NoError.String())
	return m
}

func (r *response) reject(f *failure) {
	m := r.msgs.CreateElement("m:" + r.op + "ResponseMessage")
	m.CreateAttr("ResponseClass", string(ews.ResponseClassError))
	m.CreateElement("m:MessageText").SetText(f.text)
	m.CreateElement("m:ResponseCode").SetText(f.code.String())
	m.CreateElement("m:DescriptiveLinkKey").SetText("0")
	if r.op != "DeleteItem" {
		m.CreateElement("m:Items")
	}
}

func (r *response) done() soap.Response { return soap.Response{Payload: r.root} }

func schemaFault(msg string) soap.Response {
	return soap.Response{Fault: codeFault(ews.ErrorSchemaValidation, msg)}
}

// resolve looks up the item an ItemId reference points to.
func (s *Server) resolve(ref *etree.Element) (*storage.Record, *failure) {
	if ref == nil {
		return nil, errIDEmpty
	}
	itemID := ref.SelectAttrValue("Id", "")
	switch {
	case itemID == "":
		return nil, errIDEmpty
	case !id.ValidItemID(itemID):
		return nil, errIDMalformed
	}
	rec := s.store.Get(itemID)
	if rec == nil {
		return nil, errNotFound
	}
	return rec, nil
}

type shape struct {
	base       ews.BaseShape
	additional []string
}

func readShape(payload *etree.Element) shape {
	sh := shape{base: ews.BaseShape(soap.ExtractXPathFromElement(payload, "ItemShape/BaseShape"))}
	for _, f := range payload.FindElements("ItemShape/AdditionalProperties/FieldURI") {
		if p, err := ews.DecodePropertyPath(f); err == nil {
			sh.additional = append(sh.additional, p.Element())
		}
	}
	return sh
}

// apply renders a stored item in the requested shape. Default is served as
// AllProperties.
func (sh shape) apply(item *etree.Element) *etree.Element {
	if sh.base != ews.ShapeIDOnly {
		return item.Copy()
	}
	out := identity(item)
	for _, name := range sh.additional {
		if c := item.SelectElement(name); c != nil {
			out.AddChild(c.Copy())
		}
	}
	return out
}

// identity returns an item element carrying only its ItemId.
func identity(item *etree.Element) *etree.Element {
	out := etree.NewElement(item.FullTag())
	if ref := item.SelectElement("ItemId"); ref != nil {
		out.AddChild(ref.Copy())
	}
	return out
}

func folderOf(parent *etree.Element) string {
	if parent == nil {
		return ""
	}
	for _, c := range parent.ChildElements() {
		if c.Tag == "DistinguishedFolderId" || c.Tag == "FolderId" {
			return c.SelectAttrValue("Id", "")
		}
	}
	return ""
}

func defaultFolder(k ews.ItemKind) string {
	switch k {
	case ews.KindTask:
		return string(ews.FolderTasks)
	case ews.KindCalendarItem:
		return string(ews.FolderCalendar)
	case ews.KindContact:
		return string(ews.FolderContacts)
	}
	return string(ews.FolderDrafts)
}

func (s *Server) getItem(_ context.Context, req *soap.Request) soap.Response {
	payload := req.Payload()
	refs := payload.SelectElement("ItemIds")
	if refs == nil {
		return schemaFault("GetItem requires ItemIds")
	}
	sh := readShape(payload)

	resp := newResponse("GetItem")
	for _, ref := range refs.ChildElements() {
		rec, f := s.resolve(ref)
		if f != nil {
			resp.reject(f)
			continue
		}
		resp.success().CreateElement("m:Items").AddChild(sh.apply(rec.Element))
	}
	return resp.done()
}

func (s *Server) createItem(_ context.Context, req *soap.Request) soap.Response {
	payload := req.Payload()
	items := payload.SelectElement("Items")
	if items == nil {
		return schemaFault("CreateItem requires Items")
	}
	disposition := ews.MessageDisposition(payload.SelectAttrValue("MessageDisposition", string(ews.SaveOnly)))
	saved := folderOf(payload.SelectElement("SavedItemFolderId"))

	resp := newResponse("CreateItem")
	for _, elem := range items.ChildElements() {
		it, err := ews.ParseItem(elem)
		if err != nil {
			resp.reject(fail(ews.ErrorSchemaValidation, err.Error()))
			continue
		}
		if it.Kind() == ews.KindMessage && disposition == ews.SendOnly {
			resp.success().CreateElement("m:Items")
			continue
		}

		folder := saved
		if folder == "" {
			folder = defaultFolder(it.Kind())
		}
		if it.Kind() == ews.KindMessage && disposition == ews.SendAndSaveCopy {
			folder = string(ews.FolderSentItems)
		}

		now := s.now()
		b := it.Base()
		b.SetItemID(ews.NewItemID(id.ItemID(), id.ChangeKey()))
		b.SetParentFolderID(ews.NewItemID(folder, folderChangeKey))
		b.SetDateTimeCreated(ews.NewDateTime(now))
		b.SetLastModifiedTime(ews.NewDateTime(now))
		if it.Kind() == ews.KindMessage {
			b.SetIsDraft(disposition == ews.SaveOnly)
		}
		if t, ok := it.(*ews.Task); ok {
			if !t.Has(ews.TaskPath.Status) {
				t.SetStatus(ews.TaskNotStarted)
			}
			t.SetChangeCount(1)
			t.SetIsComplete(t.Status() == ews.TaskCompleted)
		}

		rec := &storage.Record{
			ID:        b.ItemID().ID,
			ChangeKey: b.ItemID().ChangeKey,
			Folder:    folder,
			Element:   it.ToXML(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Put(rec); err != nil {
			resp.reject(fail(ews.ErrorInternalServerError, err.Error()))
			continue
		}
		s.logger.Debug("created item", "kind", it.Kind(), "folder", folder, "id", rec.ID)
		resp.success().CreateElement("m:Items").AddChild(identity(rec.Element))
	}
	return resp.done()
}

func (s *Server) deleteItem(_ context.Context, req *soap.Request) soap.Response {
	payload := req.Payload()
	refs := payload.SelectElement("ItemIds")
	if refs == nil {
		return schemaFault("DeleteItem requires ItemIds")
	}
	deleteType := ews.DeleteType(payload.SelectAttrValue("DeleteType", ""))
	switch deleteType {
	case ews.HardDelete, ews.SoftDelete, ews.MoveToDeletedItems:
	default:
		return schemaFault("invalid DeleteType " + strconv.Quote(string(deleteType)))
	}

	resp := newResponse("DeleteItem")
	for _, ref := range refs.ChildElements() {
		rec, f := s.resolve(ref)
		if f != nil {
			resp.reject(f)
			continue
		}
		s.store.Delete(rec.ID)
		if deleteType != ews.HardDelete {
			s.move(rec, deleteType)
		}
		resp.success()
	}
	return resp.done()
}

// move stores a deleted item in the folder its delete type sends it to.
// The item gets a new identity, as moved items do.
func (s *Server) move(rec *storage.Record, deleteType ews.DeleteType) {
	folder := deletedItemsFolder
	if deleteType == ews.SoftDelete {
		folder = recoverableFolder
	}
	rec.ID, rec.ChangeKey = id.ItemID(), id.ChangeKey()
	if ref := rec.Element.SelectElement("ItemId"); ref != nil {
		ref.CreateAttr("Id", rec.ID)
		ref.CreateAttr("ChangeKey", rec.ChangeKey)
	}
	if parent := rec.Element.SelectElement("ParentFolderId"); parent != nil {
		parent.CreateAttr("Id", folder)
	}
	if err := storage.NewFolderView(s.store, folder).Put(rec); err != nil {
		s.logger.Warn("failed to move deleted item", "folder", folder, "error", err)
	}
}

func (s *Server) updateItem(_ context.Context, req *soap.Request) soap.Response {
	payload := req.Payload()
	changes := payload.SelectElement("ItemChanges")
	if changes == nil {
		return schemaFault("UpdateItem requires ItemChanges")
	}
	conflict := ews.ConflictResolution(payload.SelectAttrValue("ConflictResolution", string(ews.AutoResolve)))

	resp := newResponse("UpdateItem")
	for _, ic := range changes.ChildElements() {
		ref := ic.SelectElement("ItemId")
		rec, f := s.resolve(ref)
		if f != nil {
			resp.reject(f)
			continue
		}
		key := ref.SelectAttrValue("ChangeKey", "")
		switch {
		case key == "" && conflict != ews.AlwaysOverwrite:
			resp.reject(errNeedKey)
			continue
		case key != "" && key != rec.ChangeKey && conflict == ews.NeverOverwrite:
			resp.reject(errConflict)
			continue
		}

		elem := rec.Element.Copy()
		if f := applyUpdates(elem, ic.SelectElement("Updates")); f != nil {
			resp.reject(f)
			continue
		}
		it, err := ews.ParseItem(elem)
		if err != nil {
			resp.reject(fail(ews.ErrorSchemaValidation, err.Error()))
			continue
		}

		now := s.now()
		rec.ChangeKey = id.ChangeKey()
		it.Base().SetItemID(ews.NewItemID(rec.ID, rec.ChangeKey))
		it.Base().SetLastModifiedTime(ews.NewDateTime(now))
		if t, ok := it.(*ews.Task); ok {
			t.SetChangeCount(t.ChangeCount() + 1)
			t.SetIsComplete(t.Status() == ews.TaskCompleted)
		}
		rec.Element = it.ToXML()
		rec.UpdatedAt = now
		if err := s.store.Put(rec); err != nil {
			resp.reject(fail(ews.ErrorInternalServerError, err.Error()))
			continue
		}

		m := resp.success()
		m.CreateElement("m:Items").AddChild(identity(rec.Element))
		m.CreateElement("m:ConflictResults").CreateElement("t:Count").SetText("0")
	}
	return resp.done()
}

// invalidProperty is the response code for a field path the item kind does
// not define, per change element.
var invalidProperty = map[string]ews.ResponseCode{
	"SetItemField":      ews.ErrorInvalidPropertySet,
	"AppendToItemField": ews.ErrorInvalidPropertyAppend,
	"DeleteItemField":   ews.ErrorInvalidPropertyDelete,
}

// applyUpdates applies the Set, Append and Delete field changes of updates
// to item in order.
func applyUpdates(item *etree.Element, updates *etree.Element) *failure {
	if updates == nil || len(updates.ChildElements()) == 0 {
		return fail(ews.ErrorIncorrectUpdatePropertyCount, "An object within a change description must contain one and only one property to modify.")
	}
	kind := ews.ItemKind(item.Tag)
	for _, u := range updates.ChildElements() {
		code, ok := invalidProperty[u.Tag]
		if !ok {
			return fail(ews.ErrorSchemaValidation, "unexpected update element "+u.Tag)
		}
		uri := u.SelectElement("FieldURI")
		if uri == nil {
			return fail(ews.ErrorSchemaValidation, u.Tag+" requires FieldURI")
		}
		p, err := ews.DecodePropertyPath(uri)
		if err != nil {
			return fail(ews.ErrorSchemaValidation, err.Error())
		}
		if want, ok := ews.PathOf(kind, p.Element()); !ok || want != p {
			return fail(code, "The property "+p.URI+" is not valid for "+string(kind)+".")
		}

		existing := item.SelectElement(p.Element())
		if u.Tag == "DeleteItemField" {
			if existing != nil {
				item.RemoveChild(existing)
			}
			continue
		}

		value := newValue(u, p)
		if value == nil {
			return fail(ews.ErrorIncorrectUpdatePropertyCount, "An object within a change description must contain one and only one property to modify.")
		}
		switch {
		case existing == nil:
			item.AddChild(value.Copy())
		case u.Tag == "SetItemField":
			item.RemoveChild(existing)
			item.AddChild(value.Copy())
		case len(value.ChildElements()) > 0:
			for _, c := range value.ChildElements() {
				existing.AddChild(c.Copy())
			}
		default:
			existing.SetText(existing.Text() + value.Text())
		}
	}
	return nil
}

// newValue returns the field element inside the item wrapper of a Set or
// Append change.
func newValue(u *etree.Element, p ews.PropertyPath) *etree.Element {
	for _, wrapper := range u.ChildElements() {
		if wrapper.Tag == "FieldURI" {
			continue
		}
		if children := wrapper.SelectElements(p.Element()); len(children) == 1 {
			return children[0]
		}
	}
	return nil
}

func (s *Server) findItem(_ context.Context, req *soap.Request) soap.Response {
	payload := req.Payload()
	folder := folderOf(payload.SelectElement("ParentFolderIds"))
	if folder == "" {
		return schemaFault("FindItem requires ParentFolderIds")
	}
	sh := readShape(payload)
	resp := newResponse("FindItem")

	var matches []*storage.Record
	if ews.Traversal(payload.SelectAttrValue("Traversal", string(ews.Shallow))) == ews.Shallow {
		matches = storage.NewFolderView(s.store, folder).List()
	}
	if r := payload.SelectElement("Restriction"); r != nil {
		var f *failure
		if matches, f = s.filter(matches, r); f != nil {
			resp.reject(f)
			return resp.done()
		}
	}

	total := len(matches)
	offset, page := 0, matches
	if view := payload.SelectElement("IndexedPageItemView"); view != nil {
		offset, _ = strconv.Atoi(view.SelectAttrValue("Offset", "0"))
		limit, err := strconv.Atoi(view.SelectAttrValue("MaxEntriesReturned", ""))
		if err != nil {
			limit = total
		}
		offset = min(max(offset, 0), total)
		page = matches[offset:min(offset+max(limit, 0), total)]
	}

	root := resp.success().CreateElement("m:RootFolder")
	root.CreateAttr("IndexedPagingOffset", strconv.Itoa(offset+len(page)))
	root.CreateAttr("TotalItemsInView", strconv.Itoa(total))
	root.CreateAttr("IncludesLastItemInRange", strconv.FormatBool(offset+len(page) >= total))
	list := root.CreateElement("t:Items")
	for _, rec := range page {
		list.AddChild(sh.apply(rec.Element))
	}
	return resp.done()
}

func (s *Server) filter(records []*storage.Record, restriction *etree.Element) ([]*storage.Record, *failure) {
	r, err := ews.ParseRestriction(restriction)
	if err != nil {
		return nil, fail(ews.ErrorInvalidRestriction, err.Error())
	}
	source, err := exprSource(r)
	if err != nil {
		return nil, fail(ews.ErrorInvalidRestriction, err.Error())
	}
	program, err := s.matcher.compile(source)
	if err != nil {
		return nil, fail(ews.ErrorInvalidRestriction, err.Error())
	}

	out := make([]*storage.Record, 0, len(records))
	for _, rec := range records {
		ok, err := match(program, rec.Element)
		if err != nil {
			s.logger.Debug("restriction evaluation failed", "id", rec.ID, "source", source, "error", err)
			continue
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
