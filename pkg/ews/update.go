package ews

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
)

type changeAction string

const (
	actionSet    changeAction = "SetItemField"
	actionAppend changeAction = "AppendToItemField"
	actionDelete changeAction = "DeleteItemField"
)

// Change is one field modification of an update. Build changes with
// SetItemField, AppendToItemField and DeleteItemField.
type Change interface {
	// Path returns the field the change applies to.
	Path() PropertyPath

	changeElement(it Item) (*etree.Element, error)
}

type fieldChange struct {
	action changeAction
	path   PropertyPath
	value  any
}

// SetItemField replaces the value of the field at p. The value must have
// the Go type of the field's getter; strings are also accepted for Body.
func SetItemField(p PropertyPath, value any) Change {
	return fieldChange{action: actionSet, path: p, value: value}
}

// AppendToItemField adds to a list-valued field or to Body.
func AppendToItemField(p PropertyPath, value any) Change {
	return fieldChange{action: actionAppend, path: p, value: value}
}

// DeleteItemField removes the field at p from the item.
func DeleteItemField(p PropertyPath) Change {
	return fieldChange{action: actionDelete, path: p}
}

func (c fieldChange) Path() PropertyPath { return c.path }

func (c fieldChange) changeElement(it Item) (*etree.Element, error) {
	def, ok := lookupField(it, c.path)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a field of %s", ErrInvalidChange, c.path, it.Kind())
	}
	if def.readOnly {
		return nil, fmt.Errorf("%w: %s is read-only", ErrInvalidChange, c.path)
	}

	elem := etree.NewElement("t:" + string(c.action))
	elem.AddChild(c.path.Encode())
	if c.action == actionDelete {
		return elem, nil
	}
	if c.action == actionAppend && !appendable(def.kind) {
		return nil, fmt.Errorf("%w: cannot append to %s", ErrInvalidChange, c.path)
	}
	v, err := coerceValue(def, c.value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChange, err)
	}
	elem.CreateElement("t:" + string(it.Kind())).AddChild(encodeValue(def, v))
	return elem, nil
}

func appendable(k fieldKind) bool {
	switch k {
	case bodyField, stringListField, mailboxListField, entriesField:
		return true
	}
	return false
}

// ItemUpdate pairs an item with the changes to apply to it. Only the item's
// identity and kind are used.
type ItemUpdate struct {
	Item    Item
	Changes []Change
}

// UpdateItems applies each update and returns the items as the server
// reports them after the change. The returned items carry at least the new
// ItemId and ChangeKey; the argument items are not modified.
func (s *Service) UpdateItems(ctx context.Context, updates []ItemUpdate, opts ...CallOption) (*BatchResult[Item], error) {
	for i, u := range updates {
		if u.Item == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilItem, i)
		}
		if !u.Item.Base().ItemID().IsValid() {
			return nil, invalidIdentity()
		}
	}
	if len(updates) == 0 {
		return &BatchResult[Item]{}, nil
	}

	o := s.callOptions(opts)
	req := etree.NewElement("m:UpdateItem")
	req.CreateAttr("ConflictResolution", string(o.conflict))
	items := make([]Item, len(updates))
	for i, u := range updates {
		items[i] = u.Item
	}
	if anyOfKind(items, KindMessage) {
		req.CreateAttr("MessageDisposition", string(o.messageDisposition))
	}
	if anyOfKind(items, KindCalendarItem) {
		req.CreateAttr("SendMeetingInvitationsOrCancellations", string(o.invitations))
	}
	if o.savedFolder != nil {
		req.CreateElement("m:SavedItemFolderId").AddChild(o.savedFolder.folderElement())
	}

	changes := req.CreateElement("m:ItemChanges")
	for i, u := range updates {
		if len(u.Changes) == 0 {
			return nil, fmt.Errorf("%w: update %d has no changes", ErrInvalidChange, i)
		}
		ic := changes.CreateElement("t:ItemChange")
		ic.AddChild(u.Item.Base().ItemID().reference())
		list := ic.CreateElement("t:Updates")
		for _, c := range u.Changes {
			elem, err := c.changeElement(u.Item)
			if err != nil {
				return nil, err
			}
			list.AddChild(elem)
		}
	}
	return run(ctx, s, "UpdateItem", req, len(updates), decodeResponseItem)
}

// UpdateItem applies changes to item and returns the server's view of it.
func (s *Service) UpdateItem(ctx context.Context, item Item, changes []Change, opts ...CallOption) (Item, error) {
	return single(s.UpdateItems(ctx, []ItemUpdate{{Item: item, Changes: changes}}, opts...))
}
