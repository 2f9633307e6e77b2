package ews

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
)

// CreateItems stores items on the server and returns their assigned
// identities in order. Read-only fields are not sent. The items themselves
// are not modified; fetch them again to see server-computed values.
func (s *Service) CreateItems(ctx context.Context, items []Item, opts ...CallOption) (*BatchResult[ItemID], error) {
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilItem, i)
		}
	}
	if len(items) == 0 {
		return &BatchResult[ItemID]{}, nil
	}

	o := s.callOptions(opts)
	req := etree.NewElement("m:CreateItem")
	if anyOfKind(items, KindMessage) {
		req.CreateAttr("MessageDisposition", string(o.messageDisposition))
	}
	if anyOfKind(items, KindCalendarItem) {
		req.CreateAttr("SendMeetingInvitations", string(o.invitations))
	}
	if o.savedFolder != nil {
		req.CreateElement("m:SavedItemFolderId").AddChild(o.savedFolder.folderElement())
	}
	list := req.CreateElement("m:Items")
	for _, it := range items {
		list.AddChild(encodeItem(it, true))
	}
	return run(ctx, s, "CreateItem", req, len(items), decodeCreatedID)
}

// CreateItem stores one item and returns its identity.
func (s *Service) CreateItem(ctx context.Context, item Item, opts ...CallOption) (ItemID, error) {
	return single(s.CreateItems(ctx, []Item{item}, opts...))
}

// decodeCreatedID reads the assigned identity. Messages sent with SendOnly
// are not stored and come back with an empty Items element.
func decodeCreatedID(m *etree.Element) (ItemID, error) {
	if items := m.SelectElement("Items"); items != nil && len(items.ChildElements()) == 0 {
		return ItemID{}, nil
	}
	it, err := decodeResponseItem(m)
	if err != nil {
		return ItemID{}, err
	}
	return it.Base().ItemID(), nil
}
