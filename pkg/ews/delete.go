package ews

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
)

// DeleteItems deletes items from the server.
//
// DeleteItems consumes its arguments: every item whose outcome is Success is
// reset to the empty state of a newly constructed item of its kind and must
// not be used as if still bound to the server. Items whose deletion failed
// are left unchanged.
func (s *Service) DeleteItems(ctx context.Context, items []Item, deleteType DeleteType, occurrences AffectedTaskOccurrences, opts ...CallOption) (*BatchResult[struct{}], error) {
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilItem, i)
		}
		if !it.Base().ItemID().IsValid() {
			return nil, invalidIdentity()
		}
	}
	if len(items) == 0 {
		return &BatchResult[struct{}]{}, nil
	}

	o := s.callOptions(opts)
	req := etree.NewElement("m:DeleteItem")
	req.CreateAttr("DeleteType", string(deleteType))
	if anyOfKind(items, KindTask) {
		req.CreateAttr("AffectedTaskOccurrences", string(occurrences))
	}
	if anyOfKind(items, KindCalendarItem) {
		req.CreateAttr("SendMeetingCancellations", string(o.cancellations))
	}
	refs := req.CreateElement("m:ItemIds")
	for _, it := range items {
		refs.AddChild(it.Base().ItemID().reference())
	}

	r, err := run(ctx, s, "DeleteItem", req, len(items), func(*etree.Element) (struct{}, error) {
		return struct{}{}, nil
	})
	if err != nil {
		return r, err
	}
	for i, out := range r.Outcomes {
		if out.Class == ResponseClassSuccess {
			reset(items[i])
		}
	}
	return r, nil
}

// DeleteItem deletes one item and, on success, resets it. See DeleteItems.
func (s *Service) DeleteItem(ctx context.Context, item Item, deleteType DeleteType, occurrences AffectedTaskOccurrences, opts ...CallOption) error {
	_, err := single(s.DeleteItems(ctx, []Item{item}, deleteType, occurrences, opts...))
	return err
}
