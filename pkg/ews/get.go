package ews

import (
	"context"

	"github.com/beevik/etree"
)

// itemShape renders the m:ItemShape element of get and find requests.
func itemShape(o *callOptions) *etree.Element {
	shape := etree.NewElement("m:ItemShape")
	shape.CreateElement("t:BaseShape").SetText(string(o.shape))
	if len(o.additional) > 0 {
		add := shape.CreateElement("t:AdditionalProperties")
		for _, p := range o.additional {
			add.AddChild(p.Encode())
		}
	}
	return shape
}

// GetItems fetches the items addressed by ids. Outcomes are in the order of
// ids. An invalid id fails the whole call before anything is sent.
func (s *Service) GetItems(ctx context.Context, ids []ItemID, opts ...CallOption) (*BatchResult[Item], error) {
	for _, id := range ids {
		if !id.IsValid() {
			return nil, invalidIdentity()
		}
	}
	if len(ids) == 0 {
		return &BatchResult[Item]{}, nil
	}

	o := s.callOptions(opts)
	req := etree.NewElement("m:GetItem")
	req.AddChild(itemShape(o))
	refs := req.CreateElement("m:ItemIds")
	for _, id := range ids {
		refs.AddChild(id.reference())
	}
	return run(ctx, s, "GetItem", req, len(ids), decodeResponseItem)
}

// GetItem fetches a single item. The returned item replaces any local copy:
// it carries exactly the fields the server sent.
func (s *Service) GetItem(ctx context.Context, id ItemID, opts ...CallOption) (Item, error) {
	return single(s.GetItems(ctx, []ItemID{id}, opts...))
}

// GetTask fetches a task. It fails with ErrMalformedElement if id addresses
// an item of another kind.
func (s *Service) GetTask(ctx context.Context, id ItemID, opts ...CallOption) (*Task, error) {
	return getAs[*Task](ctx, s, id, opts)
}

// GetCalendarItem fetches a calendar item.
func (s *Service) GetCalendarItem(ctx context.Context, id ItemID, opts ...CallOption) (*CalendarItem, error) {
	return getAs[*CalendarItem](ctx, s, id, opts)
}

// GetContact fetches a contact.
func (s *Service) GetContact(ctx context.Context, id ItemID, opts ...CallOption) (*Contact, error) {
	return getAs[*Contact](ctx, s, id, opts)
}

// GetMessage fetches a message.
func (s *Service) GetMessage(ctx context.Context, id ItemID, opts ...CallOption) (*Message, error) {
	return getAs[*Message](ctx, s, id, opts)
}

func getAs[T Item](ctx context.Context, s *Service, id ItemID, opts []CallOption) (T, error) {
	var zero T
	it, err := s.GetItem(ctx, id, opts...)
	if err != nil {
		return zero, err
	}
	v, ok := it.(T)
	if !ok {
		return zero, malformed(string(it.Kind()), "expected %s", zero.Kind())
	}
	return v, nil
}
