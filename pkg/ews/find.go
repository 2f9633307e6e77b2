package ews

import (
	"context"
	"errors"
	"strconv"

	"github.com/beevik/etree"
)

type findPage struct {
	total    int
	last     bool
	outcomes []Outcome[Item]
}

// FindItem searches folder for items matching r, or all items when r is nil.
// Items are returned in server order, each as its own outcome so a single
// undecodable item does not hide the others. An empty result is a success.
//
// When the server answers with class Error the error is returned and the
// result is nil. On a Warning both the result and the *ExchangeError are
// returned.
func (s *Service) FindItem(ctx context.Context, folder BaseFolderID, r Restriction, opts ...CallOption) (*FindResult, error) {
	if folder == nil {
		return nil, errors.New("ews: FindItem: nil folder")
	}
	if r != nil {
		if err := checkRestriction(r); err != nil {
			return nil, err
		}
	}

	o := s.callOptions(opts)
	req := etree.NewElement("m:FindItem")
	req.CreateAttr("Traversal", string(o.traversal))
	req.AddChild(itemShape(o))
	if o.paged {
		view := req.CreateElement("m:IndexedPageItemView")
		view.CreateAttr("MaxEntriesReturned", strconv.Itoa(o.maxEntries))
		view.CreateAttr("Offset", strconv.Itoa(o.offset))
		view.CreateAttr("BasePoint", "Beginning")
	}
	if r != nil {
		req.AddChild(RestrictionElement(r))
	}
	req.CreateElement("m:ParentFolderIds").AddChild(folder.folderElement())

	br, err := run(ctx, s, "FindItem", req, 1, decodeFindPage)
	if err != nil {
		if br != nil {
			return &FindResult{BatchResult: BatchResult[Item]{Fault: br.Fault}}, err
		}
		return nil, err
	}

	out := br.Outcomes[0]
	if out.Class == ResponseClassError || out.Value == nil {
		return nil, out.Err
	}
	return &FindResult{
		BatchResult:             BatchResult[Item]{Outcomes: out.Value.outcomes},
		TotalItemsInView:        out.Value.total,
		IncludesLastItemInRange: out.Value.last,
	}, out.Err
}

func decodeFindPage(m *etree.Element) (*findPage, error) {
	root := m.SelectElement("RootFolder")
	if root == nil {
		return nil, missing("RootFolder", m.Tag)
	}
	p := &findPage{}
	if v := root.SelectAttr("TotalItemsInView"); v != nil {
		n, err := parseInt(root.Tag, v.Value)
		if err != nil {
			return nil, err
		}
		p.total = n
	}
	if v := root.SelectAttr("IncludesLastItemInRange"); v != nil {
		b, err := parseBool(root.Tag, v.Value)
		if err != nil {
			return nil, err
		}
		p.last = b
	}

	items := root.SelectElement("Items")
	if items == nil {
		return nil, missing("Items", root.Tag)
	}
	for _, child := range items.ChildElements() {
		it, err := parseIdentifiedItem(child)
		p.outcomes = append(p.outcomes, Outcome[Item]{
			Class: ResponseClassSuccess,
			Code:  NoError,
			Value: it,
			Err:   err,
		})
	}
	return p, nil
}
