package ews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelopeOpen = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"` +
	` xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages"` +
	` xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types"><soap:Body>`

const envelopeClose = `</soap:Body></soap:Envelope>`

// fakeTransport answers every request with a canned response and records
// what it was sent.
type fakeTransport struct {
	response string
	err      error
	calls    atomic.Int32
	last     []byte
}

func (f *fakeTransport) Send(_ context.Context, req []byte) ([]byte, error) {
	f.calls.Add(1)
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.response), nil
}

// request returns the payload element of the last request.
func (f *fakeTransport) request(t *testing.T) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(f.last))
	body := doc.Root().SelectElement("Body")
	require.NotNil(t, body)
	require.NotEmpty(t, body.ChildElements())
	return body.ChildElements()[0]
}

func respond(op string, messages ...string) string {
	return envelopeOpen + `<m:` + op + `Response><m:ResponseMessages>` +
		strings.Join(messages, "") +
		`</m:ResponseMessages></m:` + op + `Response>` + envelopeClose
}

func success(op, inner string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode>%s</m:%sResponseMessage>`, op, inner, op)
}

func failure(op, class, token string) string {
	return fmt.Sprintf(`<m:%sResponseMessage ResponseClass="%s"><m:MessageText>server text</m:MessageText><m:ResponseCode>%s</m:ResponseCode><m:Items/></m:%sResponseMessage>`, op, class, token, op)
}

func taskItems(id, ck, subject string) string {
	return fmt.Sprintf(`<m:Items><t:Task><t:ItemId Id="%s" ChangeKey="%s"/><t:Subject>%s</t:Subject></t:Task></m:Items>`, id, ck, subject)
}

func newFake(response string) (*fakeTransport, *Service) {
	ft := &fakeTransport{response: response}
	return ft, NewService(ft)
}

func TestService_InvalidIdentityIsLocal(t *testing.T) {
	ctx := context.Background()
	ft, svc := newFake("")

	calls := []struct {
		name string
		fn   func() error
	}{
		{"get", func() error { _, err := svc.GetItem(ctx, ItemID{}); return err }},
		{"get batch", func() error {
			_, err := svc.GetItems(ctx, []ItemID{NewItemID("abcde", "edcba"), {}})
			return err
		}},
		{"delete", func() error { return svc.DeleteItem(ctx, NewTask(), HardDelete, AllOccurrences) }},
		{"update", func() error {
			_, err := svc.UpdateItem(ctx, NewTask(), []Change{SetItemField(ItemPath.Subject, "x")})
			return err
		}},
	}
	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			err := c.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidIdentity)

			var xe *ExchangeError
			require.True(t, errors.As(err, &xe))
			assert.Equal(t, "error_invalid_id_empty", xe.Code.Name())
			assert.Equal(t, "ErrorInvalidIdEmpty", xe.Error())
		})
	}
	assert.Equal(t, int32(0), ft.calls.Load())
}

func TestService_NilArgumentsAreLocal(t *testing.T) {
	ctx := context.Background()
	ft, svc := newFake("")
	tasks := Distinguished(FolderTasks)
	subject := IsEqualTo(ItemPath.Subject, "x")

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"create", func() error { _, err := svc.CreateItems(ctx, []Item{NewTask(), nil}); return err }, ErrNilItem},
		{"delete", func() error {
			_, err := svc.DeleteItems(ctx, []Item{nil}, HardDelete, AllOccurrences)
			return err
		}, ErrNilItem},
		{"update", func() error {
			_, err := svc.UpdateItems(ctx, []ItemUpdate{{Changes: []Change{SetItemField(ItemPath.Subject, "x")}}})
			return err
		}, ErrNilItem},
		{"find with nil And child", func() error { _, err := svc.FindItem(ctx, tasks, AndOf(subject, nil)); return err }, ErrNilRestriction},
		{"find with nil Or child", func() error { _, err := svc.FindItem(ctx, tasks, OrOf(nil)); return err }, ErrNilRestriction},
		{"find with empty Not", func() error { _, err := svc.FindItem(ctx, tasks, NotOf(nil)); return err }, ErrNilRestriction},
		{"find with nested nil", func() error {
			_, err := svc.FindItem(ctx, tasks, NotOf(OrOf(subject, AndOf(nil))))
			return err
		}, ErrNilRestriction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), tt.want)
		})
	}
	assert.Equal(t, int32(0), ft.calls.Load())
}

func TestRestrictionElement_SkipsNilChildren(t *testing.T) {
	elem := RestrictionElement(AndOf(IsEqualTo(ItemPath.Subject, "x"), nil, NotOf(nil)))
	and := elem.ChildElements()[0]
	require.Len(t, and.ChildElements(), 2)
	assert.Empty(t, and.ChildElements()[1].ChildElements())
}

func TestService_ServerErrorMapping(t *testing.T) {
	_, svc := newFake(respond("GetItem", failure("GetItem", "Error", "ErrorInvalidIdEmpty")))

	_, err := svc.GetItem(context.Background(), NewItemID("abcde", "edcba"))
	require.Error(t, err)

	var xe *ExchangeError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, ErrorInvalidIDEmpty, xe.Code)
	assert.Equal(t, "error_invalid_id_empty", xe.Code.Name())
	assert.Equal(t, "ErrorInvalidIdEmpty", xe.Error())
	assert.Equal(t, "server text", xe.ServerMessage)
	assert.Equal(t, ResponseClassError, xe.Class)
	assert.NotErrorIs(t, err, ErrInvalidIdentity, "only the local check reports ErrInvalidIdentity")
	assert.True(t, HasResponseCode(err, ErrorInvalidIDEmpty))
}

func TestService_UnrecognizedResponseCode(t *testing.T) {
	_, svc := newFake(respond("GetItem", failure("GetItem", "Error", "ErrorAddedNextYear")))

	_, err := svc.GetItem(context.Background(), NewItemID("abcde", "edcba"))
	var xe *ExchangeError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, ResponseCodeUnrecognized, xe.Code)
	assert.Equal(t, "ErrorAddedNextYear", xe.Token)
	assert.Equal(t, "ErrorAddedNextYear", xe.Error())
}

func TestService_GetItemRequest(t *testing.T) {
	ft, svc := newFake(respond("GetItem", success("GetItem", taskItems("abcde", "edcba", "Write poem"))))
	svc = NewService(ft, WithServerVersion(Exchange2016), WithImpersonation("ann@example.com"))

	task, err := svc.GetTask(context.Background(), NewItemID("abcde", "edcba"),
		WithShape(ShapeIDOnly), WithAdditionalProperties(ItemPath.Subject, TaskPath.DueDate))
	require.NoError(t, err)
	assert.Equal(t, "Write poem", task.Subject())

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(ft.last))
	header := doc.Root().SelectElement("Header")
	require.NotNil(t, header)
	assert.Equal(t, "Exchange2016", header.SelectElement("RequestServerVersion").SelectAttrValue("Version", ""))
	assert.Equal(t, "ann@example.com", header.FindElement(".//PrimarySmtpAddress").Text())

	req := ft.request(t)
	assert.Equal(t, "GetItem", req.Tag)
	assert.Equal(t, MessagesNamespace, req.NamespaceURI())
	assert.Equal(t, "IdOnly", req.FindElement("ItemShape/BaseShape").Text())
	uris := req.FindElements("ItemShape/AdditionalProperties/FieldURI")
	require.Len(t, uris, 2)
	assert.Equal(t, "task:DueDate", uris[1].SelectAttrValue("FieldURI", ""))
	ref := req.FindElement("ItemIds/ItemId")
	assert.Equal(t, "abcde", ref.SelectAttrValue("Id", ""))
	assert.Equal(t, "edcba", ref.SelectAttrValue("ChangeKey", ""))
}

func TestService_GetKindMismatch(t *testing.T) {
	_, svc := newFake(respond("GetItem", success("GetItem", taskItems("abcde", "edcba", "s"))))
	_, err := svc.GetMessage(context.Background(), NewItemID("abcde", "edcba"))
	assert.ErrorIs(t, err, ErrMalformedElement)
}

func TestService_BatchOutcomesAreIndependent(t *testing.T) {
	_, svc := newFake(respond("GetItem",
		success("GetItem", taskItems("a", "1", "first")),
		failure("GetItem", "Error", "ErrorItemNotFound"),
		success("GetItem", `<m:Items><t:Task><t:ItemId Id="c"/></t:Task></m:Items>`),
		success("GetItem", taskItems("d", "4", "last")),
	))

	res, err := svc.GetItems(context.Background(), []ItemID{
		NewItemID("a", "1"), NewItemID("b", "2"), NewItemID("c", "3"), NewItemID("d", "4"),
	})
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 4)
	assert.Equal(t, StatePartiallyFailed, res.State())

	assert.True(t, res.Outcomes[0].OK())
	assert.Equal(t, ErrorItemNotFound, res.Outcomes[1].Code)
	assert.Equal(t, ResponseClassSuccess, res.Outcomes[2].Class)
	assert.ErrorIs(t, res.Outcomes[2].Err, ErrMalformedElement)
	assert.True(t, res.Outcomes[3].OK())

	values := res.Values()
	require.Len(t, values, 2)
	assert.Equal(t, "first", values[0].Base().Subject())
	assert.Equal(t, "last", values[1].Base().Subject())
	assert.ErrorIs(t, res.Err(), ErrMalformedElement)
	assert.True(t, HasResponseCode(res.Err(), ErrorItemNotFound))
}

func TestService_Warning(t *testing.T) {
	warning := `<m:GetItemResponseMessage ResponseClass="Warning"><m:MessageText>partial</m:MessageText>` +
		`<m:ResponseCode>ErrorBatchProcessingStopped</m:ResponseCode>` + taskItems("a", "1", "s") +
		`</m:GetItemResponseMessage>`
	_, svc := newFake(respond("GetItem", warning))

	res, err := svc.GetItems(context.Background(), []ItemID{NewItemID("a", "1")})
	require.NoError(t, err)
	o := res.Outcomes[0]
	assert.Equal(t, ResponseClassWarning, o.Class)
	assert.False(t, o.OK())
	require.NotNil(t, o.Value)
	assert.Equal(t, "s", o.Value.Base().Subject())
	assert.True(t, HasResponseCode(o.Err, ErrorBatchProcessingStopped))

	_, err = svc.GetItem(context.Background(), NewItemID("a", "1"))
	assert.True(t, HasResponseCode(err, ErrorBatchProcessingStopped))
}

func TestService_InvalidResponseClass(t *testing.T) {
	_, svc := newFake(respond("GetItem", `<m:GetItemResponseMessage ResponseClass="Maybe"/>`))
	res, err := svc.GetItems(context.Background(), []ItemID{NewItemID("a", "1")})
	require.NoError(t, err)
	assert.Equal(t, ResponseClassError, res.Outcomes[0].Class)
	assert.ErrorIs(t, res.Outcomes[0].Err, ErrMalformedElement)
}

func TestService_Fault(t *testing.T) {
	fault := envelopeOpen + `<soap:Fault><faultcode>soap:Client</faultcode>` +
		`<faultstring>The specified server version is invalid.</faultstring>` +
		`<detail><e:ResponseCode xmlns:e="http://schemas.microsoft.com/exchange/services/2006/errors">ErrorInvalidServerVersion</e:ResponseCode></detail>` +
		`</soap:Fault>` + envelopeClose
	_, svc := newFake(fault)

	res, err := svc.GetItems(context.Background(), []ItemID{NewItemID("a", "1")})
	require.Error(t, err)
	var fe *FaultError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "soap:Client", fe.Code)
	assert.Equal(t, ErrorInvalidServerVersion, fe.ResponseCode)
	assert.True(t, HasResponseCode(err, ErrorInvalidServerVersion))

	require.NotNil(t, res)
	assert.Equal(t, StateFaulted, res.State())
	assert.Empty(t, res.Outcomes)
	assert.Same(t, fe, res.Fault)

	found, err := svc.FindItem(context.Background(), Distinguished(FolderTasks), nil)
	require.Error(t, err)
	require.NotNil(t, found)
	assert.Equal(t, StateFaulted, found.State())
}

func TestService_CallFailures(t *testing.T) {
	ctx := context.Background()
	id := NewItemID("a", "1")

	t.Run("transport", func(t *testing.T) {
		cause := errors.New("connection refused")
		ft := &fakeTransport{err: cause}
		_, err := NewService(ft).GetItem(ctx, id)
		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "GetItem", te.Operation)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, int32(1), ft.calls.Load())
	})

	t.Run("not xml", func(t *testing.T) {
		_, svc := newFake("<<<")
		_, err := svc.GetItem(ctx, id)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("wrong operation", func(t *testing.T) {
		_, svc := newFake(respond("CreateItem", success("CreateItem", taskItems("a", "1", "s"))))
		_, err := svc.GetItem(ctx, id)
		assert.ErrorIs(t, err, ErrMalformedElement)
	})

	t.Run("message count", func(t *testing.T) {
		_, svc := newFake(respond("GetItem",
			success("GetItem", taskItems("a", "1", "s")),
			success("GetItem", taskItems("b", "2", "s"))))
		_, err := svc.GetItem(ctx, id)
		assert.ErrorIs(t, err, ErrMalformedElement)
	})

	t.Run("no response messages", func(t *testing.T) {
		_, svc := newFake(envelopeOpen + `<m:GetItemResponse/>` + envelopeClose)
		_, err := svc.GetItem(ctx, id)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})
}

func TestService_CreateItem(t *testing.T) {
	ft, svc := newFake(respond("CreateItem", success("CreateItem",
		`<m:Items><t:Task><t:ItemId Id="new" ChangeKey="ck1"/></t:Task></m:Items>`)))

	task := NewTask()
	task.SetItemID(NewItemID("ignored", "ignored"))
	task.SetSubject("Something really important to do")
	task.SetIsComplete(true)

	id, err := svc.CreateItem(context.Background(), task, WithSavedItemFolder(Distinguished(FolderTasks)))
	require.NoError(t, err)
	assert.Equal(t, NewItemID("new", "ck1"), id)
	assert.Equal(t, "ignored", task.ItemID().ID, "the argument is not modified")

	req := ft.request(t)
	assert.Equal(t, "CreateItem", req.Tag)
	assert.Nil(t, req.SelectAttr("MessageDisposition"))
	assert.Nil(t, req.SelectAttr("SendMeetingInvitations"))
	assert.Equal(t, "tasks", req.FindElement("SavedItemFolderId/DistinguishedFolderId").SelectAttrValue("Id", ""))
	sent := req.FindElement("Items/Task")
	require.NotNil(t, sent)
	assert.Nil(t, sent.SelectElement("ItemId"))
	assert.Nil(t, sent.SelectElement("IsComplete"))
	assert.Equal(t, "Something really important to do", sent.SelectElement("Subject").Text())
}

func TestService_CreateMessageAttributes(t *testing.T) {
	ft, svc := newFake(respond("CreateItem",
		success("CreateItem", `<m:Items/>`),
		success("CreateItem", `<m:Items><t:CalendarItem><t:ItemId Id="cal" ChangeKey="1"/></t:CalendarItem></m:Items>`)))

	res, err := svc.CreateItems(context.Background(), []Item{NewMessage(), NewCalendarItem()},
		WithMessageDisposition(SendOnly), WithMeetingInvitations(SendOnlyToAll))
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, res.State())
	assert.False(t, res.Outcomes[0].Value.IsValid(), "sent-only messages have no identity")
	assert.Equal(t, "cal", res.Outcomes[1].Value.ID)

	req := ft.request(t)
	assert.Equal(t, "SendOnly", req.SelectAttrValue("MessageDisposition", ""))
	assert.Equal(t, "SendOnlyToAll", req.SelectAttrValue("SendMeetingInvitations", ""))
}

func TestService_DeleteConsumesOnSuccessOnly(t *testing.T) {
	ft, svc := newFake(respond("DeleteItem",
		`<m:DeleteItemResponseMessage ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode></m:DeleteItemResponseMessage>`,
		`<m:DeleteItemResponseMessage ResponseClass="Error"><m:ResponseCode>ErrorItemNotFound</m:ResponseCode></m:DeleteItemResponseMessage>`))

	gone := NewTask()
	gone.SetItemID(NewItemID("a", "1"))
	gone.SetSubject("gone")
	kept := NewTask()
	kept.SetItemID(NewItemID("b", ""))
	kept.SetSubject("kept")

	res, err := svc.DeleteItems(context.Background(), []Item{gone, kept}, SoftDelete, SpecifiedOccurrenceOnly)
	require.NoError(t, err)
	assert.Equal(t, StatePartiallyFailed, res.State())

	assert.Equal(t, "", gone.Subject())
	assert.False(t, gone.ItemID().IsValid())
	assert.True(t, isEmpty(gone))
	assert.Equal(t, "kept", kept.Subject())

	req := ft.request(t)
	assert.Equal(t, "SoftDelete", req.SelectAttrValue("DeleteType", ""))
	assert.Equal(t, "SpecifiedOccurrenceOnly", req.SelectAttrValue("AffectedTaskOccurrences", ""))
	refs := req.FindElements("ItemIds/ItemId")
	require.Len(t, refs, 2)
	assert.Nil(t, refs[1].SelectAttr("ChangeKey"), "an empty change key is left out")
}

func TestService_UpdateRequest(t *testing.T) {
	ft, svc := newFake(respond("UpdateItem", success("UpdateItem",
		`<m:Items><t:Task><t:ItemId Id="a" ChangeKey="2"/></t:Task></m:Items><m:ConflictResults><t:Count>0</t:Count></m:ConflictResults>`)))

	task := NewTask()
	task.SetItemID(NewItemID("a", "1"))
	updated, err := svc.UpdateItem(context.Background(), task, []Change{
		SetItemField(ItemPath.Subject, "new"),
		SetItemField(TaskPath.Status, TaskCompleted),
		AppendToItemField(ItemPath.Categories, []string{"x"}),
		DeleteItemField(TaskPath.DueDate),
	}, WithConflictResolution(NeverOverwrite))
	require.NoError(t, err)
	assert.Equal(t, NewItemID("a", "2"), updated.Base().ItemID())
	assert.Equal(t, NewItemID("a", "1"), task.ItemID())

	req := ft.request(t)
	assert.Equal(t, "NeverOverwrite", req.SelectAttrValue("ConflictResolution", ""))
	updates := req.FindElement("ItemChanges/ItemChange/Updates").ChildElements()
	require.Len(t, updates, 4)

	assert.Equal(t, "SetItemField", updates[0].Tag)
	assert.Equal(t, "new", updates[0].FindElement("Task/Subject").Text())
	assert.Equal(t, "Completed", updates[1].FindElement("Task/Status").Text())
	assert.Equal(t, "AppendToItemField", updates[2].Tag)
	assert.Equal(t, "x", updates[2].FindElement("Task/Categories/String").Text())
	assert.Equal(t, "DeleteItemField", updates[3].Tag)
	assert.Equal(t, "task:DueDate", updates[3].SelectElement("FieldURI").SelectAttrValue("FieldURI", ""))
	assert.Nil(t, updates[3].SelectElement("Task"))
}

func TestService_UpdateRejectsInvalidChanges(t *testing.T) {
	ft, svc := newFake("")
	task := NewTask()
	task.SetItemID(NewItemID("a", "1"))

	tests := []struct {
		name    string
		changes []Change
	}{
		{"no changes", nil},
		{"read-only field", []Change{SetItemField(ItemPath.DateTimeCreated, MustParseDateTime("2015-01-17T12:00:00Z"))}},
		{"field of another variant", []Change{SetItemField(ContactPath.Mileage, "1")}},
		{"append to scalar", []Change{AppendToItemField(ItemPath.Subject, "more")}},
		{"wrong value type", []Change{SetItemField(TaskPath.PercentComplete, "half")}},
		{"bad timestamp text", []Change{SetItemField(TaskPath.DueDate, "tomorrow")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateItem(context.Background(), task, tt.changes)
			assert.ErrorIs(t, err, ErrInvalidChange)
		})
	}
	assert.Equal(t, int32(0), ft.calls.Load())
}

func TestService_FindItem(t *testing.T) {
	found := `<m:FindItemResponseMessage ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode>` +
		`<m:RootFolder IndexedPagingOffset="2" TotalItemsInView="5" IncludesLastItemInRange="false"><t:Items>` +
		`<t:Task><t:ItemId Id="a" ChangeKey="1"/><t:Subject>one</t:Subject></t:Task>` +
		`<t:Task><t:Subject>no id</t:Subject></t:Task>` +
		`<t:Message><t:ItemId Id="c" ChangeKey="3"/></t:Message>` +
		`</t:Items></m:RootFolder></m:FindItemResponseMessage>`
	ft, svc := newFake(respond("FindItem", found))

	res, err := svc.FindItem(context.Background(), Distinguished(FolderTasks),
		IsEqualTo(TaskPath.IsComplete, false), WithPaging(2, 2), WithShape(ShapeIDOnly))
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalItemsInView)
	assert.False(t, res.IncludesLastItemInRange)
	require.Len(t, res.Outcomes, 3)
	assert.ErrorIs(t, res.Outcomes[1].Err, ErrMissingRequiredField)
	items := res.Items()
	require.Len(t, items, 2)
	assert.Equal(t, KindTask, items[0].Kind())
	assert.Equal(t, KindMessage, items[1].Kind())

	req := ft.request(t)
	assert.Equal(t, "Shallow", req.SelectAttrValue("Traversal", ""))
	view := req.SelectElement("IndexedPageItemView")
	require.NotNil(t, view)
	assert.Equal(t, "2", view.SelectAttrValue("MaxEntriesReturned", ""))
	assert.Equal(t, "Beginning", view.SelectAttrValue("BasePoint", ""))
	assert.NotNil(t, req.FindElement("Restriction/IsEqualTo"))
	assert.Equal(t, "tasks", req.FindElement("ParentFolderIds/DistinguishedFolderId").SelectAttrValue("Id", ""))
}

func TestService_FindItemEmptyAndError(t *testing.T) {
	empty := `<m:FindItemResponseMessage ResponseClass="Success"><m:ResponseCode>NoError</m:ResponseCode>` +
		`<m:RootFolder TotalItemsInView="0" IncludesLastItemInRange="true"><t:Items/></m:RootFolder></m:FindItemResponseMessage>`
	_, svc := newFake(respond("FindItem", empty))
	res, err := svc.FindItem(context.Background(), Distinguished(FolderInbox), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Items())
	assert.True(t, res.IncludesLastItemInRange)
	assert.Equal(t, StateSucceeded, res.State())

	_, svc = newFake(respond("FindItem", `<m:FindItemResponseMessage ResponseClass="Error"><m:ResponseCode>ErrorInvalidRestriction</m:ResponseCode></m:FindItemResponseMessage>`))
	res, err = svc.FindItem(context.Background(), Distinguished(FolderInbox), nil)
	assert.Nil(t, res)
	assert.True(t, HasResponseCode(err, ErrorInvalidRestriction))

	_, err = svc.FindItem(context.Background(), nil, nil)
	assert.Error(t, err)
}
