package ews

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func parseFragment(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

const typesNS = `xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types"`

func TestParseItem_SampleTask(t *testing.T) {
	elem := parseFragment(t, `<t:Task `+typesNS+`>
		<t:ItemId Id="abcde" ChangeKey="edcba"/>
		<t:Subject>Write poem</t:Subject>
	</t:Task>`)

	it, err := ParseItem(elem)
	require.NoError(t, err)
	task, ok := it.(*Task)
	require.True(t, ok, "got %T", it)
	assert.Equal(t, "abcde", task.ItemID().ID)
	assert.Equal(t, "edcba", task.ItemID().ChangeKey)
	assert.Equal(t, "Write poem", task.Subject())
}

func TestParseItem_Variants(t *testing.T) {
	tests := []struct {
		xml  string
		kind ItemKind
	}{
		{`<t:Item ` + typesNS + `/>`, KindItem},
		{`<t:Task ` + typesNS + `/>`, KindTask},
		{`<t:CalendarItem ` + typesNS + `/>`, KindCalendarItem},
		{`<t:Contact ` + typesNS + `/>`, KindContact},
		{`<t:Message ` + typesNS + `/>`, KindMessage},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			it, err := ParseItem(parseFragment(t, tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, it.Kind())
			assert.True(t, isEmpty(it))
		})
	}

	_, err := ParseItem(parseFragment(t, `<t:Folder `+typesNS+`/>`))
	assert.ErrorIs(t, err, ErrMalformedElement)
}

func TestParseItem_IgnoresUnknownChildren(t *testing.T) {
	it, err := ParseItem(parseFragment(t, `<t:Task `+typesNS+`>
		<t:Subject>s</t:Subject>
		<t:SomethingNew>x</t:SomethingNew>
	</t:Task>`))
	require.NoError(t, err)
	assert.Equal(t, "s", it.Base().Subject())
}

func TestParseItem_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"id without change key", `<t:ItemId Id="abcde"/>`, ErrMalformedElement},
		{"id without id", `<t:ItemId ChangeKey="edcba"/>`, ErrMalformedElement},
		{"bad boolean", `<t:IsDraft>yes</t:IsDraft>`, ErrMalformedElement},
		{"bad integer", `<t:Size>big</t:Size>`, ErrMalformedElement},
		{"bad timestamp", `<t:DateTimeCreated>2015-01-17 12:00:00</t:DateTimeCreated>`, ErrInvalidTimestamp},
		{"body without type", `<t:Body>text</t:Body>`, ErrMalformedElement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItem(parseFragment(t, `<t:Task `+typesNS+`>`+tt.body+`</t:Task>`))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var de *DecodeError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestParseIdentifiedItem_RequiresItemID(t *testing.T) {
	_, err := parseIdentifiedItem(parseFragment(t, `<t:Task `+typesNS+`><t:Subject>s</t:Subject></t:Task>`))
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func roundTrip(t *testing.T, it Item) Item {
	t.Helper()
	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	root.CreateAttr("xmlns:t", TypesNamespace)
	root.AddChild(it.ToXML())
	s, err := doc.WriteToString()
	require.NoError(t, err)

	parsed := parseFragment(t, s)
	got, err := ParseItem(parsed.ChildElements()[0])
	require.NoError(t, err)
	return got
}

func TestItem_RoundTrip(t *testing.T) {
	start := MustParseDateTime("2015-01-17T12:00:00Z")
	end := MustParseDateTime("2015-01-17T12:30:00Z")

	t.Run("untyped body", func(t *testing.T) {
		task := NewTask()
		task.SetBody(Body{Text: "hello"})
		assert.Equal(t, Body{Text: "hello", Type: BodyTypeText}, task.Body())

		got := roundTrip(t, task).(*Task)
		assert.Equal(t, task.Body(), got.Body())
	})

	t.Run("task", func(t *testing.T) {
		task := NewTask()
		task.SetItemID(NewItemID("abcde", "edcba"))
		task.SetSubject("Write poem")
		task.SetBody(Body{Text: "<b>now</b>", Type: BodyTypeHTML, IsTruncated: true})
		task.SetCategories([]string{"a", "b"})
		task.SetImportance(ImportanceHigh)
		task.SetReminderEnabled(true)
		task.SetReminderDueBy(start)
		task.SetCulture(language.MustParse("en-US"))
		task.SetStartDate(start)
		task.SetDueDate(end)
		task.SetStatus(TaskInProgress)
		task.SetPercentComplete(50)
		task.SetIsComplete(false)

		got := roundTrip(t, task).(*Task)
		assert.Equal(t, task.ItemID(), got.ItemID())
		assert.Equal(t, "Write poem", got.Subject())
		assert.Equal(t, task.Body(), got.Body())
		assert.Equal(t, []string{"a", "b"}, got.Categories())
		assert.Equal(t, ImportanceHigh, got.Importance())
		assert.True(t, got.ReminderEnabled())
		assert.True(t, got.ReminderDueBy().Equal(start))
		tag, err := got.CultureTag()
		require.NoError(t, err)
		assert.Equal(t, language.MustParse("en-US"), tag)
		assert.True(t, got.StartDate().Equal(start))
		assert.True(t, got.DueDate().Equal(end))
		assert.Equal(t, TaskInProgress, got.Status())
		assert.Equal(t, 50, got.PercentComplete())
		assert.True(t, got.Has(TaskPath.IsComplete))
		assert.False(t, got.IsComplete())
		assert.False(t, got.Has(TaskPath.Owner))
	})

	t.Run("calendar item", func(t *testing.T) {
		cal := NewCalendarItem()
		cal.SetSubject("standup")
		cal.SetStart(start)
		cal.SetEnd(end)
		cal.SetLocation("room 1")
		cal.SetOrganizer(Mailbox{Name: "Ann", EmailAddress: "ann@example.com"})

		got := roundTrip(t, cal).(*CalendarItem)
		assert.True(t, got.Start().Equal(start))
		assert.Equal(t, "room 1", got.Location())
		assert.Equal(t, "ann@example.com", got.Organizer().EmailAddress)
	})

	t.Run("contact", func(t *testing.T) {
		c := NewContact()
		c.SetDisplayName("Ann Smith")
		c.SetEmailAddresses([]Entry{{Key: "EmailAddress1", Value: "ann@example.com"}})

		got := roundTrip(t, c).(*Contact)
		assert.Equal(t, "Ann Smith", got.DisplayName())
		assert.Equal(t, []Entry{{Key: "EmailAddress1", Value: "ann@example.com"}}, got.EmailAddresses())
	})

	t.Run("message", func(t *testing.T) {
		m := NewMessage()
		m.SetSubject("hi")
		m.SetToRecipients([]Mailbox{{EmailAddress: "a@example.com"}, {EmailAddress: "b@example.com"}})
		m.SetIsRead(true)

		got := roundTrip(t, m).(*Message)
		assert.Len(t, got.ToRecipients(), 2)
		assert.True(t, got.IsRead())
	})
}

func TestToXML_SchemaOrder(t *testing.T) {
	task := NewTask()
	task.SetStatus(TaskCompleted)
	task.SetSubject("s")
	task.SetItemID(NewItemID("abcde", "edcba"))
	task.SetDueDate(MustParseDateTime("2015-01-17T12:30:00Z"))

	var tags []string
	for _, c := range task.ToXML().ChildElements() {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"ItemId", "Subject", "DueDate", "Status"}, tags)
}

func TestEncodeItem_ForCreateSkipsReadOnly(t *testing.T) {
	task := NewTask()
	task.SetItemID(NewItemID("abcde", "edcba"))
	task.SetSubject("s")
	task.SetIsComplete(true)

	elem := encodeItem(task, true)
	assert.Nil(t, elem.SelectElement("ItemId"))
	assert.Nil(t, elem.SelectElement("IsComplete"))
	assert.NotNil(t, elem.SelectElement("Subject"))
}

func TestItem_Accessors(t *testing.T) {
	task := NewTask()
	assert.Equal(t, "", task.Subject())
	assert.False(t, task.Has(ItemPath.Subject))

	task.SetSubject("")
	assert.True(t, task.Has(ItemPath.Subject), "an empty string is still present")

	cats := []string{"x"}
	task.SetCategories(cats)
	cats[0] = "changed"
	assert.Equal(t, []string{"x"}, task.Categories())

	reset(task)
	assert.True(t, isEmpty(task))
}
