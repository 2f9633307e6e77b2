package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/ews/pkg/cli/internal/output"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/spf13/cobra"
)

// printResult outputs a single operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to stdout. Human-readable prose must go to stderr or be omitted entirely.
// textFn is called only in text mode.
func (a *app) printResult(cmd *cobra.Command, data any, textFn func(w io.Writer)) error {
	if a.flags.jsonOutput {
		return output.JSON(cmd.OutOrStdout(), data)
	}
	textFn(cmd.OutOrStdout())
	return nil
}

// itemView is the JSON shape of an item.
type itemView struct {
	Kind             string   `json:"kind"`
	ID               string   `json:"id"`
	ChangeKey        string   `json:"changeKey"`
	Subject          string   `json:"subject"`
	Folder           string   `json:"folder,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Created          string   `json:"created,omitempty"`
	LastModified     string   `json:"lastModified,omitempty"`
	ReminderIsSet    bool     `json:"reminderIsSet,omitempty"`
	ReminderDueBy    string   `json:"reminderDueBy,omitempty"`
	Status           string   `json:"status,omitempty"`
	IsComplete       *bool    `json:"isComplete,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	DueDate          string   `json:"dueDate,omitempty"`
	Start            string   `json:"start,omitempty"`
	End              string   `json:"end,omitempty"`
	Location         string   `json:"location,omitempty"`
	DisplayName      string   `json:"displayName,omitempty"`
	ToRecipientCount int      `json:"toRecipients,omitempty"`
}

func viewOf(it ews.Item) itemView {
	b := it.Base()
	v := itemView{
		Kind:          string(it.Kind()),
		ID:            b.ItemID().ID,
		ChangeKey:     b.ItemID().ChangeKey,
		Subject:       b.Subject(),
		Folder:        b.ParentFolderID().ID,
		Categories:    b.Categories(),
		Created:       b.DateTimeCreated().String(),
		LastModified:  b.LastModifiedTime().String(),
		ReminderIsSet: b.ReminderEnabled(),
		ReminderDueBy: b.ReminderDueBy().String(),
	}
	switch x := it.(type) {
	case *ews.Task:
		v.Status = string(x.Status())
		if x.Has(ews.TaskPath.IsComplete) {
			done := x.IsComplete()
			v.IsComplete = &done
		}
		v.StartDate = x.StartDate().String()
		v.DueDate = x.DueDate().String()
	case *ews.CalendarItem:
		v.Start = x.Start().String()
		v.End = x.End().String()
		v.Location = x.Location()
	case *ews.Contact:
		v.DisplayName = x.DisplayName()
	case *ews.Message:
		v.ToRecipientCount = len(x.ToRecipients())
	}
	return v
}

// printItem writes one item as "key: value" lines, skipping unset values.
func printItem(w io.Writer, v itemView) {
	line := func(k, val string) {
		if val != "" {
			fmt.Fprintf(w, "%-14s %s\n", k+":", val)
		}
	}
	line("Kind", v.Kind)
	line("ID", v.ID)
	line("ChangeKey", v.ChangeKey)
	line("Subject", v.Subject)
	line("Status", v.Status)
	if v.IsComplete != nil {
		line("Complete", fmt.Sprint(*v.IsComplete))
	}
	line("StartDate", v.StartDate)
	line("DueDate", v.DueDate)
	line("Start", v.Start)
	line("End", v.End)
	line("Location", v.Location)
	line("DisplayName", v.DisplayName)
	if v.ReminderIsSet {
		line("Reminder", v.ReminderDueBy)
	}
	line("Created", v.Created)
	line("LastModified", v.LastModified)
}
