package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/getmockd/ews/pkg/ews"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var changeKey, shape string
	cmd := &cobra.Command{
		Use:   "get <item-id>",
		Short: "Fetch an item by id",
		Example: `  ewsctl get AAMkAGI2...
  ewsctl get AAMkAGI2... --shape IdOnly --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			it, err := svc.GetItem(cmd.Context(), ews.NewItemID(args[0], changeKey), ews.WithShape(ews.BaseShape(shape)))
			if err != nil {
				return err
			}
			v := viewOf(it)
			return a.printResult(cmd, v, func(w io.Writer) { printItem(w, v) })
		},
	}
	cmd.Flags().StringVar(&changeKey, "change-key", "", "ChangeKey of the item")
	cmd.Flags().StringVar(&shape, "shape", string(ews.ShapeAllProperties), "Base shape: IdOnly, Default or AllProperties")
	return cmd
}

// createdView is the JSON shape of a create result.
type createdView struct {
	ID        string `json:"id"`
	ChangeKey string `json:"changeKey"`
}

func newCreateTaskCmd(a *app) *cobra.Command {
	var (
		subject, body, status, start, due string
		reminder                          bool
		categories                        []string
	)
	cmd := &cobra.Command{
		Use:   "create-task",
		Short: "Create a task in the Tasks folder",
		Example: `  ewsctl create-task --subject "Write poem"
  ewsctl create-task --subject "Call Ann" --start 2015-01-17T12:00:00Z --due 2015-01-17T12:30:00Z --reminder`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task := ews.NewTask()
			task.SetSubject(subject)
			if body != "" {
				task.SetBody(ews.NewBody(body))
			}
			if status != "" {
				task.SetStatus(ews.TaskStatus(status))
			}
			if len(categories) > 0 {
				task.SetCategories(categories)
			}
			if start != "" {
				d, err := ews.ParseDateTime(start)
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				task.SetStartDate(d)
			}
			if due != "" {
				d, err := ews.ParseDateTime(due)
				if err != nil {
					return fmt.Errorf("--due: %w", err)
				}
				task.SetDueDate(d)
			}
			if reminder {
				if start == "" {
					return fmt.Errorf("--reminder requires --start")
				}
				task.SetReminderEnabled(true)
				task.SetReminderDueBy(task.StartDate())
			}

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			id, err := svc.CreateItem(cmd.Context(), task, ews.WithSavedItemFolder(ews.Distinguished(ews.FolderTasks)))
			if err != nil {
				return err
			}
			v := createdView{ID: id.ID, ChangeKey: id.ChangeKey}
			return a.printResult(cmd, v, func(w io.Writer) {
				fmt.Fprintf(w, "Created task: %s\n", id.ID)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&subject, "subject", "", "Subject of the task (required)")
	f.StringVar(&body, "body", "", "Plain-text body")
	f.StringVar(&status, "status", "", "NotStarted, InProgress, Completed, WaitingOnOthers or Deferred")
	f.StringVar(&start, "start", "", "Start date, e.g. 2015-01-17T12:00:00Z")
	f.StringVar(&due, "due", "", "Due date, e.g. 2015-01-17T12:30:00Z")
	f.BoolVar(&reminder, "reminder", false, "Set a reminder at the start date")
	f.StringArrayVar(&categories, "category", nil, "Category (repeatable)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var changeKey, deleteType string
	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Example: `  ewsctl delete AAMkAGI2...
  ewsctl delete AAMkAGI2... --type MoveToDeletedItems`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt := ews.DeleteType(deleteType)
			switch dt {
			case ews.HardDelete, ews.SoftDelete, ews.MoveToDeletedItems:
			default:
				return fmt.Errorf("unknown delete type %q", deleteType)
			}
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			item := ews.NewItem()
			item.SetItemID(ews.NewItemID(args[0], changeKey))
			if err := svc.DeleteItem(cmd.Context(), item, dt, ews.AllOccurrences); err != nil {
				return err
			}
			return a.printResult(cmd, map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted item: %s\n", args[0])
			})
		},
	}
	cmd.Flags().StringVar(&changeKey, "change-key", "", "ChangeKey of the item")
	cmd.Flags().StringVar(&deleteType, "type", string(ews.HardDelete), "HardDelete, SoftDelete or MoveToDeletedItems")
	return cmd
}

func newUpdateSubjectCmd(a *app) *cobra.Command {
	var changeKey, conflict string
	cmd := &cobra.Command{
		Use:   "update-subject <item-id> <subject>",
		Short: "Change the subject of an item",
		Long: `Change the subject of an item.

Without --change-key the current ChangeKey is fetched first, so the update
only fails if the item changes in between.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			current, err := svc.GetItem(ctx, ews.NewItemID(args[0], ""), ews.WithShape(ews.ShapeIDOnly))
			if err != nil {
				return err
			}
			if changeKey != "" {
				current.Base().SetItemID(ews.NewItemID(args[0], changeKey))
			}

			updated, err := svc.UpdateItem(ctx, current,
				[]ews.Change{ews.SetItemField(ews.ItemPath.Subject, args[1])},
				ews.WithConflictResolution(ews.ConflictResolution(conflict)))
			if err != nil {
				return err
			}
			id := updated.Base().ItemID()
			v := createdView{ID: id.ID, ChangeKey: id.ChangeKey}
			return a.printResult(cmd, v, func(w io.Writer) {
				fmt.Fprintf(w, "Updated item: %s\n", id.ID)
			})
		},
	}
	cmd.Flags().StringVar(&changeKey, "change-key", "", "Expected ChangeKey; the update fails if it is stale")
	cmd.Flags().StringVar(&conflict, "conflict", string(ews.NeverOverwrite),
		"Conflict resolution: "+strings.Join([]string{string(ews.NeverOverwrite), string(ews.AutoResolve), string(ews.AlwaysOverwrite)}, ", "))
	return cmd
}
