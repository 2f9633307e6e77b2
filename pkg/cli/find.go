package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/ews/pkg/cli/internal/output"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/spf13/cobra"
)

// findView is the JSON shape of a search result.
type findView struct {
	Items       []itemView `json:"items"`
	Total       int        `json:"total"`
	IncludesEnd bool       `json:"includesLastItem"`
	Skipped     int        `json:"skipped,omitempty"`
}

func newFindTasksCmd(a *app) *cobra.Command {
	var (
		incomplete      bool
		subject, folder string
		maxEntries      int
		offset          int
	)
	cmd := &cobra.Command{
		Use:   "find-tasks",
		Short: "List tasks, optionally filtered",
		Example: `  ewsctl find-tasks --incomplete
  ewsctl find-tasks --subject poem --max 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filters []ews.Restriction
			if incomplete {
				filters = append(filters, ews.IsEqualTo(ews.TaskPath.IsComplete, false))
			}
			if subject != "" {
				filters = append(filters, ews.ContainsSubstring(ews.ItemPath.Subject, subject))
			}
			var r ews.Restriction
			switch len(filters) {
			case 0:
			case 1:
				r = filters[0]
			default:
				r = ews.AndOf(filters...)
			}

			opts := []ews.CallOption{}
			if maxEntries > 0 {
				opts = append(opts, ews.WithPaging(maxEntries, offset))
			}

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			res, err := svc.FindItem(cmd.Context(), ews.Distinguished(ews.StandardFolder(folder)), r, opts...)
			if err != nil {
				return err
			}

			v := findView{Items: []itemView{}, Total: res.TotalItemsInView, IncludesEnd: res.IncludesLastItemInRange}
			for _, it := range res.Items() {
				v.Items = append(v.Items, viewOf(it))
			}
			v.Skipped = len(res.Outcomes) - len(v.Items)
			if v.Skipped > 0 {
				output.Warn(cmd.ErrOrStderr(), "%d items could not be decoded: %v", v.Skipped, res.Err())
			}

			return a.printResult(cmd, v, func(w io.Writer) {
				if len(v.Items) == 0 {
					fmt.Fprintln(w, "No tasks found")
					return
				}
				tw := output.Table(w)
				fmt.Fprintln(tw, "ID\tSTATUS\tDUE\tSUBJECT")
				for _, it := range v.Items {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.ID, it.Status, orDash(it.DueDate), it.Subject)
				}
				_ = tw.Flush()
			})
		},
	}
	f := cmd.Flags()
	f.BoolVar(&incomplete, "incomplete", false, "Only tasks that are not complete")
	f.StringVar(&subject, "subject", "", "Only tasks whose subject contains this text, ignoring case")
	f.StringVar(&folder, "folder", string(ews.FolderTasks), "Distinguished folder to search")
	f.IntVar(&maxEntries, "max", 0, "Maximum number of tasks to return")
	f.IntVar(&offset, "offset", 0, "Number of matching tasks to skip (with --max)")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
