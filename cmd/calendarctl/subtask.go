package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

func listCmd(c *cli) *cobra.Command {
	var (
		date, from, to, status string
		series                 int
		asJSON                 bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subtasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := subtask.ListInput{Status: model.SubtaskStatus(status), SeriesID: series}
			var err error
			now := c.now()
			if in.Date, err = resolveDate(c.app.Parser, date, now); err != nil {
				return err
			}
			if in.From, err = resolveDate(c.app.Parser, from, now); err != nil {
				return err
			}
			if in.To, err = resolveDate(c.app.Parser, to, now); err != nil {
				return err
			}

			out, err := c.app.Subtasks.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(c.out, out.Subtasks)
			}
			printSubtasks(c.out, out.Subtasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Only this day (YYYY-MM-DD, today, next monday, in 2 days)")
	cmd.Flags().StringVar(&from, "from", "", "Range start, inclusive")
	cmd.Flags().StringVar(&to, "to", "", "Range end, inclusive")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending, completed, cancelled)")
	cmd.Flags().IntVar(&series, "series", 0, "Only the series rooted at this id")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}

func addCmd(c *cli) *cobra.Command {
	var (
		in                        subtask.CreateInput
		date, until, status, prio string
		pattern                   string
	)
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a subtask, optionally recurring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				in.Title = args[0]
			}
			var err error
			now := c.now()
			if in.Date, err = resolveDate(c.app.Parser, date, now); err != nil {
				return err
			}
			if in.RecurrenceEndDate, err = resolveDate(c.app.Parser, until, now); err != nil {
				return err
			}
			in.Status = model.SubtaskStatus(status)
			in.Priority = model.Priority(prio)
			if in.IsRecurring {
				in.RecurrencePattern = model.RecurrencePattern(pattern)
			}

			out, err := c.app.Subtasks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Created #%d %q on %s\n", out.Subtask.ID, out.Subtask.Title, out.Subtask.Date)
			if n := len(out.Instances); n > 0 {
				fmt.Fprintf(c.out, "Generated %d %s instances\n", n, out.Subtask.RecurrencePattern)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "today", "Day of the subtask")
	cmd.Flags().StringVar(&in.StartTime, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&in.EndTime, "end", "", "End time HH:MM")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "Status (default pending)")
	cmd.Flags().StringVarP(&prio, "priority", "p", "", "Priority high, medium or low (default medium)")
	cmd.Flags().StringVar(&in.MajorTaskID, "major", "", "Major task id")
	cmd.Flags().IntSliceVar(&in.LinkedSubtaskIDs, "link", nil, "Linked subtask ids")
	cmd.Flags().BoolVarP(&in.IsRecurring, "recurring", "r", false, "Repeat the subtask")
	cmd.Flags().StringVar(&pattern, "pattern", string(model.PatternWeekly), "Recurrence pattern: daily, weekly or monthly")
	cmd.Flags().StringVar(&until, "until", "", "Last possible day of the recurrence (default one year out)")

	return cmd
}

func updateCmd(c *cli) *cobra.Command {
	var (
		series bool
		values struct {
			date, start, end, title, description, status, priority, completedOn, major string
		}
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Patch a subtask or its whole series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var p subtask.Patch
			flags := cmd.Flags()
			if flags.Changed("date") {
				d, err := resolveDate(c.app.Parser, values.date, c.now())
				if err != nil {
					return err
				}
				p.Date = &d
			}
			if flags.Changed("start") {
				p.StartTime = &values.start
			}
			if flags.Changed("end") {
				p.EndTime = &values.end
			}
			if flags.Changed("title") {
				p.Title = &values.title
			}
			if flags.Changed("description") {
				p.Description = &values.description
			}
			if flags.Changed("status") {
				st := model.SubtaskStatus(values.status)
				p.Status = &st
			}
			if flags.Changed("priority") {
				pr := model.Priority(values.priority)
				p.Priority = &pr
			}
			if flags.Changed("completed-on") {
				p.CompletedOnDate = &values.completedOn
			}
			if flags.Changed("major") {
				p.MajorTaskID = &values.major
			}
			if p.IsEmpty() {
				return fmt.Errorf("nothing to update")
			}

			out, err := c.app.Subtasks.Update(cmd.Context(), subtask.UpdateInput{ID: id, Patch: p, Scope: scopeOf(series)})
			if err != nil {
				return err
			}
			if !out.Found {
				fmt.Fprintf(c.out, "Subtask #%d not found\n", id)
				return nil
			}
			fmt.Fprintf(c.out, "Updated %d subtask(s)\n", len(out.Updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&values.date, "date", "d", "", "New day")
	cmd.Flags().StringVar(&values.start, "start", "", "New start time HH:MM")
	cmd.Flags().StringVar(&values.end, "end", "", "New end time HH:MM")
	cmd.Flags().StringVarP(&values.title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&values.description, "description", "", "New description")
	cmd.Flags().StringVarP(&values.status, "status", "s", "", "New status")
	cmd.Flags().StringVarP(&values.priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVar(&values.completedOn, "completed-on", "", "Day the work was finished")
	cmd.Flags().StringVar(&values.major, "major", "", "Major task id")
	cmd.Flags().BoolVar(&series, "series", false, "Apply to every subtask of the series (dates are kept)")

	return cmd
}

func deleteCmd(c *cli) *cobra.Command {
	var series bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subtask or its whole series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := c.app.Subtasks.Delete(cmd.Context(), subtask.DeleteInput{ID: id, Scope: scopeOf(series)})
			if err != nil {
				return err
			}
			if !out.Found {
				fmt.Fprintf(c.out, "Subtask #%d not found\n", id)
				return nil
			}
			fmt.Fprintf(c.out, "Removed %d subtask(s)\n", out.Removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&series, "series", false, "Delete the root and every instance of the series")

	return cmd
}

func scopeOf(series bool) subtask.Scope {
	if series {
		return subtask.ScopeSeries
	}
	return subtask.ScopeSingle
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subtask id %q", s)
	}
	return id, nil
}

func printSubtasks(w io.Writer, tasks []model.Subtask) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No subtasks")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tSTATUS\tPRIORITY\tSERIES\tTITLE")
	for _, t := range tasks {
		when := t.StartTime
		if t.EndTime != "" {
			when += "-" + t.EndTime
		}
		series := "-"
		if t.IsRecurring || t.HasParent() {
			series = "#" + strconv.Itoa(subtask.SeriesRootID(t))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date, when, t.Status, t.Priority, series, t.Title)
	}
	tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
