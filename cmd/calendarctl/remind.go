package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-calendar/internal/notification"
	"task-calendar/internal/subtask"
)

func remindCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send reminders for subtasks starting soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			all, err := c.app.Subtasks.List(ctx, subtask.ListInput{})
			if err != nil {
				return err
			}
			out, err := c.app.Notifier.CheckUpcoming(ctx, notification.CheckInput{Subtasks: all.Subtasks, Now: c.now()})
			if err != nil {
				return err
			}
			if len(out.Reminded) == 0 {
				fmt.Fprintln(c.out, "No reminders due")
			}
			for _, id := range out.Reminded {
				fmt.Fprintf(c.out, "Reminded #%d\n", id)
			}
			return nil
		},
	}
}
