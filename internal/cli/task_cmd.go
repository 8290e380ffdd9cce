package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a person's tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add PERSON",
		Short: "Add a task to a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			if !p.CanAddTask(app.MaxTasks) {
				return fmt.Errorf("%s already has %d tasks: %w", p.Name, len(p.Tasks), ErrLimitReached)
			}
			t, err := p.AddTask(title)
			if err != nil {
				return fmt.Errorf("invalid task: %w", err)
			}
			if err := savePerson(app, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d %q for %s\n", len(p.Tasks), t.Title, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done PERSON TASK",
		Short: "Toggle a task between done and pending",
		Long:  "TASK is the task's number as shown by `roster show`, or its ID.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			t, err := resolveTask(p, args[1])
			if err != nil {
				return err
			}
			if err := p.ToggleTask(t.ID); err != nil {
				return err
			}
			if err := savePerson(app, p); err != nil {
				return err
			}
			state := "pending"
			if !t.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %q %s\n", t.Title, state)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove PERSON TASK",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			t, err := resolveTask(p, args[1])
			if err != nil {
				return err
			}
			if err := p.RemoveTask(t.ID); err != nil {
				return err
			}
			if err := savePerson(app, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %q from %s\n", t.Title, p.Name)
			return nil
		},
	}
}
