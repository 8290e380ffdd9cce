package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var name string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.People.CanAdd() {
				return fmt.Errorf("cannot add more than %d people: %w", app.People.MaxPeople(), ErrLimitReached)
			}

			if !cmd.Flags().Changed("name") {
				if !app.interactive() {
					return fmt.Errorf("name is required (use --name)")
				}
				fields := &addPersonFields{}
				if err := addPersonForm(fields, app.MaxTasks).Run(); err != nil {
					return err
				}
				name = fields.name
				tasks = splitTaskLines(fields.tasks)
			}

			p, err := addPerson(app, name, tasks)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person name")
	cmd.Flags().StringArrayVar(&tasks, "task", nil, "Task title (repeatable)")

	return cmd
}

// newPersonWithin builds a person and enforces the per-person task cap the
// add dialog applies.
func newPersonWithin(name string, tasks []string, maxTasks int) (domain.Person, error) {
	if maxTasks > 0 && len(tasks) > maxTasks {
		return domain.Person{}, fmt.Errorf("at most %d tasks per person: %w", maxTasks, ErrLimitReached)
	}
	p, err := domain.NewPerson(name, tasks...)
	if err != nil {
		return domain.Person{}, fmt.Errorf("invalid person: %w", err)
	}
	return p, nil
}

func newListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List people, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printList(cmd, app, search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show people whose name contains this text (case-insensitive)")

	return cmd
}

func printList(cmd *cobra.Command, app *App, search string) error {
	out := cmd.OutOrStdout()
	if app.People.Len() == 0 {
		fmt.Fprintln(out, formatter.FormatEmptyRoster(app.People.MaxPeople(), app.MaxTasks))
		return nil
	}

	people := app.People.Filter(search)
	if len(people) == 0 {
		fmt.Fprintln(out, formatter.FormatNoMatches(search))
		return nil
	}

	fmt.Fprintln(out, formatter.FormatPeopleList(people, app.MaxTasks))
	return nil
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a person and their tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPersonCard(p, app.MaxTasks, false))
			return nil
		},
	}
}

func newUpdateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				return fmt.Errorf("nothing to update (use --name)")
			}
			if err := p.Rename(name); err != nil {
				return fmt.Errorf("invalid person: %w", err)
			}
			if err := savePerson(app, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")

	return cmd
}

// savePerson writes back an edited person; a person that vanished in the
// meantime is reported rather than silently ignored.
func savePerson(app *App, p domain.Person) error {
	found, err := app.People.Update(context.Background(), p)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %q", service.ErrPersonNotFound, p.ID)
	}
	return nil
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a person",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePerson(app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.People.Delete(context.Background(), p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show people and task totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(app.People.Stats(), app.People.MaxPeople()))
			return nil
		},
	}
}
