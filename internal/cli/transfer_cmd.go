package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/codec"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the people list as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := encodeExport(app.People.People())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", formatter.Plural(app.People.Len(), "person", "people"), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add people from a JSON file (comments allowed)",
		Long: "Reads a JSON array of people, as written by `roster export`. Comments and\n" +
			"trailing commas are accepted. Use - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			incoming, err := store.DecodeJSONC(data)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			for i, p := range incoming {
				if p.ID == "" {
					return fmt.Errorf("entry %d (%q) has no id", i+1, p.Name)
				}
			}

			next := incoming
			if !replace {
				next = append(app.People.People(), incoming...)
			}
			if max := app.People.MaxPeople(); max > 0 && len(next) > max {
				return fmt.Errorf("import would leave %d people, more than %d: %w", len(next), max, ErrLimitReached)
			}

			if err := app.People.ReplaceAll(context.Background(), next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d total)\n", formatter.Plural(len(incoming), "person", "people"), len(next))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current list instead of appending")

	return cmd
}

// encodeExport writes people as indented JSON with a trailing newline.
func encodeExport(people []domain.Person) ([]byte, error) {
	data, err := codec.JSON{}.MarshalIndent(domain.Normalize(people), "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding people: %w", err)
	}
	return append(data, '\n'), nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
