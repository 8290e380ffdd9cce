package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errBoardNeedsTTY is returned by the board command when stdin is not a terminal.
var errBoardNeedsTTY = errors.New("the board needs an interactive terminal")

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive people board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errBoardNeedsTTY
			}
			return runBoard(app)
		},
	}
}

func runBoard(app *App) error {
	p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
