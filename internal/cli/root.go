package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/roster/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrLimitReached is returned when an add affordance is disabled because the
// soft cap has been reached.
var ErrLimitReached = errors.New("limit reached")

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigPath string
	Backend    string
	DBPath     string
	DataDir    string
	StoreKey   string
}

// App holds the people service and settings used by CLI commands.
type App struct {
	People   service.PeopleService
	MaxTasks int

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Setup runs once before any command, with the parsed global flags, and
	// must fill People. Tests leave it nil and set People directly.
	Setup func(GlobalFlags) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func addGlobalFlags(fs *pflag.FlagSet, g *GlobalFlags) {
	fs.StringVar(&g.ConfigPath, "config", "", "Path to a YAML config file (default $ROSTER_CONFIG)")
	fs.StringVar(&g.Backend, "backend", "", "Store backend: sqlite, file or memory")
	fs.StringVar(&g.DBPath, "db", "", "SQLite database path (sqlite backend)")
	fs.StringVar(&g.DataDir, "data-dir", "", "Directory for JSON files (file backend)")
	fs.StringVar(&g.StoreKey, "key", "", "Key the people list is stored under")
}

// NewRootCmd creates the top-level "roster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags GlobalFlags

	root := &cobra.Command{
		Use:           "roster",
		Short:         "Keep a short task list for each of your people",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.People != nil || app.Setup == nil {
				return nil
			}
			return app.Setup(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.People == nil {
				return fmt.Errorf("no people store configured")
			}
			if app.interactive() {
				return runBoard(app)
			}
			return printList(cmd, app, "")
		},
	}
	addGlobalFlags(root.PersistentFlags(), &flags)

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newUpdateCmd(app),
		newRemoveCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newBoardCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
