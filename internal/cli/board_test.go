package cli

import (
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/teatest"
	"github.com/alexanderramin/roster/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardDriver wraps teatest.Driver with access to boardModel internals.
type boardDriver struct {
	*teatest.Driver
}

func newBoardDriver(t *testing.T, app *App) *boardDriver {
	t.Helper()
	d := teatest.New(t, newBoardModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return &boardDriver{Driver: d}
}

func (d *boardDriver) board() boardModel {
	return d.Model.(boardModel)
}

func (d *boardDriver) Mode() boardMode {
	return d.board().mode
}

func TestBoard_EmptyState(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "TASK MANAGER")
	assert.Contains(t, view, "Start by adding your first person!")
	assert.NotContains(t, view, "/ to search")

	d.PressKey('/')
	assert.Equal(t, modeBrowse, d.Mode(), "search is unavailable while the list is empty")
}

func TestBoard_SearchFiltersCards(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPeople("Ana", "Ben", "Cid")...)
	d := newBoardDriver(t, app)

	assert.Contains(t, d.View(), "/ to search")

	d.PressKey('/')
	require.Equal(t, modeSearch, d.Mode())
	d.Type("N")

	view := d.View()
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "Ben")
	assert.NotContains(t, view, "Cid")

	d.PressEnter()
	assert.Equal(t, modeBrowse, d.Mode())
	assert.Equal(t, "N", d.board().search.Value(), "enter keeps the term")

	d.PressEsc()
	assert.Contains(t, d.View(), "Cid")
}

func TestBoard_SearchNoMatches(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPerson("Ana"))
	d := newBoardDriver(t, app)

	d.PressKey('/')
	d.Type("zzz")

	assert.Contains(t, d.View(), `No people match "zzz"`)

	d.PressEsc()
	assert.Equal(t, modeBrowse, d.Mode())
	assert.Empty(t, d.board().search.Value())
}

func TestBoard_AddDisabledWhenFull(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPeople("Ana", "Ben", "Cid")...)
	d := newBoardDriver(t, app)

	assert.NotContains(t, d.View(), "a add")

	d.PressKey('a')
	assert.Equal(t, modeBrowse, d.Mode())
	assert.Contains(t, d.View(), "Maximum of 3 people reached")
}

func TestBoard_AddDialogOpensAndCancels(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('a')
	require.Equal(t, modeAdd, d.Mode())
	assert.Contains(t, d.View(), "ADD PERSON")

	d.PressEsc()
	assert.Equal(t, modeBrowse, d.Mode())
	assert.Nil(t, d.board().form)
	assert.Contains(t, d.View(), "Cancelled.")
	assert.Equal(t, 0, app.People.Len())
}

// formSettledMsg stands in for whatever message arrives after the add form
// has finished; the board only needs a tick to notice the new state.
type formSettledMsg struct{}

// completeAddForm fills the dialog's bound values and marks the form done,
// the way huh leaves it after the last field is submitted.
func (d *boardDriver) completeAddForm(name, tasks string) {
	d.T.Helper()
	m := d.board()
	require.NotNil(d.T, m.form)
	m.fields.name = name
	m.fields.tasks = tasks
	m.form.State = huh.StateCompleted
	d.Send(formSettledMsg{})
}

func TestBoard_AddDialogCompletes(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPeople("Ana", "Ben")...)
	d := newBoardDriver(t, app)

	d.PressKey('a')
	require.Equal(t, modeAdd, d.Mode())
	d.completeAddForm("  Dee ", "Walk dog\n\nFeed cat\n")

	assert.Equal(t, modeBrowse, d.Mode())
	assert.Nil(t, d.board().form)
	require.Equal(t, 3, app.People.Len())

	sel, ok := d.board().selected()
	require.True(t, ok)
	assert.Equal(t, "Dee", sel.Name)
	require.Len(t, sel.Tasks, 2)
	assert.Equal(t, "Walk dog", sel.Tasks[0].Title)
	assert.Equal(t, "Feed cat", sel.Tasks[1].Title)
	assert.Contains(t, d.View(), "Added Dee")
}

func TestBoard_AddDialogCompletesWithBlankName(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('a')
	require.Equal(t, modeAdd, d.Mode())
	d.completeAddForm("   ", "")

	assert.Equal(t, modeBrowse, d.Mode())
	assert.ErrorIs(t, d.board().err, domain.ErrEmptyName)
	assert.Equal(t, 0, app.People.Len())
}

func TestBoard_ToggleTaskByNumber(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestPerson("Ana", testutil.WithTasks("Buy milk", "Call Ben"))
	seedPeople(t, app, p)
	d := newBoardDriver(t, app)

	d.PressKey('2')

	got, err := app.People.Get(p.ID)
	require.NoError(t, err)
	assert.False(t, got.Tasks[0].Completed)
	assert.True(t, got.Tasks[1].Completed)
	assert.Contains(t, d.View(), `Completed "Call Ben"`)

	d.PressKey('2')
	got, err = app.People.Get(p.ID)
	require.NoError(t, err)
	assert.False(t, got.Tasks[1].Completed)

	// Out-of-range numbers are ignored.
	d.PressKey('9')
	assert.NoError(t, d.board().err)
}

func TestBoard_AddTask(t *testing.T) {
	app := testApp(t)
	p := testutil.NewTestPerson("Ana")
	seedPeople(t, app, p)
	d := newBoardDriver(t, app)

	d.PressKey('t')
	require.Equal(t, modeAddTask, d.Mode())
	d.Type("Walk dog")
	d.PressEnter()

	assert.Equal(t, modeBrowse, d.Mode())
	got, err := app.People.Get(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Walk dog", got.Tasks[0].Title)
}

func TestBoard_AddTaskRespectsCap(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPerson("Ana", testutil.WithTasks("a", "b")))
	d := newBoardDriver(t, app)

	d.PressKey('t')
	assert.Equal(t, modeBrowse, d.Mode())
	assert.Contains(t, d.View(), "Ana already has 2 tasks")
}

func TestBoard_DeleteWithConfirmation(t *testing.T) {
	app := testApp(t)
	seedPeople(t, app, testutil.NewTestPeople("Ana", "Ben")...)
	d := newBoardDriver(t, app)

	d.PressDown()
	d.PressKey('d')
	require.Equal(t, modeConfirmDelete, d.Mode())
	assert.Contains(t, d.View(), "Remove Ben? (y/n)")

	d.PressKey('n')
	assert.Equal(t, 2, app.People.Len())

	d.PressKey('d')
	d.PressKey('y')
	assert.Equal(t, []string{"Ana"}, testutil.Names(app.People.People()))
	assert.Equal(t, 0, d.board().cursor)
}

func TestBoard_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			d := newBoardDriver(t, testApp(t))
			d.SendKey(key)
			assert.True(t, d.Quitting)
		})
	}
}

func TestApplyAddPerson(t *testing.T) {
	app := testApp(t)

	p, err := applyAddPerson(app, &addPersonFields{name: " Dee ", tasks: "Buy milk\n\n  Call Ben  \n"})
	require.NoError(t, err)
	assert.Equal(t, "Dee", p.Name)

	got, err := app.People.Get(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Call Ben", got.Tasks[1].Title)
}

func TestApplyAddPerson_Errors(t *testing.T) {
	app := testApp(t)

	_, err := applyAddPerson(app, &addPersonFields{name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = applyAddPerson(app, &addPersonFields{name: "Ana", tasks: "a\nb\nc"})
	assert.ErrorIs(t, err, ErrLimitReached)

	seedPeople(t, app, testutil.NewTestPeople("Ana", "Ben", "Cid")...)
	_, err = applyAddPerson(app, &addPersonFields{name: "Dee"})
	assert.ErrorIs(t, err, ErrLimitReached)
}

func TestSplitTaskLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitTaskLines(" a \n\n\tb\n"))
	assert.Empty(t, splitTaskLines("  \n "))
}
