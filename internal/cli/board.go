package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// boardMode tracks what the board's key presses are routed to.
type boardMode int

const (
	modeBrowse        boardMode = iota // Cursor movement and single-key actions.
	modeSearch                         // Typing into the search box.
	modeAdd                            // Add dialog (huh form).
	modeAddTask                        // Typing a new task title for the selected person.
	modeConfirmDelete                  // Waiting for y/n before deleting.
)

const cardWidth = 42

// boardModel is the interactive people board.
type boardModel struct {
	app *App

	mode      boardMode
	search    textinput.Model
	taskInput textinput.Model
	form      *huh.Form
	fields    *addPersonFields

	cursor int
	width  int

	status string
	err    error

	quitting bool
}

func newBoardModel(app *App) boardModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by name..."
	search.CharLimit = 100

	task := textinput.New()
	task.Prompt = "+ "
	task.Placeholder = "Task title"
	task.CharLimit = 200

	return boardModel{
		app:       app,
		search:    search,
		taskInput: task,
		width:     cardWidth * 2,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(min(msg.Width, 60))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeAddTask:
			return m.updateAddTask(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// The huh form needs its own init and focus messages.
	if m.mode == modeAdd && m.form != nil {
		return m.updateAdd(msg)
	}
	return m, nil
}

// ── browse mode ──────────────────────────────────────────────────────────────

func (m boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.err = "", nil
	visible := m.visible()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "right", "l":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case "/":
		if m.app.People.Len() == 0 {
			return m, nil
		}
		m.mode = modeSearch
		return m, m.search.Focus()

	case "esc":
		if m.search.Value() != "" {
			m.search.Reset()
			m.cursor = 0
		}

	case "a":
		if !m.app.People.CanAdd() {
			m.status = fmt.Sprintf("Maximum of %d people reached", m.app.People.MaxPeople())
			return m, nil
		}
		m.fields = &addPersonFields{}
		m.form = addPersonForm(m.fields, m.app.MaxTasks).WithWidth(min(m.width, 60))
		m.mode = modeAdd
		return m, m.form.Init()

	case "t":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !p.CanAddTask(m.app.MaxTasks) {
			m.status = fmt.Sprintf("%s already has %d tasks", p.Name, len(p.Tasks))
			return m, nil
		}
		m.taskInput.Reset()
		m.mode = modeAddTask
		return m, m.taskInput.Focus()

	case "d", "x":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.toggleTask(int(msg.Runes[0] - '0'))
	}

	return m, nil
}

func (m *boardModel) toggleTask(n int) {
	p, ok := m.selected()
	if !ok || n > len(p.Tasks) {
		return
	}
	t := p.Tasks[n-1]
	if err := p.ToggleTask(t.ID); err != nil {
		m.err = err
		return
	}
	if err := savePerson(m.app, p); err != nil {
		m.err = err
		return
	}
	if t.Completed {
		m.status = fmt.Sprintf("Reopened %q", t.Title)
	} else {
		m.status = fmt.Sprintf("Completed %q", t.Title)
	}
}

// ── search mode ──────────────────────────────────────────────────────────────

func (m boardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Reset()
		m.search.Blur()
		m.mode = modeBrowse
		m.cursor = 0
		return m, nil
	case tea.KeyEnter, tea.KeyDown:
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

// ── add dialog ───────────────────────────────────────────────────────────────

func (m boardModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		m.status = "Cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fields := m.fields
		m.closeForm()
		p, err := applyAddPerson(m.app, fields)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Added %s", p.Name)
		m.selectID(p.ID)
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		m.status = "Cancelled."
		return m, nil
	}

	return m, cmd
}

func (m *boardModel) closeForm() {
	m.form = nil
	m.fields = nil
	m.mode = modeBrowse
}

// ── add task ─────────────────────────────────────────────────────────────────

func (m boardModel) updateAddTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.taskInput.Blur()
		m.mode = modeBrowse
		m.status = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		title := m.taskInput.Value()
		m.taskInput.Reset()
		m.taskInput.Blur()
		m.mode = modeBrowse

		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		t, err := p.AddTask(title)
		if err != nil {
			m.err = err
			return m, nil
		}
		if err := savePerson(m.app, p); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Added task %q for %s", t.Title, p.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

// ── delete confirmation ──────────────────────────────────────────────────────

func (m boardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	p, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		if _, err := m.app.People.Delete(context.Background(), p.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Removed %s", p.Name)
		m.clampCursor()
	default:
		m.status = "Cancelled."
	}
	return m, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (m boardModel) visible() []domain.Person {
	return m.app.People.Filter(m.search.Value())
}

func (m boardModel) selected() (domain.Person, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Person{}, false
	}
	return visible[m.cursor], true
}

func (m *boardModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// selectID moves the cursor to id if it is visible under the current search.
func (m *boardModel) selectID(id string) {
	for i, p := range m.visible() {
		if p.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatTitle(m.app.People.MaxPeople()) + "\n\n")
	b.WriteString(formatter.FormatStats(m.app.People.Stats(), m.app.People.MaxPeople()) + "\n\n")

	if m.mode == modeAdd && m.form != nil {
		b.WriteString(formatter.Header("Add person") + "\n")
		b.WriteString(m.form.View() + "\n")
		b.WriteString(formatter.Dim("esc cancel"))
		return b.String()
	}

	if m.app.People.Len() == 0 {
		b.WriteString(formatter.FormatEmptyRoster(m.app.People.MaxPeople(), m.app.MaxTasks) + "\n\n")
	} else {
		b.WriteString(m.searchLine() + "\n\n")
		b.WriteString(m.cards() + "\n\n")
	}

	switch m.mode {
	case modeAddTask:
		b.WriteString(m.taskInput.View() + "\n")
	case modeConfirmDelete:
		if p, ok := m.selected(); ok {
			b.WriteString(formatter.StyleYellow.Render(fmt.Sprintf("Remove %s? (y/n)", p.Name)) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.Dim(m.status) + "\n")
	}

	b.WriteString(m.helpLine())
	return b.String()
}

func (m boardModel) searchLine() string {
	if m.mode == modeSearch {
		return m.search.View()
	}
	if term := m.search.Value(); term != "" {
		return formatter.StyleYellow.Render("/ ") + term + formatter.Dim("  (esc to clear)")
	}
	return formatter.Dim("/ to search")
}

func (m boardModel) cards() string {
	visible := m.visible()
	if len(visible) == 0 {
		return formatter.FormatNoMatches(m.search.Value())
	}
	cards := make([]string, len(visible))
	for i, p := range visible {
		cards[i] = formatter.FormatPersonCard(p, m.app.MaxTasks, i == m.cursor)
	}
	return formatter.FormatCards(cards, m.width/cardWidth)
}

func (m boardModel) helpLine() string {
	keys := []string{"↑/↓ move", "1-9 toggle", "t task", "d remove", "/ search", "q quit"}
	if m.app.People.CanAdd() {
		keys = append([]string{"a add"}, keys...)
	}
	return formatter.Dim(strings.Join(keys, " · "))
}
