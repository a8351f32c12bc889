package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/db"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
)

// keyMap defines the browser key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	ShowAll key.Binding
	Refresh key.Binding
	Quit    key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "c"), key.WithHelp("space/c", "toggle done")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ShowAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show completed")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc")),
	}
}

type tasksLoadedMsg []models.Task

type errMsg struct{ err error }

// Browser is the interactive task list shown by `task ui`.
type Browser struct {
	db     *db.DB
	styles *Styles
	keys   keyMap

	tasks   []models.Task
	cursor  int
	scrollY int
	showAll bool

	confirmingDelete bool
	err              error

	width  int
	height int
}

// NewBrowser creates the interactive task browser.
func NewBrowser(database *db.DB) *Browser {
	return &Browser{
		db:     database,
		styles: DefaultStyles(),
		keys:   defaultKeyMap(),
		height: 24,
		width:  80,
	}
}

func (b *Browser) Init() tea.Cmd {
	return b.reload
}

func (b *Browser) reload() tea.Msg {
	tasks, err := b.db.ListTasks(b.showAll)
	if err != nil {
		return errMsg{err}
	}
	return tasksLoadedMsg(tasks)
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

	case tasksLoadedMsg:
		b.tasks = msg
		if b.cursor >= len(b.tasks) {
			b.cursor = len(b.tasks) - 1
		}
		if b.cursor < 0 {
			b.cursor = 0
		}

	case errMsg:
		b.err = msg.err

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b.confirmingDelete {
		switch {
		case key.Matches(msg, b.keys.Confirm):
			b.confirmingDelete = false
			if task := b.selected(); task != nil {
				id := task.ID
				return b, func() tea.Msg {
					if err := b.db.DeleteTask(id); err != nil {
						return errMsg{err}
					}
					return b.reload()
				}
			}
		case key.Matches(msg, b.keys.Cancel):
			b.confirmingDelete = false
		}
		return b, nil
	}

	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.tasks)-1 {
			b.cursor++
		}

	case key.Matches(msg, b.keys.Toggle):
		if task := b.selected(); task != nil {
			id, completed := task.ID, task.Completed
			return b, func() tea.Msg {
				var err error
				if completed {
					err = b.db.UncompleteTask(id)
				} else {
					err = b.db.CompleteTask(id)
				}
				if err != nil {
					return errMsg{err}
				}
				return b.reload()
			}
		}

	case key.Matches(msg, b.keys.Delete):
		if b.selected() != nil {
			b.confirmingDelete = true
		}

	case key.Matches(msg, b.keys.ShowAll):
		b.showAll = !b.showAll
		return b, b.reload

	case key.Matches(msg, b.keys.Refresh):
		b.err = nil
		return b, b.reload
	}
	return b, nil
}

func (b *Browser) selected() *models.Task {
	if b.cursor < 0 || b.cursor >= len(b.tasks) {
		return nil
	}
	return &b.tasks[b.cursor]
}

func (b *Browser) View() string {
	var v strings.Builder

	title := "Tasks"
	if b.showAll {
		title = "Tasks (including completed)"
	}
	v.WriteString(b.styles.Title.Render(title) + "\n\n")

	if b.err != nil {
		v.WriteString(b.styles.Overdue.Render("error: "+b.err.Error()) + "\n\n")
	}

	if len(b.tasks) == 0 {
		v.WriteString(b.styles.Dim.Render("no tasks") + "\n")
	} else {
		// Reserve lines for the title and footer, scroll the rest.
		visible := b.height - 6
		if visible < 1 {
			visible = 1
		}
		if b.cursor < b.scrollY {
			b.scrollY = b.cursor
		}
		if b.cursor >= b.scrollY+visible {
			b.scrollY = b.cursor - visible + 1
		}

		end := b.scrollY + visible
		if end > len(b.tasks) {
			end = len(b.tasks)
		}
		for i := b.scrollY; i < end; i++ {
			line := b.styles.TaskLine(b.tasks[i])
			if i == b.cursor {
				line = b.styles.Selection.Render("> ") + line
			} else {
				line = "  " + line
			}
			v.WriteString(line + "\n")
		}
	}

	v.WriteByte('\n')
	if b.confirmingDelete {
		if task := b.selected(); task != nil {
			v.WriteString(b.styles.Overdue.Render(fmt.Sprintf("delete %q? (y/n)", task.Title)) + "\n")
		}
	} else {
		v.WriteString(b.styles.Help.Render("↑/↓ move · space toggle · d delete · a show completed · r refresh · q quit") + "\n")
	}
	return v.String()
}
