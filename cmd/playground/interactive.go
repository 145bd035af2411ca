package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/typelist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	shadowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type playModel struct {
	list    sample
	slots   []typelist.Slot
	input   textinput.Model
	status  string
	failed  bool
	cursor  int
	editing bool
}

func newPlayModel() *playModel {
	ti := textinput.New()
	ti.Placeholder = "new value"
	ti.CharLimit = 64

	return &playModel{
		list:  newSample(),
		slots: typelist.Describe[sample](),
		input: ti,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}
	return m.updateBrowsing(keyMsg)
}

func (m *playModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}
	case "enter":
		slot := m.slots[m.cursor]
		if slot.Shadowed {
			m.failed = true
			m.status = fmt.Sprintf("depth %d is shadowed by a shallower %s and cannot be reached", slot.Depth, slot.Type)
			break
		}
		m.editing = true
		m.status = ""
		m.input.SetValue("")
		m.input.Focus()
	}
	return m, nil
}

func (m *playModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.editing = false
		m.input.Blur()
		if err := m.apply(m.input.Value()); err != nil {
			m.failed = true
			m.status = err.Error()
		} else {
			m.failed = false
			m.status = fmt.Sprintf("set %s slot", m.slots[m.cursor].Type)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply parses raw according to the selected slot's type and writes it.
func (m *playModel) apply(raw string) error {
	switch slot := m.slots[m.cursor]; slot.Type {
	case reflect.TypeFor[int]():
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		typelist.Set(&m.list, v)
	case reflect.TypeFor[float64]():
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return err
		}
		typelist.Set(&m.list, v)
	case reflect.TypeFor[string]():
		typelist.Set(&m.list, raw)
	default:
		return fmt.Errorf("editing %s slots is not supported", slot.Type)
	}
	return nil
}

// valueAt renders the current value of slot i, going through the same Get
// path the library user would.
func (m *playModel) valueAt(i int) string {
	slot := m.slots[i]
	if slot.Shadowed {
		return "-"
	}
	switch slot.Type {
	case reflect.TypeFor[int]():
		v, _ := typelist.Value[int](&m.list)
		return strconv.Itoa(v)
	case reflect.TypeFor[float64]():
		v, _ := typelist.Value[float64](&m.list)
		return strconv.FormatFloat(v, 'g', -1, 64)
	case reflect.TypeFor[string]():
		v, _ := typelist.Value[string](&m.list)
		return strconv.Quote(v)
	}
	return "?"
}

func (m *playModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("typelist playground"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %-6s %-10s %-8s %-6s %-12s %s\n", "DEPTH", "TYPE", "OFFSET", "SIZE", "VALUE", "")

	for i, slot := range m.slots {
		note := ""
		if slot.Shadowed {
			note = shadowStyle.Render("shadowed")
		}
		row := fmt.Sprintf("%-6d %s %-8d %-6d %-12s %s",
			slot.Depth, typeStyle.Render(fmt.Sprintf("%-10s", slot.Type.String())),
			slot.Offset, slot.Size, m.valueAt(i), note)
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}

	if m.editing {
		b.WriteString("\n  new value: " + m.input.View() + "\n")
		b.WriteString(helpStyle.Render("\n  enter apply • esc cancel"))
	} else {
		if m.status != "" {
			style := resultStyle
			if m.failed {
				style = errorStyle
			}
			b.WriteString("\n  " + style.Render(m.status) + "\n")
		}
		b.WriteString(helpStyle.Render("\n  ↑/↓ move • enter edit • q quit"))
	}
	b.WriteByte('\n')

	return b.String()
}

func runInteractive() error {
	_, err := tea.NewProgram(newPlayModel(), tea.WithAltScreen()).Run()
	return err
}
