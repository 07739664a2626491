package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dimcalc/internal/calc"
)

const (
	stateMenu = iota
	stateInputs
	stateResult
)

// SaveFunc persists a result and returns its record id.
type SaveFunc func(calc.Result) (string, error)

type calculator struct {
	state     int
	cursor    int
	formulas  []calc.Formula
	selected  calc.Formula
	values    []float64
	inputIdx  int
	editing   bool
	editBuf   string
	result    calc.Result
	status    string
	err       error
	precision int
	save      SaveFunc
	width     int
}

func newCalculator(reg *calc.Registry, precision int, save SaveFunc) calculator {
	return calculator{
		state:     stateMenu,
		formulas:  reg.List(),
		precision: precision,
		save:      save,
		width:     80,
	}
}

func (m calculator) Init() tea.Cmd { return nil }

func (m calculator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m calculator) handleKey(msg tea.KeyMsg) (calculator, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInputs:
		return m.inputKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m calculator) menuKey(msg tea.KeyMsg) (calculator, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.formulas)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.formulas) == 0 {
			return m, nil
		}
		m.selected = m.formulas[m.cursor]
		m.values = make([]float64, len(m.selected.Inputs))
		for i := range m.values {
			m.values[i] = 1
		}
		m.state, m.inputIdx, m.err = stateInputs, 0, nil
	}
	return m, nil
}

func (m calculator) inputKey(msg tea.KeyMsg) (calculator, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(m.editBuf, 64)
			if err != nil {
				m.err = fmt.Errorf("%s: %q is not a number", m.selected.Inputs[m.inputIdx].Name, m.editBuf)
			} else {
				m.values[m.inputIdx], m.err = v, nil
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-+eE") {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.inputIdx > 0 {
			m.inputIdx--
		}
	case "down", "j":
		if m.inputIdx < len(m.values)-1 {
			m.inputIdx++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, FormatNumber(m.values[m.inputIdx], -1)
	case "left", "h":
		m.values[m.inputIdx] /= 2
	case "right", "l":
		m.values[m.inputIdx] *= 2
	case "c", "=":
		res, err := m.selected.Apply(m.values)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.result, m.status, m.err = res, "", nil
		m.state = stateResult
	}
	return m, nil
}

func (m calculator) resultKey(msg tea.KeyMsg) (calculator, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = stateInputs
	case "m":
		m.state = stateMenu
	case "s":
		if m.save == nil {
			m.status = "saving disabled"
			return m, nil
		}
		id, err := m.save(m.result)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = "saved " + id
	}
	return m, nil
}

func (m calculator) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInputs:
		return m.viewInputs()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m calculator) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("DIMCALC") + "\n  " + Subtle.Render("dimensional calculator") + "\n\n")
	for i, f := range m.formulas {
		line := fmt.Sprintf("%-24s %s", f.Name, Signature(f))
		if i == m.cursor {
			b.WriteString("  " + Pointer.Render("▸") + " " + Selected.Render(line) + "\n")
		} else {
			b.WriteString("    " + Subtle.Render(line) + "\n")
		}
	}
	b.WriteString("\n  " + Hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m calculator) viewInputs() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render(strings.ToUpper(m.selected.Name)) + "\n  " + Subtle.Render(m.selected.Description) + "\n\n")
	for i, in := range m.selected.Inputs {
		val := FormatValue(m.values[i], in.Quantity.Unit(), m.precision)
		if m.editing && i == m.inputIdx {
			val = m.editBuf + "_"
		}
		if i == m.inputIdx {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Pointer.Render("▸"), Selected.Render(fmt.Sprintf("%-14s", in.Name)), MetricValue.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", in.Name)), val))
		}
	}
	if m.err != nil {
		b.WriteString("\n  " + ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + Hints("j/k", "select", "enter", "edit", "h/l", "halve/double", "c", "compute", "esc", "back") + "\n")
	return b.String()
}

func (m calculator) viewResult() string {
	var b strings.Builder
	b.WriteString("\n" + ResultTable(m.result, m.precision) + "\n")
	if !m.result.Finite() {
		b.WriteString("  " + Warning.Render("result is not a finite number") + "\n")
	}
	if m.status != "" {
		b.WriteString("  " + Subtle.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("  " + ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + Hints("s", "save", "esc", "inputs", "m", "menu", "q", "quit") + "\n")
	return b.String()
}

func RunInteractive(reg *calc.Registry, precision int, save SaveFunc) error {
	_, err := tea.NewProgram(newCalculator(reg, precision, save), tea.WithAltScreen()).Run()
	return err
}
