// Package monitor implements an interactive terminal debugger over
// the CPU trace interface: single stepping, breakpoints and a live
// view of the register file and the memory around the program
// counter.
package monitor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/mp3/res/mos6502"
)

// runLimit bounds a single 'r' command so a program that never
// reaches a breakpoint or BRK can't wedge the UI.
const runLimit = 1_000_000

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	haltStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	cpu    *mos6502.CPU
	breaks map[uint16]struct{}

	prevPC uint16
	halted bool
	err    error

	// breakpoint entry mode: collects hex digits after 'b'
	entering bool
	input    string
}

// Init is the first function that will be called. It returns an
// optional initial command. To not perform an initial command return
// nil.
func (m model) Init() tea.Cmd {
	return nil
}

func (m model) step() model {
	m.prevPC = m.cpu.PC()
	halted, err := m.cpu.Step()
	m.halted = halted
	m.err = err
	return m
}

// Update is called when a message is received. Use it to inspect
// messages and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := msg.String()

		if m.entering {
			switch s {
			case "enter":
				if a, err := strconv.ParseUint(m.input, 16, 16); err == nil {
					m.breaks[uint16(a)] = struct{}{}
				}
				m.entering = false
				m.input = ""
			case "esc":
				m.entering = false
				m.input = ""
			default:
				if len(s) == 1 && strings.ContainsAny(s, "0123456789abcdefABCDEF") {
					m.input += s
				}
			}
			return m, nil
		}

		switch s {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			if m.halted || m.err != nil {
				return m, nil
			}
			m = m.step()
			if m.err != nil {
				return m, tea.Quit
			}

		case "r":
			for i := 0; i < runLimit && !m.halted && m.err == nil; i++ {
				m = m.step()
				if _, ok := m.breaks[m.cpu.PC()]; ok {
					break
				}
			}
			if m.err != nil {
				return m, tea.Quit
			}

		case "b":
			m.entering = true

		case "c":
			m.breaks = make(map[uint16]struct{})

		case "e":
			m.cpu.Reset()
			m.halted = false
		}
	}
	return m, nil
}

// renderPage renders a 16 byte row of memory. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.MemRead(start + i)
		if start+i == m.cpu.PC() {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	// zero page, the stack top and the code around PC
	offsets := []uint16{0x0000, 0x0010, 0x01F0}
	base := m.cpu.PC() &^ 0x000F
	for i := uint16(0); i < 4; i++ {
		offsets = append(offsets, base+16*i)
	}

	for _, o := range offsets {
		rows = append(rows, m.renderPage(o))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	ts := m.cpu.CurrentTraceState()

	lines := []string{
		"",
		ts.LogLine(),
		fmt.Sprintf("prev PC: %04x  cycles: %d", m.prevPC, m.cpu.TotalCycles()),
		"",
	}

	if len(m.breaks) > 0 {
		var bs []string
		for b := range m.breaks {
			bs = append(bs, fmt.Sprintf("%04x", b))
		}
		lines = append(lines, "breaks: "+strings.Join(bs, " "))
	}

	if m.entering {
		lines = append(lines, "breakpoint (eg ff15): "+m.input+"_")
	}

	if m.halted {
		lines = append(lines, haltStyle.Render(" HALT "))
	}

	return strings.Join(lines, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("res monitor")+dimStyle.Render("  space/j step · r run · b break · c clear · e reset · q quit"),
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			"   ",
			m.status(),
		),
		"",
		dimStyle.Render(spew.Sdump(m.cpu.CurrentTraceState())),
	)
}

// Run starts the interactive monitor on the given CPU and blocks
// until the user quits. A decode error that stopped the CPU is
// returned after the UI exits.
func Run(c *mos6502.CPU) error {
	final, err := tea.NewProgram(model{
		cpu:    c,
		breaks: make(map[uint16]struct{}),
	}).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
