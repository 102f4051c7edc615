package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// errorStyle defines the style for failed command output.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// maxConsoleLines caps the scrollback kept in the console viewport.
const maxConsoleLines = 200

// deviceFile is the open device handle the console drives. It is
// satisfied by [host.OpenFile].
type deviceFile interface {
	io.Reader
	io.Writer
	io.Seeker
	Pos() int64
}

// DeviceInfo carries the static facts shown in the status panel.
type DeviceInfo struct {
	Name     string
	Path     string
	Number   string
	Capacity int64
}

// TeaModel is the principal [tea.Model] for the device console.
type TeaModel struct {
	width  int
	height int

	uiHandler *Handler
	file      deviceFile
	info      DeviceInfo

	input   textinput.Model
	console viewport.Model
	lines   []string

	fullWidthWithBorders int

	ready bool
}

// NewTeaModel returns an initial new [TeaModel] driving the given device
// handle.
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, file deviceFile, info DeviceInfo) TeaModel {
	input := textinput.New()
	input.Placeholder = "read 16 | write <text> | seek 0 set | status | quit"
	input.Prompt = fmt.Sprintf("%s> ", info.Path)
	input.Focus()

	console := viewport.New(80, 20)

	return TeaModel{
		uiHandler: uiHandler,
		file:      file,
		info:      info,
		input:     input,
		console:   console,
		lines:     make([]string, 0, maxConsoleLines),
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")

			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			if line != "" {
				m.appendLines(m.input.Prompt + line)
				m.appendLines(m.execute(line)...)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2

		// Console height: everything minus status panel, input and help.
		consoleHeight := m.height - 10 //nolint:mnd
		if consoleHeight < 3 {
			consoleHeight = 3
		}

		m.console.Width = m.fullWidthWithBorders
		m.console.Height = consoleHeight
		m.input.Width = m.fullWidthWithBorders

		m.refreshConsole()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case LogMsg:
		m.appendLines(string(msg))
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.console, cmd = m.console.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the device console..."
	}

	statusSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Device Status"),
				infoStyle.Width(m.fullWidthWithBorders).Render(m.formatStatus()),
			),
		)

	consoleSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(m.console.View())

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("enter: run command • esc/ctrl+c: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		statusSection,
		consoleSection,
		m.input.View(),
		helpSection,
	)
}

// appendLines adds output lines to the console scrollback, trimming the
// oldest entries past the cap.
func (m *TeaModel) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if overflow := len(m.lines) - maxConsoleLines; overflow > 0 {
		m.lines = m.lines[overflow:]
	}

	m.refreshConsole()
}

// refreshConsole re-renders the scrollback into the viewport.
func (m *TeaModel) refreshConsole() {
	if len(m.lines) == 0 {
		return
	}

	content := lipgloss.NewStyle().
		Width(m.console.Width).
		Render(strings.Join(m.lines, "\n"))

	m.console.SetContent(content)
	m.console.GotoBottom()
}

// formatStatus renders the status panel contents.
func (m TeaModel) formatStatus() string {
	return fmt.Sprintf(
		"Device: %s (number %s)\nNode: %s\nCapacity: %s\nCursor: %d of %d",
		m.info.Name,
		m.info.Number,
		m.info.Path,
		humanize.Bytes(uint64(m.info.Capacity)), //nolint:gosec
		m.file.Pos(),
		m.info.Capacity,
	)
}

// execute parses and runs one console command against the device handle,
// returning the lines to print.
func (m TeaModel) execute(line string) []string {
	fields := strings.Fields(line)

	switch fields[0] {
	case "help":
		return []string{
			"read <n>            read n bytes at the cursor",
			"write <text>        write text at the cursor",
			"seek <off> [mode]   reposition cursor (mode: set, cur, end)",
			"status              show cursor position",
			"quit                leave the console",
		}

	case "status":
		return []string{fmt.Sprintf("cursor at %d of %d", m.file.Pos(), m.info.Capacity)}

	case "read":
		return m.executeRead(fields[1:])

	case "write":
		if len(fields) < 2 {
			return []string{errorStyle.Render("usage: write <text>")}
		}

		text := strings.TrimSpace(strings.TrimPrefix(line, "write"))
		n, err := m.file.Write([]byte(text))
		if err != nil {
			return []string{errorStyle.Render(err.Error())}
		}

		return []string{fmt.Sprintf("wrote %d bytes, cursor at %d", n, m.file.Pos())}

	case "seek":
		return m.executeSeek(fields[1:])

	default:
		return []string{errorStyle.Render(fmt.Sprintf("unknown command %q (try: help)", fields[0]))}
	}
}

// executeRead handles the read console command.
func (m TeaModel) executeRead(args []string) []string {
	if len(args) != 1 {
		return []string{errorStyle.Render("usage: read <n>")}
	}

	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return []string{errorStyle.Render("usage: read <n> (n must be a non-negative integer)")}
	}

	buf := make([]byte, count)
	n, err := m.file.Read(buf)
	if errors.Is(err, io.EOF) {
		return []string{"end of device (0 bytes read)"}
	}
	if err != nil {
		return []string{errorStyle.Render(err.Error())}
	}

	return []string{
		fmt.Sprintf("read %d bytes, cursor at %d", n, m.file.Pos()),
		fmt.Sprintf("%q", buf[:n]),
	}
}

// executeSeek handles the seek console command.
func (m TeaModel) executeSeek(args []string) []string {
	if len(args) < 1 || len(args) > 2 {
		return []string{errorStyle.Render("usage: seek <off> [set|cur|end]")}
	}

	offset, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return []string{errorStyle.Render("usage: seek <off> [set|cur|end] (off must be an integer)")}
	}

	whence := io.SeekStart
	if len(args) == 2 {
		switch args[1] {
		case "set":
			whence = io.SeekStart
		case "cur":
			whence = io.SeekCurrent
		case "end":
			whence = io.SeekEnd
		default:
			return []string{errorStyle.Render(fmt.Sprintf("unknown seek mode %q", args[1]))}
		}
	}

	pos, err := m.file.Seek(offset, whence)
	if err != nil {
		return []string{errorStyle.Render(err.Error())}
	}

	return []string{fmt.Sprintf("cursor at %d", pos)}
}
