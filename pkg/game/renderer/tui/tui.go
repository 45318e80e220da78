package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilt/pkg/engine/terminal"
	"tilt/pkg/engine/world"
	"tilt/pkg/game/renderer"
	"tilt/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 3
	ViewportMinCols = 3
	// Lines needed outside the map:
	// - Title + blank (2)
	// - Status bar (4)
	// - Legend + actions (5)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Input prompt (2)
	ViewportTopMargin = 20
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	plain bool

	colorCorridor    color.Style
	colorStart       color.Style
	colorFinish      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorTitle       color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out. A plain renderer emits no
// color codes and never clears the screen.
func New(out io.Writer, plain bool) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, plain: plain}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCorridor = color.Style{color.FgGray}
	t.colorStart = color.Style{color.FgGreen, color.OpBold}
	t.colorFinish = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.plain {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

func (t *TUIRenderer) sprint(s color.Style, text string) string {
	if t.plain {
		return text
	}
	return s.Sprint(text)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCorridor:
		return t.sprint(t.colorCorridor, text)
	case renderer.StyleStart:
		return t.sprint(t.colorStart, text)
	case renderer.StyleFinish:
		return t.sprint(t.colorFinish, text)
	case renderer.StyleAction:
		return t.sprint(t.colorAction, text)
	case renderer.StyleActionShort:
		return t.sprint(t.colorActionShort, text)
	case renderer.StyleDenied:
		return t.sprint(t.colorDenied, text)
	case renderer.StyleSubtle:
		return t.sprint(t.colorSubtle, text)
	case renderer.StyleTitle:
		return t.sprint(t.colorTitle, text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.sprint(t.colorActionShort, operand[0:1]) + t.sprint(t.colorAction, operand[1:])
		case "DENIED":
			val = t.sprint(t.colorDenied, dynamicGet(operand))
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the largest grid, in cells, the terminal can show
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	return rows, cols
}

// Fits reports whether a grid of the given size can be shown without wrapping
func (t *TUIRenderer) Fits(size world.GridSize) bool {
	rows, cols := t.GetViewportSize()
	return size.Width <= cols && size.Height <= rows
}

// RenderFrame renders the session's corridor, status, actions and messages
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	t.printString("%s %s\n\n", t.StyleText(dynamicGet("TITLE"), renderer.StyleTitle), t.StyleText(renderer.Version, renderer.StyleSubtle))

	if s.Field != nil {
		fmt.Fprint(t.out, t.RenderMap(s.Field.Project()))
	}

	t.printStatusBar(s)
	t.printLegend()
	t.printPossibleActions()
	t.printMessagesPane(s)

	fmt.Fprint(t.out, "\n> ")
}

// RenderMap draws a projected grid, top row first, one glyph per cell
func (t *TUIRenderer) RenderMap(grid *world.Grid) string {
	lines := renderer.MapLines(grid, func(c *world.Cell, glyph string) string {
		switch {
		case c.StartCell:
			return t.StyleText(glyph, renderer.StyleStart)
		case c.ExitCell:
			return t.StyleText(glyph, renderer.StyleFinish)
		default:
			return t.StyleText(glyph, renderer.StyleCorridor)
		}
	})

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

// printStatusBar renders the grid size, seed and corridor summary
func (t *TUIRenderer) printStatusBar(s *state.Session) {
	fmt.Fprintln(t.out)

	label := func(key string) string {
		return t.StyleText(dynamicGet(key)+": ", renderer.StyleSubtle)
	}

	fmt.Fprintf(t.out, "%s%v  %s%d\n", label("GRID"), s.Size, label("SEED"), s.Seed)

	if s.Field == nil || s.Field.Len() == 0 {
		return
	}

	coverage := 100 * s.Field.Len() / s.Size.Cells()
	fmt.Fprintf(t.out, "%s%d/%d  %s%d%%\n", label("SEGMENTS"), s.Field.Len(), s.Size.Cells(), label("COVERAGE"), coverage)

	first, _ := s.Field.First()
	last, _ := s.Field.Last()
	fmt.Fprintf(t.out, "%s%v  %s%v\n", label("START"), first.Coordinate, label("FINISH"), last.Coordinate)
}

func (t *TUIRenderer) printLegend() {
	fmt.Fprintf(t.out, "%s %s  %s %s\n",
		t.StyleText(renderer.IconStart, renderer.StyleStart), dynamicGet("START"),
		t.StyleText(renderer.FinishIcon(world.Down), renderer.StyleFinish), dynamicGet("FINISH"))
}

func (t *TUIRenderer) printPossibleActions() {
	t.printBullet("ACTION{regenerate}: \tGT{REGENERATE}")
	t.printBullet("ACTION{size} NAME: \tGT{RESIZE}")
	t.printBullet("ACTION{dump} FILE: \tGT{DUMP}")
	t.printBullet("ACTION{quit}: \tGT{QUIT}")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width := terminal.GetWidth()

	label := " " + dynamicGet("MESSAGES") + " "
	labelLen := VisibleWidth(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(leftDashes+label+rightDashes, renderer.StyleSubtle))

	if len(s.Messages) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  "+dynamicGet("NO_MESSAGES"), renderer.StyleSubtle))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}

// VisibleWidth returns the printed width of s once color codes are removed
func VisibleWidth(s string) int {
	return len([]rune(color.ClearCode(s)))
}
