package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/gitdeck/internal/deck"
	"github.com/jask/gitdeck/internal/terminal"
)

type termTab int

const (
	tabDemo termTab = iota
	tabTry
)

const outputHeight = 8

// termWidget is the per-slide command widget.
type termWidget struct {
	spec    deck.TerminalSpec
	session *terminal.Session
	tab     termTab
	cursor  int
	label   string
	reveal  terminal.Typewriter
	busy    bool
	gen     int
	input   textinput.Model
	out     viewport.Model
}

func newTermWidget(spec deck.TerminalSpec, session *terminal.Session) *termWidget {
	in := textinput.New()
	in.Prompt = "$ "
	in.Placeholder = "git status"
	in.CharLimit = 256
	in.PromptStyle = promptStyle

	w := &termWidget{
		spec:    spec,
		session: session,
		input:   in,
		out:     viewport.New(60, outputHeight),
	}
	if len(spec.Demo) == 0 {
		w.tab = tabTry
	}
	w.refreshOutput()
	return w
}

func (w *termWidget) hasDemo() bool { return len(w.spec.Demo) > 0 }

// toggle switches between the demo and try-it tabs when both exist.
func (w *termWidget) toggle() {
	if !w.hasDemo() || !w.spec.Interactive {
		return
	}
	if w.tab == tabDemo {
		w.tab = tabTry
	} else {
		w.tab = tabDemo
	}
}

func (w *termWidget) setWidth(width int) {
	if width < 20 {
		width = 20
	}
	w.out.Width = width
	w.input.Width = width - 4
	w.refreshOutput()
}

// startReveal begins typing the demo output for the selected command. It
// reports false while a previous reveal is still running.
func (w *termWidget) startReveal() bool {
	if w.busy || !w.hasDemo() {
		return false
	}
	w.label = w.spec.Demo[w.cursor]
	res := w.session.Reveal(w.label)
	w.reveal = terminal.NewTypewriter(res.Text())
	w.gen++
	w.busy = !w.reveal.Done()
	return true
}

func (w *termWidget) advance() {
	if !w.reveal.Advance() {
		w.busy = false
	}
}

func (w *termWidget) finish() {
	w.reveal.Finish()
	w.busy = false
}

func (w *termWidget) execute() {
	cmd := w.input.Value()
	w.input.Reset()
	w.session.Execute(cmd)
	w.refreshOutput()
}

func (w *termWidget) refreshOutput() {
	lines := w.session.Lines()
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, renderLine(l, w.out.Width))
	}
	w.out.SetContent(strings.Join(rendered, "\n"))
	w.out.GotoBottom()
}

func renderLine(l terminal.Line, width int) string {
	text := ansi.Wordwrap(l.Text, width, "")
	switch l.Kind {
	case terminal.KindInfo:
		return lineInfoStyle.Render(text)
	case terminal.KindCommand:
		return lineCommandStyle.Render(text)
	case terminal.KindError:
		return lineErrorStyle.Render(text)
	case terminal.KindHint:
		return lineHintStyle.Render(text)
	default:
		return lineResultStyle.Render(text)
	}
}

func (w *termWidget) view(width int) string {
	var b strings.Builder
	b.WriteString(w.tabsView())
	b.WriteString("\n\n")
	if w.tab == tabDemo {
		b.WriteString(w.demoView(width))
	} else {
		b.WriteString(w.out.View())
		b.WriteString("\n")
		b.WriteString(w.input.View())
	}
	return widgetBoxStyle.Width(width).Render(b.String())
}

func (w *termWidget) tabsView() string {
	var tabs []string
	if w.hasDemo() {
		style := inactiveTabStyle
		if w.tab == tabDemo {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render("Demo"))
	}
	if w.spec.Interactive {
		style := inactiveTabStyle
		if w.tab == tabTry {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render("Try It"))
	}
	return strings.Join(tabs, " ")
}

func (w *termWidget) demoView(width int) string {
	var b strings.Builder
	for i, c := range w.spec.Demo {
		prefix := "  "
		label := ansi.Truncate(c, width-6, "…")
		if i == w.cursor {
			prefix = cursorStyle.Render("> ")
			label = focusStyle.Render(label)
		} else if w.busy {
			label = dimStyle.Render(label)
		}
		b.WriteString(prefix + label + "\n")
	}
	if w.label == "" {
		b.WriteString(dimStyle.Render("\nPress enter to run the selected command."))
		return b.String()
	}
	b.WriteString("\n" + lineCommandStyle.Render("$ "+w.label))
	if text := w.reveal.Visible(); text != "" {
		b.WriteString("\n" + lineResultStyle.Render(ansi.Wordwrap(text, width-4, "")))
	}
	if w.busy {
		b.WriteString(busyStyle.Render("▌"))
	}
	return b.String()
}
