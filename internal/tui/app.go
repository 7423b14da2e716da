package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/gitdeck/internal/deck"
	"github.com/jask/gitdeck/internal/quiz"
	"github.com/jask/gitdeck/internal/service"
	"github.com/jask/gitdeck/internal/terminal"
)

// ProfileStore persists the visitor profile and the deck position.
type ProfileStore interface {
	Load(ctx context.Context) (*service.Profile, error)
	Save(ctx context.Context, name, affiliation, link string) (*service.Profile, error)
	Position(ctx context.Context) (int, error)
	SavePosition(ctx context.Context, index int) error
}

type Deps struct {
	Resolver    terminal.Resolver
	Renderer    *deck.Renderer
	Profiles    ProfileStore
	Logger      *zap.Logger
	TypingSpeed time.Duration
	WordWrap    int
	// Updates delivers reloaded decks; nil disables live reload.
	Updates <-chan deck.Update
}

// App is the presentation model.
type App struct {
	ctx        context.Context
	deps       Deps
	logger     *zap.Logger
	deck       *deck.Deck
	index      int
	width      int
	height     int
	body       viewport.Model
	terms      map[string]*termWidget
	quiz       quiz.State
	quizCursor map[string]int
	form       profileForm
	profile    *service.Profile
	keys       keyMap
	help       help.Model
	status     string
	statusErr  bool
}

type errMsg struct{ error }

type profileLoadedMsg struct {
	profile *service.Profile
	err     error
}

type positionLoadedMsg struct {
	index int
	err   error
}

type profileSavedMsg struct {
	profile *service.Profile
	err     error
}

type deckUpdateMsg struct {
	update deck.Update
	ok     bool
}

type revealTickMsg struct {
	slide string
	gen   int
}

func New(ctx context.Context, d *deck.Deck, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		ctx:        ctx,
		deps:       deps,
		logger:     logger,
		deck:       d,
		body:       viewport.New(80, 20),
		terms:      make(map[string]*termWidget),
		quiz:       quiz.State{Answers: map[string]int{}},
		quizCursor: make(map[string]int),
		form:       newProfileForm(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	a.syncTerminals()
	a.renderBody()
	a.syncFocus()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadProfile(), a.loadPosition(), a.waitForDeck())
}

func (a *App) loadProfile() tea.Cmd {
	return func() tea.Msg {
		p, err := a.deps.Profiles.Load(a.ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (a *App) loadPosition() tea.Cmd {
	return func() tea.Msg {
		n, err := a.deps.Profiles.Position(a.ctx)
		return positionLoadedMsg{index: n, err: err}
	}
}

func (a *App) savePosition(index int) tea.Cmd {
	return func() tea.Msg {
		if err := a.deps.Profiles.SavePosition(a.ctx, index); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) saveProfile() tea.Cmd {
	name, affiliation, link := a.form.values()
	return func() tea.Msg {
		p, err := a.deps.Profiles.Save(a.ctx, name, affiliation, link)
		return profileSavedMsg{profile: p, err: err}
	}
}

func (a *App) waitForDeck() tea.Cmd {
	if a.deps.Updates == nil {
		return nil
	}
	ch := a.deps.Updates
	return func() tea.Msg {
		u, ok := <-ch
		return deckUpdateMsg{update: u, ok: ok}
	}
}

func (a *App) revealTick(slide string, gen int) tea.Cmd {
	return tea.Tick(a.deps.TypingSpeed, func(time.Time) tea.Msg {
		return revealTickMsg{slide: slide, gen: gen}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.layout()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
	case tea.KeyMsg:
		return a.handleKey(m)
	case profileLoadedMsg:
		if m.err != nil {
			a.setError("load profile: " + m.err.Error())
			return nil
		}
		a.profile = m.profile
		a.form.fill(m.profile)
	case positionLoadedMsg:
		if m.err != nil {
			a.setError("load position: " + m.err.Error())
			return nil
		}
		if m.index > 0 && m.index < len(a.deck.Slides) && m.index != a.index {
			a.index = m.index
			a.enterSlide()
		}
	case profileSavedMsg:
		if m.err != nil {
			var fe *service.FieldError
			if errors.As(m.err, &fe) {
				a.setError(fmt.Sprintf("Please enter your %s.", fe.Field))
				a.form.focusMissing(fe.Field)
				return nil
			}
			a.setError("save profile: " + m.err.Error())
			return nil
		}
		a.profile = m.profile
		a.setStatus("Profile saved. " + service.Greeting(a.profile))
	case deckUpdateMsg:
		if !m.ok {
			return nil
		}
		if m.update.Err != nil {
			a.setError("deck reload failed: " + m.update.Err.Error())
		} else {
			a.replaceDeck(m.update.Deck)
		}
		return a.waitForDeck()
	case revealTickMsg:
		w := a.terms[m.slide]
		if w == nil || w.gen != m.gen || !w.busy {
			return nil
		}
		w.advance()
		if w.busy {
			return a.revealTick(m.slide, m.gen)
		}
	case errMsg:
		a.setError("error: " + m.Error())
	}
	return nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Next):
		return a.gotoSlide(a.index + 1)
	case key.Matches(m, a.keys.Prev):
		return a.gotoSlide(a.index - 1)
	case key.Matches(m, a.keys.ScrollDown):
		a.body.HalfViewDown()
		return nil
	case key.Matches(m, a.keys.ScrollUp):
		a.body.HalfViewUp()
		return nil
	}

	s := a.current()
	switch {
	case s.Terminal != nil:
		return a.handleTerminalKey(m, a.terms[s.ID])
	case s.Quiz != nil:
		a.handleQuizKey(m, *s.Quiz)
	case s.ProfileForm:
		return a.handleFormKey(m)
	}
	return nil
}

func (a *App) handleTerminalKey(m tea.KeyMsg, w *termWidget) tea.Cmd {
	if w == nil {
		return nil
	}
	if key.Matches(m, a.keys.ToggleTab) {
		w.toggle()
		a.syncFocus()
		return nil
	}

	if w.tab == tabDemo {
		switch {
		case key.Matches(m, a.keys.Up):
			if !w.busy && w.cursor > 0 {
				w.cursor--
			}
		case key.Matches(m, a.keys.Down):
			if !w.busy && w.cursor < len(w.spec.Demo)-1 {
				w.cursor++
			}
		case key.Matches(m, a.keys.Enter):
			if !w.startReveal() {
				if w.busy {
					a.setStatus("Wait for the current output to finish.")
				}
				return nil
			}
			if !w.busy {
				return nil
			}
			if a.deps.TypingSpeed <= 0 {
				w.finish()
				return nil
			}
			return a.revealTick(a.current().ID, w.gen)
		}
		return nil
	}

	switch {
	case key.Matches(m, a.keys.Up):
		if v, ok := w.session.Prev(); ok {
			w.input.SetValue(v)
			w.input.CursorEnd()
		}
	case key.Matches(m, a.keys.Down):
		if v, ok := w.session.Next(); ok {
			w.input.SetValue(v)
			w.input.CursorEnd()
		}
	case key.Matches(m, a.keys.Enter):
		w.execute()
	default:
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(m)
		return cmd
	}
	return nil
}

func (a *App) handleQuizKey(m tea.KeyMsg, q quiz.Question) {
	if _, answered := a.quiz.Answered(q.ID); answered {
		return
	}
	cursor := a.quizCursor[q.ID]
	switch {
	case key.Matches(m, a.keys.Up):
		if cursor > 0 {
			a.quizCursor[q.ID] = cursor - 1
		}
	case key.Matches(m, a.keys.Down):
		if cursor < len(q.Options)-1 {
			a.quizCursor[q.ID] = cursor + 1
		}
	case key.Matches(m, a.keys.Enter):
		a.answerQuiz(q, cursor)
	default:
		if n, err := strconv.Atoi(m.String()); err == nil && n >= 1 && n <= len(q.Options) {
			a.quizCursor[q.ID] = n - 1
			a.answerQuiz(q, n-1)
		}
	}
}

func (a *App) handleFormKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.FocusNext), key.Matches(m, a.keys.Down):
		a.form.focusField(a.form.focus + 1)
	case key.Matches(m, a.keys.FocusPrev), key.Matches(m, a.keys.Up):
		a.form.focusField(a.form.focus - 1)
	case key.Matches(m, a.keys.Enter):
		return a.saveProfile()
	default:
		var cmd tea.Cmd
		a.form.inputs[a.form.focus], cmd = a.form.inputs[a.form.focus].Update(m)
		return cmd
	}
	return nil
}

func (a *App) current() deck.Slide {
	return a.deck.Slides[a.index]
}

func (a *App) gotoSlide(i int) tea.Cmd {
	if i < 0 || i >= len(a.deck.Slides) || i == a.index {
		return nil
	}
	a.index = i
	a.enterSlide()
	a.logger.Debug("slide changed", zap.Int("index", i), zap.String("id", a.current().ID))
	return a.savePosition(i)
}

func (a *App) enterSlide() {
	a.renderBody()
	a.body.GotoTop()
	a.syncFocus()
}

// syncFocus gives keyboard focus to the current slide's text input, if any.
func (a *App) syncFocus() {
	s := a.current()
	for id, w := range a.terms {
		if id == s.ID && w.tab == tabTry {
			w.input.Focus()
		} else {
			w.input.Blur()
		}
	}
	if s.ProfileForm {
		a.form.focusField(a.form.focus)
	} else {
		a.form.blur()
	}
}

// syncTerminals creates a widget per terminal slide, keeping the history of
// slides that survive a reload.
func (a *App) syncTerminals() {
	keep := make(map[string]bool)
	for _, s := range a.deck.Slides {
		if s.Terminal == nil {
			continue
		}
		keep[s.ID] = true
		w, ok := a.terms[s.ID]
		if !ok {
			session := terminal.NewSession(a.deps.Resolver, terminal.WithLogger(a.logger.Named("terminal")))
			w = newTermWidget(*s.Terminal, session)
			if a.width > 0 {
				w.setWidth(a.widgetWidth() - 4)
			}
			a.terms[s.ID] = w
			continue
		}
		w.spec = *s.Terminal
		if w.cursor >= len(w.spec.Demo) {
			w.cursor = 0
		}
		switch {
		case !w.hasDemo():
			w.tab = tabTry
		case !w.spec.Interactive:
			w.tab = tabDemo
		}
	}
	for id := range a.terms {
		if !keep[id] {
			delete(a.terms, id)
		}
	}
}

func (a *App) replaceDeck(d *deck.Deck) {
	id := a.current().ID
	a.deck = d
	a.index = 0
	for i, s := range d.Slides {
		if s.ID == id {
			a.index = i
			break
		}
	}
	a.syncTerminals()
	a.renderBody()
	a.syncFocus()
	a.setStatus(fmt.Sprintf("Deck reloaded (%d slides).", len(d.Slides)))
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	wrap := width - 4
	if a.deps.WordWrap > 0 && a.deps.WordWrap < wrap {
		wrap = a.deps.WordWrap
	}
	if err := a.deps.Renderer.SetWidth(wrap); err != nil {
		a.setError(err.Error())
	}
	for _, w := range a.terms {
		w.setWidth(a.widgetWidth() - 4)
	}
	a.form.setWidth(a.widgetWidth())
	a.renderBody()
}

func (a *App) renderBody() {
	s := a.current()
	out, err := a.deps.Renderer.Render(s)
	if err != nil {
		a.setError(err.Error())
		out = s.Title + "\n\n" + s.Body
	}
	a.body.SetContent(out)
}

// layout sizes the body viewport to whatever the widget leaves free.
func (a *App) layout() {
	if a.width == 0 {
		return
	}
	used := 3
	if w := a.renderWidget(); w != "" {
		used += lipgloss.Height(w)
	}
	a.body.Width = a.width
	a.body.Height = max(a.height-used, 3)
}

func (a *App) widgetWidth() int {
	return max(a.width-2, 24)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
	a.logger.Warn("status error", zap.String("status", s))
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	parts := []string{a.renderHeader(), a.body.View()}
	if w := a.renderWidget(); w != "" {
		parts = append(parts, w)
	}
	parts = append(parts, a.renderStatus(), footerStyle.Render(a.help.View(a.helpKeys())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderHeader() string {
	left := headerTitleStyle.Render(a.deck.Title) + "  " + greetingStyle.Render(service.Greeting(a.profile))
	right := counterStyle.Render(fmt.Sprintf("slide %d/%d", a.index+1, len(a.deck.Slides)))
	if n := len(a.deck.Questions()); n > 0 {
		right += "  " + scoreStyle.Render(quiz.Summary(a.quiz, n))
	}
	inner := a.width - 4
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, max(inner-lipgloss.Width(right)-1, 0), "…")
		gap = 1
	}
	return headerBarStyle.Width(a.width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

func (a *App) renderWidget() string {
	s := a.current()
	switch {
	case s.Terminal != nil:
		if w := a.terms[s.ID]; w != nil {
			return w.view(a.widgetWidth())
		}
	case s.Quiz != nil:
		return a.renderQuiz(*s.Quiz, a.widgetWidth())
	case s.ProfileForm:
		return a.form.view(a.widgetWidth())
	}
	return ""
}

func (a *App) renderStatus() string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	return style.Width(a.width).Render(ansi.Truncate(a.status, max(a.width-4, 0), "…"))
}

func (a *App) helpKeys() help.KeyMap {
	s := a.current()
	switch {
	case s.Terminal != nil:
		return terminalKeyMap{keyMap: a.keys}
	case s.ProfileForm:
		return formKeyMap{keyMap: a.keys}
	}
	return a.keys
}
