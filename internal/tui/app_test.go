package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gitdeck/internal/database/repository"
	"github.com/jask/gitdeck/internal/deck"
	"github.com/jask/gitdeck/internal/gitsim"
	"github.com/jask/gitdeck/internal/service"
	"github.com/jask/gitdeck/internal/terminal"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type memStore struct {
	data map[string]string
}

func (s *memStore) Get(_ context.Context, key string) (*repository.Entry, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return &repository.Entry{Key: key, Value: v}, nil
}

func (s *memStore) Put(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func newTestApp(t *testing.T, speed time.Duration) (*App, *service.ProfileService) {
	t.Helper()
	d, err := deck.Default()
	if err != nil {
		t.Fatalf("default deck: %v", err)
	}
	r, err := deck.NewRenderer("notty", 80)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	profiles := &service.ProfileService{KV: &memStore{data: map[string]string{}}}
	a := New(context.Background(), d, Deps{
		Resolver:    gitsim.New(),
		Renderer:    r,
		Profiles:    profiles,
		TypingSpeed: speed,
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, profiles
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"pgdown":    tea.KeyPgDown,
	"pgup":      tea.KeyPgUp,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+t":    tea.KeyCtrlT,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(k string) tea.KeyMsg {
	if kt, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a *App, k string) tea.Cmd {
	_, cmd := a.Update(keyMsg(k))
	return cmd
}

// run executes cmd and feeds its message back, the way the runtime would.
func run(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		a.Update(msg)
	}
}

func gotoID(t *testing.T, a *App, id string) {
	t.Helper()
	for i, s := range a.deck.Slides {
		if s.ID == id {
			run(a, a.gotoSlide(i))
			a.layout()
			return
		}
	}
	t.Fatalf("slide %q not in deck", id)
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

func TestNavigationPersistsPosition(t *testing.T) {
	a, profiles := newTestApp(t, 0)

	if cmd := press(a, "pgup"); cmd != nil {
		t.Fatal("expected no command when already on the first slide")
	}
	run(a, press(a, "pgdown"))
	run(a, press(a, "ctrl+n"))
	if a.index != 2 {
		t.Fatalf("expected slide index 2, got %d", a.index)
	}
	n, err := profiles.Position(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("expected saved position 2, got %d (%v)", n, err)
	}

	last := len(a.deck.Slides) - 1
	run(a, a.gotoSlide(last))
	if cmd := press(a, "pgdown"); cmd != nil {
		t.Fatal("expected no command past the last slide")
	}
	if a.index != last {
		t.Fatalf("expected to stay on last slide, got %d", a.index)
	}
}

func TestPositionRestoredOnLoad(t *testing.T) {
	a, _ := newTestApp(t, 0)

	a.Update(positionLoadedMsg{index: 3})
	if a.current().ID != a.deck.Slides[3].ID {
		t.Fatalf("expected slide 3, got %q", a.current().ID)
	}
	a.Update(positionLoadedMsg{index: 999})
	if a.index != 3 {
		t.Fatalf("out of range position should be ignored, got %d", a.index)
	}
}

func TestViewShowsHeader(t *testing.T) {
	a, _ := newTestApp(t, 0)
	view := a.View()
	for _, want := range []string{"Introduction to Git", service.GenericGreeting, "slide 1/", "Score: 0/3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

// ---------------------------------------------------------------------------
// Terminal widget
// ---------------------------------------------------------------------------

func TestTryItExecutesCommands(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "playground")

	w := a.terms["playground"]
	if w.tab != tabTry || !w.input.Focused() {
		t.Fatal("expected try-it tab with focused input on a slide without demo commands")
	}

	press(a, "git status")
	press(a, "enter")
	lines := w.session.Lines()
	last := lines[len(lines)-1]
	if last.Kind != terminal.KindResult || last.Text != gitsim.New().Resolve("git status").Output {
		t.Fatalf("unexpected last line %+v", last)
	}
	if w.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", w.input.Value())
	}

	press(a, "git statsu")
	press(a, "enter")
	lines = w.session.Lines()
	if lines[len(lines)-2].Text != gitsim.NotRecognized {
		t.Fatalf("expected sentinel, got %+v", lines[len(lines)-2])
	}
	if !strings.Contains(lines[len(lines)-1].Text, `"git status"`) {
		t.Fatalf("expected suggestion, got %+v", lines[len(lines)-1])
	}

	press(a, "up")
	if w.input.Value() != "git statsu" {
		t.Fatalf("expected history recall, got %q", w.input.Value())
	}
	press(a, "up")
	if w.input.Value() != "git status" {
		t.Fatalf("expected older history entry, got %q", w.input.Value())
	}

	w.input.Reset()
	press(a, "clear")
	press(a, "enter")
	if got := w.session.Lines(); len(got) != 1 || got[0].Text != terminal.Welcome {
		t.Fatalf("expected cleared log, got %+v", got)
	}
}

func TestTerminalHistoryIsPerSlide(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "playground")
	press(a, "git log")
	press(a, "enter")

	gotoID(t, a, "setup")
	press(a, "ctrl+t")
	if got, ok := a.terms["setup"].session.Prev(); ok {
		t.Fatalf("expected empty history on another slide, got %q", got)
	}
}

func TestDemoRevealInstant(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "setup")
	w := a.terms["setup"]
	if w.tab != tabDemo {
		t.Fatal("expected demo tab first")
	}

	press(a, "down")
	if cmd := press(a, "enter"); cmd != nil {
		t.Fatal("expected no tick with zero typing speed")
	}
	want := gitsim.New().Lookup("git config --list").Output
	if w.label != "git config --list" || w.reveal.Visible() != want || w.busy {
		t.Fatalf("unexpected reveal state: label=%q busy=%v", w.label, w.busy)
	}
}

func TestDemoRevealTypesAndBlocks(t *testing.T) {
	a, _ := newTestApp(t, time.Millisecond)
	gotoID(t, a, "init")
	w := a.terms["init"]

	cmd := press(a, "enter")
	if cmd == nil || !w.busy {
		t.Fatal("expected typing to start")
	}
	if w.reveal.Visible() != "" {
		t.Fatalf("expected nothing visible yet, got %q", w.reveal.Visible())
	}

	press(a, "down")
	if w.cursor != 0 {
		t.Fatal("cursor must not move while output is typing")
	}
	if again := press(a, "enter"); again != nil {
		t.Fatal("expected enter to be ignored while typing")
	}

	for i := 0; w.busy; i++ {
		if i > 10000 {
			t.Fatal("reveal never finished")
		}
		a.Update(revealTickMsg{slide: "init", gen: w.gen})
	}
	if w.reveal.Visible() != w.reveal.Text() {
		t.Fatal("expected the full output after the last tick")
	}

	stale := revealTickMsg{slide: "init", gen: w.gen - 1}
	if _, cmd := a.Update(stale); cmd != nil {
		t.Fatal("stale ticks must be ignored")
	}
}

func TestToggleTab(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "setup")
	w := a.terms["setup"]

	press(a, "ctrl+t")
	if w.tab != tabTry || !w.input.Focused() {
		t.Fatal("expected try-it tab with focus")
	}
	press(a, "ctrl+t")
	if w.tab != tabDemo || w.input.Focused() {
		t.Fatal("expected demo tab without input focus")
	}

	gotoID(t, a, "playground")
	press(a, "ctrl+t")
	if a.terms["playground"].tab != tabTry {
		t.Fatal("a terminal without demo commands stays on try-it")
	}
}

// ---------------------------------------------------------------------------
// Quiz
// ---------------------------------------------------------------------------

func TestQuizScoring(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "quiz-staging")

	press(a, "2")
	if a.quiz.Score != 1 || a.statusErr {
		t.Fatalf("expected score 1, got %d (status %q)", a.quiz.Score, a.status)
	}
	press(a, "1")
	if a.quiz.Score != 1 || len(a.quiz.Answers) != 1 {
		t.Fatal("answered question must not change")
	}

	gotoID(t, a, "quiz-branch")
	press(a, "down")
	press(a, "enter")
	if a.quiz.Score != 1 || !strings.HasPrefix(a.status, "Not quite") {
		t.Fatalf("expected wrong answer feedback, got %q", a.status)
	}
	if !strings.Contains(a.View(), "Score: 1/3") {
		t.Fatal("expected score in header")
	}
}

// ---------------------------------------------------------------------------
// Profile form
// ---------------------------------------------------------------------------

func TestProfileFormRequiresFields(t *testing.T) {
	a, profiles := newTestApp(t, 0)
	if !a.current().ProfileForm {
		t.Fatal("expected the form on the first slide")
	}

	a.form.focusField(fieldLink)
	run(a, press(a, "enter"))
	if !a.statusErr || a.status != "Please enter your name." {
		t.Fatalf("unexpected status %q", a.status)
	}
	if a.form.focus != fieldName {
		t.Fatalf("expected focus on name, got %d", a.form.focus)
	}

	press(a, "Ada")
	run(a, press(a, "enter"))
	if a.form.focus != fieldAffiliation || a.status != "Please enter your affiliation." {
		t.Fatalf("expected affiliation error, got %q (focus %d)", a.status, a.form.focus)
	}

	press(a, "Engines")
	run(a, press(a, "enter"))
	if a.statusErr {
		t.Fatalf("unexpected error %q", a.status)
	}
	p, err := profiles.Load(context.Background())
	if err != nil || p == nil || p.Name != "Ada" || p.Affiliation != "Engines" {
		t.Fatalf("profile not saved: %+v (%v)", p, err)
	}
	if !strings.Contains(a.View(), "Welcome, Ada from Engines!") {
		t.Fatal("expected personalized greeting")
	}
}

func TestProfileLoadFillsForm(t *testing.T) {
	a, _ := newTestApp(t, 0)
	a.Update(profileLoadedMsg{profile: &service.Profile{Name: "Linus", Affiliation: "Kernel", ProfileURL: "https://example.com"}})

	name, aff, link := a.form.values()
	if name != "Linus" || aff != "Kernel" || link != "https://example.com" {
		t.Fatalf("form not filled: %q %q %q", name, aff, link)
	}
}

func TestTabCyclesFields(t *testing.T) {
	a, _ := newTestApp(t, 0)
	press(a, "tab")
	press(a, "tab")
	press(a, "tab")
	if a.form.focus != fieldName {
		t.Fatalf("expected focus to wrap to name, got %d", a.form.focus)
	}
	press(a, "shift+tab")
	if a.form.focus != fieldLink {
		t.Fatalf("expected focus on link, got %d", a.form.focus)
	}
}

// ---------------------------------------------------------------------------
// Deck reload
// ---------------------------------------------------------------------------

func TestDeckReloadKeepsSlide(t *testing.T) {
	a, _ := newTestApp(t, 0)
	gotoID(t, a, "playground")
	press(a, "git log")
	press(a, "enter")

	next, err := deck.Parse([]byte(`
title: Reloaded
slides:
  - id: intro
    title: Intro
  - id: playground
    title: Play
    terminal:
      interactive: true
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a.Update(deckUpdateMsg{update: deck.Update{Deck: next}, ok: true})

	if a.index != 1 || a.deck.Title != "Reloaded" {
		t.Fatalf("expected to stay on playground, got index %d", a.index)
	}
	if got, _ := a.terms["playground"].session.Prev(); got != "git log" {
		t.Fatalf("expected history kept across reload, got %q", got)
	}
	if _, ok := a.terms["setup"]; ok {
		t.Fatal("widgets of removed slides should be dropped")
	}

	a.Update(deckUpdateMsg{update: deck.Update{Err: deck.ErrInvalidDeck}, ok: true})
	if !a.statusErr || a.deck.Title != "Reloaded" {
		t.Fatal("failed reload must keep the current deck")
	}
}

func TestQuitKey(t *testing.T) {
	a, _ := newTestApp(t, 0)
	cmd := press(a, "ctrl+c")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
