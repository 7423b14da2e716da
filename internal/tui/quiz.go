package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/gitdeck/internal/quiz"
)

func (a *App) answerQuiz(q quiz.Question, choice int) {
	next, fb, err := quiz.Answer(a.quiz, q, choice)
	if err != nil {
		a.setError(err.Error())
		return
	}
	a.quiz = next
	if fb.Correct {
		a.setStatus("Correct!")
	} else {
		a.setStatus(fmt.Sprintf("Not quite: the answer is %q.", q.Options[fb.CorrectIndex].Text))
	}
	a.logger.Debug("quiz answered", zap.String("question", q.ID), zap.Bool("correct", fb.Correct))
}

func (a *App) renderQuiz(q quiz.Question, width int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(ansi.Wordwrap(q.Prompt, width-4, "")))
	b.WriteString("\n\n")

	fb, answered := a.quiz.Feedback(q)
	cursor := a.quizCursor[q.ID]
	for i, o := range q.Options {
		marker := "  "
		text := fmt.Sprintf("%d. %s", i+1, ansi.Truncate(o.Text, width-10, "…"))
		switch {
		case answered && i == fb.CorrectIndex:
			marker = correctStyle.Render("✓ ")
			text = correctStyle.Render(text)
		case answered && i == fb.Choice:
			marker = wrongStyle.Render("✗ ")
			text = wrongStyle.Render(text)
		case answered:
			text = dimStyle.Render(text)
		case i == cursor:
			marker = cursorStyle.Render("> ")
			text = focusStyle.Render(text)
		}
		b.WriteString(marker + text + "\n")
	}
	if answered && q.Explanation != "" {
		b.WriteString("\n" + explainStyle.Render(ansi.Wordwrap(q.Explanation, width-4, "")))
	}
	return widgetBoxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
