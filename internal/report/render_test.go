package report

import (
	"bytes"
	"testing"

	"github.com/beesolve/beesolve/internal/solver"
)

func TestSortAnswersDescendingStable(t *testing.T) {
	answers := []solver.Answer{
		{Word: "tome", Score: 1},
		{Word: "motee", Score: 5},
		{Word: "motel", Score: 12, Pangram: true},
		{Word: "moote", Score: 5},
	}
	sorted := SortAnswers(answers)
	if sorted[0].Word != "motel" {
		t.Fatalf("expected motel first, got %q", sorted[0].Word)
	}
	if sorted[1].Word != "motee" || sorted[2].Word != "moote" {
		t.Fatalf("expected stable order for equal scores, got %v", sorted)
	}
	if answers[0].Word != "tome" {
		t.Fatalf("expected input slice to be untouched")
	}
}

func TestRenderAnswersPangramsFirst(t *testing.T) {
	answers := []solver.Answer{
		{Word: "toomel", Score: 6},
		{Word: "motel", Score: 12, Pangram: true},
		{Word: "tome", Score: 1},
	}
	var buf bytes.Buffer
	if err := RenderAnswers(&buf, answers, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "* 12 motel\n  6  toomel\n  1  tome\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderAnswersColor(t *testing.T) {
	answers := []solver.Answer{{Word: "motel", Score: 12, Pangram: true}}
	var buf bytes.Buffer
	if err := RenderAnswers(&buf, answers, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := colorPangram + "* 12 motel" + colorReset + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderPlainKeepsInputOrder(t *testing.T) {
	answers := []solver.Answer{
		{Word: "tote", Score: 1},
		{Word: "mote", Score: 1},
	}
	var buf bytes.Buffer
	if err := RenderPlain(&buf, answers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "tote\nmote\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
