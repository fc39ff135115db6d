package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beesolve/beesolve/internal/model"
)

func TestAnswerSparkFlat(t *testing.T) {
	got := answerSpark([]int{3, 3, 3}, 80)
	if len(got) != 3 {
		t.Fatalf("expected 3 chars, got %q", got)
	}
	if got[0] != got[1] || got[1] != got[2] {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
}

func TestAnswerSparkRange(t *testing.T) {
	got := answerSpark([]int{0, 10}, 80)
	if len(got) != 2 {
		t.Fatalf("expected 2 chars, got %q", got)
	}
	if got[0] != sparkRamp[0] || got[1] != sparkRamp[len(sparkRamp)-1] {
		t.Fatalf("expected min and max chars, got %q", got)
	}
}

func TestAnswerSparkKeepsMostRecent(t *testing.T) {
	got := answerSpark([]int{0, 0, 0, 9, 9}, 2)
	if got != strings.Repeat(string(sparkRamp[len(sparkRamp)/2]), 2) {
		t.Fatalf("expected the last two flat points, got %q", got)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, Report{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No solves recorded yet.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderHistorySummary(t *testing.T) {
	rep := Report{
		Solves: []model.SolveAggregate{
			{
				SolveID:      1,
				SolvedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
				Required:     "t",
				Extra:        "elom",
				AnswerCount:  4,
				PangramCount: 1,
				BestWord:     "motel",
				BestScore:    12,
				DurationMs:   80,
			},
		},
		TopWords: []model.WordAggregate{
			{Word: "motel", Score: 12, Pangram: true, Solves: 1},
		},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, rep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Solves: 1", "Best: motel (12)", "[t] elom", "Top Words", "80ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
