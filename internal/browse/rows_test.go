package browse

import (
	"testing"

	"github.com/beesolve/beesolve/internal/solver"
)

var browseAnswers = []solver.Answer{
	{Word: "motel", Score: 12, Pangram: true},
	{Word: "toomel", Score: 6},
	{Word: "tome", Score: 1},
}

func TestAnswerRowsAll(t *testing.T) {
	rows := answerRows(browseAnswers, "", false)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "motel" || rows[0][2] != "*" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[2][2] != "" {
		t.Fatalf("expected empty pangram marker, got %q", rows[2][2])
	}
}

func TestAnswerRowsFilter(t *testing.T) {
	rows := answerRows(browseAnswers, "oo", false)
	if len(rows) != 1 || rows[0][0] != "toomel" {
		t.Fatalf("unexpected filtered rows: %v", rows)
	}
}

func TestAnswerRowsPangramOnly(t *testing.T) {
	rows := answerRows(browseAnswers, "", true)
	if len(rows) != 1 || rows[0][0] != "motel" {
		t.Fatalf("unexpected pangram rows: %v", rows)
	}
}

func TestWordColumnWidth(t *testing.T) {
	if got := wordColumnWidth(browseAnswers); got != minWordColumnWidth {
		t.Fatalf("expected minimum width %d, got %d", minWordColumnWidth, got)
	}
	long := []solver.Answer{{Word: "tootelemole", Score: 11}}
	if got := wordColumnWidth(long); got != len("tootelemole") {
		t.Fatalf("expected width %d, got %d", len("tootelemole"), got)
	}
}
