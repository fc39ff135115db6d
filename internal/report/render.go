// Package report renders solver results and solve history.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/beesolve/beesolve/internal/solver"
)

const (
	colorPangram        = "\x1b[33m"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// SortAnswers orders answers by descending score, keeping input order for
// equal scores. Ordering is a presentation concern; the solver returns
// answers in input order.
func SortAnswers(answers []solver.Answer) []solver.Answer {
	out := make([]solver.Answer, len(answers))
	copy(out, answers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// RenderAnswers prints scored answers, pangrams first, both groups in
// descending score order: `* 12 motel` for pangrams, `  9  tote` otherwise.
func RenderAnswers(w io.Writer, answers []solver.Answer, useColor bool) error {
	sorted := SortAnswers(answers)
	for _, ans := range sorted {
		if !ans.Pangram {
			continue
		}
		line := fmt.Sprintf("* %-2d %s", ans.Score, ans.Word)
		if useColor {
			line = colorPangram + line + colorReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, ans := range sorted {
		if ans.Pangram {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-2d %s\n", ans.Score, ans.Word); err != nil {
			return err
		}
	}
	return nil
}

// RenderPlain prints accepted words only, one per line, in input order.
func RenderPlain(w io.Writer, answers []solver.Answer) error {
	for _, ans := range answers {
		if _, err := fmt.Fprintln(w, ans.Word); err != nil {
			return err
		}
	}
	return nil
}

// ShouldUseColor reports whether output to w should be colorized.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth reports the width of stdout, with a fixed fallback.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
