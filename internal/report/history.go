// Package report renders solver results and solve history.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// sparkRamp runs from the quietest solve to the richest one.
const sparkRamp = " .:-=+*#%@"

const sparkLabel = "Answers per solve: "

// RenderHistory prints stored solves: a summary, an aligned table, an
// answers-per-solve sparkline, and the best stored words.
func RenderHistory(w io.Writer, rep Report) error {
	if len(rep.Solves) == 0 {
		_, err := fmt.Fprintln(w, "No solves recorded yet.")
		return err
	}
	if err := renderSummary(w, rep); err != nil {
		return err
	}
	if err := renderSolveTable(w, rep); err != nil {
		return err
	}
	if err := renderAnswerSpark(w, rep); err != nil {
		return err
	}
	return renderTopWords(w, rep)
}

func renderSummary(w io.Writer, rep Report) error {
	totalAnswers := 0
	totalPangrams := 0
	bestScore := 0
	bestWord := ""
	for _, s := range rep.Solves {
		totalAnswers += s.AnswerCount
		totalPangrams += s.PangramCount
		if s.BestScore > bestScore {
			bestScore = s.BestScore
			bestWord = s.BestWord
		}
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solves: %d\n", len(rep.Solves)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Answers: %d\n", totalAnswers); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Pangrams: %d\n", totalPangrams); err != nil {
		return err
	}
	if bestWord != "" {
		if _, err := fmt.Fprintf(w, "Best: %s (%d)\n", bestWord, bestScore); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderSolveTable(w io.Writer, rep Report) error {
	cols := []column{
		{title: "Date"},
		{title: "Puzzle"},
		{title: "Answers", rightAlign: true},
		{title: "Pangrams", rightAlign: true},
		{title: "Best"},
		{title: "Score", rightAlign: true},
		{title: "Duration", rightAlign: true},
	}
	rows := make([][]string, 0, len(rep.Solves))
	for _, s := range rep.Solves {
		rows = append(rows, []string{
			s.SolvedAt.Format("2006-01-02 15:04"),
			puzzleLabel(s.Required, s.Extra),
			fmt.Sprintf("%d", s.AnswerCount),
			fmt.Sprintf("%d", s.PangramCount),
			s.BestWord,
			fmt.Sprintf("%d", s.BestScore),
			formatDuration(s.DurationMs),
		})
	}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderAnswerSpark(w io.Writer, rep Report) error {
	if len(rep.Solves) < 2 {
		return nil
	}
	counts := make([]int, len(rep.Solves))
	for i, s := range rep.Solves {
		counts[i] = s.AnswerCount
	}
	_, err := fmt.Fprintf(w, "%s%s\n\n", sparkLabel, answerSpark(counts, TerminalWidth()-len(sparkLabel)))
	return err
}

func renderTopWords(w io.Writer, rep Report) error {
	if len(rep.TopWords) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Top Words"); err != nil {
		return err
	}
	cols := []column{
		{title: "Word"},
		{title: "Score", rightAlign: true},
		{title: "Pangram"},
		{title: "Solves", rightAlign: true},
	}
	rows := make([][]string, 0, len(rep.TopWords))
	for _, tw := range rep.TopWords {
		pangram := ""
		if tw.Pangram {
			pangram = "*"
		}
		rows = append(rows, []string{
			tw.Word,
			fmt.Sprintf("%d", tw.Score),
			pangram,
			fmt.Sprintf("%d", tw.Solves),
		})
	}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// answerSpark draws one ramp character per solve, scaled between the
// smallest and largest answer counts. When the series is wider than
// maxWidth only the most recent solves are kept.
func answerSpark(counts []int, maxWidth int) string {
	if len(counts) == 0 {
		return ""
	}
	if maxWidth > 0 && len(counts) > maxWidth {
		counts = counts[len(counts)-maxWidth:]
	}
	minVal := counts[0]
	maxVal := counts[0]
	for _, v := range counts[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if minVal == maxVal {
		return strings.Repeat(string(sparkRamp[len(sparkRamp)/2]), len(counts))
	}
	var b strings.Builder
	for _, v := range counts {
		idx := (v - minVal) * (len(sparkRamp) - 1) / (maxVal - minVal)
		b.WriteByte(sparkRamp[idx])
	}
	return b.String()
}

func puzzleLabel(required, extra string) string {
	return fmt.Sprintf("[%s] %s", required, extra)
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Second {
		return fmt.Sprintf("%dms", ms)
	}
	return d.Round(10 * time.Millisecond).String()
}
