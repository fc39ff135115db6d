// Package model defines shared data structures.
package model

import "time"

// SolveConfig defines settings for one solve run.
type SolveConfig struct {
	Required rune
	Extra    string
	DictPath string
	Fold     bool
	Plain    bool
	Save     bool
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Since  *time.Time
	Last   int
	Letter string
}

// SolveRecord captures a completed solve run for persistence.
type SolveRecord struct {
	SolvedAt       time.Time
	Required       string
	Extra          string
	DictPath       string
	CandidateCount int
	AnswerCount    int
	PangramCount   int
	BestWord       string
	BestScore      int
	DurationMs     int64
}

// SolveAggregate summarizes a stored solve for reporting.
type SolveAggregate struct {
	SolveID      int64
	SolvedAt     time.Time
	Required     string
	Extra        string
	AnswerCount  int
	PangramCount int
	BestWord     string
	BestScore    int
	DurationMs   int64
}

// WordAggregate aggregates a stored answer word across solves.
type WordAggregate struct {
	Word    string
	Score   int
	Pangram bool
	Solves  int
}
