// Package store handles SQLite persistence for solve history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beesolve/beesolve/internal/model"
	"github.com/beesolve/beesolve/internal/solver"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for solve history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY,
			solved_at TEXT NOT NULL,
			required TEXT NOT NULL,
			extra TEXT NOT NULL,
			dict_path TEXT NOT NULL,
			candidate_count INTEGER NOT NULL,
			answer_count INTEGER NOT NULL,
			pangram_count INTEGER NOT NULL,
			best_word TEXT NOT NULL,
			best_score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS solve_answers (
			solve_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			score INTEGER NOT NULL,
			pangram INTEGER NOT NULL,
			PRIMARY KEY (solve_id, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_solves_solved_at ON solves(solved_at);`,
		`CREATE INDEX IF NOT EXISTS idx_solve_answers_word ON solve_answers(word);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSolve stores a completed solve and its answers.
func (s *Store) InsertSolve(ctx context.Context, rec model.SolveRecord, answers []solver.Answer) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO solves (solved_at, required, extra, dict_path, candidate_count, answer_count, pangram_count, best_word, best_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SolvedAt.Format(time.RFC3339Nano),
		rec.Required,
		rec.Extra,
		rec.DictPath,
		rec.CandidateCount,
		rec.AnswerCount,
		rec.PangramCount,
		rec.BestWord,
		rec.BestScore,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(answers) > 0 {
		// Assign to the function-scope err so the deferred rollback
		// fires if preparing or inserting answers fails.
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT OR REPLACE INTO solve_answers (solve_id, word, score, pangram)
			 VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, ans := range answers {
			pangram := 0
			if ans.Pangram {
				pangram = 1
			}
			if _, err = stmt.ExecContext(ctx, id, ans.Word, ans.Score, pangram); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSolves returns solve aggregates filtered by history config.
func (s *Store) ListSolves(ctx context.Context, cfg model.HistoryConfig) ([]model.SolveAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Letter != "" {
		clauses = append(clauses, "required = ?")
		args = append(args, cfg.Letter)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "solved_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, solved_at, required, extra, answer_count, pangram_count, best_word, best_score, duration_ms
		FROM solves
		WHERE %s
		ORDER BY solved_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var solves []model.SolveAggregate
	for rows.Next() {
		var agg model.SolveAggregate
		var solvedAt string
		if err := rows.Scan(&agg.SolveID, &solvedAt, &agg.Required, &agg.Extra, &agg.AnswerCount, &agg.PangramCount, &agg.BestWord, &agg.BestScore, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, solvedAt)
		if err != nil {
			return nil, err
		}
		agg.SolvedAt = parsed
		solves = append(solves, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return solves, nil
}

// TopWords aggregates the highest-scoring stored answers across solves.
func (s *Store) TopWords(ctx context.Context, solveIDs []int64, limit int) ([]model.WordAggregate, error) {
	if len(solveIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	placeholders := make([]string, len(solveIDs))
	args := make([]any, 0, len(solveIDs)+1)
	for i, id := range solveIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT word, MAX(score) AS score, MAX(pangram) AS pangram, COUNT(*) AS solves
		FROM solve_answers
		WHERE solve_id IN (%s)
		GROUP BY word
		ORDER BY score DESC, word ASC
		LIMIT ?`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.WordAggregate
	for rows.Next() {
		var agg model.WordAggregate
		var pangram int
		if err := rows.Scan(&agg.Word, &agg.Score, &pangram, &agg.Solves); err != nil {
			return nil, err
		}
		agg.Pangram = pangram != 0
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAnswersForSolve returns the stored answers of a single solve.
func (s *Store) ListAnswersForSolve(ctx context.Context, solveID int64) ([]solver.Answer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, score, pangram FROM solve_answers WHERE solve_id = ? ORDER BY score DESC, word ASC`,
		solveID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var answers []solver.Answer
	for rows.Next() {
		var ans solver.Answer
		var pangram int
		if err := rows.Scan(&ans.Word, &ans.Score, &pangram); err != nil {
			return nil, err
		}
		ans.Pangram = pangram != 0
		answers = append(answers, ans)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}
