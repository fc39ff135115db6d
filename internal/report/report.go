// Package report renders solver results and solve history.
package report

import (
	"context"

	"github.com/beesolve/beesolve/internal/model"
	"github.com/beesolve/beesolve/internal/store"
)

const topWordLimit = 10

// Report contains precomputed data for history rendering.
type Report struct {
	Solves   []model.SolveAggregate
	TopWords []model.WordAggregate
}

// BuildReport loads and prepares history data for rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	solves, err := st.ListSolves(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(solves) > cfg.Last {
		solves = solves[len(solves)-cfg.Last:]
	}

	top, err := st.TopWords(ctx, solveIDs(solves), topWordLimit)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Solves:   solves,
		TopWords: top,
	}, nil
}

func solveIDs(solves []model.SolveAggregate) []int64 {
	ids := make([]int64, len(solves))
	for i, s := range solves {
		ids[i] = s.SolveID
	}
	return ids
}
