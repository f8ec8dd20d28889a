package workers

import (
	"context"

	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/repositories"
)

// GameResult is the outcome of a session. Winner is empty when nobody won.
type GameResult struct {
	SessionID string
	Player1   string
	Player2   string
	Winner    string
}

type ResultsWorker struct {
	repository  repositories.Repository
	resultsChan <-chan GameResult
}

type NewResultsWorkerOptions struct {
	Repository  repositories.Repository
	ResultsChan <-chan GameResult
}

// NewResultsWorker creates a new ResultsWorker.
// The worker records session results against the tournament
// games registered for the same pair of players.
func NewResultsWorker(opts NewResultsWorkerOptions) *ResultsWorker {
	return &ResultsWorker{
		repository:  opts.Repository,
		resultsChan: opts.ResultsChan,
	}
}

// Start blocks until ctx is done or the results channel is closed.
func (w *ResultsWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-w.resultsChan:
			if !ok {
				return
			}
			w.saveResult(ctx, result)
		}
	}
}

// saveResult ends the tournament game for the pair. Sessions between players
// without a registered game are friendlies and are not recorded.
func (w *ResultsWorker) saveResult(ctx context.Context, result GameResult) {
	exists, err := w.repository.EitherGameExists(ctx, result.Player1, result.Player2)
	if err != nil {
		log.Error("Failed to look up game for session %s: %v", result.SessionID, err)
		return
	}
	if !exists {
		log.Debug("No tournament game for %s vs %s, session %s not recorded", result.Player1, result.Player2, result.SessionID)
		return
	}

	if err := w.repository.EndGame(ctx, result.Player1, result.Player2, result.Winner); err != nil {
		log.Error("Failed to end game for session %s: %v", result.SessionID, err)
		return
	}
	log.Info("Recorded session %s: %s vs %s, winner %q", result.SessionID, result.Player1, result.Player2, result.Winner)
}
