package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mockrepositories "github.com/cbodonnell/arena/mocks/github.com/cbodonnell/arena/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResultsWorker_SaveResult(t *testing.T) {
	result := GameResult{SessionID: "session", Player1: "alice", Player2: "bob", Winner: "alice"}

	tests := []struct {
		name  string
		setup func(repo *mockrepositories.Repository)
	}{
		{
			name: "tournament game",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(true, nil)
				repo.EXPECT().EndGame(mock.Anything, "alice", "bob", "alice").Return(nil)
			},
		},
		{
			name: "friendly",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(false, nil)
			},
		},
		{
			name: "lookup error",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(false, errors.New("boom"))
			},
		},
		{
			name: "end error",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(true, nil)
				repo.EXPECT().EndGame(mock.Anything, "alice", "bob", "alice").Return(errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockrepositories.NewRepository(t)
			tt.setup(repo)

			w := NewResultsWorker(NewResultsWorkerOptions{Repository: repo})
			w.saveResult(context.Background(), result)
		})
	}
}

func TestResultsWorker_Start(t *testing.T) {
	repo := mockrepositories.NewRepository(t)
	results := make(chan GameResult, 2)

	repo.EXPECT().EitherGameExists(mock.Anything, "alice", "bob").Return(true, nil)
	repo.EXPECT().EndGame(mock.Anything, "alice", "bob", "").Return(nil)

	w := NewResultsWorker(NewResultsWorkerOptions{Repository: repo, ResultsChan: results})
	results <- GameResult{SessionID: "session", Player1: "alice", Player2: "bob"}
	close(results)

	done := make(chan struct{})
	go func() {
		w.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "worker did not stop after the channel closed")
	}
}
