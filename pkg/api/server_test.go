package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	mockrepositories "github.com/cbodonnell/arena/mocks/github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/lobby"
	"github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSessions []lobby.Session

func (s fakeSessions) Sessions() []lobby.Session {
	return s
}

func newRequest(method, target string, form url.Values) *http.Request {
	if form == nil {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		form       url.Values
		setup      func(repo *mockrepositories.Repository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list players",
			method: http.MethodGet,
			target: "/players",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().ListPlayers(mock.Anything).Return([]*models.Player{{Name: "alice"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"alice"}]`,
		},
		{
			name:   "list players error",
			method: http.MethodGet,
			target: "/players",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().ListPlayers(mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "add player",
			method: http.MethodPost,
			target: "/players",
			form:   url.Values{"name": {"alice"}},
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().AddPlayer(mock.Anything, "alice").Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"name":"alice"}`,
		},
		{
			name:       "add player bad name",
			method:     http.MethodPost,
			target:     "/players",
			form:       url.Values{"name": {"al!ce"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "eligible players",
			method: http.MethodGet,
			target: "/players/eligible",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().EligiblePlayers(mock.Anything).Return([]*models.Player{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "player stats",
			method: http.MethodGet,
			target: "/players/stats",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().PlayerStats(mock.Anything).Return([]*models.PlayerStats{{Name: "alice", Wins: 2, Losses: 1}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"alice","wins":2,"losses":1}]`,
		},
		{
			name:   "list games by state",
			method: http.MethodGet,
			target: "/games?state=over",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().ListGames(mock.Anything, models.GameStateOver).Return([]*models.Game{
					{Player1: "alice", Player2: "bob", State: models.GameStateOver, Winner: "bob"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"player1":"alice","player2":"bob","state":3,"winner":"bob"}]`,
		},
		{
			name:       "list games bad state",
			method:     http.MethodGet,
			target:     "/games?state=paused",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "add game",
			method: http.MethodPost,
			target: "/games",
			form:   url.Values{"player1": {"alice"}, "player2": {"bob"}},
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().AddGame(mock.Anything, "alice", "bob").Return(nil)
				repo.EXPECT().GetGame(mock.Anything, "alice", "bob").Return(&models.Game{Player1: "alice", Player2: "bob", State: models.GameStatePregame}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"player1":"alice","player2":"bob","state":1,"winner":""}`,
		},
		{
			name:       "add game against self",
			method:     http.MethodPost,
			target:     "/games",
			form:       url.Values{"player1": {"alice"}, "player2": {"alice"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get game not found",
			method: http.MethodGet,
			target: "/games/alice/bob",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().GetGame(mock.Anything, "alice", "bob").Return(nil, &repositories.ErrNotFound{})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "delete game",
			method: http.MethodDelete,
			target: "/games/alice/bob",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().DeleteGame(mock.Anything, "alice", "bob").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete game not found",
			method: http.MethodDelete,
			target: "/games/alice/bob",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().DeleteGame(mock.Anything, "alice", "bob").Return(&repositories.ErrNotFound{})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "get max losses",
			method: http.MethodGet,
			target: "/tournament/max-losses",
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().GetMaxLosses(mock.Anything).Return(3, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"maxLosses":3}`,
		},
		{
			name:   "set max losses",
			method: http.MethodPut,
			target: "/tournament/max-losses",
			form:   url.Values{"max_losses": {"2"}},
			setup: func(repo *mockrepositories.Repository) {
				repo.EXPECT().SetMaxLosses(mock.Anything, 2).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"maxLosses":2}`,
		},
		{
			name:       "set max losses negative",
			method:     http.MethodPut,
			target:     "/tournament/max-losses",
			form:       url.Values{"max_losses": {"-1"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPatch,
			target:     "/players",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			target:     "/games",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockrepositories.NewRepository(t)
			if tt.setup != nil {
				tt.setup(repo)
			}
			router := NewRouter(NewAPIServerOptions{Repository: repo})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newRequest(tt.method, tt.target, tt.form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_sessions(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sessions := fakeSessions{{ID: "s1", Player1: "alice", Player2: "bob", StartedAt: started}}
	router := NewRouter(NewAPIServerOptions{
		Repository:  mockrepositories.NewRepository(t),
		Sessions:    sessions,
		AllowOrigin: "example.com",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	var got []lobby.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []lobby.Session(sessions), got)
}
