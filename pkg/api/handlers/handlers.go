package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/cbodonnell/arena/pkg/lobby"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/repositories/models"
	"github.com/gorilla/mux"
)

// SessionLister reports the sessions currently being played.
type SessionLister interface {
	Sessions() []lobby.Session
}

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

func validateName(name string) string {
	if len(name) < 1 || len(name) > 16 {
		return "Name must be between 1 and 16 characters"
	}
	if !nameRegex.MatchString(name) {
		return "Name cannot contain special characters"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func HandleListPlayers(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := repository.ListPlayers(r.Context())
		if err != nil {
			log.Error("failed to list players: %v", err)
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func HandleAddPlayer(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.FormValue("name")
		if msg := validateName(name); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		if err := repository.AddPlayer(r.Context(), name); err != nil {
			log.Error("failed to add player: %v", err)
			http.Error(w, "Failed to add player", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, &models.Player{Name: name})
	}
}

func HandleEligiblePlayers(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := repository.EligiblePlayers(r.Context())
		if err != nil {
			log.Error("failed to list eligible players: %v", err)
			http.Error(w, "Failed to list eligible players", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func HandlePlayerStats(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repository.PlayerStats(r.Context())
		if err != nil {
			log.Error("failed to get player stats: %v", err)
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func HandleListGames(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := models.GameStateNone
		if s := r.URL.Query().Get("state"); s != "" {
			parsed, ok := models.ParseGameState(s)
			if !ok {
				http.Error(w, "Unknown game state", http.StatusBadRequest)
				return
			}
			state = parsed
		}

		games, err := repository.ListGames(r.Context(), state)
		if err != nil {
			log.Error("failed to list games: %v", err)
			http.Error(w, "Failed to list games", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, games)
	}
}

func HandleAddGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player1, player2 := r.FormValue("player1"), r.FormValue("player2")
		for _, name := range []string{player1, player2} {
			if msg := validateName(name); msg != "" {
				http.Error(w, msg, http.StatusBadRequest)
				return
			}
		}
		if player1 == player2 {
			http.Error(w, "Players must be different", http.StatusBadRequest)
			return
		}

		if err := repository.AddGame(r.Context(), player1, player2); err != nil {
			log.Error("failed to add game: %v", err)
			http.Error(w, "Failed to add game", http.StatusInternalServerError)
			return
		}
		game, err := repository.GetGame(r.Context(), player1, player2)
		if err != nil {
			log.Error("failed to get game: %v", err)
			http.Error(w, "Failed to get game", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, game)
	}
}

func HandleGetGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		game, err := repository.GetGame(r.Context(), vars["player1"], vars["player2"])
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get game: %v", err)
			http.Error(w, "Failed to get game", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func HandleDeleteGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		err := repository.DeleteGame(r.Context(), vars["player1"], vars["player2"])
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete game: %v", err)
			http.Error(w, "Failed to delete game", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type maxLossesResponse struct {
	MaxLosses int `json:"maxLosses"`
}

func HandleGetMaxLosses(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxLosses, err := repository.GetMaxLosses(r.Context())
		if err != nil {
			log.Error("failed to get max losses: %v", err)
			http.Error(w, "Failed to get max losses", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, maxLossesResponse{MaxLosses: maxLosses})
	}
}

func HandleSetMaxLosses(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxLosses, err := strconv.Atoi(r.FormValue("max_losses"))
		if err != nil || maxLosses < 0 {
			http.Error(w, "max_losses must be a non-negative integer", http.StatusBadRequest)
			return
		}
		if err := repository.SetMaxLosses(r.Context(), maxLosses); err != nil {
			log.Error("failed to set max losses: %v", err)
			http.Error(w, "Failed to set max losses", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, maxLossesResponse{MaxLosses: maxLosses})
	}
}

func HandleListSessions(sessions SessionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessions.Sessions())
	}
}
