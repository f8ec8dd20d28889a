package repositories

import (
	"context"

	"github.com/cbodonnell/arena/pkg/repositories/models"
)

// Repository stores the tournament: players, pairings and their results.
// Game lookups match the pair in either order.
type Repository interface {
	Close(ctx context.Context) error

	AddPlayer(ctx context.Context, name string) error
	ListPlayers(ctx context.Context) ([]*models.Player, error)

	// AddGame registers a pregame pairing and both players. It is a no-op when the pair already has a game.
	AddGame(ctx context.Context, player1, player2 string) error
	// StartGame marks the pair's game started, adding it first if needed.
	StartGame(ctx context.Context, player1, player2 string) error
	// EndGame marks the pair's game over with winner, adding it first if needed.
	EndGame(ctx context.Context, player1, player2, winner string) error
	DeleteGame(ctx context.Context, player1, player2 string) error
	GetGame(ctx context.Context, player1, player2 string) (*models.Game, error)
	EitherGameExists(ctx context.Context, player1, player2 string) (bool, error)
	// ListGames lists games in state, or every game for GameStateNone.
	ListGames(ctx context.Context, state models.GameState) ([]*models.Game, error)

	CountWins(ctx context.Context, name string) (int, error)
	CountLosses(ctx context.Context, name string) (int, error)
	PlayerStats(ctx context.Context) ([]*models.PlayerStats, error)
	// EligiblePlayers lists players with fewer than the maximum losses that are not in a pregame or started game.
	EligiblePlayers(ctx context.Context) ([]*models.Player, error)

	GetMaxLosses(ctx context.Context) (int, error)
	SetMaxLosses(ctx context.Context, maxLosses int) error
}
