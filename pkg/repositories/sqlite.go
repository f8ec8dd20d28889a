package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbodonnell/arena/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	files, err := readMigrations(migrations)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range files {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.path, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) AddPlayer(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, queryAddPlayer, name); err != nil {
		return fmt.Errorf("failed to add player: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	return r.queryPlayers(ctx, queryListPlayers)
}

func (r *SQLiteRepository) AddGame(ctx context.Context, player1, player2 string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, name := range []string{player1, player2} {
		if _, err := tx.ExecContext(ctx, queryAddPlayer, name); err != nil {
			return fmt.Errorf("failed to add player: %v", err)
		}
	}

	var count int
	if err := tx.QueryRowContext(ctx, queryCountGames, pairArgs(player1, player2)...).Scan(&count); err != nil {
		return fmt.Errorf("failed to count games: %v", err)
	}
	if count == 0 {
		if _, err := tx.ExecContext(ctx, queryInsertGame, player1, player2, int(models.GameStatePregame)); err != nil {
			return fmt.Errorf("failed to insert game: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) StartGame(ctx context.Context, player1, player2 string) error {
	if err := r.AddGame(ctx, player1, player2); err != nil {
		return err
	}
	args := withPair(player1, player2, int(models.GameStateStarted))
	if _, err := r.db.ExecContext(ctx, querySetGameState, args...); err != nil {
		return fmt.Errorf("failed to start game: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) EndGame(ctx context.Context, player1, player2, winner string) error {
	if err := r.AddGame(ctx, player1, player2); err != nil {
		return err
	}
	args := withPair(player1, player2, int(models.GameStateOver), winner)
	if _, err := r.db.ExecContext(ctx, queryFinishGame, args...); err != nil {
		return fmt.Errorf("failed to end game: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteGame(ctx context.Context, player1, player2 string) error {
	res, err := r.db.ExecContext(ctx, queryDeleteGame, pairArgs(player1, player2)...)
	if err != nil {
		return fmt.Errorf("failed to delete game: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if n == 0 {
		return &ErrNotFound{}
	}
	return nil
}

func (r *SQLiteRepository) GetGame(ctx context.Context, player1, player2 string) (*models.Game, error) {
	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, queryGetGame, pairArgs(player1, player2)...).
		Scan(&game.Player1, &game.Player2, &game.State, &game.Winner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &ErrNotFound{}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %v", err)
	}
	return game, nil
}

func (r *SQLiteRepository) EitherGameExists(ctx context.Context, player1, player2 string) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, queryCountGames, pairArgs(player1, player2)...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count games: %v", err)
	}
	return count > 0, nil
}

func (r *SQLiteRepository) ListGames(ctx context.Context, state models.GameState) ([]*models.Game, error) {
	var rows *sql.Rows
	var err error
	if state == models.GameStateNone {
		rows, err = r.db.QueryContext(ctx, queryListGames)
	} else {
		rows, err = r.db.QueryContext(ctx, queryListGamesIn, int(state))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %v", err)
	}
	defer rows.Close()

	games := []*models.Game{}
	for rows.Next() {
		game := &models.Game{}
		if err := rows.Scan(&game.Player1, &game.Player2, &game.State, &game.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list games: %v", err)
	}
	return games, nil
}

func (r *SQLiteRepository) CountWins(ctx context.Context, name string) (int, error) {
	return r.count(ctx, queryCountWins, name, name, int(models.GameStateOver), name)
}

func (r *SQLiteRepository) CountLosses(ctx context.Context, name string) (int, error) {
	return r.count(ctx, queryCountLosses, name, name, int(models.GameStateOver), name)
}

func (r *SQLiteRepository) PlayerStats(ctx context.Context) ([]*models.PlayerStats, error) {
	rows, err := r.db.QueryContext(ctx, queryPlayerStats, playerStatsArgs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query player stats: %v", err)
	}
	defer rows.Close()

	stats := []*models.PlayerStats{}
	for rows.Next() {
		s := &models.PlayerStats{}
		if err := rows.Scan(&s.Name, &s.Wins, &s.Losses); err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %v", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query player stats: %v", err)
	}
	return stats, nil
}

func (r *SQLiteRepository) EligiblePlayers(ctx context.Context) ([]*models.Player, error) {
	maxLosses, err := r.GetMaxLosses(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryPlayers(ctx, queryEligiblePlayers, eligibleArgs(maxLosses)...)
}

func (r *SQLiteRepository) GetMaxLosses(ctx context.Context) (int, error) {
	var value string
	err := r.db.QueryRowContext(ctx, queryGetData, dataMaxLosses).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %v", dataMaxLosses, err)
	}
	return parseMaxLosses(value)
}

func (r *SQLiteRepository) SetMaxLosses(ctx context.Context, maxLosses int) error {
	if _, err := r.db.ExecContext(ctx, querySetData, dataMaxLosses, fmt.Sprint(maxLosses)); err != nil {
		return fmt.Errorf("failed to set %s: %v", dataMaxLosses, err)
	}
	return nil
}

func (r *SQLiteRepository) count(ctx context.Context, q string, args ...interface{}) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %v", err)
	}
	return n, nil
}

func (r *SQLiteRepository) queryPlayers(ctx context.Context, q string, args ...interface{}) ([]*models.Player, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %v", err)
	}
	defer rows.Close()

	players := []*models.Player{}
	for rows.Next() {
		p := &models.Player{}
		if err := rows.Scan(&p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %v", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query players: %v", err)
	}
	return players, nil
}
