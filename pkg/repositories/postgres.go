package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository serializes access to a single connection.
type PostgresRepository struct {
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to connStr and applies the migrations in dir.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	files, err := readMigrations(migrations)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for _, m := range files {
		if _, err := conn.Exec(ctx, m.sql); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.path, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) AddPlayer(ctx context.Context, name string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, err := r.conn.Exec(ctx, rebind(queryAddPlayer), name); err != nil {
		return fmt.Errorf("failed to add player: %v", err)
	}
	return nil
}

func (r *PostgresRepository) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.queryPlayers(ctx, queryListPlayers)
}

func (r *PostgresRepository) AddGame(ctx context.Context, player1, player2 string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.addGame(ctx, player1, player2)
}

func (r *PostgresRepository) addGame(ctx context.Context, player1, player2 string) error {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	for _, name := range []string{player1, player2} {
		if _, err := tx.Exec(ctx, rebind(queryAddPlayer), name); err != nil {
			return fmt.Errorf("failed to add player: %v", err)
		}
	}

	var count int
	if err := tx.QueryRow(ctx, rebind(queryCountGames), pairArgs(player1, player2)...).Scan(&count); err != nil {
		return fmt.Errorf("failed to count games: %v", err)
	}
	if count == 0 {
		if _, err := tx.Exec(ctx, rebind(queryInsertGame), player1, player2, int(models.GameStatePregame)); err != nil {
			return fmt.Errorf("failed to insert game: %v", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

func (r *PostgresRepository) StartGame(ctx context.Context, player1, player2 string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.addGame(ctx, player1, player2); err != nil {
		return err
	}
	args := withPair(player1, player2, int(models.GameStateStarted))
	if _, err := r.conn.Exec(ctx, rebind(querySetGameState), args...); err != nil {
		return fmt.Errorf("failed to start game: %v", err)
	}
	return nil
}

func (r *PostgresRepository) EndGame(ctx context.Context, player1, player2, winner string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.addGame(ctx, player1, player2); err != nil {
		return err
	}
	args := withPair(player1, player2, int(models.GameStateOver), winner)
	if _, err := r.conn.Exec(ctx, rebind(queryFinishGame), args...); err != nil {
		return fmt.Errorf("failed to end game: %v", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteGame(ctx context.Context, player1, player2 string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	tag, err := r.conn.Exec(ctx, rebind(queryDeleteGame), pairArgs(player1, player2)...)
	if err != nil {
		return fmt.Errorf("failed to delete game: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}
	return nil
}

func (r *PostgresRepository) GetGame(ctx context.Context, player1, player2 string) (*models.Game, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	game := &models.Game{}
	var state int
	err := r.conn.QueryRow(ctx, rebind(queryGetGame), pairArgs(player1, player2)...).
		Scan(&game.Player1, &game.Player2, &state, &game.Winner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrNotFound{}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %v", err)
	}
	game.State = models.GameState(state)
	return game, nil
}

func (r *PostgresRepository) EitherGameExists(ctx context.Context, player1, player2 string) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	var count int
	if err := r.conn.QueryRow(ctx, rebind(queryCountGames), pairArgs(player1, player2)...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count games: %v", err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListGames(ctx context.Context, state models.GameState) ([]*models.Game, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	var rows pgx.Rows
	var err error
	if state == models.GameStateNone {
		rows, err = r.conn.Query(ctx, queryListGames)
	} else {
		rows, err = r.conn.Query(ctx, rebind(queryListGamesIn), int(state))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %v", err)
	}
	defer rows.Close()

	games := []*models.Game{}
	for rows.Next() {
		game := &models.Game{}
		var s int
		if err := rows.Scan(&game.Player1, &game.Player2, &s, &game.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		game.State = models.GameState(s)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list games: %v", err)
	}
	return games, nil
}

func (r *PostgresRepository) CountWins(ctx context.Context, name string) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.count(ctx, queryCountWins, name, name, int(models.GameStateOver), name)
}

func (r *PostgresRepository) CountLosses(ctx context.Context, name string) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.count(ctx, queryCountLosses, name, name, int(models.GameStateOver), name)
}

func (r *PostgresRepository) PlayerStats(ctx context.Context) ([]*models.PlayerStats, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	rows, err := r.conn.Query(ctx, rebind(queryPlayerStats), playerStatsArgs()...)
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

func (r *PostgresRepository) EligiblePlayers(ctx context.Context) ([]*models.Player, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	maxLosses, err := r.getMaxLosses(ctx)
	if err != nil {
		return nil, err
	}
	return r.queryPlayers(ctx, queryEligiblePlayers, eligibleArgs(maxLosses)...)
}

func (r *PostgresRepository) GetMaxLosses(ctx context.Context) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.getMaxLosses(ctx)
}

func (r *PostgresRepository) getMaxLosses(ctx context.Context) (int, error) {
	var value string
	err := r.conn.QueryRow(ctx, rebind(queryGetData), dataMaxLosses).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %v", dataMaxLosses, err)
	}
	return parseMaxLosses(value)
}

func (r *PostgresRepository) SetMaxLosses(ctx context.Context, maxLosses int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, err := r.conn.Exec(ctx, rebind(querySetData), dataMaxLosses, fmt.Sprint(maxLosses)); err != nil {
		return fmt.Errorf("failed to set %s: %v", dataMaxLosses, err)
	}
	return nil
}

func (r *PostgresRepository) count(ctx context.Context, q string, args ...interface{}) (int, error) {
	var n int
	if err := r.conn.QueryRow(ctx, rebind(q), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %v", err)
	}
	return n, nil
}

func (r *PostgresRepository) queryPlayers(ctx context.Context, q string, args ...interface{}) ([]*models.Player, error) {
	rows, err := r.conn.Query(ctx, rebind(q), args...)
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
