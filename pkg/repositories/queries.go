package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbodonnell/arena/pkg/repositories/models"
)

const dataMaxLosses = "max_losses"

// Queries use ? placeholders. Postgres rebinds them to $n.
const (
	queryAddPlayer   = `INSERT INTO players (name) VALUES (?) ON CONFLICT (name) DO NOTHING`
	queryListPlayers = `SELECT name FROM players ORDER BY name`

	pairMatch = `(player1 = ? AND player2 = ?) OR (player1 = ? AND player2 = ?)`

	queryCountGames   = `SELECT COUNT(*) FROM games WHERE ` + pairMatch
	queryInsertGame   = `INSERT INTO games (player1, player2, state, winner) VALUES (?, ?, ?, '')`
	querySetGameState = `UPDATE games SET state = ? WHERE ` + pairMatch
	queryFinishGame   = `UPDATE games SET state = ?, winner = ? WHERE ` + pairMatch
	queryDeleteGame   = `DELETE FROM games WHERE ` + pairMatch
	queryGetGame      = `SELECT player1, player2, state, winner FROM games WHERE ` + pairMatch
	queryListGames    = `SELECT player1, player2, state, winner FROM games ORDER BY player1, player2`
	queryListGamesIn  = `SELECT player1, player2, state, winner FROM games WHERE state = ? ORDER BY player1, player2`

	queryCountWins   = `SELECT COUNT(*) FROM games WHERE (player1 = ? OR player2 = ?) AND state = ? AND winner = ?`
	queryCountLosses = `SELECT COUNT(*) FROM games WHERE (player1 = ? OR player2 = ?) AND state = ? AND winner <> ?`

	queryPlayerStats = `
	SELECT p.name,
		(SELECT COUNT(*) FROM games g WHERE (g.player1 = p.name OR g.player2 = p.name) AND g.state = ? AND g.winner = p.name) AS wins,
		(SELECT COUNT(*) FROM games g WHERE (g.player1 = p.name OR g.player2 = p.name) AND g.state = ? AND g.winner <> p.name) AS losses
	FROM players p
	ORDER BY wins DESC, losses DESC, p.name`

	queryEligiblePlayers = `
	SELECT p.name FROM players p
	WHERE (SELECT COUNT(*) FROM games g WHERE (g.player1 = p.name OR g.player2 = p.name) AND g.state = ? AND g.winner <> p.name) < ?
	AND NOT EXISTS (SELECT 1 FROM games g WHERE (g.player1 = p.name OR g.player2 = p.name) AND g.state IN (?, ?))
	ORDER BY p.name`

	queryGetData = `SELECT value FROM data WHERE var = ?`
	querySetData = `INSERT INTO data (var, value) VALUES (?, ?) ON CONFLICT (var) DO UPDATE SET value = excluded.value`
)

func pairArgs(player1, player2 string) []interface{} {
	return []interface{}{player1, player2, player2, player1}
}

func withPair(player1, player2 string, args ...interface{}) []interface{} {
	return append(args, pairArgs(player1, player2)...)
}

func playerStatsArgs() []interface{} {
	return []interface{}{int(models.GameStateOver), int(models.GameStateOver)}
}

func eligibleArgs(maxLosses int) []interface{} {
	return []interface{}{int(models.GameStateOver), maxLosses, int(models.GameStatePregame), int(models.GameStateStarted)}
}

func parseMaxLosses(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %v", dataMaxLosses, value, err)
	}
	return n, nil
}

// rebind rewrites ? placeholders as $1, $2, ...
func rebind(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type migration struct {
	path string
	sql  string
}

// readMigrations returns the files of dir in name order.
func readMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var migrations []migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", path, err)
		}
		migrations = append(migrations, migration{path: path, sql: string(b)})
	}
	return migrations, nil
}
