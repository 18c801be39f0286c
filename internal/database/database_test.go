package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "matches", "batting_performances", "bowling_performances", "metrics"} {
		t.Run(table, func(t *testing.T) {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			require.NoError(t, err)
			assert.Equal(t, table, name)
		})
	}
}

func TestInitDB_PerformanceUniquePerMatchAndPlayer(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	insert := `INSERT INTO batting_performances (id, match_id, player_id, created_at, updated_at) VALUES (?, 'm1', 'p1', 0, 0)`
	_, err = db.Exec(insert, "a")
	require.NoError(t, err)
	_, err = db.Exec(insert, "b")
	assert.Error(t, err, "a second innings for the same match and player should be rejected")
}

func TestInitDB_IsIdempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	require.NoError(t, migrate(db, "../../migrations"), "re-running migrations should be a no-op")
}

func TestInitDB_MissingMigrations(t *testing.T) {
	_, _, err := InitDB(":memory:", "", "", "./does-not-exist")
	assert.Error(t, err)
}
