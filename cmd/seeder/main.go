package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/database"
)

const (
	batchSize  = 100 // rows per INSERT statement
	numMatches = 500
	squadSize  = 11
	numBowlers = 5
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "cricket.db",
		"MIGRATIONS_DIR":    "./migrations",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var seedPlayers = []struct {
	name  string
	short string
	role  cricket.Role
}{
	{"Arjun Mehta", "Arjun", cricket.RoleBatsman},
	{"Zara Khan", "Zara", cricket.RoleBowler},
	{"Tom Baker", "Tom", cricket.RoleAllRounder},
	{"Priya Nair", "Priya", cricket.RoleWicketKeeper},
	{"Sam Okafor", "Sam", cricket.RoleBatsman},
	{"Liam Walsh", "Liam", cricket.RoleBowler},
	{"Hannah Reid", "Hannah", cricket.RoleAllRounder},
	{"Omar Siddiqui", "Omar", cricket.RoleBatsman},
	{"Ben Carter", "Ben", cricket.RoleBowler},
	{"Maya Fernando", "Maya", cricket.RoleAllRounder},
	{"Josh Patel", "Josh", cricket.RoleBatsman},
	{"Ella Morgan", "Ella", cricket.RoleBowler},
	{"Ravi Shah", "Ravi", cricket.RoleAllRounder},
}

var opponents = []string{"Hillside", "Lakeside", "Riverside CC", "Old Boys", "University XI", "Northern Lights"}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	startTime := time.Now()
	now := time.Now().UTC().Unix()

	playerIDs := make([]string, 0, len(seedPlayers))
	playerRows := make([][]any, 0, len(seedPlayers))
	for _, p := range seedPlayers {
		id := uuid.NewString()
		playerIDs = append(playerIDs, id)
		playerRows = append(playerRows, []any{id, p.name, p.short, string(cricket.BattingStyleRightHand), p.role, 1, now, now})
	}

	var matchRows, battingRows, bowlingRows [][]any
	for i := 0; i < numMatches; i++ {
		matchID := uuid.NewString()
		matchType := cricket.MatchTypes[rand.Intn(len(cricket.MatchTypes))]
		venue := cricket.VenueHome
		if rand.Intn(2) == 0 {
			venue = cricket.VenueAway
		}
		date := time.Now().UTC().AddDate(0, 0, -rand.Intn(3*365)).Truncate(24 * time.Hour)
		matchRows = append(matchRows, []any{matchID, date.Unix(), opponents[rand.Intn(len(opponents))], venue, 20, matchType, now, now})

		squad := rand.Perm(len(playerIDs))[:squadSize]
		for pos, idx := range squad {
			balls := rand.Intn(60)
			runs := balls * (rand.Intn(150) + 25) / 100
			battingRows = append(battingRows, []any{
				uuid.NewString(), matchID, playerIDs[idx], runs, balls,
				runs / 8, runs / 25, rand.Intn(4) != 0, now, now,
			})
			if pos < numBowlers {
				spell := 6 * (rand.Intn(4) + 1)
				bowlingRows = append(bowlingRows, []any{
					uuid.NewString(), matchID, playerIDs[idx], spell, spell + rand.Intn(spell),
					rand.Intn(4), rand.Intn(3), rand.Intn(2), now, now,
				})
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}
	inserts := []struct {
		table   string
		columns string
		rows    [][]any
	}{
		{"players", "id, full_name, short_name, batting_style, role, is_active, created_at, updated_at", playerRows},
		{"matches", "id, date, opponent, venue, overs, match_type, created_at, updated_at", matchRows},
		{"batting_performances", "id, match_id, player_id, runs, balls, fours, sixes, is_out, created_at, updated_at", battingRows},
		{"bowling_performances", "id, match_id, player_id, balls, runs, wickets, wides, no_balls, created_at, updated_at", bowlingRows},
	}
	for _, ins := range inserts {
		if err := insertBatches(tx, ins.table, ins.columns, ins.rows); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to seed %s: %s", ins.table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	log.Info("Successfully seeded database.",
		"players", len(playerRows),
		"matches", len(matchRows),
		"innings", len(battingRows),
		"spells", len(bowlingRows),
		"duration", time.Since(startTime))
}

// insertBatches writes rows with multi-row INSERT statements of batchSize rows.
func insertBatches(tx *sql.Tx, table, columns string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(rows[0])), ", ") + ")"

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		valueStrings := make([]string, 0, end-start)
		valueArgs := make([]any, 0, (end-start)*len(rows[0]))
		for _, row := range rows[start:end] {
			valueStrings = append(valueStrings, placeholder)
			valueArgs = append(valueArgs, row...)
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s;", table, columns, strings.Join(valueStrings, ","))
		if _, err := tx.Exec(stmt, valueArgs...); err != nil {
			return fmt.Errorf("batch at row %d: %w", start, err)
		}
		log.Info("Inserted batch", "table", table, "completed", end, "total", len(rows))
	}
	return nil
}
