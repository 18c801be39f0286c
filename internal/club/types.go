package club

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// PlayerSuggestion is a candidate for a player name that did not match exactly.
type PlayerSuggestion struct {
	Player     cricket.Player
	Confidence float64
	Reasons    []string
}
