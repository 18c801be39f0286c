package stats

import (
	"fmt"
	"math"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// Round rounds v to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// ratio returns num/den rounded, or 0 when den is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return Round(num / den)
}

// Overs formats a ball count in cricket notation: complete overs, a dot,
// then the balls bowled in the unfinished over (0-5).
func Overs(balls int) string {
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

// Economy is runs conceded per six-ball over.
func Economy(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return Round(float64(runs) / (float64(balls) / 6))
}

// BestFigures picks the spell with the most wickets, preferring fewer runs on
// a tie, and formats it as "wickets/runs".
func BestFigures(perfs []cricket.BowlingPerformance) string {
	if len(perfs) == 0 {
		return NoFigures
	}
	best := perfs[0]
	for _, p := range perfs[1:] {
		if p.Wickets > best.Wickets || (p.Wickets == best.Wickets && p.Runs < best.Runs) {
			best = p
		}
	}
	return fmt.Sprintf("%d/%d", best.Wickets, best.Runs)
}
