// Package achievements derives badge tiers and leaderboard positions from
// the point totals reported by the server.
package achievements

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// Tier is a badge level and the points needed to reach it.
type Tier struct {
	Level     domain.BadgeLevel
	MinPoints int
}

// Tiers lists the badge levels in ascending order.
var Tiers = []Tier{
	{domain.LevelNovice, 0},
	{domain.LevelApprentice, 100},
	{domain.LevelSkilled, 300},
	{domain.LevelAdvanced, 700},
	{domain.LevelExpert, 1500},
	{domain.LevelMaster, 3000},
}

func tierIndex(points int) int {
	idx := 0
	for i, t := range Tiers {
		if points >= t.MinPoints {
			idx = i
		}
	}
	return idx
}

// LevelForPoints returns the highest level whose threshold points reaches.
// Negative totals count as NOVICE.
func LevelForPoints(points int) domain.BadgeLevel {
	return Tiers[tierIndex(points)].Level
}

// NextLevel returns the level after l, or false at MASTER or for an unknown level.
func NextLevel(l domain.BadgeLevel) (domain.BadgeLevel, bool) {
	for i, t := range Tiers {
		if t.Level == l && i+1 < len(Tiers) {
			return Tiers[i+1].Level, true
		}
	}
	return "", false
}

// PointsToNext returns the points still needed for the next level; 0 at MASTER.
func PointsToNext(points int) int {
	i := tierIndex(points)
	if i+1 >= len(Tiers) {
		return 0
	}
	return Tiers[i+1].MinPoints - max(points, 0)
}

// ProgressToNext returns how far points is through its current tier as a
// fraction in [0,1]. It is 1 at MASTER.
func ProgressToNext(points int) float64 {
	i := tierIndex(points)
	if i+1 >= len(Tiers) {
		return 1
	}
	lo, hi := Tiers[i].MinPoints, Tiers[i+1].MinPoints
	p := max(points, 0)
	return float64(p-lo) / float64(hi-lo)
}
