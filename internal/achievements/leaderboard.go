package achievements

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// FindRank returns the index of userID in entries, or -1.
func FindRank(entries []domain.LeaderboardEntry, userID int64) int {
	for i, e := range entries {
		if e.UserID == userID {
			return i
		}
	}
	return -1
}

// EarnedSplit partitions badges into earned and locked. Earned badges are
// ordered most recent first and locked ones by points required.
func EarnedSplit(badges []domain.Badge) (earned, locked []domain.Badge) {
	for _, b := range badges {
		if b.Earned {
			earned = append(earned, b)
		} else {
			locked = append(locked, b)
		}
	}
	sort.SliceStable(earned, func(i, j int) bool {
		a, b := earned[i].EarnedAt, earned[j].EarnedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	sort.SliceStable(locked, func(i, j int) bool {
		return locked[i].PointsRequired < locked[j].PointsRequired
	})
	return earned, locked
}
