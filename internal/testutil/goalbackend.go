package testutil

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// GoalBackend serves the goal endpoints of a FakeAPI from an in-memory list.
// POST /api/goals/complete marks goals completed so later reads see it.
type GoalBackend struct {
	mu    sync.Mutex
	goals []domain.Goal
	// FailComplete makes the completion endpoint answer with this status.
	FailComplete int
}

// ServeGoals installs goal routes on f backed by goals.
func ServeGoals(f *FakeAPI, goals ...domain.Goal) *GoalBackend {
	b := &GoalBackend{goals: goals}
	f.Handle(http.MethodGet, "/api/goals/today", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, b.list(false))
	})
	f.Handle(http.MethodGet, "/api/goals/today/active", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, b.list(true))
	})
	f.Handle(http.MethodPost, "/api/goals/complete", func(w http.ResponseWriter, r *http.Request) {
		var req domain.CompleteGoalsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		b.mu.Lock()
		status := b.FailComplete
		b.mu.Unlock()
		if status != 0 {
			WriteJSON(w, status, map[string]string{"message": "completion rejected"})
			return
		}
		b.complete(req.CompletedGoalIDs)
		w.WriteHeader(http.StatusOK)
	})
	return b
}

// SetFailComplete changes the completion endpoint's failure status; 0 succeeds.
func (b *GoalBackend) SetFailComplete(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.FailComplete = status
}

// Goals returns the backend's current goals.
func (b *GoalBackend) Goals() []domain.Goal {
	return b.list(false)
}

func (b *GoalBackend) list(activeOnly bool) []domain.Goal {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Goal{}
	for _, g := range b.goals {
		if activeOnly && g.IsCompleted {
			continue
		}
		out = append(out, g)
	}
	return out
}

func (b *GoalBackend) complete(ids []int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range ids {
		for i := range b.goals {
			if b.goals[i].ID == id {
				b.goals[i].IsCompleted = true
			}
		}
	}
}
