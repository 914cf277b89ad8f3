package goals

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/validate"
)

var (
	ErrNoSelection      = errors.New("no goals selected")
	ErrCompletionFailed = errors.New("goal completion failed")
	ErrNotActive        = errors.New("goal is not active today")
)

// GoalAPI is the slice of the REST client the reconciler needs.
// *api.Client satisfies it.
type GoalAPI interface {
	TodayGoals(ctx context.Context) ([]domain.Goal, error)
	ActiveTodayGoals(ctx context.Context) ([]domain.Goal, error)
	CompleteGoals(ctx context.Context, ids []int64) error
	UpdateProgress(ctx context.Context, u domain.ProgressUpdate) (*domain.EnrolledCourse, error)
}

// CompleteRequest describes a completion batch. When IDs is empty the
// current selection is used. Progress, when set, is reported for one
// enrolled course after the goals are marked complete.
type CompleteRequest struct {
	IDs      []int64
	Progress *domain.ProgressUpdate
}

type dependent struct {
	name    string
	refresh func(ctx context.Context) error
}

// Reconciler holds today's goals (all and active) plus the user's selection.
// Its state is guarded for memory safety only: overlapping Complete calls
// are not serialized.
type Reconciler struct {
	api       GoalAPI
	obs       Observer
	now       func() time.Time
	validator *validate.Validator

	mu         sync.Mutex
	allToday   []domain.Goal
	active     []domain.Goal
	selected   map[int64]bool
	dependents []dependent
}

func NewReconciler(api GoalAPI, obs Observer) *Reconciler {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &Reconciler{
		api:       api,
		obs:       obs,
		now:       time.Now,
		validator: validate.New(),
		selected:  map[int64]bool{},
	}
}

// AddDependent registers a view refreshed after every successful completion,
// such as the calendar month or the enrolled course list.
func (r *Reconciler) AddDependent(name string, refresh func(ctx context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dependents = append(r.dependents, dependent{name: name, refresh: refresh})
}

// Refresh re-reads all of today's goals and the active subset. On error the
// previous state is kept. Selected ids that are no longer active are dropped.
func (r *Reconciler) Refresh(ctx context.Context) error {
	all, err := r.api.TodayGoals(ctx)
	if err != nil {
		return fmt.Errorf("fetching today's goals: %w", err)
	}
	active, err := r.api.ActiveTodayGoals(ctx)
	if err != nil {
		return fmt.Errorf("fetching active goals: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.allToday = all
	r.active = active
	keep := make(map[int64]bool, len(r.selected))
	for _, g := range active {
		if r.selected[g.ID] {
			keep[g.ID] = true
		}
	}
	r.selected = keep
	return nil
}

// AllToday returns a copy of today's goals, completed ones included.
func (r *Reconciler) AllToday() []domain.Goal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Goal(nil), r.allToday...)
}

// Active returns a copy of today's incomplete goals.
func (r *Reconciler) Active() []domain.Goal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Goal(nil), r.active...)
}

// Toggle flips the selection of an active goal.
func (r *Reconciler) Toggle(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.isActive(id) {
		return fmt.Errorf("goal %d: %w", id, ErrNotActive)
	}
	if r.selected[id] {
		delete(r.selected, id)
	} else {
		r.selected[id] = true
	}
	return nil
}

// Select adds active goals to the selection.
func (r *Reconciler) Select(ids ...int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if !r.isActive(id) {
			return fmt.Errorf("goal %d: %w", id, ErrNotActive)
		}
	}
	for _, id := range ids {
		r.selected[id] = true
	}
	return nil
}

func (r *Reconciler) ClearSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = map[int64]bool{}
}

func (r *Reconciler) IsSelected(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected[id]
}

// Selected returns selected ids in active-list order.
func (r *Reconciler) Selected() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for _, g := range r.active {
		if r.selected[g.ID] {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

func (r *Reconciler) isActive(id int64) bool {
	for _, g := range r.active {
		if g.ID == id {
			return true
		}
	}
	return false
}

// Batch is a completion that has been applied locally and still has to be
// submitted.
type Batch struct {
	IDs      []int64
	Progress *domain.ProgressUpdate
	m        Mutation
}

// Complete marks a batch of goals done. The local views change before the
// server is contacted; on success both lists and every dependent are
// re-fetched, on failure the lists are re-fetched to undo the optimistic
// change and an error wrapping ErrCompletionFailed is returned.
func (r *Reconciler) Complete(ctx context.Context, req CompleteRequest) error {
	b, err := r.Begin(req)
	if err != nil {
		return err
	}
	return r.Submit(ctx, b)
}

// Begin checks req and applies it to the local views without blocking.
// Nothing changes when it returns an error.
func (r *Reconciler) Begin(req CompleteRequest) (*Batch, error) {
	ids := req.IDs
	if len(ids) == 0 {
		ids = r.Selected()
	}
	if len(ids) == 0 {
		return nil, ErrNoSelection
	}
	if req.Progress != nil {
		if err := r.validator.Struct(*req.Progress); err != nil {
			return nil, fmt.Errorf("course progress: %w", err)
		}
	}

	b := &Batch{IDs: ids, Progress: req.Progress}
	b.m = Mutation{
		Name:  "complete_goals",
		Apply: func() { r.applyCompleted(ids) },
		Submit: func(ctx context.Context) error {
			if err := r.api.CompleteGoals(ctx, ids); err != nil {
				return err
			}
			if b.Progress != nil {
				if _, err := r.api.UpdateProgress(ctx, *b.Progress); err != nil {
					return fmt.Errorf("updating course progress: %w", err)
				}
			}
			return nil
		},
		Reconcile: r.reconcile,
		Revert:    r.Refresh,
	}
	Apply(b.m, r.obs)
	return b, nil
}

// Submit sends a batch from Begin, then reconciles or reverts.
func (r *Reconciler) Submit(ctx context.Context, b *Batch) error {
	if err := Settle(ctx, b.m, r.obs); err != nil {
		return fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	return nil
}

func (r *Reconciler) applyCompleted(ids []int64) {
	done := make(map[int64]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]domain.Goal, 0, len(r.active))
	for _, g := range r.active {
		if !done[g.ID] {
			active = append(active, g)
		}
	}
	r.active = active

	all := make([]domain.Goal, len(r.allToday))
	for i, g := range r.allToday {
		if done[g.ID] && !g.IsCompleted {
			g.IsCompleted = true
			at := now
			g.CompletedAt = &at
		}
		all[i] = g
	}
	r.allToday = all

	r.selected = map[int64]bool{}
}

func (r *Reconciler) reconcile(ctx context.Context) error {
	var errs []error
	if err := r.Refresh(ctx); err != nil {
		errs = append(errs, err)
	}

	r.mu.Lock()
	deps := append([]dependent(nil), r.dependents...)
	r.mu.Unlock()

	for _, d := range deps {
		if err := d.refresh(ctx); err != nil {
			errs = append(errs, fmt.Errorf("refreshing %s: %w", d.name, err))
		}
	}
	return errors.Join(errs...)
}

// Consistent reports whether every goal of today is either completed or
// active, and every active goal is an incomplete goal of today.
func (r *Reconciler) Consistent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make(map[int64]domain.Goal, len(r.allToday))
	for _, g := range r.allToday {
		all[g.ID] = g
	}
	active := make(map[int64]bool, len(r.active))
	for _, g := range r.active {
		a, ok := all[g.ID]
		if !ok || a.IsCompleted {
			return false
		}
		active[g.ID] = true
	}
	for _, g := range r.allToday {
		if !g.IsCompleted && !active[g.ID] {
			return false
		}
	}
	return true
}
