// Package goals keeps the client's view of today's goals in step with the
// server across optimistic completions.
package goals

import (
	"context"
)

// Phase is a step of an optimistic mutation.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseApplied    Phase = "optimistic_applied"
	PhaseSubmitting Phase = "submitting"
	PhaseReconciled Phase = "reconciled"
	PhaseReverted   Phase = "reverted"
)

// Mutation is a change applied locally before the server confirms it.
// Apply runs synchronously and must not block. Submit performs the remote
// writes. Reconcile runs after a successful Submit and Revert after a failed
// one; both re-read server state and their errors are reported to the
// observer rather than returned. Any hook may be nil.
type Mutation struct {
	Name      string
	Apply     func()
	Submit    func(ctx context.Context) error
	Reconcile func(ctx context.Context) error
	Revert    func(ctx context.Context) error
}

// Run drives m through Applied, Submitting and then Reconciled or Reverted,
// ending at Idle. It returns the Submit error, if any.
func Run(ctx context.Context, m Mutation, obs Observer) error {
	Apply(m, obs)
	return Settle(ctx, m, obs)
}

// Apply performs the local half of m. Callers that must show the change
// before any network call, such as a TUI update, call Apply directly and
// hand Settle to a background command.
func Apply(m Mutation, obs Observer) {
	if obs == nil {
		obs = NoopObserver{}
	}
	if m.Apply != nil {
		m.Apply()
	}
	obs.OnPhase(m.Name, PhaseApplied)
}

// Settle submits an applied mutation, then reconciles or reverts, ending at
// Idle. It returns the Submit error, if any.
func Settle(ctx context.Context, m Mutation, obs Observer) error {
	if obs == nil {
		obs = NoopObserver{}
	}
	defer obs.OnPhase(m.Name, PhaseIdle)

	obs.OnPhase(m.Name, PhaseSubmitting)
	var submitErr error
	if m.Submit != nil {
		submitErr = m.Submit(ctx)
	}

	if submitErr != nil {
		obs.OnPhase(m.Name, PhaseReverted)
		if m.Revert != nil {
			if err := m.Revert(ctx); err != nil {
				obs.OnReconcileFailed(m.Name, err)
			}
		}
		return submitErr
	}

	obs.OnPhase(m.Name, PhaseReconciled)
	if m.Reconcile != nil {
		if err := m.Reconcile(ctx); err != nil {
			obs.OnReconcileFailed(m.Name, err)
		}
	}
	return nil
}
