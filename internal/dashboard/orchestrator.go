// Package dashboard reconciles the four independent analytics queries into
// one view model with unified loading and error semantics.
package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"finview/internal/api"
	"finview/internal/logging"
)

// Status is the view model's resolution state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// AnalyticsClient is the slice of the analytics gateway the orchestrator
// needs. *api.DashboardAPI satisfies it; tests provide fakes.
type AnalyticsClient interface {
	Summary(ctx context.Context) (api.Summary, error)
	ExpensesByCategory(ctx context.Context, startDate, endDate string) (api.ExpensesByCategory, error)
	IncomeVsExpenses(ctx context.Context, months int) (api.IncomeVsExpenses, error)
	RecentTransactions(ctx context.Context, limit int) ([]api.Transaction, error)
}

// ViewModel is the fully resolved set of dashboard data. Status is
// StatusReady only when all four slices were fetched successfully in the
// same refresh cycle; a cycle with any failure exposes no slice at all.
type ViewModel struct {
	Status Status
	Error  string

	Summary            *api.Summary
	ExpensesByCategory *api.ExpensesByCategory
	IncomeVsExpenses   *api.IncomeVsExpenses
	RecentTransactions []api.Transaction
}

// Orchestrator fans the four analytics queries out concurrently and merges
// their results all-or-nothing. Overlapping refreshes are resolved
// last-cycle-wins: a superseded cycle's result is discarded on arrival, the
// underlying calls are not aborted.
type Orchestrator struct {
	analytics AnalyticsClient
	log       logging.Logger

	mu         sync.Mutex
	generation uint64
	vm         ViewModel
}

// NewOrchestrator returns an orchestrator whose view model starts in
// StatusLoading, matching a view that refreshes on first mount.
func NewOrchestrator(analytics AnalyticsClient, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		analytics: analytics,
		log:       log.With("component", "dashboard"),
		vm:        ViewModel{Status: StatusLoading},
	}
}

// Current returns the last published view model (or the in-flight Loading
// state while the newest cycle is unresolved).
func (o *Orchestrator) Current() ViewModel {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.vm
}

// Refresh runs one full fetch cycle and returns the view model visible when
// it resolved: its own result, or a newer cycle's if this one was
// superseded. Total latency is bounded by the slowest single call, not the
// sum; the four queries run concurrently.
func (o *Orchestrator) Refresh(ctx context.Context) ViewModel {
	o.mu.Lock()
	o.generation++
	cycle := o.generation
	o.vm.Status = StatusLoading
	o.vm.Error = ""
	o.mu.Unlock()

	var (
		summary api.Summary
		byCat   api.ExpensesByCategory
		series  api.IncomeVsExpenses
		recent  []api.Transaction
	)

	// Plain errgroup, no shared cancellation: every call settles on its own
	// and Wait reports the first failure.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		summary, err = o.analytics.Summary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		byCat, err = o.analytics.ExpensesByCategory(ctx, "", "")
		return err
	})
	g.Go(func() error {
		var err error
		series, err = o.analytics.IncomeVsExpenses(ctx, api.DefaultMonths)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = o.analytics.RecentTransactions(ctx, api.DefaultRecentLimit)
		return err
	})
	err := g.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()
	if cycle != o.generation {
		// A newer refresh started while this one was in flight; its result
		// owns the view model now.
		o.log.Debug(ctx, "discarding superseded refresh", "cycle", cycle, "newest", o.generation)
		return o.vm
	}

	if err != nil {
		o.vm = ViewModel{Status: StatusFailed, Error: err.Error()}
		o.log.Warn(ctx, "refresh failed", "cycle", cycle, "error", err)
		return o.vm
	}

	o.vm = ViewModel{
		Status:             StatusReady,
		Summary:            &summary,
		ExpensesByCategory: &byCat,
		IncomeVsExpenses:   &series,
		RecentTransactions: recent,
	}
	o.log.Debug(ctx, "refresh complete", "cycle", cycle)
	return o.vm
}
