// Package session owns the client's belief about who, if anyone, is
// currently authenticated. A single Manager exists per process; it is
// constructed in main and injected into the view layer, which only ever
// reads snapshots.
package session

import (
	"context"
	"errors"
	"sync"

	"finview/internal/api"
	"finview/internal/logging"
)

// Status is the session's resolution state.
type Status string

const (
	StatusUnresolved    Status = "unresolved"
	StatusChecking      Status = "checking"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Operation marks which auth operation, if any, is in flight.
type Operation string

const (
	OpNone        Operation = ""
	OpLoggingIn   Operation = "logging_in"
	OpRegistering Operation = "registering"
	OpLoggingOut  Operation = "logging_out"
)

var (
	// ErrOperationPending is returned when a login/register/logout is
	// requested while another one is still in flight. Operations are not
	// queued; the caller gets an immediate rejection.
	ErrOperationPending = errors.New("another auth operation is in progress")

	// ErrBootstrapped is returned by a second Bootstrap call. Bootstrap runs
	// exactly once per process.
	ErrBootstrapped = errors.New("session already bootstrapped")
)

// IdentityClient is the slice of the identity gateway the Manager needs.
// *api.AuthAPI satisfies it; tests provide fakes.
type IdentityClient interface {
	Login(ctx context.Context, identifier, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (api.Identity, error)
}

// Snapshot is a consistent read of the session. User is non-nil exactly when
// Status is StatusAuthenticated.
type Snapshot struct {
	Status    Status
	User      *api.Identity
	Pending   Operation
	LastError string
}

// Manager is the session state machine.
//
// States: Unresolved → Checking → {Authenticated, Anonymous}; from either
// resolved state a single pending operation (login/register/logout) may be
// entered and always resolves back to Authenticated or Anonymous. All state
// is guarded by mu; the pending-operation guard is taken synchronously
// before any network call, so overlapping auth operations cannot interleave
// writes.
type Manager struct {
	identity IdentityClient
	log      logging.Logger

	mu           sync.Mutex
	status       Status
	user         *api.Identity
	pending      Operation
	lastError    string
	bootstrapped bool
}

// NewManager returns a Manager in StatusUnresolved.
func NewManager(identity IdentityClient, log logging.Logger) *Manager {
	return &Manager{
		identity: identity,
		log:      log.With("component", "session"),
		status:   StatusUnresolved,
	}
}

// Snapshot returns a consistent copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Status:    m.status,
		Pending:   m.pending,
		LastError: m.lastError,
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Bootstrap resolves the session once at process start: Checking, then
// Authenticated if the ambient cookie still names a user, Anonymous
// otherwise. The absence of a session is a normal outcome, so no failure is
// recorded in LastError. A second call returns ErrBootstrapped.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	if m.bootstrapped {
		m.mu.Unlock()
		return ErrBootstrapped
	}
	m.bootstrapped = true
	m.status = StatusChecking
	m.mu.Unlock()

	identity, err := m.identity.CurrentUser(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status = StatusAnonymous
		m.user = nil
		m.log.Debug(ctx, "bootstrap resolved anonymous", "reason", err)
		return nil
	}
	m.status = StatusAuthenticated
	m.user = &identity
	m.log.Info(ctx, "bootstrap resolved authenticated", "user", identity.Username)
	return nil
}

// Login authenticates with an email or username. The server's login reply
// carries no identity, so the session only becomes Authenticated after a
// follow-up CurrentUser fetch succeeds; if that fetch fails the whole login
// is reported as failed even though the credentials were accepted.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	if err := m.begin(OpLoggingIn); err != nil {
		return err
	}
	return m.finish(ctx, m.establish(ctx, identifier, password))
}

// Register creates an account and then performs the login transition with
// the new email. Register never yields a session without that implicit
// login succeeding.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if err := m.begin(OpRegistering); err != nil {
		return err
	}
	if err := m.identity.Register(ctx, username, email, password); err != nil {
		return m.finish(ctx, err)
	}
	return m.finish(ctx, m.establish(ctx, email, password))
}

// Logout invalidates the remote session and unconditionally clears the
// local one. Even when the network call fails the session ends Anonymous: a
// stale authenticated view is worse than a dropped server session.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.begin(OpLoggingOut); err != nil {
		return err
	}

	if err := m.identity.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusAnonymous
	m.user = nil
	m.pending = OpNone
	return nil
}

// ClearError drops the last recorded failure message without touching the
// session status. The view layer calls it when input changes.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = ""
}

// begin takes the single-flight guard and clears any previous error.
// It must not be held across network calls; only the pending marker is.
func (m *Manager) begin(op Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending != OpNone {
		return ErrOperationPending
	}
	m.pending = op
	m.lastError = ""
	return nil
}

// establish runs the two-step login: credentials first, identity fetch
// second. It returns the identity application as part of finish's success
// path by storing the fetched user directly.
func (m *Manager) establish(ctx context.Context, identifier, password string) error {
	if err := m.identity.Login(ctx, identifier, password); err != nil {
		return err
	}

	identity, err := m.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.status = StatusAuthenticated
	m.user = &identity
	m.mu.Unlock()
	m.log.Info(ctx, "login succeeded", "user", identity.Username)
	return nil
}

// finish releases the guard and, on failure, records the message and
// resolves the state: an already-authenticated session survives a failed
// re-login, anything else lands in Anonymous.
func (m *Manager) finish(ctx context.Context, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = OpNone
	if err != nil {
		m.lastError = err.Error()
		if m.status != StatusAuthenticated {
			m.status = StatusAnonymous
			m.user = nil
		}
		m.log.Warn(ctx, "auth operation failed", "error", err)
	}
	return err
}
