package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// ErrNoWalletSource is returned when balances cannot be refreshed because no wallet store is configured.
var ErrNoWalletSource = errors.New("wallet source not configured")

// DefaultSwapRequest is the selection a new session starts with.
var DefaultSwapRequest = models.SwapRequest{SourceSymbol: "USD", TargetSymbol: "ETH"}

// SwapSession pairs the form of one holder with its submission flow.
type SwapSession struct {
	Holder string
	Form   *SwapFormController
	Flow   *SwapSubmissionFlow

	lastSeen time.Time // guarded by SessionRegistry.mu
}

// State returns the combined form and submission view.
func (s *SwapSession) State() models.SwapStateResponse {
	return models.SwapStateResponse{
		Holder:     s.Holder,
		Form:       s.Form.State(),
		Submission: s.Flow.Submission(),
	}
}

// SessionRegistry lazily creates one swap session per holder.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*SwapSession

	catalog       InstrumentLookup
	ledger        *BalanceLedger
	wallets       WalletReader
	settler       Settler
	scheduler     Scheduler
	displayWindow time.Duration
	defaults      models.SwapRequest
	now           func() time.Time
}

// NewSessionRegistry creates a registry. wallets may be nil, in which case
// balances are only what was loaded into ledger directly.
func NewSessionRegistry(
	catalog InstrumentLookup,
	ledger *BalanceLedger,
	wallets WalletReader,
	settler Settler,
	scheduler Scheduler,
	displayWindow time.Duration,
) *SessionRegistry {
	return &SessionRegistry{
		sessions:      make(map[string]*SwapSession),
		catalog:       catalog,
		ledger:        ledger,
		wallets:       wallets,
		settler:       settler,
		scheduler:     scheduler,
		displayWindow: displayWindow,
		defaults:      DefaultSwapRequest,
		now:           time.Now,
	}
}

// Session returns the holder's session, creating it on first use. A new session
// loads the holder's balances when a wallet store is configured; the load runs
// without holding the registry lock.
func (r *SessionRegistry) Session(ctx context.Context, holder string) *SwapSession {
	if s := r.existing(holder); s != nil {
		return s
	}

	if r.wallets != nil {
		// unknown balances read as zero, so a failed load is not fatal
		_, _ = r.ledger.Refresh(ctx, r.wallets, holder)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another request may have created it while balances were loading
	if s, ok := r.sessions[holder]; ok {
		s.lastSeen = r.now()
		return s
	}

	form := NewSwapFormController(holder, r.catalog, r.ledger, r.defaults)
	s := &SwapSession{
		Holder:   holder,
		Form:     form,
		Flow:     NewSwapSubmissionFlow(holder, form, r.settler, r.scheduler, r.displayWindow),
		lastSeen: r.now(),
	}
	r.sessions[holder] = s
	logger.Log.Infow("swap session created", "holder", holder)
	return s
}

func (r *SessionRegistry) existing(holder string) *SwapSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[holder]
	if !ok {
		return nil
	}
	s.lastSeen = r.now()
	return s
}

func (r *SessionRegistry) all() []*SwapSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := make([]*SwapSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// State returns the holder's form and submission.
func (r *SessionRegistry) State(ctx context.Context, holder string) models.SwapStateResponse {
	return r.Session(ctx, holder).State()
}

// UpdateForm applies a partial form edit.
func (r *SessionRegistry) UpdateForm(ctx context.Context, holder string, edit models.UpdateFormRequest) (models.SwapStateResponse, error) {
	s := r.Session(ctx, holder)
	if _, err := s.Form.Apply(edit); err != nil {
		return s.State(), err
	}
	return s.State(), nil
}

// SwapDirection flips the trade direction.
func (r *SessionRegistry) SwapDirection(ctx context.Context, holder string) models.SwapStateResponse {
	s := r.Session(ctx, holder)
	s.Form.SwapDirection()
	return s.State()
}

// UseMaxBalance fills in the whole source balance.
func (r *SessionRegistry) UseMaxBalance(ctx context.Context, holder string) models.SwapStateResponse {
	s := r.Session(ctx, holder)
	s.Form.UseMaxBalance()
	return s.State()
}

// Preview opens the confirmation step.
func (r *SessionRegistry) Preview(ctx context.Context, holder string) (models.SwapStateResponse, error) {
	s := r.Session(ctx, holder)
	_, err := s.Flow.RequestPreview()
	return s.State(), err
}

// Confirm starts settlement of the previewed swap.
func (r *SessionRegistry) Confirm(ctx context.Context, holder string) (models.SwapStateResponse, error) {
	s := r.Session(ctx, holder)
	err := s.Flow.Confirm(ctx)
	return s.State(), err
}

// Cancel abandons the preview.
func (r *SessionRegistry) Cancel(ctx context.Context, holder string) (models.SwapStateResponse, error) {
	s := r.Session(ctx, holder)
	err := s.Flow.Cancel()
	return s.State(), err
}

// Dismiss hides a settled swap.
func (r *SessionRegistry) Dismiss(ctx context.Context, holder string) (models.SwapStateResponse, error) {
	s := r.Session(ctx, holder)
	err := s.Flow.Dismiss()
	return s.State(), err
}

// Balances returns the holder's known balances.
func (r *SessionRegistry) Balances(ctx context.Context, holder string) []models.HolderBalance {
	r.Session(ctx, holder)
	return r.ledger.Balances(holder)
}

// RefreshBalances reloads the holder's balances and revalidates an open form.
func (r *SessionRegistry) RefreshBalances(ctx context.Context, holder string) ([]models.HolderBalance, error) {
	if r.wallets == nil {
		return nil, ErrNoWalletSource
	}
	balances, err := r.ledger.Refresh(ctx, r.wallets, holder)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	s, ok := r.sessions[holder]
	r.mu.Unlock()
	if ok {
		s.Form.Revalidate()
	}
	return balances, nil
}

// RevalidateAll re-derives every open form against the current catalog and balances.
func (r *SessionRegistry) RevalidateAll() {
	sessions := r.all()
	for _, s := range sessions {
		s.Form.Revalidate()
	}
	logger.Log.Debugw("swap sessions revalidated", "sessions", len(sessions))
}

// EvictIdle closes and forgets sessions unused for longer than maxIdle. Sessions
// with a swap in progress are kept.
func (r *SessionRegistry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var evicted []*SwapSession
	for holder, s := range r.sessions {
		if s.lastSeen.Before(cutoff) && s.Flow.Status() == models.StatusIdle {
			evicted = append(evicted, s)
			delete(r.sessions, holder)
		}
	}
	r.mu.Unlock()

	for _, s := range evicted {
		s.Flow.Close()
		logger.Log.Infow("swap session evicted", "holder", s.Holder, "idle_since", s.lastSeen)
	}
	return len(evicted)
}

// RunEviction calls EvictIdle every maxIdle until ctx is done.
func (r *SessionRegistry) RunEviction(ctx context.Context, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.EvictIdle(maxIdle)
		}
	}
}

// CloseAll tears down every session.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*SwapSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[string]*SwapSession)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Flow.Close()
	}
}
