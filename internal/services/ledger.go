package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock_test.go -package=services

import (
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// WalletReader loads the stored balances of a holder.
type WalletReader interface {
	GetByHolder(ctx context.Context, holder string) ([]models.HolderBalance, error)
}

type ledgerSnapshot map[string]map[string]float64

// BalanceLedger answers balance lookups from an immutable per-read snapshot.
type BalanceLedger struct {
	mu       sync.Mutex // serializes writers
	snapshot atomic.Pointer[ledgerSnapshot]
}

// NewBalanceLedger creates an empty ledger.
func NewBalanceLedger() *BalanceLedger {
	l := &BalanceLedger{}
	l.snapshot.Store(&ledgerSnapshot{})
	return l
}

// Load replaces all balances of holder.
func (l *BalanceLedger) Load(holder string, balances []models.HolderBalance) {
	amounts := make(map[string]float64, len(balances))
	for _, b := range balances {
		amounts[b.Symbol] = max(b.Amount, 0)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := *l.snapshot.Load()
	next := make(ledgerSnapshot, len(current)+1)
	for h, m := range current {
		next[h] = m
	}
	next[holder] = amounts
	l.snapshot.Store(&next)
}

// BalanceOf returns the available amount of symbol held by holder.
// Unknown holders and symbols yield 0.
func (l *BalanceLedger) BalanceOf(holder, symbol string) float64 {
	return (*l.snapshot.Load())[holder][symbol]
}

// Balances returns the holder's balances ordered by symbol.
func (l *BalanceLedger) Balances(holder string) []models.HolderBalance {
	amounts := (*l.snapshot.Load())[holder]
	balances := make([]models.HolderBalance, 0, len(amounts))
	for symbol, amount := range amounts {
		balances = append(balances, models.HolderBalance{Symbol: symbol, Amount: amount})
	}
	slices.SortFunc(balances, func(a, b models.HolderBalance) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return balances
}

// Refresh reloads holder's balances from reader. On error the previous balances stay.
func (l *BalanceLedger) Refresh(ctx context.Context, reader WalletReader, holder string) ([]models.HolderBalance, error) {
	balances, err := reader.GetByHolder(ctx, holder)
	if err != nil {
		logger.Log.Errorw("failed to load balances", "holder", holder, "error", err)
		return nil, err
	}
	l.Load(holder, balances)
	return l.Balances(holder), nil
}

// DemoBalances are handed to every holder when no wallet store is configured.
var DemoBalances = []models.HolderBalance{
	{Symbol: "USD", Amount: 1000},
	{Symbol: "ATOM", Amount: 566.6},
}

// StaticWalletReader returns the same balances for every holder.
type StaticWalletReader struct {
	balances []models.HolderBalance
}

// NewStaticWalletReader creates a reader serving balances.
func NewStaticWalletReader(balances []models.HolderBalance) *StaticWalletReader {
	return &StaticWalletReader{balances: slices.Clone(balances)}
}

// GetByHolder returns a copy of the configured balances.
func (r *StaticWalletReader) GetByHolder(ctx context.Context, holder string) ([]models.HolderBalance, error) {
	return slices.Clone(r.balances), nil
}
