package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

const selectBalancesByHolder = `SELECT currency AS symbol, balance AS amount FROM wallets WHERE holder = $1 ORDER BY currency`

// WalletReaderRepository reads holder balances from Postgres.
type WalletReaderRepository struct {
	db *sqlx.DB
}

// NewWalletReaderRepository creates a repository on db.
func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByHolder returns one balance per currency stored for holder.
func (r *WalletReaderRepository) GetByHolder(ctx context.Context, holder string) ([]models.HolderBalance, error) {
	var balances []models.HolderBalance
	err := r.db.SelectContext(ctx, &balances, selectBalancesByHolder, holder)

	logger.Log.Infow("wallet balances query",
		"query", selectBalancesByHolder,
		"args", []any{holder},
		"result", len(balances),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return balances, nil
}
