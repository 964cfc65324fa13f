package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// GetAccountStatsOutput carries the remote statistics document unchanged.
type GetAccountStatsOutput struct {
	Stats entity.AccountStats
}

// GetAccountStatsUseCase fetches account statistics straight from the ledger service.
type GetAccountStatsUseCase struct {
	ledgerAPI adapter.LedgerAPI
}

// NewGetAccountStatsUseCase creates a new GetAccountStatsUseCase instance.
func NewGetAccountStatsUseCase(ledgerAPI adapter.LedgerAPI) *GetAccountStatsUseCase {
	return &GetAccountStatsUseCase{
		ledgerAPI: ledgerAPI,
	}
}

// Execute fetches the statistics. Nothing is cached.
func (uc *GetAccountStatsUseCase) Execute(ctx context.Context) (*GetAccountStatsOutput, error) {
	stats, err := uc.ledgerAPI.GetAccountStats(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to fetch account stats", "error", err)
		return nil, err
	}
	return &GetAccountStatsOutput{Stats: stats}, nil
}
