package commands

import (
	"context"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/retailer"
)

// RefreshRetailerStatsCommandHandler writes order counts, revenue, distinct
// customers and last order date onto each retailer. Retailers without active
// orders are reset to empty statistics. All retailers are updated in one transaction.
type RefreshRetailerStatsCommandHandler struct {
	uowFactory UoWFactory
}

func NewRefreshRetailerStatsCommandHandler(uowFactory UoWFactory) RefreshRetailerStatsCommandHandler {
	return RefreshRetailerStatsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of retailers whose statistics were written.
func (h RefreshRetailerStatsCommandHandler) Handle(ctx context.Context, cmd RefreshRetailerStatsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	summaries, err := uow.OrderRepository().SummarizeByRetailer(ctx)
	if err != nil {
		return 0, err
	}

	retailerRepo := uow.RetailerRepository()
	retailers, err := retailerRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, r := range retailers {
		stats, ok := summaries[r.ID()]
		if !ok {
			stats = retailer.Stats{TotalRevenue: kernel.ZeroMoney()}
		}

		if err = r.UpdateStats(stats); err != nil {
			return 0, err
		}

		if err = retailerRepo.Update(ctx, r); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(retailers), nil
}
