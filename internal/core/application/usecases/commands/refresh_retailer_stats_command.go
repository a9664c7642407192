package commands

import (
	"errors"

	"b2better/internal/pkg/guard"
)

// RefreshRetailerStatsCommand recomputes the statistics block of every retailer
// from active orders. It is issued periodically by the jobs package.
type RefreshRetailerStatsCommand struct {
	guard guard.ConstructorGuard
}

var ErrRefreshRetailerStatsCommandIsNotConstructed = errors.New(
	"RefreshRetailerStatsCommand must be created via NewRefreshRetailerStatsCommand constructor",
)

func NewRefreshRetailerStatsCommand() RefreshRetailerStatsCommand {
	return RefreshRetailerStatsCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshRetailerStatsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshRetailerStatsCommandIsNotConstructed)
}
