package commands

import (
	"context"
)

// ReleaseOrphanedDriversCommandHandler reconciles the driver free pool
// against the set of in-transit orders. A driver marked delivering without a
// matching in-transit order is returned to the pool.
type ReleaseOrphanedDriversCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewReleaseOrphanedDriversCommandHandler creates a handler for the
// reconciliation sweep.
func NewReleaseOrphanedDriversCommandHandler(uowFactory DispatchUoWFactory) ReleaseOrphanedDriversCommandHandler {
	return ReleaseOrphanedDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Frees every delivering driver no in-transit order references in a single
// statement, so a dispatch committing mid-sweep keeps its driver. Returns the
// number of drivers released.
func (h ReleaseOrphanedDriversCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseOrphanedDriversCommand,
) (int64, error) {
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

	released, err := uow.DriverRepository().ReleaseOrphaned(ctx)
	if err != nil {
		return 0, err
	}

	return released, uow.Commit(ctx)
}
