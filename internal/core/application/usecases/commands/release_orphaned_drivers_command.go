package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrReleaseOrphanedDriversCommandIsNotConstructed = errors.New(
	"ReleaseOrphanedDriversCommand must be created via NewReleaseOrphanedDriversCommand constructor",
)

// ReleaseOrphanedDriversCommand triggers a reconciliation sweep that frees
// drivers whose delivering flag no longer matches any in-transit order.
// Such drift can appear after a crash between the order transition and the
// flag release.
type ReleaseOrphanedDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseOrphanedDriversCommand creates a reconciliation command.
func NewReleaseOrphanedDriversCommand() ReleaseOrphanedDriversCommand {
	return ReleaseOrphanedDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrphanedDriversCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrphanedDriversCommandIsNotConstructed)
}
