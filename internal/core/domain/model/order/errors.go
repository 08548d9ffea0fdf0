package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

func errsInvalidStatus(s Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid status", s))
}

func errsInvalidTransition(from, to Status) error {
	return errs.NewInvalidTransitionError(from.String(), to.String())
}
