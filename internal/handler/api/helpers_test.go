//go:build unit

package api_test

import (
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

func errMarkedValidation(err error) error {
	return errs.Mark(err, shared.ErrValidation)
}

func errMarked(err, mark error) error {
	return errs.Mark(err, mark)
}
