package usecase

import (
	"errors"

	"coinloop/internal/core/domain"
)

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

func isInsufficient(err error) bool { return errors.Is(err, domain.ErrInsufficientFunds) }
