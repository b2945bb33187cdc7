package usecase

import (
	"errors"
	"fmt"

	"coinloop/internal/core/domain"
)

func success(format string, args ...any) domain.Notification {
	return domain.Notification{Message: fmt.Sprintf(format, args...), Severity: domain.SeveritySuccess}
}

func info(format string, args ...any) domain.Notification {
	return domain.Notification{Message: fmt.Sprintf(format, args...), Severity: domain.SeverityInfo}
}

// failureNotice turns a command error into the message shown to the user.
// Not-found races and exhausted campaigns are informational; everything
// else is an error.
func failureNotice(err error) domain.Notification {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return info("This task is no longer available")
	case errors.Is(err, domain.ErrCampaignNotFound):
		return info("Campaign not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return info("Account not found")
	case errors.Is(err, domain.ErrCampaignExhausted):
		return info("Campaign already completed")
	case errors.Is(err, domain.ErrTaskExists):
		return info("Task is already in the pool")
	case errors.Is(err, domain.ErrInsufficientFunds):
		return domain.Notification{Message: "Not enough credits", Severity: domain.SeverityError}
	case errors.As(err, &verr):
		return domain.Notification{Message: "Invalid " + verr.Field + ": " + verr.Reason, Severity: domain.SeverityError}
	case errors.Is(err, domain.ErrLedgerMismatch):
		return domain.Notification{Message: "Wallet is out of balance", Severity: domain.SeverityError}
	default:
		return domain.Notification{Message: "Something went wrong, please try again", Severity: domain.SeverityError}
	}
}
