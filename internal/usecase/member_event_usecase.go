package usecase

import (
	"context"
	"fmt"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

// RetryableError marks a failure that should be redelivered by the queue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// NotifyResult summarizes a push delivery.
type NotifyResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
	Skipped       bool
}

// MemberNotificationUsecase delivers member events to devices.
type MemberNotificationUsecase interface {
	// NotifyMember sends the push notification for an event to the member's devices
	NotifyMember(ctx context.Context, event *service.MemberEvent) (*NotifyResult, error)
}
