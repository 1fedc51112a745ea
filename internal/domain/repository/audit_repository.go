package repository

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// AuditRepository stores access status changes and credit adjustments.
type AuditRepository interface {
	// CreateAccessLog records an access status change.
	CreateAccessLog(ctx context.Context, log *entity.AccessLog) error

	// CreateCreditAdjustment records a manual credit change.
	CreateCreditAdjustment(ctx context.Context, adjustment *entity.CreditAdjustment) error

	// ListAccessLogs returns the access history of a user, newest first.
	ListAccessLogs(ctx context.Context, userID string, limit int) ([]*entity.AccessLog, error)

	// ListCreditAdjustments returns the credit history of a client, newest first.
	ListCreditAdjustments(ctx context.Context, clientID string, limit int) ([]*entity.CreditAdjustment, error)
}
