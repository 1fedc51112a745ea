package postgres

import (
	"context"

	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for the relational audit repository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

func (repo *auditRepository) CreateAccessLog(ctx context.Context, log *entity.AccessLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(fromAccessLogDomain(log)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access log")
	}

	return nil
}

func (repo *auditRepository) CreateCreditAdjustment(ctx context.Context, adjustment *entity.CreditAdjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(fromCreditAdjustmentDomain(adjustment)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credit adjustment")
	}

	return nil
}

func (repo *auditRepository) ListAccessLogs(ctx context.Context, userID string, limit int) ([]*entity.AccessLog, error) {
	var rows []*model.AccessLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list access logs")
	}

	logs := make([]*entity.AccessLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, toAccessLogDomain(row))
	}

	return logs, nil
}

func (repo *auditRepository) ListCreditAdjustments(ctx context.Context, clientID string, limit int) ([]*entity.CreditAdjustment, error) {
	var rows []*model.CreditAdjustmentModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("adjusted_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list credit adjustments")
	}

	adjustments := make([]*entity.CreditAdjustment, 0, len(rows))
	for _, row := range rows {
		adjustments = append(adjustments, toCreditAdjustmentDomain(row))
	}

	return adjustments, nil
}

func toAccessLogDomain(data *model.AccessLogModel) *entity.AccessLog {
	return &entity.AccessLog{
		ID:             data.ID,
		UserID:         data.UserID,
		Role:           entity.Role(data.Role),
		PreviousStatus: entity.AccessStatus(data.PreviousStatus),
		NewStatus:      entity.AccessStatus(data.NewStatus),
		Reason:         data.Reason,
		ChangedBy:      data.ChangedBy,
		ChangedAt:      data.ChangedAt,
	}
}

func fromAccessLogDomain(data *entity.AccessLog) *model.AccessLogModel {
	return &model.AccessLogModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Role:           string(data.Role),
		PreviousStatus: string(data.PreviousStatus),
		NewStatus:      string(data.NewStatus),
		Reason:         data.Reason,
		ChangedBy:      data.ChangedBy,
		ChangedAt:      data.ChangedAt,
	}
}

func toCreditAdjustmentDomain(data *model.CreditAdjustmentModel) *entity.CreditAdjustment {
	return &entity.CreditAdjustment{
		ID:                      data.ID,
		ClientID:                data.ClientID,
		PreviousCredits:         data.PreviousCredits,
		NewCredits:              data.NewCredits,
		Adjustment:              data.Adjustment,
		PreviousGymCredits:      data.PreviousGymCredits,
		PreviousIntervalCredits: data.PreviousIntervalCredits,
		NewGymCredits:           data.NewGymCredits,
		NewIntervalCredits:      data.NewIntervalCredits,
		Reason:                  data.Reason,
		AdjustedBy:              data.AdjustedBy,
		AdjustedAt:              data.AdjustedAt,
	}
}

func fromCreditAdjustmentDomain(data *entity.CreditAdjustment) *model.CreditAdjustmentModel {
	return &model.CreditAdjustmentModel{
		ID:                      data.ID,
		ClientID:                data.ClientID,
		PreviousCredits:         data.PreviousCredits,
		NewCredits:              data.NewCredits,
		Adjustment:              data.Adjustment,
		PreviousGymCredits:      data.PreviousGymCredits,
		PreviousIntervalCredits: data.PreviousIntervalCredits,
		NewGymCredits:           data.NewGymCredits,
		NewIntervalCredits:      data.NewIntervalCredits,
		Reason:                  data.Reason,
		AdjustedBy:              data.AdjustedBy,
		AdjustedAt:              data.AdjustedAt,
	}
}
