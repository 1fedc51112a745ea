package firestore

import (
	"context"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// auditRepository keeps audit records next to the documents they describe.
type auditRepository struct {
	client *fs.Client
}

// NewAuditRepository is the constructor for the Firestore audit repository.
func NewAuditRepository(client *fs.Client) repository.AuditRepository {
	return &auditRepository{
		client: client,
	}
}

func (repo *auditRepository) CreateAccessLog(ctx context.Context, log *entity.AccessLog) error {
	ref := repo.client.Collection(constants.CollectionAccessLogs).NewDoc()
	log.ID = ref.ID

	_, err := ref.Create(ctx, &model.AccessLogDocument{
		UserID:         log.UserID,
		Role:           string(log.Role),
		PreviousStatus: string(log.PreviousStatus),
		NewStatus:      string(log.NewStatus),
		Reason:         log.Reason,
		ChangedBy:      log.ChangedBy,
		ChangedAt:      log.ChangedAt,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access log")
	}

	return nil
}

func (repo *auditRepository) CreateCreditAdjustment(ctx context.Context, adjustment *entity.CreditAdjustment) error {
	ref := repo.client.Collection(constants.CollectionCreditAdjustments).NewDoc()
	adjustment.ID = ref.ID

	_, err := ref.Create(ctx, &model.CreditAdjustmentDocument{
		ClientID:                adjustment.ClientID,
		PreviousCredits:         adjustment.PreviousCredits,
		NewCredits:              adjustment.NewCredits,
		Adjustment:              adjustment.Adjustment,
		PreviousGymCredits:      adjustment.PreviousGymCredits,
		PreviousIntervalCredits: adjustment.PreviousIntervalCredits,
		NewGymCredits:           adjustment.NewGymCredits,
		NewIntervalCredits:      adjustment.NewIntervalCredits,
		Reason:                  adjustment.Reason,
		AdjustedBy:              adjustment.AdjustedBy,
		AdjustedAt:              adjustment.AdjustedAt,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credit adjustment")
	}

	return nil
}

func (repo *auditRepository) ListAccessLogs(ctx context.Context, userID string, limit int) ([]*entity.AccessLog, error) {
	snaps, err := repo.client.Collection(constants.CollectionAccessLogs).
		Where("userId", "==", userID).
		OrderBy("changedAt", fs.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list access logs")
	}

	logs := make([]*entity.AccessLog, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.AccessLogDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode access log %s", snap.Ref.ID)
		}
		logs = append(logs, &entity.AccessLog{
			ID:             snap.Ref.ID,
			UserID:         doc.UserID,
			Role:           entity.Role(doc.Role),
			PreviousStatus: entity.AccessStatus(doc.PreviousStatus),
			NewStatus:      entity.AccessStatus(doc.NewStatus),
			Reason:         doc.Reason,
			ChangedBy:      doc.ChangedBy,
			ChangedAt:      doc.ChangedAt,
		})
	}

	return logs, nil
}

func (repo *auditRepository) ListCreditAdjustments(ctx context.Context, clientID string, limit int) ([]*entity.CreditAdjustment, error) {
	snaps, err := repo.client.Collection(constants.CollectionCreditAdjustments).
		Where("clientId", "==", clientID).
		OrderBy("adjustedAt", fs.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list credit adjustments")
	}

	adjustments := make([]*entity.CreditAdjustment, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.CreditAdjustmentDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode credit adjustment %s", snap.Ref.ID)
		}
		adjustments = append(adjustments, &entity.CreditAdjustment{
			ID:                      snap.Ref.ID,
			ClientID:                doc.ClientID,
			PreviousCredits:         doc.PreviousCredits,
			NewCredits:              doc.NewCredits,
			Adjustment:              doc.Adjustment,
			PreviousGymCredits:      doc.PreviousGymCredits,
			PreviousIntervalCredits: doc.PreviousIntervalCredits,
			NewGymCredits:           doc.NewGymCredits,
			NewIntervalCredits:      doc.NewIntervalCredits,
			Reason:                  doc.Reason,
			AdjustedBy:              doc.AdjustedBy,
			AdjustedAt:              doc.AdjustedAt,
		})
	}

	return adjustments, nil
}
