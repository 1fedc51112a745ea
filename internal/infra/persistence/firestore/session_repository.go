package firestore

import (
	"context"
	"slices"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	client *fs.Client
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(client *fs.Client) repository.SessionRepository {
	return &sessionRepository{
		client: client,
	}
}

func (repo *sessionRepository) sessions() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionSessions)
}

func (repo *sessionRepository) ListSessions(ctx context.Context, filter repository.SessionFilter) ([]*entity.Session, error) {
	query := repo.sessions().OrderBy("startTime", fs.Asc)
	if filter.From != nil {
		query = query.Where("startTime", ">=", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("startTime", "<=", *filter.To)
	}
	if filter.InstructorID != "" {
		query = query.Where("instructorId", "==", filter.InstructorID)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sessions")
	}

	return decodeSessions(snaps)
}

func (repo *sessionRepository) FindSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	snap, err := repo.sessions().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	return decodeSession(snap)
}

func (repo *sessionRepository) FindSessionsByIDs(ctx context.Context, ids []string) ([]*entity.Session, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	snaps, err := repo.client.GetAll(ctx, docRefs(repo.sessions(), ids))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch sessions")
	}

	existing := slices.DeleteFunc(snaps, func(snap *fs.DocumentSnapshot) bool {
		return !snap.Exists()
	})

	return decodeSessions(existing)
}

func (repo *sessionRepository) DeleteSessions(ctx context.Context, ids []string) error {
	writes := make([]batchWrite, 0, len(ids))
	for _, ref := range docRefs(repo.sessions(), ids) {
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Delete(ref)
		})
	}

	if _, err := commitWrites(ctx, repo.client, writes); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sessions")
	}

	return nil
}

func decodeSessions(snaps []*fs.DocumentSnapshot) ([]*entity.Session, error) {
	sessions := make([]*entity.Session, 0, len(snaps))
	for _, snap := range snaps {
		session, err := decodeSession(snap)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func decodeSession(snap *fs.DocumentSnapshot) (*entity.Session, error) {
	var doc model.SessionDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode session %s", snap.Ref.ID)
	}

	return toSessionDomain(snap.Ref.ID, &doc), nil
}

func toSessionDomain(id string, data *model.SessionDocument) *entity.Session {
	session := &entity.Session{
		ID:              id,
		ActivityID:      data.ActivityID,
		Date:            data.Date,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Location:        data.Location,
		MaxCapacity:     data.MaxCapacity,
		CurrentBookings: data.CurrentBookings,
		Status:          entity.SessionStatus(data.Status),
		Recurrence:      data.Recurrence,
		Notes:           data.Notes,
		Description:     data.Description,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.InstructorID != nil {
		session.InstructorID = *data.InstructorID
	}

	return session
}

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	client *fs.Client
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(client *fs.Client) repository.BookingRepository {
	return &bookingRepository{
		client: client,
	}
}

func (repo *bookingRepository) bookings() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionBookings)
}

func (repo *bookingRepository) FindConfirmedBySessions(ctx context.Context, sessionIDs []string) ([]*entity.Booking, error) {
	return repo.findConfirmedIn(ctx, "sessionId", sessionIDs)
}

func (repo *bookingRepository) FindConfirmedByUsers(ctx context.Context, userIDs []string) ([]*entity.Booking, error) {
	return repo.findConfirmedIn(ctx, "userId", userIDs)
}

// findConfirmedIn queries confirmed bookings whose field is one of values, splitting the
// values to respect the 'in' filter limit.
func (repo *bookingRepository) findConfirmedIn(ctx context.Context, field string, values []string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, group := range chunk(values, maxInValues) {
		snaps, err := repo.bookings().
			Where(field, "in", group).
			Where("status", "==", string(entity.BookingConfirmed)).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find confirmed bookings")
		}

		decoded, err := decodeBookings(snaps)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, decoded...)
	}

	return bookings, nil
}

func (repo *bookingRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.Booking, error) {
	snaps, err := repo.bookings().
		Where("userId", "==", userID).
		OrderBy("bookedAt", fs.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find recent bookings")
	}

	return decodeBookings(snaps)
}

func decodeBookings(snaps []*fs.DocumentSnapshot) ([]*entity.Booking, error) {
	bookings := make([]*entity.Booking, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.BookingDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode booking %s", snap.Ref.ID)
		}
		bookings = append(bookings, &entity.Booking{
			ID:          snap.Ref.ID,
			UserID:      doc.UserID,
			SessionID:   doc.SessionID,
			Status:      entity.BookingStatus(doc.Status),
			CreditsUsed: doc.CreditsUsed,
			BookedAt:    doc.BookedAt,
		})
	}

	return bookings, nil
}
