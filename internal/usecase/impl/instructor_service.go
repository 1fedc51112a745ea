package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

type instructorService struct {
	userRepo repository.UserRepository
	identity service.IdentityProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstructorService creates the instructor administration use case
func NewInstructorService(
	userRepo repository.UserRepository,
	identity service.IdentityProvider,
	logger *slog.Logger,
) usecase.InstructorUsecase {
	return &instructorService{
		userRepo: userRepo,
		identity: identity,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *instructorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *instructorService) ListInstructors(ctx context.Context) ([]*entity.User, error) {
	instructors, err := srv.userRepo.ListUsers(ctx, repository.UserFilter{Role: entity.RoleInstructor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list instructors")
	}

	return instructors, nil
}

// CreateInstructor provisions the auth account with the instructor claim, then the user document.
func (srv *instructorService) CreateInstructor(ctx context.Context, input usecase.CreateInstructorInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.FullName)
	if email == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and fullName are required")
	}

	uid, err := srv.identity.CreateIdentity(ctx, &service.NewIdentity{
		Email:       email,
		Password:    input.Password,
		DisplayName: name,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityEmailExists) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create auth account")
	}

	if err := srv.identity.SetRole(ctx, uid, entity.RoleInstructor); err != nil {
		return nil, errors.Wrap(err, "failed to set instructor role claim")
	}

	now := srv.now().UTC()
	user := &entity.User{
		ID:          uid,
		Email:       email,
		FullName:    name,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
	}
	user.ApplyRole(entity.RoleInstructor, now)
	user.UpdatedAt = now

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create instructor")
	}

	srv.log(ctx).Info("Instructor created", slog.String("instructor_id", uid))

	return user, nil
}

// DeleteInstructor detaches and deletes the instructor in one batch, then removes the auth account.
func (srv *instructorService) DeleteInstructor(ctx context.Context, id string) error {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInstructorNotFound
		}

		return errors.Wrap(err, "failed to find instructor")
	}
	if user.Role != entity.RoleInstructor {
		return domainerrors.ErrInstructorNotFound
	}

	if err := srv.userRepo.DeleteInstructor(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete instructor")
	}

	if err := srv.identity.DeleteIdentity(ctx, id); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
		return errors.Wrap(err, "failed to delete auth account")
	}

	return nil
}
