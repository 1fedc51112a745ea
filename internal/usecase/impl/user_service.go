// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultUsersPage  = 1
	defaultUsersLimit = 10
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	identity service.IdentityProvider
	access   accessChanger
	logger   *slog.Logger
	now      func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AuditRepo repository.AuditRepository
	Identity  service.IdentityProvider
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		identity: params.Identity,
		access: accessChanger{
			userRepo:  params.UserRepo,
			auditRepo: params.AuditRepo,
			identity:  params.Identity,
			events:    memberEvents{publisher: params.Publisher},
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers filters users by role, status and search term and returns one offset page.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	users, err := srv.userRepo.ListUsers(ctx, repository.UserFilter{Role: input.Role, AccessStatus: input.Status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	matched := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.Matches(input.Search) {
			matched = append(matched, user)
		}
	}

	page := input.Page
	if page < 1 {
		page = defaultUsersPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultUsersLimit
	}

	total := len(matched)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	return &usecase.ListUsersOutput{
		Users: matched[start:end],
		Pagination: usecase.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser writes profile changes and, when the role changes, swaps the role profile and claim.
// The document is written before the claim, so a claim failure leaves the new role stored.
func (srv *userService) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WithDetails("unknown role " + input.Role.String())
	}

	now := srv.now().UTC()
	identityUpdate := applyUserInput(user, input)

	roleChanged := input.Role != nil && *input.Role != user.Role
	if roleChanged {
		user.ApplyRole(*input.Role, now)
	}
	user.UpdatedAt = now

	if !identityUpdate.IsEmpty() {
		if err := srv.identity.UpdateIdentity(ctx, id, identityUpdate); err != nil {
			if errors.Is(err, service.ErrIdentityEmailExists) {
				return nil, domainerrors.ErrEmailAlreadyExists
			}
			if !errors.Is(err, service.ErrIdentityNotFound) {
				return nil, errors.Wrap(err, "failed to update auth account")
			}
			srv.log(ctx).Warn("Auth account missing for user", slog.String("user_id", id))
		}
	}

	fields := []repository.UserField{repository.UserIdentityFields}
	if roleChanged {
		fields = append(fields, repository.UserRoleFields)
	}
	if err := srv.userRepo.UpdateUser(ctx, user, fields...); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	if roleChanged {
		if err := srv.identity.SetRole(ctx, id, user.Role); err != nil {
			srv.log(ctx).Error("Role claim update failed after user write",
				slog.String("user_id", id),
				slog.String("role", user.Role.String()),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrClaimUpdateFailed, err.Error())
		}
	}

	return user, nil
}

// applyUserInput copies the changed fields onto the user and returns the matching auth update.
func applyUserInput(user *entity.User, input usecase.UpdateUserInput) service.IdentityUpdate {
	var update service.IdentityUpdate

	if input.Email != nil && *input.Email != user.Email {
		user.Email = *input.Email
		update.Email = input.Email
	}
	if input.FullName != nil && *input.FullName != user.FullName {
		user.FullName = *input.FullName
		update.DisplayName = input.FullName
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != user.PhoneNumber {
		user.PhoneNumber = *input.PhoneNumber
		update.PhoneNumber = input.PhoneNumber
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	if input.Disabled != nil && *input.Disabled != user.Disabled {
		user.Disabled = *input.Disabled
		update.Disabled = input.Disabled
	}

	return update
}

// DeleteUser removes the user document and then the auth account.
func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := srv.GetUser(ctx, id); err != nil {
		return err
	}

	if err := srv.userRepo.DeleteUser(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	if err := srv.identity.DeleteIdentity(ctx, id); err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete auth account")
	}

	return nil
}

// ChangeAccess sets the access status of an instructor or client.
func (srv *userService) ChangeAccess(ctx context.Context, id string, input usecase.ChangeAccessInput) (*usecase.AccessChangeOutput, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.access.change(ctx, srv.log(ctx), user, input, srv.now().UTC())
}
