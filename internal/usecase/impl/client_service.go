package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultClientPageSize = 10
	maxClientPageSize     = 100
	recentBookingsLimit   = 5

	subscriptionStatusActive = "active"
)

// ClientServiceParams holds dependencies for the client service
type ClientServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PlanRepo    repository.PlanRepository
	BookingRepo repository.BookingRepository
	AuditRepo   repository.AuditRepository
	Identity    service.IdentityProvider
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

type clientService struct {
	userRepo    repository.UserRepository
	planRepo    repository.PlanRepository
	bookingRepo repository.BookingRepository
	auditRepo   repository.AuditRepository
	identity    service.IdentityProvider
	access      accessChanger
	logger      *slog.Logger
	now         func() time.Time
}

// NewClientService creates the client administration use case
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		userRepo:    params.UserRepo,
		planRepo:    params.PlanRepo,
		bookingRepo: params.BookingRepo,
		auditRepo:   params.AuditRepo,
		identity:    params.Identity,
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

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListClients returns one cursor page of clients.
func (srv *clientService) ListClients(ctx context.Context, query repository.ClientQuery) (*repository.ClientPage, error) {
	if query.PageSize <= 0 {
		query.PageSize = defaultClientPageSize
	}
	query.PageSize = min(query.PageSize, maxClientPageSize)

	page, err := srv.userRepo.ListClients(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return page, nil
}

// CreateClient provisions the auth account, the role claim and the client document.
func (srv *clientService) CreateClient(ctx context.Context, input usecase.CreateClientInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and name are required")
	}

	status := input.AccessStatus
	if status == "" {
		status = entity.DefaultAccessStatus(entity.RoleClient)
	}
	if !status.IsValidFor(entity.RoleClient) {
		return nil, domainerrors.ErrInvalidAccessStatus
	}

	if _, err := srv.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	now := srv.now().UTC()
	profile := entity.NewClientProfile(now)
	if input.SubscriptionTier != "" {
		plan, err := srv.findPlan(ctx, input.SubscriptionTier)
		if err != nil {
			return nil, err
		}
		profile.SubscriptionTier = plan.ID
		profile.ApplyAllotment(entity.EnrollmentAllotment(plan))
	}

	disabled := status == entity.AccessSuspended
	uid, err := srv.identity.CreateIdentity(ctx, &service.NewIdentity{
		Email:       email,
		DisplayName: name,
		PhoneNumber: input.Phone,
		Disabled:    disabled,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityEmailExists) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create auth account")
	}

	if err := srv.identity.SetRole(ctx, uid, entity.RoleClient); err != nil {
		return nil, errors.Wrap(err, "failed to set client role claim")
	}

	user := &entity.User{
		ID:           uid,
		Email:        email,
		FullName:     name,
		PhoneNumber:  input.Phone,
		Role:         entity.RoleClient,
		AccessStatus: status,
		Disabled:     disabled,
		Client:       profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if delErr := srv.identity.DeleteIdentity(ctx, uid); delErr != nil {
			srv.log(ctx).Error("Failed to roll back auth account", slog.String("uid", uid), slog.Any("error", delErr))
		}
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create client")
	}

	srv.log(ctx).Info("Client created", slog.String("client_id", uid))

	return user, nil
}

// BatchUpdateClients applies the same whitelisted field updates to several clients.
func (srv *clientService) BatchUpdateClients(ctx context.Context, ids []string, updates repository.ClientFieldUpdates) error {
	if len(ids) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("no client IDs provided")
	}
	if updates.IsEmpty() {
		return domainerrors.ErrValidationFailed.WithDetails("no updates provided")
	}
	if updates.AccessStatus != nil && !updates.AccessStatus.IsValidFor(entity.RoleClient) {
		return domainerrors.ErrInvalidAccessStatus
	}

	if err := srv.userRepo.UpdateClients(ctx, ids, updates); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to update clients")
	}

	return nil
}

// BatchDeleteClients deletes clients that hold no confirmed bookings.
// Auth deletions run after the batch and their failures are only logged.
func (srv *clientService) BatchDeleteClients(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("no client IDs provided")
	}

	bookings, err := srv.bookingRepo.FindConfirmedByUsers(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to check client bookings")
	}
	if len(bookings) > 0 {
		blocked := make([]string, 0, len(bookings))
		for _, booking := range bookings {
			if !slices.Contains(blocked, booking.UserID) {
				blocked = append(blocked, booking.UserID)
			}
		}

		return domainerrors.NewConflictWithIDs(domainerrors.ErrClientsHaveBookings, "clientsWithBookings", blocked)
	}

	if err := srv.userRepo.DeleteUsers(ctx, ids); err != nil {
		return errors.Wrap(err, "failed to delete clients")
	}

	for _, id := range ids {
		srv.deleteIdentityQuietly(ctx, id)
	}

	return nil
}

// GetClient returns a client with their latest bookings.
func (srv *clientService) GetClient(ctx context.Context, id string) (*usecase.ClientDetail, error) {
	client, err := srv.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := srv.bookingRepo.FindRecentByUser(ctx, id, recentBookingsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent bookings")
	}

	return &usecase.ClientDetail{Client: client, RecentBookings: bookings}, nil
}

// UpdateClient writes whitelisted fields. A plan change recalculates credits from the new plan.
func (srv *clientService) UpdateClient(ctx context.Context, id string, input usecase.UpdateClientInput) (*entity.User, error) {
	client, err := srv.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := []repository.UserField{repository.UserIdentityFields, repository.UserClientDetailFields}
	if input.SubscriptionTier != nil && *input.SubscriptionTier != client.Client.PlanID() {
		plan, err := srv.findPlan(ctx, *input.SubscriptionTier)
		if err != nil {
			return nil, err
		}
		client.Client.SubscriptionTier = plan.ID
		client.Client.ApplyAllotment(entity.EnrollmentAllotment(plan))
		fields = append(fields, repository.UserClientCreditFields)
	}

	var update service.IdentityUpdate
	if input.FullName != nil && *input.FullName != client.FullName {
		client.FullName = *input.FullName
		update.DisplayName = input.FullName
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != client.PhoneNumber {
		client.PhoneNumber = *input.PhoneNumber
		update.PhoneNumber = input.PhoneNumber
	}
	if input.Address != nil {
		client.Client.Address = *input.Address
	}
	if input.FitnessGoals != nil {
		client.Client.FitnessGoals = input.FitnessGoals
	}
	if input.NotificationPush != nil {
		client.Client.NotificationPreferences.Push = *input.NotificationPush
	}
	if input.NotificationMail != nil {
		client.Client.NotificationPreferences.Email = *input.NotificationMail
	}
	client.UpdatedAt = srv.now().UTC()

	if !update.IsEmpty() {
		if err := srv.identity.UpdateIdentity(ctx, id, update); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to update auth account")
		}
	}

	if err := srv.userRepo.UpdateUser(ctx, client, fields...); err != nil {
		return nil, srv.translateClientError(err, "failed to update client")
	}

	return client, nil
}

// DeleteClient removes the auth account, ignoring failures, and then the client document.
func (srv *clientService) DeleteClient(ctx context.Context, id string) error {
	if _, err := srv.findClient(ctx, id); err != nil {
		return err
	}

	srv.deleteIdentityQuietly(ctx, id)

	if err := srv.userRepo.DeleteUser(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}

// AdjustCredits adds amount to the client's credits, clamping at zero.
func (srv *clientService) AdjustCredits(ctx context.Context, id string, input usecase.AdjustCreditsInput) (*usecase.AdjustCreditsOutput, error) {
	change, err := srv.userRepo.AdjustClientCredits(ctx, id, input.Amount)
	if err != nil {
		return nil, srv.translateClientError(err, "failed to adjust credits")
	}

	reason := input.Reason
	if reason == "" {
		reason = "Manual credit adjustment"
	}
	srv.recordAdjustment(ctx, id, change, input.Amount, reason, input.AdjustedBy)

	return &usecase.AdjustCreditsOutput{
		PreviousCredits: change.Previous.Credits,
		NewCredits:      change.Current.Credits,
		Adjustment:      input.Amount,
	}, nil
}

// SetCredits overwrites both balances; total credits become their sum.
func (srv *clientService) SetCredits(ctx context.Context, id string, input usecase.SetCreditsInput) (*usecase.CreditBalance, error) {
	if input.GymCredits < 0 || input.IntervalCredits < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credits must not be negative")
	}

	change, err := srv.userRepo.SetClientBalances(ctx, id, input.GymCredits, input.IntervalCredits)
	if err != nil {
		return nil, srv.translateClientError(err, "failed to set credits")
	}

	reason := input.Reason
	if reason == "" {
		reason = "Credit balances set"
	}
	srv.recordAdjustment(ctx, id, change, change.Current.Credits-change.Previous.Credits, reason, input.AdjustedBy)

	return &usecase.CreditBalance{
		Total:           change.Current.Credits,
		GymCredits:      change.Current.GymCredits,
		IntervalCredits: change.Current.IntervalCredits,
		Unlimited:       change.Current.Unlimited,
	}, nil
}

// ChangeAccess sets the access status of a client.
func (srv *clientService) ChangeAccess(ctx context.Context, id string, input usecase.ChangeAccessInput) (*usecase.AccessChangeOutput, error) {
	client, err := srv.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.access.change(ctx, srv.log(ctx), client, input, srv.now().UTC())
}

// AssignSubscription enrolls a client in a plan for one month and grants the plan's credits.
func (srv *clientService) AssignSubscription(ctx context.Context, id string, input usecase.AssignSubscriptionInput) (*usecase.SubscriptionOutput, error) {
	client, err := srv.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := srv.findPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	start := now
	if input.StartDate != nil {
		start = input.StartDate.UTC()
	}
	end := start.AddDate(0, 1, 0)

	profile := client.Client
	profile.ApplyAllotment(entity.EnrollmentAllotment(plan))
	profile.Subscription = &entity.ClientSubscription{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		StartDate: start,
		EndDate:   end,
		Status:    subscriptionStatusActive,
	}
	profile.SubscriptionTier = plan.ID
	profile.SubscriptionExpiry = &end
	client.UpdatedAt = now

	err = srv.userRepo.UpdateUser(ctx, client,
		repository.UserClientCreditFields,
		repository.UserClientSubscriptionFields,
	)
	if err != nil {
		return nil, srv.translateClientError(err, "failed to assign subscription")
	}

	return subscriptionOutput(profile, plan), nil
}

// GetSubscription returns the client's subscription together with its plan.
func (srv *clientService) GetSubscription(ctx context.Context, id string) (*usecase.SubscriptionOutput, error) {
	client, err := srv.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if client.Client.Subscription == nil {
		return nil, domainerrors.ErrPlanNotFound.WithDetails("client has no active subscription")
	}

	plan, err := srv.findPlan(ctx, client.Client.Subscription.PlanID)
	if err != nil {
		return nil, err
	}

	return subscriptionOutput(client.Client, plan), nil
}

func subscriptionOutput(profile *entity.ClientProfile, plan *entity.SubscriptionPlan) *usecase.SubscriptionOutput {
	return &usecase.SubscriptionOutput{
		Subscription: profile.Subscription,
		Credits: usecase.CreditBalance{
			Total:           profile.Credits,
			GymCredits:      profile.GymCredits,
			IntervalCredits: profile.IntervalCredits,
			Unlimited:       profile.Unlimited,
		},
		Plan: plan,
	}
}

func (srv *clientService) findClient(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, srv.translateClientError(err, "failed to find client")
	}
	if user.Client == nil {
		return nil, domainerrors.ErrClientNotFound
	}

	return user, nil
}

func (srv *clientService) findPlan(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	plan, err := srv.planRepo.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription plan")
	}

	return plan, nil
}

func (srv *clientService) translateClientError(err error, message string) error {
	if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrNotAClient) {
		return domainerrors.ErrClientNotFound
	}

	return errors.Wrap(err, message)
}

func (srv *clientService) recordAdjustment(ctx context.Context, clientID string, change *repository.CreditChange, amount int, reason, adjustedBy string) {
	if adjustedBy == "" {
		adjustedBy = constants.SystemActor
	}

	adjustment := &entity.CreditAdjustment{
		ID:                      uuid.New().String(),
		ClientID:                clientID,
		PreviousCredits:         change.Previous.Credits,
		NewCredits:              change.Current.Credits,
		Adjustment:              amount,
		PreviousGymCredits:      change.Previous.GymCredits,
		PreviousIntervalCredits: change.Previous.IntervalCredits,
		NewGymCredits:           change.Current.GymCredits,
		NewIntervalCredits:      change.Current.IntervalCredits,
		Reason:                  reason,
		AdjustedBy:              adjustedBy,
		AdjustedAt:              srv.now().UTC(),
	}
	if err := srv.auditRepo.CreateCreditAdjustment(ctx, adjustment); err != nil {
		srv.log(ctx).Error("Failed to record credit adjustment",
			slog.String("client_id", clientID),
			slog.Any("error", err),
		)
	}
}

func (srv *clientService) deleteIdentityQuietly(ctx context.Context, id string) {
	if err := srv.identity.DeleteIdentity(ctx, id); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
		srv.log(ctx).Warn("Failed to delete auth account", slog.String("uid", id), slog.Any("error", err))
	}
}
