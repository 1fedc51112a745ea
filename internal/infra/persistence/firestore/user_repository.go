package firestore

import (
	"context"
	"slices"
	"time"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *fs.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func (repo *userRepository) users() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

// FindUserByID retrieves a user by document ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.users().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return decodeUser(snap)
}

// FindUserByEmail retrieves a user by email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return decodeUser(snap)
}

// ListUsers returns all users matching the filter, newest first.
func (repo *userRepository) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := repo.users().Query
	if filter.Role != "" {
		query = query.Where("role", "==", filter.Role.String())
	}
	if filter.AccessStatus != "" {
		query = query.Where("accessStatus", "==", string(filter.AccessStatus))
	}

	users, err := repo.collect(ctx, query)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(users, func(a, b *entity.User) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return users, nil
}

// ListClients returns one page of clients ordered by name. Credit and search filters are
// applied after the query because they cannot be combined with the name ordering.
func (repo *userRepository) ListClients(ctx context.Context, q repository.ClientQuery) (*repository.ClientPage, error) {
	query := repo.users().Where("role", "==", entity.RoleClient.String())
	if q.AccessStatus != "" {
		query = query.Where("accessStatus", "==", string(q.AccessStatus))
	}
	if q.SubscriptionTier != "" {
		query = query.Where("client.subscriptionTier", "==", q.SubscriptionTier)
	}
	query = query.OrderBy("fullName", fs.Asc)

	if q.LastID != "" {
		lastSnap, err := repo.users().Doc(q.LastID).Get(ctx)
		switch {
		case err == nil:
			query = query.StartAfter(lastSnap)
		case !isNotFound(err):
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load pagination cursor")
		}
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	page := &repository.ClientPage{Clients: make([]*entity.User, 0, q.PageSize)}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list clients")
		}

		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		if !matchesClientQuery(user, q) {
			continue
		}

		if len(page.Clients) == q.PageSize {
			page.HasMore = true

			break
		}
		page.Clients = append(page.Clients, user)
	}

	if n := len(page.Clients); n > 0 {
		page.LastVisible = page.Clients[n-1].ID
	}

	return page, nil
}

func matchesClientQuery(user *entity.User, q repository.ClientQuery) bool {
	if q.MinCredits != nil {
		if user.Client == nil || (!user.Client.Unlimited && user.Client.Credits < *q.MinCredits) {
			return false
		}
	}

	return user.Matches(q.Search)
}

// CreateUser persists a new user under its ID.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if _, err := repo.users().Doc(user.ID).Create(ctx, fromUserDomain(user)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// UpdateUser writes only the field paths of the named groups. A missing document is reported
// instead of being recreated.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User, fields ...repository.UserField) error {
	updates, err := userUpdatePaths(fromUserDomain(user), fields)
	if err != nil {
		return err
	}

	if _, err := repo.users().Doc(user.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// userUpdatePaths maps field groups onto Firestore paths. A path shared by two groups is written once,
// and the whole role profiles written for a role change make their client sub-paths redundant.
func userUpdatePaths(doc *model.UserDocument, fields []repository.UserField) ([]fs.Update, error) {
	var updates []fs.Update
	seen := make(map[string]struct{})
	add := func(path string, value any) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		updates = append(updates, fs.Update{Path: path, Value: value})
	}

	add("updatedAt", doc.UpdatedAt)
	replacesProfiles := slices.Contains(fields, repository.UserRoleFields)

	for _, field := range fields {
		switch field {
		case repository.UserIdentityFields:
			add("email", doc.Email)
			add("fullName", doc.FullName)
			add("phoneNumber", valueOrDelete(doc.PhoneNumber, doc.PhoneNumber == ""))
			add("photoUrl", valueOrDelete(doc.PhotoURL, doc.PhotoURL == ""))
			add("disabled", doc.Disabled)
		case repository.UserAccessFields:
			add("accessStatus", valueOrDelete(doc.AccessStatus, doc.AccessStatus == ""))
			add("disabled", doc.Disabled)
		case repository.UserRoleFields:
			add("role", doc.Role)
			add("accessStatus", valueOrDelete(doc.AccessStatus, doc.AccessStatus == ""))
			add("client", valueOrDelete(doc.Client, doc.Client == nil))
			add("instructor", valueOrDelete(doc.Instructor, doc.Instructor == nil))
			add("staff", valueOrDelete(doc.Staff, doc.Staff == nil))
		case repository.UserClientDetailFields, repository.UserClientCreditFields, repository.UserClientSubscriptionFields:
			if doc.Client == nil {
				return nil, repository.ErrNotAClient
			}
			if replacesProfiles {
				continue
			}
			addClientPaths(add, doc.Client, field)
		default:
			return nil, errors.Errorf("unknown user field group %d", field)
		}
	}

	return updates, nil
}

func addClientPaths(add func(string, any), c *model.ClientDocument, field repository.UserField) {
	switch field {
	case repository.UserClientDetailFields:
		add("client.address", valueOrDelete(c.Address, c.Address == ""))
		add("client.fitnessGoals", valueOrDelete(c.FitnessGoals, len(c.FitnessGoals) == 0))
		add("client.notificationPreferences", c.NotificationPreferences)
	case repository.UserClientCreditFields:
		add("client.credits", c.Credits)
		add("client.gymCredits", c.GymCredits)
		add("client.intervalCredits", c.IntervalCredits)
		add("client.unlimited", c.Unlimited)
		add("client.subscriptionTier", valueOrDelete(c.SubscriptionTier, c.SubscriptionTier == ""))
	case repository.UserClientSubscriptionFields:
		add("client.subscription", valueOrDelete(c.Subscription, c.Subscription == nil))
		add("client.subscriptionTier", valueOrDelete(c.SubscriptionTier, c.SubscriptionTier == ""))
		add("client.subscriptionExpiry", valueOrDelete(c.SubscriptionExpiry, c.SubscriptionExpiry == nil))
	}
}

// valueOrDelete removes a field instead of storing an empty value, as omitempty does on create.
func valueOrDelete(value any, empty bool) any {
	if empty {
		return fs.Delete
	}

	return value
}

// UpdateClients applies the same field updates to several clients.
func (repo *userRepository) UpdateClients(ctx context.Context, ids []string, updates repository.ClientFieldUpdates) error {
	fields := clientUpdatePaths(updates, time.Now())

	writes := make([]batchWrite, 0, len(ids))
	for _, ref := range docRefs(repo.users(), ids) {
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Update(ref, fields)
		})
	}

	if _, err := commitWrites(ctx, repo.client, writes); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update clients")
	}

	return nil
}

func clientUpdatePaths(updates repository.ClientFieldUpdates, now time.Time) []fs.Update {
	fields := []fs.Update{{Path: "updatedAt", Value: now}}
	if updates.AccessStatus != nil {
		fields = append(fields, fs.Update{Path: "accessStatus", Value: string(*updates.AccessStatus)})
	}
	if updates.FullName != nil {
		fields = append(fields, fs.Update{Path: "fullName", Value: *updates.FullName})
	}
	if updates.PhoneNumber != nil {
		fields = append(fields, fs.Update{Path: "phoneNumber", Value: *updates.PhoneNumber})
	}
	if updates.SubscriptionTier != nil {
		fields = append(fields, fs.Update{Path: "client.subscriptionTier", Value: *updates.SubscriptionTier})
	}
	if updates.Credits != nil {
		fields = append(fields, fs.Update{Path: "client.credits", Value: max(0, *updates.Credits)})
	}
	if updates.GymCredits != nil {
		fields = append(fields, fs.Update{Path: "client.gymCredits", Value: max(0, *updates.GymCredits)})
	}
	if updates.IntervalCredits != nil {
		fields = append(fields, fs.Update{Path: "client.intervalCredits", Value: max(0, *updates.IntervalCredits)})
	}
	if updates.FitnessGoals != nil {
		fields = append(fields, fs.Update{Path: "client.fitnessGoals", Value: updates.FitnessGoals})
	}
	if updates.Address != nil {
		fields = append(fields, fs.Update{Path: "client.address", Value: *updates.Address})
	}

	return fields
}

// DeleteUser removes a user document.
func (repo *userRepository) DeleteUser(ctx context.Context, id string) error {
	if _, err := repo.users().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

// DeleteUsers removes several user documents.
func (repo *userRepository) DeleteUsers(ctx context.Context, ids []string) error {
	writes := make([]batchWrite, 0, len(ids))
	for _, ref := range docRefs(repo.users(), ids) {
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Delete(ref)
		})
	}

	if _, err := commitWrites(ctx, repo.client, writes); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete users")
	}

	return nil
}

// DeleteInstructor removes the instructor and clears their references from sessions and activities.
func (repo *userRepository) DeleteInstructor(ctx context.Context, id string) error {
	sessionRefs, err := repo.referencingDocs(ctx, constants.CollectionSessions, "instructorId", id)
	if err != nil {
		return err
	}
	activityRefs, err := repo.referencingDocs(ctx, constants.CollectionActivities, "createdBy", id)
	if err != nil {
		return err
	}

	now := time.Now()
	writes := []batchWrite{func(batch *fs.WriteBatch) {
		batch.Delete(repo.users().Doc(id))
	}}
	for _, ref := range sessionRefs {
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Update(ref, []fs.Update{{Path: "instructorId", Value: nil}, {Path: "updatedAt", Value: now}})
		})
	}
	for _, ref := range activityRefs {
		writes = append(writes, func(batch *fs.WriteBatch) {
			batch.Update(ref, []fs.Update{{Path: "createdBy", Value: nil}, {Path: "updatedAt", Value: now}})
		})
	}

	if _, err := commitWrites(ctx, repo.client, writes); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete instructor")
	}

	return nil
}

func (repo *userRepository) referencingDocs(ctx context.Context, collection, field, id string) ([]*fs.DocumentRef, error) {
	snaps, err := repo.client.Collection(collection).Where(field, "==", id).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find documents referencing instructor")
	}

	refs := make([]*fs.DocumentRef, 0, len(snaps))
	for _, snap := range snaps {
		refs = append(refs, snap.Ref)
	}

	return refs, nil
}

// AdjustClientCredits adds delta to the client's credits inside a transaction.
func (repo *userRepository) AdjustClientCredits(ctx context.Context, id string, delta int) (*repository.CreditChange, error) {
	return repo.updateClientInTx(ctx, id, func(profile *entity.ClientProfile) []fs.Update {
		profile.AdjustCredits(delta)

		return []fs.Update{{Path: "client.credits", Value: profile.Credits}}
	})
}

// SetClientBalances sets both balances inside a transaction; credits becomes their sum.
func (repo *userRepository) SetClientBalances(ctx context.Context, id string, gymCredits, intervalCredits int) (*repository.CreditChange, error) {
	return repo.updateClientInTx(ctx, id, func(profile *entity.ClientProfile) []fs.Update {
		profile.GymCredits = max(0, gymCredits)
		profile.IntervalCredits = max(0, intervalCredits)
		profile.Credits = profile.GymCredits + profile.IntervalCredits

		return []fs.Update{
			{Path: "client.gymCredits", Value: profile.GymCredits},
			{Path: "client.intervalCredits", Value: profile.IntervalCredits},
			{Path: "client.credits", Value: profile.Credits},
		}
	})
}

func (repo *userRepository) updateClientInTx(ctx context.Context, id string, mutate func(*entity.ClientProfile) []fs.Update) (*repository.CreditChange, error) {
	ref := repo.users().Doc(id)

	var change *repository.CreditChange
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrUserNotFound
			}

			return errors.WithStack(err)
		}

		user, err := decodeUser(snap)
		if err != nil {
			return err
		}
		if user.Client == nil {
			return repository.ErrNotAClient
		}

		previous := *user.Client
		fields := mutate(user.Client)
		fields = append(fields, fs.Update{Path: "updatedAt", Value: time.Now()})

		change = &repository.CreditChange{Previous: previous, Current: *user.Client}

		return errors.WithStack(tx.Update(ref, fields))
	})
	if err != nil {
		if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrNotAClient) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update client credits")
	}

	return change, nil
}

// ApplyCreditAllotments writes the allotments in a single batch commit.
func (repo *userRepository) ApplyCreditAllotments(ctx context.Context, writes []repository.CreditAllotmentWrite, resetAt time.Time) error {
	if len(writes) == 0 {
		return nil
	}
	if len(writes) > constants.MaxBatchWrites {
		return errors.Errorf("too many writes for one batch: %d", len(writes))
	}

	batch := repo.client.Batch()
	for _, write := range writes {
		batch.Update(repo.users().Doc(write.ClientID), []fs.Update{
			{Path: "client.credits", Value: write.Allotment.Total},
			{Path: "client.gymCredits", Value: write.Allotment.Total},
			{Path: "client.intervalCredits", Value: write.Allotment.IntervalCredits},
			{Path: "client.unlimited", Value: write.Allotment.Unlimited},
			{Path: "client.lastCreditReset", Value: resetAt},
			{Path: "updatedAt", Value: resetAt},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit credit allotments")
	}

	return nil
}

// RemoveFCMTokens drops push tokens from a user.
func (repo *userRepository) RemoveFCMTokens(ctx context.Context, id string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	values := make([]any, 0, len(tokens))
	for _, token := range tokens {
		values = append(values, token)
	}

	if _, err := repo.users().Doc(id).Update(ctx, []fs.Update{{Path: "fcmTokens", Value: fs.ArrayRemove(values...)}}); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to remove fcm tokens")
	}

	return nil
}

func (repo *userRepository) collect(ctx context.Context, query fs.Query) ([]*entity.User, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
		}

		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func decodeUser(snap *fs.DocumentSnapshot) (*entity.User, error) {
	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
	}

	return toUserDomain(snap.Ref.ID, &doc), nil
}

func toUserDomain(id string, data *model.UserDocument) *entity.User {
	user := &entity.User{
		ID:           id,
		Email:        data.Email,
		FullName:     data.FullName,
		PhoneNumber:  data.PhoneNumber,
		PhotoURL:     data.PhotoURL,
		Role:         entity.Role(data.Role),
		AccessStatus: entity.AccessStatus(data.AccessStatus),
		Disabled:     data.Disabled,
		FCMTokens:    data.FCMTokens,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if c := data.Client; c != nil {
		user.Client = &entity.ClientProfile{
			Credits:            c.Credits,
			GymCredits:         c.GymCredits,
			IntervalCredits:    c.IntervalCredits,
			Unlimited:          c.Unlimited,
			SubscriptionTier:   c.SubscriptionTier,
			SubscriptionPlan:   c.SubscriptionPlan,
			SubscriptionExpiry: c.SubscriptionExpiry,
			FitnessGoals:       c.FitnessGoals,
			Address:            c.Address,
			DateOfBirth:        c.DateOfBirth,
			MemberSince:        c.MemberSince,
			NotificationPreferences: entity.NotificationPreferences{
				Email: c.NotificationPreferences.Email,
				Push:  c.NotificationPreferences.Push,
				SMS:   c.NotificationPreferences.SMS,
			},
			LastCreditReset: c.LastCreditReset,
		}
		if s := c.Subscription; s != nil {
			user.Client.Subscription = &entity.ClientSubscription{
				PlanID:    s.PlanID,
				PlanName:  s.PlanName,
				StartDate: s.StartDate,
				EndDate:   s.EndDate,
				Status:    s.Status,
			}
		}
	}

	if i := data.Instructor; i != nil {
		user.Instructor = &entity.InstructorProfile{
			WorkingSince: i.WorkingSince,
			Specialties:  i.Specialties,
			BankDetails:  toBankDetailsDomain(i.BankDetails),
		}
	}

	if s := data.Staff; s != nil {
		user.Staff = &entity.StaffProfile{
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Position:    entity.StaffPosition(s.Position),
			Address:     s.Address,
			BankDetails: toBankDetailsDomain(s.BankDetails),
		}
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserDocument {
	doc := &model.UserDocument{
		Email:        data.Email,
		FullName:     data.FullName,
		PhoneNumber:  data.PhoneNumber,
		PhotoURL:     data.PhotoURL,
		Role:         data.Role.String(),
		AccessStatus: string(data.AccessStatus),
		Disabled:     data.Disabled,
		FCMTokens:    data.FCMTokens,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if c := data.Client; c != nil {
		doc.Client = &model.ClientDocument{
			Credits:            c.Credits,
			GymCredits:         c.GymCredits,
			IntervalCredits:    c.IntervalCredits,
			Unlimited:          c.Unlimited,
			SubscriptionTier:   c.SubscriptionTier,
			SubscriptionPlan:   c.SubscriptionPlan,
			SubscriptionExpiry: c.SubscriptionExpiry,
			FitnessGoals:       c.FitnessGoals,
			Address:            c.Address,
			DateOfBirth:        c.DateOfBirth,
			MemberSince:        c.MemberSince,
			NotificationPreferences: model.NotificationPreferenceDocument{
				Email: c.NotificationPreferences.Email,
				Push:  c.NotificationPreferences.Push,
				SMS:   c.NotificationPreferences.SMS,
			},
			LastCreditReset: c.LastCreditReset,
		}
		if s := c.Subscription; s != nil {
			doc.Client.Subscription = &model.SubscriptionDocument{
				PlanID:    s.PlanID,
				PlanName:  s.PlanName,
				StartDate: s.StartDate,
				EndDate:   s.EndDate,
				Status:    s.Status,
			}
		}
	}

	if i := data.Instructor; i != nil {
		doc.Instructor = &model.InstructorDocument{
			WorkingSince: i.WorkingSince,
			Specialties:  i.Specialties,
			BankDetails:  fromBankDetailsDomain(i.BankDetails),
		}
	}

	if s := data.Staff; s != nil {
		doc.Staff = &model.StaffDocument{
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Position:    string(s.Position),
			Address:     s.Address,
			BankDetails: fromBankDetailsDomain(s.BankDetails),
		}
	}

	return doc
}

func toBankDetailsDomain(data model.BankDetailsDocument) entity.BankDetails {
	return entity.BankDetails{
		BankName:      data.BankName,
		AccountHolder: data.AccountHolder,
		AccountNumber: data.AccountNumber,
		IBAN:          data.IBAN,
	}
}

func fromBankDetailsDomain(data entity.BankDetails) model.BankDetailsDocument {
	return model.BankDetailsDocument{
		BankName:      data.BankName,
		AccountHolder: data.AccountHolder,
		AccountNumber: data.AccountNumber,
		IBAN:          data.IBAN,
	}
}
