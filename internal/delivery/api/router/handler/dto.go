package handler

import (
	"time"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/usecase"
)

// UserResponse is the JSON shape of a user document
type UserResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	FullName     string                `json:"fullName"`
	PhoneNumber  string                `json:"phoneNumber,omitempty"`
	PhotoURL     string                `json:"photoUrl,omitempty"`
	Role         string                `json:"role"`
	AccessStatus string                `json:"accessStatus,omitempty"`
	Disabled     bool                  `json:"disabled"`
	Client       *ClientProfileDTO     `json:"client,omitempty"`
	Instructor   *InstructorProfileDTO `json:"instructor,omitempty"`
	Staff        *StaffProfileDTO      `json:"staff,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ClientProfileDTO is the client sub-object
type ClientProfileDTO struct {
	Credits                 int                        `json:"credits"`
	GymCredits              int                        `json:"gymCredits"`
	IntervalCredits         int                        `json:"intervalCredits"`
	Unlimited               bool                       `json:"unlimited"`
	SubscriptionTier        string                     `json:"subscriptionTier,omitempty"`
	SubscriptionExpiry      *time.Time                 `json:"subscriptionExpiry,omitempty"`
	Subscription            *SubscriptionDTO           `json:"subscription,omitempty"`
	FitnessGoals            []string                   `json:"fitnessGoals,omitempty"`
	Address                 string                     `json:"address,omitempty"`
	MemberSince             time.Time                  `json:"memberSince"`
	NotificationPreferences NotificationPreferencesDTO `json:"notificationPreferences"`
	LastCreditReset         *time.Time                 `json:"lastCreditReset,omitempty"`
}

// SubscriptionDTO is a client's current subscription
type SubscriptionDTO struct {
	PlanID    string    `json:"planId"`
	PlanName  string    `json:"planName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

// NotificationPreferencesDTO lists the channels a client accepts
type NotificationPreferencesDTO struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// InstructorProfileDTO is the instructor sub-object
type InstructorProfileDTO struct {
	WorkingSince time.Time      `json:"workingSince"`
	Specialties  []string       `json:"specialties,omitempty"`
	BankDetails  BankDetailsDTO `json:"bankDetails"`
}

// StaffProfileDTO is the staff sub-object
type StaffProfileDTO struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Position    string         `json:"position,omitempty"`
	Address     string         `json:"address,omitempty"`
	BankDetails BankDetailsDTO `json:"bankDetails"`
}

// BankDetailsDTO holds payout information
type BankDetailsDTO struct {
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	IBAN          string `json:"iban"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PhoneNumber:  u.PhoneNumber,
		PhotoURL:     u.PhotoURL,
		Role:         u.Role.String(),
		AccessStatus: string(u.AccessStatus),
		Disabled:     u.Disabled,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	if c := u.Client; c != nil {
		resp.Client = &ClientProfileDTO{
			Credits:            c.Credits,
			GymCredits:         c.GymCredits,
			IntervalCredits:    c.IntervalCredits,
			Unlimited:          c.Unlimited,
			SubscriptionTier:   c.PlanID(),
			SubscriptionExpiry: c.SubscriptionExpiry,
			Subscription:       toSubscriptionDTO(c.Subscription),
			FitnessGoals:       c.FitnessGoals,
			Address:            c.Address,
			MemberSince:        c.MemberSince,
			NotificationPreferences: NotificationPreferencesDTO{
				Email: c.NotificationPreferences.Email,
				Push:  c.NotificationPreferences.Push,
				SMS:   c.NotificationPreferences.SMS,
			},
			LastCreditReset: c.LastCreditReset,
		}
	}

	if i := u.Instructor; i != nil {
		resp.Instructor = &InstructorProfileDTO{
			WorkingSince: i.WorkingSince,
			Specialties:  i.Specialties,
			BankDetails:  toBankDetailsDTO(i.BankDetails),
		}
	}

	if s := u.Staff; s != nil {
		resp.Staff = &StaffProfileDTO{
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Position:    string(s.Position),
			Address:     s.Address,
			BankDetails: toBankDetailsDTO(s.BankDetails),
		}
	}

	return resp
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

func toSubscriptionDTO(s *entity.ClientSubscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}

	return &SubscriptionDTO{
		PlanID:    s.PlanID,
		PlanName:  s.PlanName,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    s.Status,
	}
}

func toBankDetailsDTO(b entity.BankDetails) BankDetailsDTO {
	return BankDetailsDTO{
		BankName:      b.BankName,
		AccountHolder: b.AccountHolder,
		AccountNumber: b.AccountNumber,
		IBAN:          b.IBAN,
	}
}

// BookingResponse is a booking as listed on a client
type BookingResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	Status      string    `json:"status"`
	CreditsUsed int       `json:"creditsUsed"`
	BookedAt    time.Time `json:"bookedAt"`
}

func toBookingResponses(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, &BookingResponse{
			ID:          b.ID,
			SessionID:   b.SessionID,
			Status:      string(b.Status),
			CreditsUsed: b.CreditsUsed,
			BookedAt:    b.BookedAt,
		})
	}

	return out
}

// PlanResponse is the JSON shape of a subscription plan
type PlanResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type,omitempty"`
	PlanCategory    string    `json:"planCategory,omitempty"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency,omitempty"`
	Credits         int       `json:"credits"`
	IntervalCredits int       `json:"intervalCredits"`
	Unlimited       bool      `json:"unlimited"`
	Description     string    `json:"description,omitempty"`
	Features        []string  `json:"features,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toPlanResponse(p *entity.SubscriptionPlan) *PlanResponse {
	if p == nil {
		return nil
	}

	return &PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		Type:            p.Type,
		PlanCategory:    p.PlanCategory,
		Price:           p.Price,
		Currency:        p.Currency,
		Credits:         p.Credits,
		IntervalCredits: p.IntervalCredits,
		Unlimited:       p.Unlimited,
		Description:     p.Description,
		Features:        p.Features,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// SessionResponse is the JSON shape of a scheduled session
type SessionResponse struct {
	ID              string    `json:"id"`
	ActivityID      string    `json:"activityId"`
	InstructorID    *string   `json:"instructorId"`
	Date            time.Time `json:"date"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Location        string    `json:"location,omitempty"`
	MaxCapacity     int       `json:"maxCapacity"`
	CurrentBookings int       `json:"currentBookings"`
	Status          string    `json:"status"`
	Recurrence      string    `json:"recurrence,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Description     string    `json:"description,omitempty"`
}

func toSessionResponse(s *entity.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:              s.ID,
		ActivityID:      s.ActivityID,
		Date:            s.Date,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Location:        s.Location,
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		Status:          string(s.Status),
		Recurrence:      s.Recurrence,
		Notes:           s.Notes,
		Description:     s.Description,
	}
	if s.InstructorID != "" {
		resp.InstructorID = &s.InstructorID
	}

	return resp
}

// ContractResponse is a contract with its effective status
type ContractResponse struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"clientId"`
	ClientName   string     `json:"clientName"`
	ClientEmail  string     `json:"clientEmail"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	SignedAt     *time.Time `json:"signedAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	PDFURL       string     `json:"pdfUrl"`
	SignedPDFURL string     `json:"signedPdfUrl,omitempty"`
}

func toContractResponse(c *entity.Contract) *ContractResponse {
	return &ContractResponse{
		ID:           c.ID,
		ClientID:     c.ClientID,
		ClientName:   c.ClientName,
		ClientEmail:  c.ClientEmail,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		SignedAt:     c.SignedAt,
		ExpiresAt:    c.ExpiresAt,
		PDFURL:       c.PDFURL,
		SignedPDFURL: c.SignedPDFURL,
	}
}

// ExerciseDTO is one exercise of a tutorial day
type ExerciseDTO struct {
	VideoID               string `json:"videoId"`
	Name                  string `json:"name" validate:"required"`
	Activity              string `json:"activity,omitempty"`
	Type                  string `json:"type,omitempty"`
	BodyPart              string `json:"bodyPart,omitempty"`
	Repetitions           int    `json:"repetitions"`
	Sets                  int    `json:"sets"`
	RestTimeBetweenSets   int    `json:"restTimeBetweenSets"`
	RestTimeAfterExercise int    `json:"restTimeAfterExercise"`
	ThumbnailURL          string `json:"thumbnailUrl,omitempty"`
}

// TutorialDayDTO is one day of a tutorial
type TutorialDayDTO struct {
	DayNumber   int           `json:"dayNumber"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Exercises   []ExerciseDTO `json:"exercises" validate:"dive"`
}

// TutorialResponse is a tutorial with its computed duration
type TutorialResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Category      string           `json:"category,omitempty"`
	Difficulty    string           `json:"difficulty,omitempty"`
	AuthorID      string           `json:"authorId"`
	AuthorName    string           `json:"authorName,omitempty"`
	Days          []TutorialDayDTO `json:"days"`
	TotalDuration int              `json:"totalDuration"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func toTutorialResponse(t *entity.Tutorial) *TutorialResponse {
	days := make([]TutorialDayDTO, 0, len(t.Days))
	for _, d := range t.Days {
		exercises := make([]ExerciseDTO, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, ExerciseDTO{
				VideoID:               e.VideoID,
				Name:                  e.Name,
				Activity:              e.Activity,
				Type:                  e.Type,
				BodyPart:              e.BodyPart,
				Repetitions:           e.Repetitions,
				Sets:                  e.Sets,
				RestTimeBetweenSets:   e.RestTimeBetweenSets,
				RestTimeAfterExercise: e.RestTimeAfterExercise,
				ThumbnailURL:          e.ThumbnailURL,
			})
		}
		days = append(days, TutorialDayDTO{
			DayNumber:   d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
			Exercises:   exercises,
		})
	}

	return &TutorialResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Difficulty:    t.Difficulty,
		AuthorID:      t.AuthorID,
		AuthorName:    t.AuthorName,
		Days:          days,
		TotalDuration: t.TotalDuration(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTutorialDays(days []TutorialDayDTO) []entity.TutorialDay {
	out := make([]entity.TutorialDay, 0, len(days))
	for _, d := range days {
		exercises := make([]entity.Exercise, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, entity.Exercise{
				VideoID:               e.VideoID,
				Name:                  e.Name,
				Activity:              e.Activity,
				Type:                  e.Type,
				BodyPart:              e.BodyPart,
				Repetitions:           e.Repetitions,
				Sets:                  e.Sets,
				RestTimeBetweenSets:   e.RestTimeBetweenSets,
				RestTimeAfterExercise: e.RestTimeAfterExercise,
				ThumbnailURL:          e.ThumbnailURL,
			})
		}
		out = append(out, entity.TutorialDay{
			DayNumber:   d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
			Exercises:   exercises,
		})
	}

	return out
}

// VideoResponse is a row of video metadata
type VideoResponse struct {
	VideoID      string            `json:"videoId"`
	Name         string            `json:"name"`
	Path         string            `json:"path"`
	Filename     string            `json:"filename"`
	Activity     string            `json:"activity,omitempty"`
	Type         string            `json:"type,omitempty"`
	BodyPart     string            `json:"bodyPart,omitempty"`
	ThumbnailURL string            `json:"thumbnailUrl,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

func toVideoResponse(v *entity.VideoMetadata) *VideoResponse {
	return &VideoResponse{
		VideoID:      v.VideoID,
		Name:         v.Name,
		Path:         v.Path,
		Filename:     v.Filename,
		Activity:     v.Activity,
		Type:         v.Type,
		BodyPart:     v.BodyPart,
		ThumbnailURL: v.ThumbnailURL,
		Extra:        v.Extra,
	}
}

// AccessChangeResponse reports an access status transition
type AccessChangeResponse struct {
	Success        bool   `json:"success"`
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

func toAccessChangeResponse(out *usecase.AccessChangeOutput) *AccessChangeResponse {
	return &AccessChangeResponse{
		Success:        true,
		PreviousStatus: string(out.PreviousStatus),
		NewStatus:      string(out.NewStatus),
	}
}

// CreditBalanceResponse is the credit state of a client
type CreditBalanceResponse struct {
	Total           int  `json:"total"`
	GymCredits      int  `json:"gymCredits"`
	IntervalCredits int  `json:"intervalCredits"`
	Unlimited       bool `json:"unlimited"`
}

func toCreditBalanceResponse(b usecase.CreditBalance) CreditBalanceResponse {
	return CreditBalanceResponse{
		Total:           b.Total,
		GymCredits:      b.GymCredits,
		IntervalCredits: b.IntervalCredits,
		Unlimited:       b.Unlimited,
	}
}
