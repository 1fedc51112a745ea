package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"
)

const defaultLocale = "en"

type pushTemplate struct {
	title string
	body  string // fmt pattern
	args  []string
}

// pushTemplates holds the notification text per event type and locale.
// body placeholders are filled from the event data keys listed in args.
var pushTemplates = map[string]map[string]pushTemplate{
	service.EventCreditsReset: {
		"en": {title: "Your credits have been renewed", body: "You now have %s credits and %s interval credits.", args: []string{"credits", "interval_credits"}},
		"es": {title: "Tus créditos se han renovado", body: "Ahora tienes %s créditos y %s créditos de intervalo.", args: []string{"credits", "interval_credits"}},
	},
	service.EventContractSigned: {
		"en": {title: "Contract signed", body: "Thank you for signing your FitSAGA membership contract."},
		"es": {title: "Contrato firmado", body: "Gracias por firmar tu contrato de membresía de FitSAGA."},
	},
	service.EventAccessChanged: {
		"en": {title: "Membership status updated", body: "Your access status is now %s.", args: []string{"new_status"}},
		"es": {title: "Estado de membresía actualizado", body: "Tu estado de acceso ahora es %s.", args: []string{"new_status"}},
	},
}

type memberNotificationService struct {
	userRepo        repository.UserRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewMemberNotificationService creates the push delivery use case run by the worker
func NewMemberNotificationService(
	userRepo repository.UserRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.MemberNotificationUsecase {
	return &memberNotificationService{
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (srv *memberNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyMember pushes the event to the member's devices and prunes tokens FCM rejected.
// Storage and delivery failures are retryable; unknown users and event types are not.
func (srv *memberNotificationService) NotifyMember(ctx context.Context, event *service.MemberEvent) (*usecase.NotifyResult, error) {
	title, body, ok := composePush(event)
	if !ok {
		return nil, errors.Errorf("unsupported event type %q", event.Type)
	}

	user, err := srv.userRepo.FindUserByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(err, "member %s", event.UserID)
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load member"))
	}

	if user.Client != nil && !user.Client.NotificationPreferences.Push {
		srv.log(ctx).Info("[Worker] Member opted out of push", slog.String("user_id", user.ID))

		return &usecase.NotifyResult{Skipped: true}, nil
	}
	if len(user.FCMTokens) == 0 {
		srv.log(ctx).Info("[Worker] Member has no devices", slog.String("user_id", user.ID))

		return &usecase.NotifyResult{Skipped: true}, nil
	}

	data := map[string]string{
		"event_id":   event.ID,
		"event_type": event.Type,
	}
	for key, value := range event.Data {
		data[key] = value
	}

	report, err := srv.notificationSvc.Push(ctx, &service.PushMessage{
		Tokens: user.FCMTokens,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to send push notification"))
	}

	if len(report.InvalidTokens) > 0 {
		if err := srv.userRepo.RemoveFCMTokens(ctx, user.ID, report.InvalidTokens); err != nil {
			srv.log(ctx).Warn("[Worker] Failed to prune invalid tokens",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.NotifyResult{Sent: report.Sent, Failed: report.Failed, InvalidTokens: len(report.InvalidTokens)}, nil
}

// composePush renders the localized title and body of an event. The locale comes from the
// event data and falls back to English.
func composePush(event *service.MemberEvent) (title, body string, ok bool) {
	byLocale, ok := pushTemplates[event.Type]
	if !ok {
		return "", "", false
	}

	tmpl, found := byLocale[event.Data["locale"]]
	if !found {
		tmpl = byLocale[defaultLocale]
	}

	if len(tmpl.args) == 0 {
		return tmpl.title, tmpl.body, true
	}

	args := make([]any, 0, len(tmpl.args))
	for _, key := range tmpl.args {
		value := event.Data[key]
		if value == "" {
			value = "-"
		}
		args = append(args, value)
	}

	return tmpl.title, fmt.Sprintf(tmpl.body, args...), true
}
