// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// maxMulticastTokens is the FCM limit on tokens per multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the FCM notification service from the shared messaging client
func NewFirebaseService(client *messaging.Client) service.NotificationService {
	return &firebaseService{
		client: client,
	}
}

// Push sends msg to every token, splitting at the multicast limit.
// Tokens FCM reports as invalid or unregistered end up in the report for pruning.
func (s *firebaseService) Push(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{InvalidTokens: []string{}}
	notification := &messaging.Notification{Title: msg.Title, Body: msg.Body}

	for chunk := range chunkTokens(msg.Tokens) {
		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notification,
			Data:         msg.Data,
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Sent += resp.SuccessCount
		report.Failed += resp.FailureCount
		report.InvalidTokens = append(report.InvalidTokens, rejectedTokens(chunk, resp.Responses)...)
	}

	return report, nil
}

func chunkTokens(tokens []string) func(yield func([]string) bool) {
	return func(yield func([]string) bool) {
		for len(tokens) > 0 {
			n := min(maxMulticastTokens, len(tokens))
			if !yield(tokens[:n]) {
				return
			}
			tokens = tokens[n:]
		}
	}
}

// rejectedTokens returns the tokens whose send failed because the device is gone.
func rejectedTokens(tokens []string, responses []*messaging.SendResponse) []string {
	var rejected []string
	for i, r := range responses {
		if r.Error == nil || i >= len(tokens) {
			continue
		}
		if messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error) {
			rejected = append(rejected, tokens[i])
		}
	}

	return rejected
}
