package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher sends member events to a Cloud Pub/Sub topic.
type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to topicID and checks that it exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicName)
	}

	logger.Info("Publishing member events to Google Pub/Sub", slog.String("topic", topicName))

	return &googlePublisher{
		client: client,
		topic:  client.Publisher(topicID),
		logger: logger,
	}, nil
}

// PublishMemberEvent blocks until Pub/Sub acknowledges the message.
func (p *googlePublisher) PublishMemberEvent(ctx context.Context, event *service.MemberEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s for %s", event.Type, event.UserID)
	}

	p.logger.Debug("[GooglePubSub] Member event published",
		slog.String("event_id", event.ID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
