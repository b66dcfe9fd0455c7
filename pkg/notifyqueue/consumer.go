package notifyqueue

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/buildcontext"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
)

// RequestIDHeader is the optional kafka header carrying the caller's request id.
const RequestIDHeader = "request_id"

// messageReader is the subset of *kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type consumer struct {
	topicName string
	reader    messageReader
	notifier  core.StatusNotifier
	logger    lumber.Logger
}

// New return a new kafka consumer of notification messages.
func New(cfg *config.Config, notifier core.StatusNotifier, logger lumber.Logger) core.NotifyConsumer {
	// configure group balancer to RR
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:               strings.Split(cfg.Kafka.Brokers, ","),
		Topic:                 cfg.Kafka.NotifyConfig.Topic,
		ErrorLogger:           kafka.LoggerFunc(logger.Errorf),
		GroupID:               cfg.Kafka.NotifyConfig.ConsumerGroup,
		MaxBytes:              25e6, // 25MB
		WatchPartitionChanges: true,
		GroupBalancers:        []kafka.GroupBalancer{kafka.RoundRobinGroupBalancer{}}})
	logger.Infof("Kafka Consumer Group %s created successfully", cfg.Kafka.NotifyConfig.ConsumerGroup)
	return newConsumer(cfg.Kafka.NotifyConfig.Topic, reader, notifier, logger)
}

func newConsumer(topic string, reader messageReader, notifier core.StatusNotifier, logger lumber.Logger) *consumer {
	return &consumer{
		topicName: topic,
		reader:    reader,
		notifier:  notifier,
		logger:    logger,
	}
}

// Run processes one message at a time and commits its offset once the notification
// has been attempted, so a crash mid-delivery redelivers the message.
func (c *consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			c.logger.Errorf("Kafka FetchMessage of topic: %v failed: %v", c.topicName, err)
			continue
		}
		c.logger.Debugf("Kafka: Message received on partition: %d, offset: %d, topic: %s", msg.Partition, msg.Offset, msg.Topic)

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Errorf("failed to commit offset %d of partition %d, error: %v", msg.Offset, msg.Partition, err)
		}
	}
}

func (c *consumer) handle(ctx context.Context, msg kafka.Message) {
	logger := c.logger.WithFields(lumber.Fields{
		"partition":           msg.Partition,
		"offset":              msg.Offset,
		constants.RequestIDKey: requestID(msg.Headers),
	})

	payload := new(core.NotifyMessage)
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(msg.Value, payload); err != nil {
		logger.Errorf("%v, error: %v", errs.ErrInvalidQueuePayload, err)
		return
	}
	req, err := payload.Request()
	if err != nil {
		logger.Errorf("invalid notify message, error: %v", err)
		return
	}
	var bc core.BuildContext
	if len(payload.BuildContext) > 0 {
		if bc, err = buildcontext.Parse(payload.BuildContext); err != nil {
			logger.Errorf("failed to parse build context, error: %v", err)
			return
		}
	}

	result, err := c.notifier.Notify(ctx, req, bc)
	if err != nil {
		logger.Errorf("failed to notify commit status, error: %v", err)
		return
	}
	logger.Infof("commit status %s delivered for %s@%s", result.State, result.Repo, result.SHA)
}

func (c *consumer) Close() error {
	return c.reader.Close()
}

func requestID(headers []kafka.Header) string {
	for _, header := range headers {
		if header.Key == RequestIDHeader {
			return string(header.Value)
		}
	}
	return ""
}
