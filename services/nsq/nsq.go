package nsq

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/nsqio/go-nsq"
	"github.com/roysitumorang/storefront/helper"
	"go.uber.org/zap"
)

const (
	maxAttempts  = 5
	requeueDelay = 2 * time.Second
)

type (
	// Publisher fans catalog changes out to every running instance.
	Publisher interface {
		Publish(ctx context.Context, topic string, messages ...any) error
	}

	Producer struct {
		client *nsq.Producer
	}

	Consumer struct {
		client  *nsq.Consumer
		address string
		topic   string
	}

	Handler func(ctx context.Context, body []byte) error
)

// NewConfig limits in-flight messages to one: each catalog change
// reloads every live session, so changes are applied one at a time.
func NewConfig() *nsq.Config {
	config := nsq.NewConfig()
	config.MaxInFlight = 1
	config.MaxAttempts = maxAttempts
	config.DefaultRequeueDelay = requeueDelay
	return config
}

func NewProducer(ctx context.Context, addr string, config *nsq.Config) (*Producer, error) {
	ctxt := "ServiceNSQ-NewProducer"
	client, err := nsq.NewProducer(addr, config)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrNewProducer")
		return nil, err
	}
	client.SetLogger(nil, nsq.LogLevelError)
	return &Producer{client: client}, nil
}

func (q *Producer) Ping(ctx context.Context) error {
	ctxt := "ServiceNSQ-Ping"
	err := q.client.Ping()
	if err != nil {
		helper.Capture(ctx, zap.WarnLevel, err, ctxt, "ErrPing")
	}
	return err
}

func (q *Producer) Publish(ctx context.Context, topic string, messages ...any) error {
	ctxt := "ServiceNSQ-Publish"
	if len(messages) == 0 {
		return nil
	}
	body := make([][]byte, len(messages))
	for i, message := range messages {
		messageByte, err := json.Marshal(message)
		if err != nil {
			helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMarshal")
			return err
		}
		body[i] = messageByte
	}
	var err error
	if len(body) == 1 {
		err = q.client.Publish(topic, body[0])
	} else {
		err = q.client.MultiPublish(topic, body)
	}
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrPublish")
	}
	return err
}

func (q *Producer) Stop() {
	q.client.Stop()
}

func NewConsumer(ctx context.Context, address, topic, channel string, config *nsq.Config) (*Consumer, error) {
	ctxt := "ServiceNSQ-NewConsumer"
	client, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrNewConsumer")
		return nil, err
	}
	client.SetLogger(nil, nsq.LogLevelError)
	return &Consumer{
		client:  client,
		address: address,
		topic:   topic,
	}, nil
}

// Consume connects to nsqd and feeds every message body to handler.
// Failed messages are requeued until their attempts run out, then dropped.
func (q *Consumer) Consume(ctx context.Context, handler Handler) error {
	ctxt := "ServiceNSQ-Consume"
	q.client.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.DisableAutoResponse()
		if err := handler(ctx, message.Body); err != nil {
			if message.Attempts >= maxAttempts {
				helper.Log(ctx, zap.ErrorLevel, fmt.Sprintf("%s: dropping message after %d attempts: %s", q.topic, message.Attempts, err), ctxt, "ErrMaxAttempts")
				message.Finish()
				return nil
			}
			message.Requeue(-1)
			return nil
		}
		message.Finish()
		return nil
	}))
	err := q.client.ConnectToNSQD(q.address)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrConnectToNSQD")
	}
	return err
}

// Stop blocks until in-flight messages are handled.
func (q *Consumer) Stop() {
	q.client.Stop()
	<-q.client.StopChan
}
