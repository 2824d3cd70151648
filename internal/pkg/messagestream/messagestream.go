package messagestream

import (
	"fmt"

	"petcare-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/message/router/plugin"
)

type MessageStream interface {
	NewSubscriber() (message.Subscriber, error)
	NewPublisher() (message.Publisher, error)
}

type ampq struct {
	cfg config.MessageStreamConfig
}

func NewAmpq(cfg *config.MessageStreamConfig) MessageStream {
	return &ampq{cfg: *cfg}
}

func (a *ampq) uri() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.User, a.cfg.Password, a.cfg.Host, a.cfg.Port)
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	amqpConfig := amqp.NewDurableQueueConfig(a.uri())
	return amqp.NewSubscriber(amqpConfig, watermill.NewStdLogger(false, false))
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	amqpConfig := amqp.NewDurableQueueConfig(a.uri())
	return amqp.NewPublisher(amqpConfig, watermill.NewStdLogger(false, false))
}

// NewRouter wires one consumer handler with a poison queue for messages that
// keep failing, mirroring the delivery guarantees of the rest of the service.
func NewRouter(pub message.Publisher, poisonTopic, handlerName, topic string, sub message.Subscriber, handlerFunc func(msg *message.Message) error) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewStdLogger(false, false))
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddPlugin(plugin.SignalsHandler)
	router.AddMiddleware(
		middleware.CorrelationID,
		poisonQueue,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler(
		handlerName,
		topic,
		sub,
		handlerFunc,
	)

	return router, nil
}
