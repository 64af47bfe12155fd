package catalog

import (
	"time"

	"go.uber.org/zap"
)

// Change topics published after a successful write.
const (
	TopicFAQChanged    = "faq.changed"
	TopicNoticeChanged = "notice.changed"
)

// Publisher fans a change topic out to whoever renders the lists.
type Publisher interface {
	Publish(topic string)
}

type serviceOptions struct {
	now       func() time.Time
	publisher Publisher
	log       *zap.Logger
}

type Option func(*serviceOptions)

func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) { o.now = now }
}

func WithPublisher(p Publisher) Option {
	return func(o *serviceOptions) { o.publisher = p }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *serviceOptions) { o.log = log }
}

func buildOptions(opts []Option) serviceOptions {
	o := serviceOptions{now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o serviceOptions) publish(topic string) {
	if o.publisher != nil {
		o.publisher.Publish(topic)
	}
}
