package rabbitmq

import (
	"github.com/tryfix/kconnect/kconnect"
)

// SinkBuilder assembles a RabbitMQ queue sink descriptor. Single use, not
// safe for concurrent use.
type SinkBuilder struct {
	engine *kconnect.Builder

	connection *ConnectionConfig
	schema     *kconnect.SchemaRef
}

func NewSinkBuilder(options ...kconnect.BuilderOption) *SinkBuilder {
	b := &SinkBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSink, `rabbitmq`, registry, options...),
	}

	b.engine.
		Require(OptionSinkQueueName).
		RequireField(`connectionConfig`, func() bool { return b.connection != nil }).
		RequireField(`serializationSchema`, func() bool { return b.schema != nil })

	return b
}

func (b *SinkBuilder) SetConnectionConfig(cfg *ConnectionConfig) *SinkBuilder {
	b.connection = cfg
	if cfg != nil {
		b.engine.
			Set(OptionHost, cfg.Host()).
			Set(OptionPort, int64(cfg.Port())).
			Set(OptionVirtualHost, cfg.VirtualHost()).
			Set(OptionUserName, cfg.UserName()).
			Set(OptionNetworkRecoveryInterval, cfg.NetworkRecoveryInterval())
	}
	return b
}

func (b *SinkBuilder) SetQueueName(queue string) *SinkBuilder {
	b.engine.Set(OptionSinkQueueName, queue)
	return b
}

func (b *SinkBuilder) SetSerializationSchema(schema kconnect.SchemaRef) *SinkBuilder {
	b.schema = &schema
	return b
}

func (b *SinkBuilder) Build() (*kconnect.Descriptor, error) {
	if b.schema != nil {
		b.engine.Attach(kconnect.WithSchema(*b.schema))
	}
	return b.engine.Build()
}
