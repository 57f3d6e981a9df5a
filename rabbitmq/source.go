package rabbitmq

import (
	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

var registry = config.NewRegistry()

var (
	OptionHost        = registry.MustDeclare(`rabbitmq.connection.host`, config.TypeString)
	OptionPort        = registry.MustDeclare(`rabbitmq.connection.port`, config.TypeLong)
	OptionVirtualHost = registry.MustDeclare(`rabbitmq.connection.virtualHost`, config.TypeString,
		config.WithDefault(`/`))
	OptionUserName = registry.MustDeclare(`rabbitmq.connection.userName`, config.TypeString)
	OptionNetworkRecoveryInterval = registry.MustDeclare(
		`rabbitmq.connection.networkRecoveryInterval`, config.TypeDuration,
		config.WithDefault(`5000`))

	OptionSourceQueueName   = registry.MustDeclare(`rabbitmq.source.queueName`, config.TypeString)
	OptionUsesCorrelationID = registry.MustDeclare(`rabbitmq.source.usesCorrelationId`, config.TypeBoolean,
		config.WithDefault(false))

	OptionSinkQueueName = registry.MustDeclare(`rabbitmq.sink.queueName`, config.TypeString)
)

// Registry exposes the rabbitmq option catalog.
func Registry() *config.Registry {
	return registry
}

// SourceBuilder assembles a RabbitMQ queue source descriptor. Single use, not
// safe for concurrent use.
type SourceBuilder struct {
	engine *kconnect.Builder

	connection *ConnectionConfig
	schema     *kconnect.SchemaRef
}

func NewSourceBuilder(options ...kconnect.BuilderOption) *SourceBuilder {
	b := &SourceBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSource, `rabbitmq`, registry, options...),
	}

	b.engine.
		Require(OptionSourceQueueName).
		RequireField(`connectionConfig`, func() bool { return b.connection != nil }).
		RequireField(`deserializationSchema`, func() bool { return b.schema != nil })

	return b
}

func (b *SourceBuilder) SetConnectionConfig(cfg *ConnectionConfig) *SourceBuilder {
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

func (b *SourceBuilder) SetQueueName(queue string) *SourceBuilder {
	b.engine.Set(OptionSourceQueueName, queue)
	return b
}

// SetUsesCorrelationID deduplicates redelivered messages by their AMQP
// correlation id. Requires checkpointing in the runtime for exactly once.
func (b *SourceBuilder) SetUsesCorrelationID(uses bool) *SourceBuilder {
	b.engine.Set(OptionUsesCorrelationID, uses)
	return b
}

func (b *SourceBuilder) SetDeserializationSchema(schema kconnect.SchemaRef) *SourceBuilder {
	b.schema = &schema
	return b
}

func (b *SourceBuilder) Build() (*kconnect.Descriptor, error) {
	if b.schema != nil {
		b.engine.Attach(kconnect.WithSchema(*b.schema))
	}
	return b.engine.Build()
}

// ConnectionConfigOf rebuilds the connection descriptor carried by a built
// rabbitmq descriptor.
func ConnectionConfigOf(d *kconnect.Descriptor) (*ConnectionConfig, error) {
	host, err := d.GetString(OptionHost)
	if err != nil {
		return nil, err
	}

	port, err := d.GetLong(OptionPort)
	if err != nil {
		return nil, err
	}

	virtualHost, err := d.GetString(OptionVirtualHost)
	if err != nil {
		return nil, err
	}

	userName, err := d.GetString(OptionUserName)
	if err != nil {
		return nil, err
	}

	interval, err := d.GetDuration(OptionNetworkRecoveryInterval)
	if err != nil {
		return nil, err
	}

	return &ConnectionConfig{
		host:                    host,
		port:                    int(port),
		virtualHost:             virtualHost,
		userName:                userName,
		networkRecoveryInterval: interval,
	}, nil
}
