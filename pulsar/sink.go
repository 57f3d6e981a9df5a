package pulsar

import (
	"strings"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

// SinkBuilder assembles a Pulsar sink descriptor. Single use, not safe for
// concurrent use.
type SinkBuilder struct {
	engine *kconnect.Builder

	topics       []string
	producerName string
	schema       *kconnect.SchemaRef
	guarantee    kconnect.DeliveryGuarantee
	routingMode  kconnect.TopicRoutingMode
	delayer      *kconnect.MessageDelayer
}

func NewSinkBuilder(options ...kconnect.BuilderOption) *SinkBuilder {
	b := &SinkBuilder{
		engine:      kconnect.NewBuilder(kconnect.KindSink, `pulsar`, registry, options...),
		guarantee:   kconnect.NoGuarantee,
		routingMode: kconnect.RoundRobinRouting,
	}

	b.engine.
		Require(OptionServiceURL, OptionAdminURL).
		RequireField(`serializationSchema`, func() bool { return b.schema != nil }).
		Check(b.supportedRouting)

	return b
}

func (b *SinkBuilder) SetServiceURL(url string) *SinkBuilder {
	b.engine.Set(OptionServiceURL, url)
	return b
}

func (b *SinkBuilder) SetAdminURL(url string) *SinkBuilder {
	b.engine.Set(OptionAdminURL, url)
	return b
}

func (b *SinkBuilder) SetTopics(topics ...string) *SinkBuilder {
	b.topics = topics
	b.engine.Set(OptionSinkTopics, strings.Join(topics, `,`))
	return b
}

// SetProducerName names the producers the runtime creates for this sink. A
// plain name is suffixed with a ` - %s` template, the runtime fills in the
// writer subtask index.
func (b *SinkBuilder) SetProducerName(name string) *SinkBuilder {
	b.producerName = name
	return b
}

func (b *SinkBuilder) SetSerializationSchema(schema kconnect.SchemaRef) *SinkBuilder {
	b.schema = &schema
	return b
}

func (b *SinkBuilder) SetDeliveryGuarantee(guarantee kconnect.DeliveryGuarantee) *SinkBuilder {
	b.guarantee = guarantee
	b.engine.Set(OptionDeliveryGuarantee, string(guarantee))
	return b
}

func (b *SinkBuilder) SetTopicRoutingMode(mode kconnect.TopicRoutingMode) *SinkBuilder {
	b.routingMode = mode
	return b
}

// DelaySendingMessage delays every record by the delayer's duration before it
// becomes visible to consumers.
func (b *SinkBuilder) DelaySendingMessage(delayer kconnect.MessageDelayer) *SinkBuilder {
	b.delayer = &delayer
	return b
}

func (b *SinkBuilder) SetConfig(key string, value interface{}) *SinkBuilder {
	b.engine.SetKey(key, value)
	return b
}

func (b *SinkBuilder) SetProperties(props map[string]string) *SinkBuilder {
	b.engine.SetProperties(props)
	return b
}

func (b *SinkBuilder) Build() (*kconnect.Descriptor, error) {
	if b.producerName != `` {
		name := b.producerName
		if !strings.Contains(name, `%s`) {
			name += ` - %s`
		}
		b.engine.Set(OptionProducerName, name)
	}

	attachments := []kconnect.DescriptorOption{
		kconnect.WithDeliveryGuarantee(b.guarantee),
		kconnect.WithTopicRoutingMode(b.routingMode),
	}

	if b.schema != nil {
		attachments = append(attachments, kconnect.WithSchema(*b.schema))
	}
	if len(b.topics) > 0 {
		attachments = append(attachments, kconnect.WithTopics(b.topics...))
	}
	if b.delayer != nil {
		attachments = append(attachments, kconnect.WithMessageDelayer(*b.delayer))
	}

	return b.engine.Attach(attachments...).Build()
}

// supportedRouting rejects routing mode and delivery guarantee combinations
// the runtime's topic routers cannot honour. Key hash routing needs
// acknowledged delivery, custom routers are on their own.
func (b *SinkBuilder) supportedRouting(d *kconnect.Descriptor) error {
	if d.TopicRoutingMode() == kconnect.CustomRouting {
		return nil
	}

	if d.TopicRoutingMode() == kconnect.MessageKeyHashRouting &&
		(d.DeliveryGuarantee() == kconnect.AtMostOnce || d.DeliveryGuarantee() == kconnect.NoGuarantee) {
		return config.ConflictingConfigurationError{
			First:  `topicRoutingMode=` + string(d.TopicRoutingMode()),
			Second: `deliveryGuarantee=` + string(d.DeliveryGuarantee()),
		}
	}

	return nil
}
