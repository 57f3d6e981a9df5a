/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package kafka

import (
	"strings"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

// SinkBuilder assembles a Kafka sink descriptor. Single use, not safe for
// concurrent use.
type SinkBuilder struct {
	engine *kconnect.Builder

	serializer *kconnect.SchemaRef
	guarantee  kconnect.DeliveryGuarantee
}

func NewSinkBuilder(options ...kconnect.BuilderOption) *SinkBuilder {
	b := &SinkBuilder{
		engine:    kconnect.NewBuilder(kconnect.KindSink, `kafka`, registry, options...),
		guarantee: kconnect.AtLeastOnce,
	}

	b.engine.
		Require(OptionBootstrapServers, OptionSinkTopic).
		RequireField(`serializationSchema`, func() bool { return b.serializer != nil }).
		Check(b.transactionalPrefix)

	return b
}

func (b *SinkBuilder) SetBootstrapServers(servers ...string) *SinkBuilder {
	b.engine.Set(OptionBootstrapServers, strings.Join(servers, `,`))
	return b
}

func (b *SinkBuilder) SetTopic(topic string) *SinkBuilder {
	b.engine.Set(OptionSinkTopic, topic)
	return b
}

func (b *SinkBuilder) SetValueSerializationSchema(schema kconnect.SchemaRef) *SinkBuilder {
	b.serializer = &schema
	return b
}

func (b *SinkBuilder) SetDeliveryGuarantee(guarantee kconnect.DeliveryGuarantee) *SinkBuilder {
	b.guarantee = guarantee
	b.engine.Set(OptionDeliveryGuarantee, string(guarantee))
	return b
}

// SetTransactionalIDPrefix sets the prefix for producer transactional ids,
// mandatory for exactly-once delivery.
func (b *SinkBuilder) SetTransactionalIDPrefix(prefix string) *SinkBuilder {
	b.engine.Set(OptionTransactionalIDPrefix, prefix)
	return b
}

// SetWriteTimestamp writes the record event time into the Kafka message
// timestamp instead of the broker append time.
func (b *SinkBuilder) SetWriteTimestamp(write bool) *SinkBuilder {
	b.engine.Set(OptionWriteTimestamp, write)
	return b
}

// SetProperties applies raw key value pairs, resolving deprecated keys and
// coercing values to their declared types.
func (b *SinkBuilder) SetProperties(properties map[string]string) *SinkBuilder {
	b.engine.SetProperties(properties)
	return b
}

func (b *SinkBuilder) Build() (*kconnect.Descriptor, error) {
	attachments := []kconnect.DescriptorOption{
		kconnect.WithDeliveryGuarantee(b.guarantee),
	}
	if b.serializer != nil {
		attachments = append(attachments, kconnect.WithSchema(*b.serializer))
	}

	return b.engine.Attach(attachments...).Build()
}

// transactionalPrefix rejects exactly-once delivery without a transactional
// id prefix, the producer cannot open transactions without one.
func (b *SinkBuilder) transactionalPrefix(d *kconnect.Descriptor) error {
	if b.guarantee != kconnect.ExactlyOnce {
		return nil
	}

	if !d.Config().Has(OptionTransactionalIDPrefix) {
		return config.MissingFieldError{Fields: []string{OptionTransactionalIDPrefix.Key()}}
	}

	return nil
}
