package pulsar

import (
	"strings"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

// SourceBuilder assembles a Pulsar source descriptor. Setters may run in any
// order, validation happens on Build. Single use, not safe for concurrent
// use.
type SourceBuilder struct {
	engine *kconnect.Builder

	topics        []string
	topicsPattern string
	schema        *kconnect.SchemaRef
	start         *kconnect.StartCursor
	unboundedStop *kconnect.StopCursor
	boundedStop   *kconnect.StopCursor
}

func NewSourceBuilder(options ...kconnect.BuilderOption) *SourceBuilder {
	b := &SourceBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSource, `pulsar`, registry, options...),
	}

	b.engine.
		Require(OptionServiceURL, OptionAdminURL, OptionSubscriptionName).
		RequireField(`deserializationSchema`, func() bool { return b.schema != nil }).
		Check(b.topicsConflict)

	return b
}

func (b *SourceBuilder) SetServiceURL(url string) *SourceBuilder {
	b.engine.Set(OptionServiceURL, url)
	return b
}

func (b *SourceBuilder) SetAdminURL(url string) *SourceBuilder {
	b.engine.Set(OptionAdminURL, url)
	return b
}

// SetTopics subscribes to an explicit topic list. Mutually exclusive with
// SetTopicsPattern.
func (b *SourceBuilder) SetTopics(topics ...string) *SourceBuilder {
	b.topics = topics
	b.engine.Set(OptionTopics, strings.Join(topics, `,`))
	return b
}

// SetTopicsPattern subscribes to every topic matching pattern. Mutually
// exclusive with SetTopics.
func (b *SourceBuilder) SetTopicsPattern(pattern string) *SourceBuilder {
	b.topicsPattern = pattern
	b.engine.Set(OptionTopicsPattern, pattern)
	return b
}

func (b *SourceBuilder) SetSubscriptionName(name string) *SourceBuilder {
	b.engine.Set(OptionSubscriptionName, name)
	return b
}

func (b *SourceBuilder) SetSubscriptionType(subscriptionType SubscriptionType) *SourceBuilder {
	b.engine.Set(OptionSubscriptionType, string(subscriptionType))
	return b
}

func (b *SourceBuilder) SetStartCursor(cursor kconnect.StartCursor) *SourceBuilder {
	b.start = &cursor
	return b
}

func (b *SourceBuilder) SetUnboundedStopCursor(cursor kconnect.StopCursor) *SourceBuilder {
	b.unboundedStop = &cursor
	return b
}

// SetBoundedStopCursor bounds the source, it stops once the cursor condition
// is met.
func (b *SourceBuilder) SetBoundedStopCursor(cursor kconnect.StopCursor) *SourceBuilder {
	b.boundedStop = &cursor
	return b
}

// SetDeserializationSchema overwrites any previously set schema.
func (b *SourceBuilder) SetDeserializationSchema(schema kconnect.SchemaRef) *SourceBuilder {
	b.schema = &schema
	return b
}

// SetConfig stores a raw option value, key may be a canonical key or a
// deprecated alias.
func (b *SourceBuilder) SetConfig(key string, value interface{}) *SourceBuilder {
	b.engine.SetKey(key, value)
	return b
}

// SetProperties stores string valued options, coerced to their declared types
// on Build.
func (b *SourceBuilder) SetProperties(props map[string]string) *SourceBuilder {
	b.engine.SetProperties(props)
	return b
}

func (b *SourceBuilder) Build() (*kconnect.Descriptor, error) {
	var attachments []kconnect.DescriptorOption

	if b.schema != nil {
		attachments = append(attachments, kconnect.WithSchema(*b.schema))
	}
	if len(b.topics) > 0 {
		attachments = append(attachments, kconnect.WithTopics(b.topics...))
	}
	if b.topicsPattern != `` {
		attachments = append(attachments, kconnect.WithTopicsPattern(b.topicsPattern))
	}
	if b.start != nil {
		attachments = append(attachments, kconnect.WithStartCursor(*b.start))
	}
	if b.unboundedStop != nil {
		attachments = append(attachments, kconnect.WithUnboundedStopCursor(*b.unboundedStop))
	}
	if b.boundedStop != nil {
		attachments = append(attachments, kconnect.WithBoundedStopCursor(*b.boundedStop))
	}

	return b.engine.Attach(attachments...).Build()
}

func (b *SourceBuilder) topicsConflict(*kconnect.Descriptor) error {
	if len(b.topics) > 0 && b.topicsPattern != `` {
		return config.ConflictingConfigurationError{
			First:  OptionTopics.Key(),
			Second: OptionTopicsPattern.Key(),
		}
	}
	return nil
}
