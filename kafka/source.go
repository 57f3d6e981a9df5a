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

// SourceBuilder assembles a Kafka source descriptor. Single use, not safe for
// concurrent use.
type SourceBuilder struct {
	engine *kconnect.Builder

	deserializer *kconnect.SchemaRef
	topics       []string
	pattern      string
}

func NewSourceBuilder(options ...kconnect.BuilderOption) *SourceBuilder {
	b := &SourceBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSource, `kafka`, registry, options...),
	}

	b.engine.
		Require(OptionBootstrapServers).
		RequireField(`deserializationSchema`, func() bool { return b.deserializer != nil }).
		RequireField(`topics`, func() bool { return len(b.topics) > 0 || b.pattern != `` }).
		Check(b.topicsConflict).
		Check(b.startupConsistency)

	return b
}

func (b *SourceBuilder) SetBootstrapServers(servers ...string) *SourceBuilder {
	b.engine.Set(OptionBootstrapServers, strings.Join(servers, `,`))
	return b
}

func (b *SourceBuilder) SetGroupID(groupID string) *SourceBuilder {
	b.engine.Set(OptionGroupID, groupID)
	return b
}

// SetTopics subscribes to a fixed topic list. Mutually exclusive with
// SetTopicsPattern.
func (b *SourceBuilder) SetTopics(topics ...string) *SourceBuilder {
	b.topics = topics
	b.engine.Set(OptionTopics, strings.Join(topics, `,`))
	return b
}

// SetTopicsPattern subscribes to every topic matching the pattern. Mutually
// exclusive with SetTopics.
func (b *SourceBuilder) SetTopicsPattern(pattern string) *SourceBuilder {
	b.pattern = pattern
	b.engine.Set(OptionTopicsPattern, pattern)
	return b
}

func (b *SourceBuilder) SetValueOnlyDeserializer(schema kconnect.SchemaRef) *SourceBuilder {
	b.deserializer = &schema
	return b
}

func (b *SourceBuilder) SetStartFromEarliest() *SourceBuilder {
	b.engine.Set(OptionStartupMode, string(StartFromEarliest))
	return b
}

func (b *SourceBuilder) SetStartFromLatest() *SourceBuilder {
	b.engine.Set(OptionStartupMode, string(StartFromLatest))
	return b
}

func (b *SourceBuilder) SetStartFromGroupOffsets() *SourceBuilder {
	b.engine.Set(OptionStartupMode, string(StartFromGroupOffsets))
	return b
}

func (b *SourceBuilder) SetStartFromTimestamp(timestampMs int64) *SourceBuilder {
	b.engine.
		Set(OptionStartupMode, string(StartFromTimestamp)).
		Set(OptionStartupTimestampMs, timestampMs)
	return b
}

func (b *SourceBuilder) SetCommitOffsetsOnCheckpoints(commit bool) *SourceBuilder {
	b.engine.Set(OptionCommitOffsetsOnCheckpoint, commit)
	return b
}

// SetProperties applies raw key value pairs, resolving deprecated keys and
// coercing values to their declared types.
func (b *SourceBuilder) SetProperties(properties map[string]string) *SourceBuilder {
	b.engine.SetProperties(properties)
	return b
}

func (b *SourceBuilder) Build() (*kconnect.Descriptor, error) {
	attachments := make([]kconnect.DescriptorOption, 0, 2)
	if b.deserializer != nil {
		attachments = append(attachments, kconnect.WithSchema(*b.deserializer))
	}
	if len(b.topics) > 0 {
		attachments = append(attachments, kconnect.WithTopics(b.topics...))
	}
	if b.pattern != `` {
		attachments = append(attachments, kconnect.WithTopicsPattern(b.pattern))
	}

	return b.engine.Attach(attachments...).Build()
}

func (b *SourceBuilder) topicsConflict(*kconnect.Descriptor) error {
	if len(b.topics) > 0 && b.pattern != `` {
		return config.ConflictingConfigurationError{
			First:  OptionTopics.Key(),
			Second: OptionTopicsPattern.Key(),
		}
	}
	return nil
}

// startupConsistency rejects startup modes missing their companion options:
// timestamp needs a startup timestamp, group-offsets needs a consumer group.
func (b *SourceBuilder) startupConsistency(d *kconnect.Descriptor) error {
	mode, err := d.GetString(OptionStartupMode)
	if err != nil {
		return err
	}

	switch StartupMode(mode) {
	case StartFromTimestamp:
		if !d.Config().Has(OptionStartupTimestampMs) {
			return config.MissingFieldError{Fields: []string{OptionStartupTimestampMs.Key()}}
		}
	case StartFromGroupOffsets:
		if !d.Config().Has(OptionGroupID) {
			return config.MissingFieldError{Fields: []string{OptionGroupID.Key()}}
		}
	}

	return nil
}
