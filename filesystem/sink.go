package filesystem

import (
	"github.com/tryfix/kconnect/kconnect"
)

// SinkBuilder assembles a file sink descriptor. Single use, not safe for
// concurrent use.
type SinkBuilder struct {
	engine *kconnect.Builder

	encoder    kconnect.SchemaRef
	rolling    *kconnect.RollingPolicy
	assigner   *kconnect.BucketAssigner
	outputFile *kconnect.OutputFileConfig
}

// ForRowFormat writes rows under basePath with the given encoder.
func ForRowFormat(basePath string, encoder kconnect.SchemaRef) *SinkBuilder {
	b := &SinkBuilder{
		engine:  kconnect.NewBuilder(kconnect.KindSink, `filesystem`, registry),
		encoder: encoder,
	}

	b.engine.
		Require(OptionBasePath).
		Check(b.rollingThresholds).
		Set(OptionBasePath, basePath)

	return b
}

func (b *SinkBuilder) WithRollingPolicy(policy kconnect.RollingPolicy) *SinkBuilder {
	b.rolling = &policy
	return b
}

// WithBucketCheckInterval sets how often the runtime inspects open buckets
// for rollover, in milliseconds.
func (b *SinkBuilder) WithBucketCheckInterval(millis int64) *SinkBuilder {
	b.engine.Set(OptionBucketCheckInterval, millis)
	return b
}

func (b *SinkBuilder) WithBucketAssigner(assigner kconnect.BucketAssigner) *SinkBuilder {
	b.assigner = &assigner
	return b
}

func (b *SinkBuilder) WithOutputFileConfig(cfg kconnect.OutputFileConfig) *SinkBuilder {
	b.outputFile = &cfg
	return b
}

func (b *SinkBuilder) Build() (*kconnect.Descriptor, error) {
	attachments := []kconnect.DescriptorOption{kconnect.WithSchema(b.encoder)}

	if b.rolling != nil {
		attachments = append(attachments, kconnect.WithRollingPolicy(*b.rolling))
	}
	if b.assigner != nil {
		attachments = append(attachments, kconnect.WithBucketAssigner(*b.assigner))
	}
	if b.outputFile != nil {
		attachments = append(attachments, kconnect.WithOutputFileConfig(*b.outputFile))
	}

	return b.engine.Attach(attachments...).Build()
}

func (b *SinkBuilder) rollingThresholds(*kconnect.Descriptor) error {
	if b.rolling == nil {
		return nil
	}
	return b.rolling.Validate()
}
