package kconnect

import (
	"time"

	"github.com/tryfix/errors"
)

// RollingPolicy governs when a file sink closes the current output part and
// starts a new one.
type RollingPolicy struct {
	partSize           int64
	rolloverInterval   time.Duration
	inactivityInterval time.Duration
	rollOnCheckpoint   bool
}

// DefaultRollingPolicy rolls on part size, a rollover interval and an
// inactivity interval. All thresholds must be positive.
func DefaultRollingPolicy(partSize int64, rolloverInterval, inactivityInterval time.Duration) RollingPolicy {
	return RollingPolicy{
		partSize:           partSize,
		rolloverInterval:   rolloverInterval,
		inactivityInterval: inactivityInterval,
	}
}

// OnCheckpointRollingPolicy rolls on every checkpoint, threshold free.
func OnCheckpointRollingPolicy() RollingPolicy {
	return RollingPolicy{rollOnCheckpoint: true}
}

func (p *RollingPolicy) PartSize() int64 {
	return p.partSize
}

func (p *RollingPolicy) RolloverInterval() time.Duration {
	return p.rolloverInterval
}

func (p *RollingPolicy) InactivityInterval() time.Duration {
	return p.inactivityInterval
}

func (p *RollingPolicy) RollsOnCheckpoint() bool {
	return p.rollOnCheckpoint
}

func (p *RollingPolicy) Validate() error {
	if p.rollOnCheckpoint {
		return nil
	}

	if p.partSize < 1 {
		return errors.New(`rolling policy partSize must be positive`)
	}

	if p.rolloverInterval < 1 {
		return errors.New(`rolling policy rolloverInterval must be positive`)
	}

	if p.inactivityInterval < 1 {
		return errors.New(`rolling policy inactivityInterval must be positive`)
	}

	return nil
}

// OutputFileConfig names the part files a file sink writes.
type OutputFileConfig struct {
	partPrefix string
	partSuffix string
}

type OutputFileConfigBuilder struct {
	cfg OutputFileConfig
}

func NewOutputFileConfigBuilder() *OutputFileConfigBuilder {
	return &OutputFileConfigBuilder{}
}

func (b *OutputFileConfigBuilder) WithPartPrefix(prefix string) *OutputFileConfigBuilder {
	b.cfg.partPrefix = prefix
	return b
}

func (b *OutputFileConfigBuilder) WithPartSuffix(suffix string) *OutputFileConfigBuilder {
	b.cfg.partSuffix = suffix
	return b
}

func (b *OutputFileConfigBuilder) Build() OutputFileConfig {
	return b.cfg
}

func (c *OutputFileConfig) PartPrefix() string {
	return c.partPrefix
}

func (c *OutputFileConfig) PartSuffix() string {
	return c.partSuffix
}

// BucketAssigner decides the bucket directory a record is written into.
type BucketAssigner struct {
	name   string
	format string
}

// BasePathBucketAssigner writes everything into the sink's base path.
func BasePathBucketAssigner() BucketAssigner {
	return BucketAssigner{name: `base-path`}
}

// DateTimeBucketAssigner buckets by record processing time using the given
// date format, e.g. `yyyy-MM-dd--HH`.
func DateTimeBucketAssigner(format string) BucketAssigner {
	return BucketAssigner{name: `date-time`, format: format}
}

func (a *BucketAssigner) Name() string {
	return a.name
}

func (a *BucketAssigner) Format() string {
	return a.format
}
