/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package kconnect

import (
	"time"

	"github.com/tryfix/kconnect/config"
)

type Kind string

const KindSource Kind = `source`
const KindSink Kind = `sink`

type Boundedness string

const Bounded Boundedness = `bounded`
const ContinuousUnbounded Boundedness = `continuous-unbounded`

// Descriptor is the immutable, validated configuration snapshot for one
// connector instance. Created only by a successful Builder.Build, never
// mutated afterwards and therefore freely shared across goroutines.
type Descriptor struct {
	kind      Kind
	connector string
	config    *config.Config

	schema        *SchemaRef
	topics        []string
	topicsPattern string
	paths         []string

	startCursor    *StartCursor
	unboundedStop  *StopCursor
	boundedStop    *StopCursor
	boundedness    Boundedness
	guarantee      DeliveryGuarantee
	routingMode    TopicRoutingMode
	delayer        *MessageDelayer
	rolling        *RollingPolicy
	outputFile     *OutputFileConfig
	bucketAssigner *BucketAssigner
	fileEnumerator string
	splitAssigner  string
}

func (d *Descriptor) Kind() Kind {
	return d.kind
}

func (d *Descriptor) Connector() string {
	return d.connector
}

// Config exposes the resolved typed option container.
func (d *Descriptor) Config() *config.Config {
	return d.config
}

func (d *Descriptor) GetString(option *config.Option) (string, error) {
	return d.config.GetString(option)
}

func (d *Descriptor) GetBoolean(option *config.Option) (bool, error) {
	return d.config.GetBoolean(option)
}

func (d *Descriptor) GetLong(option *config.Option) (int64, error) {
	return d.config.GetLong(option)
}

func (d *Descriptor) GetDuration(option *config.Option) (time.Duration, error) {
	return d.config.GetDuration(option)
}

func (d *Descriptor) Schema() *SchemaRef {
	return d.schema
}

func (d *Descriptor) Topics() []string {
	topics := make([]string, len(d.topics))
	copy(topics, d.topics)
	return topics
}

func (d *Descriptor) TopicsPattern() string {
	return d.topicsPattern
}

func (d *Descriptor) Paths() []string {
	paths := make([]string, len(d.paths))
	copy(paths, d.paths)
	return paths
}

func (d *Descriptor) StartCursor() *StartCursor {
	return d.startCursor
}

func (d *Descriptor) UnboundedStopCursor() *StopCursor {
	return d.unboundedStop
}

func (d *Descriptor) BoundedStopCursor() *StopCursor {
	return d.boundedStop
}

// Boundedness is the explicitly attached mode when present, otherwise bounded
// only when a bounded stop cursor is attached.
func (d *Descriptor) Boundedness() Boundedness {
	if d.boundedness != `` {
		return d.boundedness
	}
	if d.boundedStop != nil {
		return Bounded
	}
	return ContinuousUnbounded
}

func (d *Descriptor) DeliveryGuarantee() DeliveryGuarantee {
	return d.guarantee
}

func (d *Descriptor) TopicRoutingMode() TopicRoutingMode {
	return d.routingMode
}

func (d *Descriptor) MessageDelayer() *MessageDelayer {
	return d.delayer
}

func (d *Descriptor) RollingPolicy() *RollingPolicy {
	return d.rolling
}

func (d *Descriptor) OutputFileConfig() *OutputFileConfig {
	return d.outputFile
}

func (d *Descriptor) BucketAssigner() *BucketAssigner {
	return d.bucketAssigner
}

func (d *Descriptor) FileEnumerator() string {
	return d.fileEnumerator
}

func (d *Descriptor) SplitAssigner() string {
	return d.splitAssigner
}

// DescriptorOption attaches a structural sub object during Build.
type DescriptorOption func(*Descriptor)

func WithSchema(schema SchemaRef) DescriptorOption {
	return func(d *Descriptor) {
		d.schema = &schema
	}
}

func WithTopics(topics ...string) DescriptorOption {
	return func(d *Descriptor) {
		d.topics = topics
	}
}

func WithTopicsPattern(pattern string) DescriptorOption {
	return func(d *Descriptor) {
		d.topicsPattern = pattern
	}
}

func WithPaths(paths ...string) DescriptorOption {
	return func(d *Descriptor) {
		d.paths = paths
	}
}

func WithStartCursor(cursor StartCursor) DescriptorOption {
	return func(d *Descriptor) {
		d.startCursor = &cursor
	}
}

func WithUnboundedStopCursor(cursor StopCursor) DescriptorOption {
	return func(d *Descriptor) {
		d.unboundedStop = &cursor
	}
}

func WithBoundedStopCursor(cursor StopCursor) DescriptorOption {
	return func(d *Descriptor) {
		d.boundedStop = &cursor
	}
}

func WithBoundedness(boundedness Boundedness) DescriptorOption {
	return func(d *Descriptor) {
		d.boundedness = boundedness
	}
}

func WithDeliveryGuarantee(guarantee DeliveryGuarantee) DescriptorOption {
	return func(d *Descriptor) {
		d.guarantee = guarantee
	}
}

func WithTopicRoutingMode(mode TopicRoutingMode) DescriptorOption {
	return func(d *Descriptor) {
		d.routingMode = mode
	}
}

func WithMessageDelayer(delayer MessageDelayer) DescriptorOption {
	return func(d *Descriptor) {
		d.delayer = &delayer
	}
}

func WithRollingPolicy(policy RollingPolicy) DescriptorOption {
	return func(d *Descriptor) {
		d.rolling = &policy
	}
}

func WithOutputFileConfig(cfg OutputFileConfig) DescriptorOption {
	return func(d *Descriptor) {
		d.outputFile = &cfg
	}
}

func WithBucketAssigner(assigner BucketAssigner) DescriptorOption {
	return func(d *Descriptor) {
		d.bucketAssigner = &assigner
	}
}

func WithFileEnumerator(name string) DescriptorOption {
	return func(d *Descriptor) {
		d.fileEnumerator = name
	}
}

func WithSplitAssigner(name string) DescriptorOption {
	return func(d *Descriptor) {
		d.splitAssigner = name
	}
}
