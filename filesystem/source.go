/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package filesystem builds source and sink descriptors for the file
// connector. Enumeration, split assignment and the actual part file I/O are
// the runtime's job.
package filesystem

import (
	"strings"
	"time"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

var registry = config.NewRegistry()

var (
	OptionPaths             = registry.MustDeclare(`filesystem.source.paths`, config.TypeString)
	OptionDiscoveryInterval = registry.MustDeclare(`filesystem.source.discoveryInterval`, config.TypeDuration,
		config.WithDeprecatedKeys(`filesystem.source.monitorInterval`))

	OptionBasePath            = registry.MustDeclare(`filesystem.sink.basePath`, config.TypeString)
	OptionBucketCheckInterval = registry.MustDeclare(`filesystem.sink.bucketCheckInterval`, config.TypeLong,
		config.WithDefault(int64(60000)))
)

// Registry exposes the filesystem option catalog.
func Registry() *config.Registry {
	return registry
}

// FileEnumeratorProvider names the enumerator splitting input files into
// source splits.
type FileEnumeratorProvider struct {
	name string
}

func DefaultSplittableFileEnumerator() FileEnumeratorProvider {
	return FileEnumeratorProvider{name: `default-splittable`}
}

func NonSplittingFileEnumerator() FileEnumeratorProvider {
	return FileEnumeratorProvider{name: `non-splitting`}
}

func (p FileEnumeratorProvider) Name() string {
	return p.name
}

// SplitAssignerProvider names the assigner distributing splits over readers.
type SplitAssignerProvider struct {
	name string
}

func LocalityAwareSplitAssigner() SplitAssignerProvider {
	return SplitAssignerProvider{name: `locality-aware`}
}

func SimpleSplitAssigner() SplitAssignerProvider {
	return SplitAssignerProvider{name: `simple`}
}

func (p SplitAssignerProvider) Name() string {
	return p.name
}

// SourceBuilder assembles a file source descriptor. A static file set is
// bounded, monitoring continuously makes the source unbounded. Single use,
// not safe for concurrent use.
type SourceBuilder struct {
	engine *kconnect.Builder

	format     kconnect.SchemaRef
	paths      []string
	staticSet  bool
	monitoring *time.Duration
	enumerator *FileEnumeratorProvider
	assigner   *SplitAssignerProvider
}

// ForRecordStreamFormat reads the given paths record by record with the given
// stream format.
func ForRecordStreamFormat(format kconnect.SchemaRef, paths ...string) *SourceBuilder {
	b := &SourceBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSource, `filesystem`, registry),
		format: format,
		paths:  paths,
	}

	b.engine.
		RequireField(`paths`, func() bool { return len(b.paths) > 0 }).
		Check(b.monitoringConflict).
		Set(OptionPaths, strings.Join(paths, `,`))

	return b
}

// MonitorContinuously keeps the source alive, re-enumerating the input paths
// every interval. Mutually exclusive with ProcessStaticFileSet.
func (b *SourceBuilder) MonitorContinuously(interval time.Duration) *SourceBuilder {
	b.monitoring = &interval
	b.engine.Set(OptionDiscoveryInterval, interval)
	return b
}

// ProcessStaticFileSet reads the input once and ends the source. Mutually
// exclusive with MonitorContinuously.
func (b *SourceBuilder) ProcessStaticFileSet() *SourceBuilder {
	b.staticSet = true
	return b
}

// SetProperties applies raw key value pairs, resolving deprecated keys and
// coercing values to their declared types.
func (b *SourceBuilder) SetProperties(properties map[string]string) *SourceBuilder {
	b.engine.SetProperties(properties)
	return b
}

func (b *SourceBuilder) SetFileEnumerator(provider FileEnumeratorProvider) *SourceBuilder {
	b.enumerator = &provider
	return b
}

func (b *SourceBuilder) SetSplitAssigner(provider SplitAssignerProvider) *SourceBuilder {
	b.assigner = &provider
	return b
}

func (b *SourceBuilder) Build() (*kconnect.Descriptor, error) {
	boundedness := kconnect.Bounded
	if b.monitoring != nil {
		boundedness = kconnect.ContinuousUnbounded
	}

	attachments := []kconnect.DescriptorOption{
		kconnect.WithSchema(b.format),
		kconnect.WithPaths(b.paths...),
		kconnect.WithBoundedness(boundedness),
	}

	if b.enumerator != nil {
		attachments = append(attachments, kconnect.WithFileEnumerator(b.enumerator.Name()))
	}
	if b.assigner != nil {
		attachments = append(attachments, kconnect.WithSplitAssigner(b.assigner.Name()))
	}

	return b.engine.Attach(attachments...).Build()
}

// monitoringConflict rejects a bounded static file set combined with a
// continuous discovery interval.
func (b *SourceBuilder) monitoringConflict(*kconnect.Descriptor) error {
	if b.staticSet && b.monitoring != nil {
		return config.ConflictingConfigurationError{
			First:  `processStaticFileSet`,
			Second: OptionDiscoveryInterval.Key(),
		}
	}
	return nil
}
