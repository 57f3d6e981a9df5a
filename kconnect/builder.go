/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package kconnect implements the connector configuration engine. Connector
// packages declare typed options in a config.Registry, accumulate values
// through a single use Builder and hand the resulting immutable Descriptor to
// the execution graph.
package kconnect

import (
	"time"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/log"
	"github.com/tryfix/metrics"
	"go.uber.org/multierr"
)

// Validator runs connector specific cross field checks against the assembled
// descriptor during Build.
type Validator func(d *Descriptor) error

type requiredField struct {
	name  string
	isSet func() bool
}

// Builder accumulates configuration for one connector instance. It is a
// single use, stack local object, accepting setters in any order until Build
// is called. Not safe for concurrent use.
type Builder struct {
	kind      Kind
	connector string
	registry  *config.Registry

	values     config.Values
	required   []*config.Option
	fields     []requiredField
	validators []Validator
	attached   []DescriptorOption

	logger       log.Logger
	reporter     metrics.Reporter
	buildLatency metrics.Observer

	built bool
	err   error
}

type BuilderOption func(*Builder)

func BuilderWithLogger(logger log.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

func BuilderWithMetricsReporter(reporter metrics.Reporter) BuilderOption {
	return func(b *Builder) {
		b.reporter = reporter
	}
}

func NewBuilder(kind Kind, connector string, registry *config.Registry, options ...BuilderOption) *Builder {
	b := &Builder{
		kind:      kind,
		connector: connector,
		registry:  registry,
		values:    config.Values{},
		logger:    log.NewNoopLogger(),
		reporter:  metrics.NoopReporter(),
	}

	for _, opt := range options {
		opt(b)
	}

	b.logger = b.logger.NewLog(log.Prefixed(`builder-` + connector))
	b.buildLatency = b.reporter.Observer(metrics.MetricConf{
		Path:   `k_connect_builder_build_latency_microseconds`,
		Labels: []string{`connector`, `kind`},
	})

	return b
}

// Set stores a raw value under the option's canonical key. Type validation is
// deferred to Build. Calling Set twice overwrites the prior value.
func (b *Builder) Set(option *config.Option, value interface{}) *Builder {
	if b.closed(`Set`) {
		return b
	}

	b.values.Set(option.Key(), value)
	return b
}

// SetKey stores a raw value under key, which may be a canonical key or a
// deprecated alias of a declared option.
func (b *Builder) SetKey(key string, value interface{}) *Builder {
	if b.closed(`SetKey`) {
		return b
	}

	if !b.declared(key) {
		b.fail(config.NotFoundError{Key: key})
		return b
	}

	b.values.Set(key, value)
	return b
}

// SetProperties stores each entry of props through SetKey. String values are
// coerced to the declared option types at Build.
func (b *Builder) SetProperties(props map[string]string) *Builder {
	for key, value := range props {
		b.SetKey(key, value)
	}
	return b
}

// Require marks options as mandatory. Options carrying a default are never
// reported missing.
func (b *Builder) Require(options ...*config.Option) *Builder {
	b.required = append(b.required, options...)
	return b
}

// RequireField marks a structural (non option) field as mandatory, e.g. a
// serialization schema supplied outside the option registry.
func (b *Builder) RequireField(name string, isSet func() bool) *Builder {
	b.fields = append(b.fields, requiredField{name: name, isSet: isSet})
	return b
}

// Check registers a cross field validator run at the end of Build.
func (b *Builder) Check(v Validator) *Builder {
	b.validators = append(b.validators, v)
	return b
}

// Attach records structural descriptor attachments applied on Build.
func (b *Builder) Attach(options ...DescriptorOption) *Builder {
	if b.closed(`Attach`) {
		return b
	}

	b.attached = append(b.attached, options...)
	return b
}

// Err reports the first misuse recorded on the builder (setter after Build,
// undeclared option key).
func (b *Builder) Err() error {
	return b.err
}

// Build validates the accumulated state and constructs the immutable
// descriptor. The builder is terminal afterwards, further Build or setter
// calls fail with IllegalStateError.
func (b *Builder) Build() (*Descriptor, error) {
	begin := time.Now()

	if b.built {
		return nil, config.IllegalStateError{Op: `Build`}
	}

	if b.err != nil {
		return nil, b.err
	}

	if err := b.missingFields(); err != nil {
		return nil, err
	}

	resolved, err := b.resolve()
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		kind:      b.kind,
		connector: b.connector,
		config:    config.NewConfig(resolved),
	}
	for _, opt := range b.attached {
		opt(d)
	}

	var verr error
	for _, validate := range b.validators {
		verr = multierr.Append(verr, validate(d))
	}
	if verr != nil {
		return nil, verr
	}

	// a failed build leaves the builder open so the caller can supply the
	// missing configuration and retry, only a successful build is terminal
	b.built = true

	b.buildLatency.Observe(float64(time.Since(begin).Nanoseconds()/1e3), map[string]string{
		`connector`: b.connector,
		`kind`:      string(b.kind),
	})
	b.logger.Debug(`descriptor built`)

	return d, nil
}

func (b *Builder) missingFields() error {
	var missing []string

	for _, option := range b.required {
		if _, ok := b.registry.Lookup(b.values, option); !ok {
			missing = append(missing, option.Key())
		}
	}

	for _, field := range b.fields {
		if !field.isSet() {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return config.MissingFieldError{Fields: missing}
	}

	return nil
}

// resolve maps every explicitly set value onto its canonical key (current key
// wins over deprecated aliases) and normalizes it to the declared type.
func (b *Builder) resolve() (config.Values, error) {
	resolved := config.Values{}
	var err error

	for _, option := range b.registry.Options() {
		raw, ok := b.setValue(option)
		if !ok {
			continue
		}

		normalized, nerr := config.Normalize(option, raw)
		if nerr != nil {
			err = multierr.Append(err, nerr)
			continue
		}

		resolved.Set(option.Key(), normalized)
	}

	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// setValue is Registry.Lookup without default substitution, defaults stay in
// the option and apply at read time.
func (b *Builder) setValue(option *config.Option) (interface{}, bool) {
	if v, ok := b.values[option.Key()]; ok {
		return v, true
	}
	for _, alias := range option.DeprecatedKeys() {
		if v, ok := b.values[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func (b *Builder) declared(key string) bool {
	if _, ok := b.registry.Resolve(key); ok {
		return true
	}
	for _, option := range b.registry.Options() {
		for _, alias := range option.DeprecatedKeys() {
			if alias == key {
				return true
			}
		}
	}
	return false
}

func (b *Builder) closed(op string) bool {
	if b.built {
		b.fail(config.IllegalStateError{Op: op})
		return true
	}
	return false
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
	b.logger.Error(err)
}
