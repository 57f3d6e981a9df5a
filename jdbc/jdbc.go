/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package jdbc builds sink descriptors for the JDBC connector. Statement
// execution and drivers live in the runtime's connector plugin, this package
// only validates and carries configuration.
package jdbc

import (
	"github.com/tryfix/errors"
	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

var registry = config.NewRegistry()

var (
	OptionURL        = registry.MustDeclare(`jdbc.connection.url`, config.TypeString)
	OptionDriverName = registry.MustDeclare(`jdbc.connection.driverName`, config.TypeString)
	OptionUserName   = registry.MustDeclare(`jdbc.connection.userName`, config.TypeString)

	OptionQuery           = registry.MustDeclare(`jdbc.sink.query`, config.TypeString)
	OptionBatchIntervalMs = registry.MustDeclare(`jdbc.execution.batchIntervalMs`, config.TypeLong,
		config.WithDefault(int64(0)))
	OptionBatchSize = registry.MustDeclare(`jdbc.execution.batchSize`, config.TypeLong,
		config.WithDefault(int64(5000)))
	OptionMaxRetries = registry.MustDeclare(`jdbc.execution.maxRetries`, config.TypeLong,
		config.WithDefault(int64(3)))
)

// Registry exposes the jdbc option catalog.
func Registry() *config.Registry {
	return registry
}

// ConnectionOptions is the immutable endpoint and credential descriptor for a
// JDBC database.
type ConnectionOptions struct {
	url        string
	driverName string
	userName   string
	password   string
}

func (o *ConnectionOptions) URL() string {
	return o.url
}

func (o *ConnectionOptions) DriverName() string {
	return o.driverName
}

func (o *ConnectionOptions) UserName() string {
	return o.userName
}

func (o *ConnectionOptions) Password() string {
	return o.password
}

// ConnectionOptionsBuilder builds ConnectionOptions, url and driverName are
// mandatory.
type ConnectionOptionsBuilder struct {
	opts ConnectionOptions
}

func NewConnectionOptionsBuilder() *ConnectionOptionsBuilder {
	return &ConnectionOptionsBuilder{}
}

func (b *ConnectionOptionsBuilder) WithURL(url string) *ConnectionOptionsBuilder {
	b.opts.url = url
	return b
}

func (b *ConnectionOptionsBuilder) WithDriverName(driverName string) *ConnectionOptionsBuilder {
	b.opts.driverName = driverName
	return b
}

func (b *ConnectionOptionsBuilder) WithUserName(userName string) *ConnectionOptionsBuilder {
	b.opts.userName = userName
	return b
}

func (b *ConnectionOptionsBuilder) WithPassword(password string) *ConnectionOptionsBuilder {
	b.opts.password = password
	return b
}

func (b *ConnectionOptionsBuilder) Build() (*ConnectionOptions, error) {
	var missing []string

	if b.opts.url == `` {
		missing = append(missing, `url`)
	}
	if b.opts.driverName == `` {
		missing = append(missing, `driverName`)
	}

	if len(missing) > 0 {
		return nil, config.MissingFieldError{Fields: missing}
	}

	opts := b.opts
	return &opts, nil
}

// ExecutionOptions controls statement batching and retries in the runtime's
// JDBC writer. Retry policy is carried opaquely, the framework never retries.
type ExecutionOptions struct {
	batchIntervalMs int64
	batchSize       int64
	maxRetries      int64
}

func (o *ExecutionOptions) BatchIntervalMs() int64 {
	return o.batchIntervalMs
}

func (o *ExecutionOptions) BatchSize() int64 {
	return o.batchSize
}

func (o *ExecutionOptions) MaxRetries() int64 {
	return o.maxRetries
}

type ExecutionOptionsBuilder struct {
	opts ExecutionOptions
}

func NewExecutionOptionsBuilder() *ExecutionOptionsBuilder {
	return &ExecutionOptionsBuilder{
		opts: ExecutionOptions{batchSize: 5000, maxRetries: 3},
	}
}

func (b *ExecutionOptionsBuilder) WithBatchIntervalMs(interval int64) *ExecutionOptionsBuilder {
	b.opts.batchIntervalMs = interval
	return b
}

func (b *ExecutionOptionsBuilder) WithBatchSize(size int64) *ExecutionOptionsBuilder {
	b.opts.batchSize = size
	return b
}

func (b *ExecutionOptionsBuilder) WithMaxRetries(retries int64) *ExecutionOptionsBuilder {
	b.opts.maxRetries = retries
	return b
}

func (b *ExecutionOptionsBuilder) Build() (*ExecutionOptions, error) {
	if b.opts.batchSize < 1 {
		return nil, errors.New(`jdbc execution batchSize must be positive`)
	}

	if b.opts.batchIntervalMs < 0 {
		return nil, errors.New(`jdbc execution batchIntervalMs cannot be negative`)
	}

	if b.opts.maxRetries < 0 {
		return nil, errors.New(`jdbc execution maxRetries cannot be negative`)
	}

	opts := b.opts
	return &opts, nil
}

// SinkBuilder assembles a JDBC sink descriptor from a statement, connection
// options and execution options. Single use, not safe for concurrent use.
type SinkBuilder struct {
	engine *kconnect.Builder

	connection *ConnectionOptions
	execution  *ExecutionOptions
}

func NewSinkBuilder(options ...kconnect.BuilderOption) *SinkBuilder {
	b := &SinkBuilder{
		engine: kconnect.NewBuilder(kconnect.KindSink, `jdbc`, registry, options...),
	}

	b.engine.
		Require(OptionQuery).
		RequireField(`connectionOptions`, func() bool { return b.connection != nil })

	return b
}

// SetQuery sets the DML statement the runtime executes per record batch.
func (b *SinkBuilder) SetQuery(query string) *SinkBuilder {
	b.engine.Set(OptionQuery, query)
	return b
}

func (b *SinkBuilder) SetConnectionOptions(opts *ConnectionOptions) *SinkBuilder {
	b.connection = opts
	if opts != nil {
		b.engine.
			Set(OptionURL, opts.URL()).
			Set(OptionDriverName, opts.DriverName()).
			Set(OptionUserName, opts.UserName())
	}
	return b
}

func (b *SinkBuilder) SetExecutionOptions(opts *ExecutionOptions) *SinkBuilder {
	b.execution = opts
	if opts != nil {
		b.engine.
			Set(OptionBatchIntervalMs, opts.BatchIntervalMs()).
			Set(OptionBatchSize, opts.BatchSize()).
			Set(OptionMaxRetries, opts.MaxRetries())
	}
	return b
}

func (b *SinkBuilder) Build() (*kconnect.Descriptor, error) {
	return b.engine.Build()
}

// ConnectionOptionsOf rebuilds the connection options carried by a built jdbc
// descriptor. The password never enters the descriptor.
func ConnectionOptionsOf(d *kconnect.Descriptor) (*ConnectionOptions, error) {
	url, err := d.GetString(OptionURL)
	if err != nil {
		return nil, err
	}

	driverName, err := d.GetString(OptionDriverName)
	if err != nil {
		return nil, err
	}

	userName, err := d.GetString(OptionUserName)
	if err != nil {
		return nil, err
	}

	return &ConnectionOptions{url: url, driverName: driverName, userName: userName}, nil
}

// ExecutionOptionsOf rebuilds the execution options carried by a built jdbc
// descriptor.
func ExecutionOptionsOf(d *kconnect.Descriptor) (*ExecutionOptions, error) {
	interval, err := d.GetLong(OptionBatchIntervalMs)
	if err != nil {
		return nil, err
	}

	size, err := d.GetLong(OptionBatchSize)
	if err != nil {
		return nil, err
	}

	retries, err := d.GetLong(OptionMaxRetries)
	if err != nil {
		return nil, err
	}

	return &ExecutionOptions{batchIntervalMs: interval, batchSize: size, maxRetries: retries}, nil
}
