/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package kafka builds source and sink descriptors for the Kafka connector
// and translates them into native sarama client configuration.
package kafka

import (
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/tryfix/kconnect/config"
)

func init() {
	saramaMetrics.UseNilMetrics = true
}

var registry = config.NewRegistry()

var (
	OptionBootstrapServers = registry.MustDeclare(`kafka.connection.bootstrapServers`, config.TypeString,
		config.WithDeprecatedKeys(`bootstrap.servers`))
	OptionGroupID = registry.MustDeclare(`kafka.consumer.groupId`, config.TypeString,
		config.WithDeprecatedKeys(`group.id`))

	OptionTopics        = registry.MustDeclare(`kafka.source.topics`, config.TypeString)
	OptionTopicsPattern = registry.MustDeclare(`kafka.source.topicsPattern`, config.TypeString)
	OptionStartupMode   = registry.MustDeclare(`kafka.source.startupMode`, config.TypeString,
		config.WithDefault(string(StartFromGroupOffsets)))
	OptionStartupTimestampMs        = registry.MustDeclare(`kafka.source.startupTimestampMs`, config.TypeLong)
	OptionCommitOffsetsOnCheckpoint = registry.MustDeclare(`kafka.consumer.commitOffsetsOnCheckpoints`, config.TypeBoolean,
		config.WithDefault(true))

	OptionSinkTopic         = registry.MustDeclare(`kafka.sink.topic`, config.TypeString)
	OptionDeliveryGuarantee = registry.MustDeclare(`kafka.sink.deliveryGuarantee`, config.TypeString,
		config.WithDefault(`at-least-once`))
	OptionTransactionalIDPrefix = registry.MustDeclare(`kafka.producer.transactionalIdPrefix`, config.TypeString)
	OptionWriteTimestamp        = registry.MustDeclare(`kafka.sink.writeTimestampToKafka`, config.TypeBoolean,
		config.WithDefault(false))
)

// Registry exposes the kafka option catalog.
func Registry() *config.Registry {
	return registry
}

// StartupMode decides the offset a source consumer starts reading from.
type StartupMode string

const (
	StartFromEarliest     StartupMode = `earliest`
	StartFromLatest       StartupMode = `latest`
	StartFromGroupOffsets StartupMode = `group-offsets`
	StartFromTimestamp    StartupMode = `timestamp`
)
