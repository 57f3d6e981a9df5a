/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package pulsar builds source and sink descriptors for the Pulsar connector.
// Options are declared once, process wide, on the package registry.
package pulsar

import (
	"github.com/tryfix/kconnect/config"
)

var registry = config.NewRegistry()

var (
	OptionServiceURL = registry.MustDeclare(`pulsar.client.serviceUrl`, config.TypeString)
	OptionAdminURL   = registry.MustDeclare(`pulsar.admin.adminUrl`, config.TypeString)

	OptionTopics           = registry.MustDeclare(`pulsar.source.topics`, config.TypeString)
	OptionTopicsPattern    = registry.MustDeclare(`pulsar.source.topicsPattern`, config.TypeString)
	OptionSubscriptionName = registry.MustDeclare(`pulsar.consumer.subscriptionName`, config.TypeString)
	OptionSubscriptionType = registry.MustDeclare(`pulsar.consumer.subscriptionType`, config.TypeString,
		config.WithDefault(string(Exclusive)))
	OptionEnableAutoAcknowledgeMessage = registry.MustDeclare(
		`pulsar.source.enableAutoAcknowledgeMessage`, config.TypeBoolean)
	OptionAutoCommitCursorInterval = registry.MustDeclare(
		`pulsar.source.autoCommitCursorInterval`, config.TypeLong,
		config.WithDeprecatedKeys(`pulsar.source.autoCommitCursorIntervalMs`))

	OptionSinkTopics   = registry.MustDeclare(`pulsar.sink.topics`, config.TypeString)
	OptionProducerName = registry.MustDeclare(`pulsar.producer.producerName`, config.TypeString)
	OptionDeliveryGuarantee = registry.MustDeclare(`pulsar.sink.deliveryGuarantee`, config.TypeString,
		config.WithDefault(`none`), config.WithDeprecatedKeys(`pulsar.producer.deliveryGuarantee`))
	OptionChunkingEnabled     = registry.MustDeclare(`pulsar.producer.chunkingEnabled`, config.TypeBoolean)
	OptionBatchingMaxMessages = registry.MustDeclare(`pulsar.producer.batchingMaxMessages`, config.TypeLong)
)

// Registry exposes the pulsar option catalog, e.g. for plan inspection.
func Registry() *config.Registry {
	return registry
}

// SubscriptionType is the Pulsar consumer subscription mode.
type SubscriptionType string

const Exclusive SubscriptionType = `Exclusive`
const Shared SubscriptionType = `Shared`
const Failover SubscriptionType = `Failover`
const KeyShared SubscriptionType = `Key_Shared`
