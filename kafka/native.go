/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package kafka

import (
	"strings"

	"github.com/Shopify/sarama"
	"github.com/tryfix/errors"
	"github.com/tryfix/kconnect/kconnect"
	"github.com/tryfix/kconnect/util"
)

// BootstrapServersOf splits the descriptor's bootstrap server list.
func BootstrapServersOf(d *kconnect.Descriptor) ([]string, error) {
	servers, err := d.GetString(OptionBootstrapServers)
	if err != nil {
		return nil, err
	}
	return strings.Split(servers, `,`), nil
}

// NativeConfig translates a built kafka descriptor into a sarama client
// configuration. The descriptor stays untouched, the returned config is owned
// by the caller.
func NativeConfig(d *kconnect.Descriptor) (*sarama.Config, error) {
	c := sarama.NewConfig()
	c.Version = sarama.V2_3_0_0

	switch d.Kind() {
	case kconnect.KindSource:
		if err := applyConsumer(d, c); err != nil {
			return nil, err
		}
	case kconnect.KindSink:
		if err := applyProducer(d, c); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf(`kafka native config does not support kind [%s]`, d.Kind())
	}

	if err := c.Validate(); err != nil {
		return nil, errors.WithPrevious(err, `kafka native config validation failed`)
	}

	return c, nil
}

// NativeConfigRows flattens a sarama config into sorted key value rows for
// startup describe tables.
func NativeConfigRows(c *sarama.Config) [][]string {
	return util.FlattenStruct(``, c)
}

func applyConsumer(d *kconnect.Descriptor, c *sarama.Config) error {
	c.Consumer.Return.Errors = true
	c.ChannelBufferSize = 100

	mode, err := d.GetString(OptionStartupMode)
	if err != nil {
		return err
	}

	switch StartupMode(mode) {
	case StartFromEarliest:
		c.Consumer.Offsets.Initial = sarama.OffsetOldest
	case StartFromLatest:
		c.Consumer.Offsets.Initial = sarama.OffsetNewest
	case StartFromGroupOffsets, StartFromTimestamp:
		// The consumer seeks explicitly after group join, the initial offset
		// only applies to partitions without a committed offset.
		c.Consumer.Offsets.Initial = sarama.OffsetOldest
	default:
		return errors.Errorf(`kafka startup mode [%s] is not supported`, mode)
	}

	commit, err := d.GetBoolean(OptionCommitOffsetsOnCheckpoint)
	if err != nil {
		return err
	}
	c.Consumer.Offsets.AutoCommit.Enable = !commit

	return nil
}

func applyProducer(d *kconnect.Descriptor, c *sarama.Config) error {
	c.Producer.Return.Errors = true
	c.Producer.Return.Successes = true
	c.Producer.Compression = sarama.CompressionSnappy

	switch d.DeliveryGuarantee() {
	case kconnect.AtMostOnce, kconnect.NoGuarantee:
		c.Producer.RequiredAcks = sarama.NoResponse
	case kconnect.AtLeastOnce:
		c.Producer.RequiredAcks = sarama.WaitForAll
	case kconnect.ExactlyOnce:
		// Transactional ids are assigned per producer instance by the runtime
		// from OptionTransactionalIDPrefix, here we only turn on idempotence.
		c.Producer.RequiredAcks = sarama.WaitForAll
		c.Producer.Idempotent = true
		c.Net.MaxOpenRequests = 1
	default:
		return errors.Errorf(`kafka delivery guarantee [%s] is not supported`, d.DeliveryGuarantee())
	}

	return nil
}
