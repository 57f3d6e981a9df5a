package kconnect

import (
	"time"
)

// DeliveryGuarantee is the sink consistency level. The string form is what
// descriptors expose through the delivery guarantee option.
type DeliveryGuarantee string

const AtMostOnce DeliveryGuarantee = `at-most-once`
const AtLeastOnce DeliveryGuarantee = `at-least-once`
const ExactlyOnce DeliveryGuarantee = `exactly-once`
const NoGuarantee DeliveryGuarantee = `none`

// TopicRoutingMode decides which topic/partition a sink record is written to.
type TopicRoutingMode string

const RoundRobinRouting TopicRoutingMode = `round-robin`
const MessageKeyHashRouting TopicRoutingMode = `message-key-hash`
const CustomRouting TopicRoutingMode = `custom`

// MessageDelayer delays sink records by a fixed duration before delivery.
type MessageDelayer struct {
	delay time.Duration
}

func FixedMessageDelayer(delay time.Duration) MessageDelayer {
	return MessageDelayer{delay: delay}
}

func (m *MessageDelayer) Delay() time.Duration {
	return m.delay
}

// Milliseconds is the wire representation handed to the runtime.
func (m *MessageDelayer) Milliseconds() int64 {
	return m.delay.Milliseconds()
}
