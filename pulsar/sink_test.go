package pulsar

import (
	"testing"
	"time"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

func TestSinkBuilder_Round_Trip(t *testing.T) {
	d, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetProducerName(`fo`).
		SetTopics(`ada`).
		SetSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.AtLeastOnce).
		SetTopicRoutingMode(kconnect.RoundRobinRouting).
		DelaySendingMessage(kconnect.FixedMessageDelayer(12 * time.Second)).
		SetConfig(`pulsar.producer.chunkingEnabled`, true).
		SetProperties(map[string]string{`pulsar.producer.batchingMaxMessages`: `100`}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionServiceURL); v != `pulsar://localhost:6650` {
		t.Errorf(`serviceUrl: %v`, v)
	}

	if v, _ := d.GetString(OptionAdminURL); v != `http://localhost:8080` {
		t.Errorf(`adminUrl: %v`, v)
	}

	if v, _ := d.GetString(OptionProducerName); v != `fo - %s` {
		t.Errorf(`producerName: %v`, v)
	}

	if v, _ := d.GetString(OptionDeliveryGuarantee); v != `at-least-once` {
		t.Errorf(`deliveryGuarantee: %v`, v)
	}

	if d.TopicRoutingMode() != kconnect.RoundRobinRouting {
		t.Errorf(`routingMode: %v`, d.TopicRoutingMode())
	}

	if d.MessageDelayer().Milliseconds() != 12000 {
		t.Errorf(`delay: %v`, d.MessageDelayer().Milliseconds())
	}

	if v, _ := d.GetBoolean(OptionChunkingEnabled); !v {
		t.Error(`chunkingEnabled not set`)
	}

	if v, _ := d.GetLong(OptionBatchingMaxMessages); v != 100 {
		t.Errorf(`batchingMaxMessages: %v`, v)
	}

	if d.Kind() != kconnect.KindSink {
		t.Fail()
	}
}

func TestSinkBuilder_Templated_Producer_Name_Kept(t *testing.T) {
	d, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetProducerName(`fo-%s-writer`).
		SetSerializationSchema(kconnect.StringSchema()).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionProducerName); v != `fo-%s-writer` {
		t.Errorf(`producerName: %v`, v)
	}
}

func TestSinkBuilder_Defaults(t *testing.T) {
	d, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetTopics(`ada`, `beta`).
		SetSerializationSchema(kconnect.StringSchema()).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionDeliveryGuarantee); v != `none` {
		t.Errorf(`default deliveryGuarantee: %v`, v)
	}

	if d.TopicRoutingMode() != kconnect.RoundRobinRouting {
		t.Errorf(`default routingMode: %v`, d.TopicRoutingMode())
	}
}

func TestSinkBuilder_Deprecated_Guarantee_Key(t *testing.T) {
	d, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetSerializationSchema(kconnect.StringSchema()).
		SetConfig(`pulsar.producer.deliveryGuarantee`, `exactly-once`).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionDeliveryGuarantee); v != `exactly-once` {
		t.Errorf(`deliveryGuarantee via alias: %v`, v)
	}
}

func TestSinkBuilder_Unsupported_Routing_Combination(t *testing.T) {
	_, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.AtMostOnce).
		SetTopicRoutingMode(kconnect.MessageKeyHashRouting).
		Build()
	if err == nil {
		t.Fatal(`expected ConflictingConfigurationError`)
	}
}

func TestSinkBuilder_Custom_Routing_Is_Exempt(t *testing.T) {
	_, err := NewSinkBuilder().
		SetServiceURL(`pulsar://localhost:6650`).
		SetAdminURL(`http://localhost:8080`).
		SetSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.AtMostOnce).
		SetTopicRoutingMode(kconnect.CustomRouting).
		Build()
	if err != nil {
		t.Error(err)
	}
}

func TestSinkBuilder_Missing_Fields(t *testing.T) {
	_, err := NewSinkBuilder().SetTopics(`ada`).Build()

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 3 {
		t.Errorf(`expected serviceUrl, adminUrl and schema, got %v`, missing.Fields)
	}
}
