package kafka

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

func TestSourceBuilder_Round_Trip(t *testing.T) {
	d, err := NewSourceBuilder().
		SetBootstrapServers(`localhost:9092`, `localhost:9093`).
		SetGroupID(`test-group`).
		SetTopics(`orders`, `payments`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		SetStartFromEarliest().
		SetCommitOffsetsOnCheckpoints(true).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	servers, err := BootstrapServersOf(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 2 || servers[0] != `localhost:9092` {
		t.Errorf(`bootstrap servers: %v`, servers)
	}

	groupID, err := d.GetString(OptionGroupID)
	if err != nil {
		t.Fatal(err)
	}
	if groupID != `test-group` {
		t.Errorf(`groupId: %v`, groupID)
	}

	topics := d.Topics()
	if len(topics) != 2 || topics[0] != `orders` || topics[1] != `payments` {
		t.Errorf(`topics: %v`, topics)
	}

	if d.Kind() != kconnect.KindSource || d.Connector() != `kafka` {
		t.Fail()
	}
}

func TestSourceBuilder_Missing_Fields(t *testing.T) {
	_, err := NewSourceBuilder().Build()

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 3 {
		t.Errorf(`expected bootstrapServers, deserializationSchema and topics, got %v`, missing.Fields)
	}
}

func TestSourceBuilder_Rejects_Topics_With_Pattern(t *testing.T) {
	_, err := NewSourceBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetGroupID(`test-group`).
		SetTopics(`orders`).
		SetTopicsPattern(`orders-.*`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		Build()

	if _, ok := err.(config.ConflictingConfigurationError); !ok {
		t.Errorf(`expected ConflictingConfigurationError got %T`, err)
	}
}

func TestSourceBuilder_Group_Offsets_Requires_Group(t *testing.T) {
	_, err := NewSourceBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopics(`orders`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		Build()

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 1 || missing.Fields[0] != OptionGroupID.Key() {
		t.Errorf(`fields: %v`, missing.Fields)
	}
}

func TestSourceBuilder_Timestamp_Mode(t *testing.T) {
	d, err := NewSourceBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopics(`orders`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		SetStartFromTimestamp(1640966400000).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	ts, err := d.GetLong(OptionStartupTimestampMs)
	if err != nil {
		t.Fatal(err)
	}
	if ts != 1640966400000 {
		t.Errorf(`startupTimestampMs: %v`, ts)
	}
}

func TestSourceBuilder_Deprecated_Properties(t *testing.T) {
	d, err := NewSourceBuilder().
		SetTopics(`orders`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		SetProperties(map[string]string{
			`bootstrap.servers`: `localhost:9092`,
			`group.id`:          `legacy-group`,
		}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	groupID, err := d.GetString(OptionGroupID)
	if err != nil {
		t.Fatal(err)
	}
	if groupID != `legacy-group` {
		t.Errorf(`groupId: %v`, groupID)
	}
}

func TestSinkBuilder_Round_Trip(t *testing.T) {
	d, err := NewSinkBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopic(`orders-out`).
		SetValueSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.AtLeastOnce).
		SetWriteTimestamp(true).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	topic, err := d.GetString(OptionSinkTopic)
	if err != nil {
		t.Fatal(err)
	}
	if topic != `orders-out` {
		t.Errorf(`topic: %v`, topic)
	}

	if d.DeliveryGuarantee() != kconnect.AtLeastOnce {
		t.Errorf(`deliveryGuarantee: %v`, d.DeliveryGuarantee())
	}

	write, err := d.GetBoolean(OptionWriteTimestamp)
	if err != nil {
		t.Fatal(err)
	}
	if !write {
		t.Error(`writeTimestampToKafka not set`)
	}
}

func TestSinkBuilder_Exactly_Once_Requires_Prefix(t *testing.T) {
	_, err := NewSinkBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopic(`orders-out`).
		SetValueSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.ExactlyOnce).
		Build()

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 1 || missing.Fields[0] != OptionTransactionalIDPrefix.Key() {
		t.Errorf(`fields: %v`, missing.Fields)
	}

	_, err = NewSinkBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopic(`orders-out`).
		SetValueSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.ExactlyOnce).
		SetTransactionalIDPrefix(`orders-tx`).
		Build()
	if err != nil {
		t.Error(err)
	}
}

func TestNativeConfig_Consumer(t *testing.T) {
	d, err := NewSourceBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetGroupID(`test-group`).
		SetTopics(`orders`).
		SetValueOnlyDeserializer(kconnect.StringSchema()).
		SetStartFromEarliest().
		SetCommitOffsetsOnCheckpoints(true).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	c, err := NativeConfig(d)
	if err != nil {
		t.Fatal(err)
	}

	if c.Consumer.Offsets.Initial != sarama.OffsetOldest {
		t.Errorf(`initial offset: %v`, c.Consumer.Offsets.Initial)
	}

	if c.Consumer.Offsets.AutoCommit.Enable {
		t.Error(`auto commit must be off when offsets are committed on checkpoints`)
	}

	if !c.Consumer.Return.Errors {
		t.Error(`consumer errors must be returned`)
	}
}

func TestNativeConfig_Producer(t *testing.T) {
	d, err := NewSinkBuilder().
		SetBootstrapServers(`localhost:9092`).
		SetTopic(`orders-out`).
		SetValueSerializationSchema(kconnect.StringSchema()).
		SetDeliveryGuarantee(kconnect.ExactlyOnce).
		SetTransactionalIDPrefix(`orders-tx`).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	c, err := NativeConfig(d)
	if err != nil {
		t.Fatal(err)
	}

	if c.Producer.RequiredAcks != sarama.WaitForAll || !c.Producer.Idempotent {
		t.Errorf(`producer acks: %v idempotent: %v`, c.Producer.RequiredAcks, c.Producer.Idempotent)
	}

	if c.Net.MaxOpenRequests != 1 {
		t.Errorf(`maxOpenRequests: %v`, c.Net.MaxOpenRequests)
	}
}

func TestNativeConfigRows(t *testing.T) {
	c := sarama.NewConfig()
	c.Producer.Idempotent = true

	var found bool
	for _, row := range NativeConfigRows(c) {
		if row[0] == `Producer.Idempotent` && row[1] == `true` {
			found = true
		}
	}

	if !found {
		t.Error(`Producer.Idempotent missing from config rows`)
	}
}
