package config

import (
	"testing"
	"time"
)

func newTestConfig(t *testing.T) (*Registry, *Config) {
	t.Helper()

	reg := NewRegistry()
	reg.MustDeclare(`client.serviceUrl`, TypeString)
	reg.MustDeclare(`producer.chunkingEnabled`, TypeBoolean)
	reg.MustDeclare(`producer.batchingMaxMessages`, TypeLong)
	reg.MustDeclare(`sink.messageDelay`, TypeDuration)
	reg.MustDeclare(`consumer.subscriptionType`, TypeString, WithDefault(`Exclusive`))
	reg.MustDeclare(`admin.adminUrl`, TypeString)

	values := Values{
		`client.serviceUrl`:            `pulsar://localhost:6650`,
		`producer.chunkingEnabled`:     true,
		`producer.batchingMaxMessages`: int64(100),
		`sink.messageDelay`:            12 * time.Second,
	}

	return reg, NewConfig(values)
}

func TestConfig_Typed_Lookups(t *testing.T) {
	reg, cfg := newTestConfig(t)

	serviceURL, _ := reg.Resolve(`client.serviceUrl`)
	if v, err := cfg.GetString(serviceURL); err != nil || v != `pulsar://localhost:6650` {
		t.Errorf(`GetString: %v %v`, v, err)
	}

	chunking, _ := reg.Resolve(`producer.chunkingEnabled`)
	if v, err := cfg.GetBoolean(chunking); err != nil || !v {
		t.Errorf(`GetBoolean: %v %v`, v, err)
	}

	batching, _ := reg.Resolve(`producer.batchingMaxMessages`)
	if v, err := cfg.GetLong(batching); err != nil || v != 100 {
		t.Errorf(`GetLong: %v %v`, v, err)
	}

	delay, _ := reg.Resolve(`sink.messageDelay`)
	if v, err := cfg.GetDuration(delay); err != nil || v != 12*time.Second {
		t.Errorf(`GetDuration: %v %v`, v, err)
	}
}

func TestConfig_Wrong_Accessor_Fails_With_TypeMismatch(t *testing.T) {
	reg, cfg := newTestConfig(t)

	chunking, _ := reg.Resolve(`producer.chunkingEnabled`)
	_, err := cfg.GetString(chunking)
	if err == nil {
		t.Fatal(`expected TypeMismatchError`)
	}

	mismatch, ok := err.(TypeMismatchError)
	if !ok {
		t.Fatalf(`expected TypeMismatchError got %T`, err)
	}

	if mismatch.Declared != TypeBoolean || mismatch.Requested != TypeString {
		t.Fail()
	}
}

func TestConfig_Absent_Defaultless_Fails_With_NotFound(t *testing.T) {
	reg, cfg := newTestConfig(t)

	adminURL, _ := reg.Resolve(`admin.adminUrl`)
	_, err := cfg.GetString(adminURL)
	if err == nil {
		t.Fatal(`expected NotFoundError`)
	}

	if _, ok := err.(NotFoundError); !ok {
		t.Errorf(`expected NotFoundError got %T`, err)
	}
}

func TestConfig_Absent_With_Default_Returns_Default(t *testing.T) {
	reg, cfg := newTestConfig(t)

	subType, _ := reg.Resolve(`consumer.subscriptionType`)
	v, err := cfg.GetString(subType)
	if err != nil {
		t.Fatal(err)
	}
	if v != `Exclusive` {
		t.Errorf(`expected default, got %v`, v)
	}
}

func TestConfig_Is_Immutable_Against_Source_Values(t *testing.T) {
	reg := NewRegistry()
	opt := reg.MustDeclare(`client.serviceUrl`, TypeString)

	values := Values{`client.serviceUrl`: `pulsar://a:6650`}
	cfg := NewConfig(values)

	values.Set(`client.serviceUrl`, `pulsar://b:6650`)

	v, _ := cfg.GetString(opt)
	if v != `pulsar://a:6650` {
		t.Errorf(`config mutated through source values, got %v`, v)
	}
}
