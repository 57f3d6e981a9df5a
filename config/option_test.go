package config

import (
	"testing"
	"time"
)

func TestRegistry_Declare_Should_Return_Existing_On_Same_Type(t *testing.T) {
	reg := NewRegistry()

	first, err := reg.Declare(`client.serviceUrl`, TypeString)
	if err != nil {
		t.Fatal(err)
	}

	second, err := reg.Declare(`client.serviceUrl`, TypeString)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Fail()
	}
}

func TestRegistry_Declare_Should_Fail_On_Type_Change(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Declare(`source.enableAck`, TypeBoolean); err != nil {
		t.Fatal(err)
	}

	_, err := reg.Declare(`source.enableAck`, TypeLong)
	if err == nil {
		t.Fatal(`expected DuplicateKeyError`)
	}

	dup, ok := err.(DuplicateKeyError)
	if !ok {
		t.Fatalf(`expected DuplicateKeyError got %T`, err)
	}

	if dup.Key != `source.enableAck` || dup.Declared != TypeBoolean || dup.Requested != TypeLong {
		t.Fail()
	}
}

func TestRegistry_Declare_Should_Normalize_Default(t *testing.T) {
	reg := NewRegistry()

	opt, err := reg.Declare(`source.pollInterval`, TypeDuration, WithDefault(`1000`))
	if err != nil {
		t.Fatal(err)
	}

	if opt.Default() != time.Second {
		t.Errorf(`expected 1s got %v`, opt.Default())
	}
}

func TestRegistry_Lookup_Current_Key_Wins_Over_Alias(t *testing.T) {
	reg := NewRegistry()
	opt := reg.MustDeclare(`sink.deliveryGuarantee`, TypeString,
		WithDeprecatedKeys(`producer.deliveryGuarantee`))

	values := Values{}
	values.Set(`producer.deliveryGuarantee`, `at-least-once`)

	v, ok := reg.Lookup(values, opt)
	if !ok || v != `at-least-once` {
		t.Errorf(`expected alias value, got %v`, v)
	}

	values.Set(`sink.deliveryGuarantee`, `exactly-once`)

	v, ok = reg.Lookup(values, opt)
	if !ok || v != `exactly-once` {
		t.Errorf(`expected current key to win, got %v`, v)
	}
}

func TestRegistry_Lookup_Aliases_Resolve_In_Declaration_Order(t *testing.T) {
	reg := NewRegistry()
	opt := reg.MustDeclare(`source.discoveryInterval`, TypeLong,
		WithDeprecatedKeys(`source.discoveryIntervalMs`, `source.discoveryIntervalInMillis`))

	values := Values{}
	values.Set(`source.discoveryIntervalInMillis`, int64(2000))
	values.Set(`source.discoveryIntervalMs`, int64(1000))

	v, _ := reg.Lookup(values, opt)
	if v != int64(1000) {
		t.Errorf(`expected first declared alias to win, got %v`, v)
	}
}

func TestRegistry_Lookup_Default_Applies_Only_When_Unset(t *testing.T) {
	reg := NewRegistry()
	opt := reg.MustDeclare(`consumer.subscriptionType`, TypeString, WithDefault(`Exclusive`))

	v, ok := reg.Lookup(Values{}, opt)
	if !ok || v != `Exclusive` {
		t.Errorf(`expected default, got %v`, v)
	}

	values := Values{}
	values.Set(`consumer.subscriptionType`, `Shared`)

	v, _ = reg.Lookup(values, opt)
	if v != `Shared` {
		t.Errorf(`expected set value, got %v`, v)
	}
}

func TestNormalize_Coercions(t *testing.T) {
	reg := NewRegistry()
	long := reg.MustDeclare(`producer.batchingMaxMessages`, TypeLong)
	boolean := reg.MustDeclare(`source.enableAutoAcknowledgeMessage`, TypeBoolean)
	duration := reg.MustDeclare(`source.autoCommitCursorInterval`, TypeDuration)

	if v, err := Normalize(long, `100`); err != nil || v != int64(100) {
		t.Errorf(`long from string: %v %v`, v, err)
	}

	if v, err := Normalize(boolean, `true`); err != nil || v != true {
		t.Errorf(`boolean from string: %v %v`, v, err)
	}

	if v, err := Normalize(duration, `1000`); err != nil || v != time.Second {
		t.Errorf(`duration from millis: %v %v`, v, err)
	}

	if v, err := Normalize(duration, 12*time.Second); err != nil || v != 12*time.Second {
		t.Errorf(`duration passthrough: %v %v`, v, err)
	}
}

func TestNormalize_Should_Fail_On_Incompatible_Value(t *testing.T) {
	reg := NewRegistry()
	boolean := reg.MustDeclare(`producer.chunkingEnabled`, TypeBoolean)

	_, err := Normalize(boolean, 42)
	if err == nil {
		t.Fatal(`expected InvalidTypeError`)
	}

	if _, ok := err.(InvalidTypeError); !ok {
		t.Errorf(`expected InvalidTypeError got %T`, err)
	}
}
