package rabbitmq

import (
	"testing"

	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

func testConnectionConfig(t *testing.T) *ConnectionConfig {
	t.Helper()

	cfg, err := NewConnectionConfigBuilder().
		SetHost(`localhost`).
		SetPort(5672).
		SetVirtualHost(`/`).
		SetUserName(`guest`).
		SetPassword(`guest`).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestConnectionConfigBuilder_Round_Trip(t *testing.T) {
	cfg := testConnectionConfig(t)

	if cfg.Host() != `localhost` || cfg.Port() != 5672 || cfg.VirtualHost() != `/` {
		t.Fail()
	}

	if cfg.UserName() != `guest` || cfg.Password() != `guest` {
		t.Fail()
	}
}

func TestConnectionConfigBuilder_Missing_Fields_Aggregated(t *testing.T) {
	_, err := NewConnectionConfigBuilder().SetHost(`localhost`).Build()
	if err == nil {
		t.Fatal(`expected MissingFieldError`)
	}

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 3 {
		t.Errorf(`expected port, userName and password, got %v`, missing.Fields)
	}
}

func TestConnectionConfigBuilder_Setters_Are_Idempotent(t *testing.T) {
	cfg, err := NewConnectionConfigBuilder().
		SetHost(`a`).
		SetHost(`b`).
		SetPort(5672).
		SetUserName(`guest`).
		SetPassword(`guest`).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Host() != `b` {
		t.Errorf(`expected last host, got %v`, cfg.Host())
	}
}

func TestConnectionConfig_URI(t *testing.T) {
	cfg := testConnectionConfig(t)

	uri := cfg.URI()
	if uri.Host != `localhost` || uri.Port != 5672 || uri.Vhost != `/` {
		t.Fail()
	}

	if uri.Scheme != `amqp` {
		t.Fail()
	}
}

func TestSourceBuilder_Queue_Source(t *testing.T) {
	cfg := testConnectionConfig(t)

	d, err := NewSourceBuilder().
		SetConnectionConfig(cfg).
		SetQueueName(`source_queue`).
		SetUsesCorrelationID(true).
		SetDeserializationSchema(kconnect.JSONSchema(`row<int,string>`)).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionSourceQueueName); v != `source_queue` {
		t.Errorf(`queueName: %v`, v)
	}

	if v, _ := d.GetBoolean(OptionUsesCorrelationID); !v {
		t.Error(`usesCorrelationId not set`)
	}

	if v, _ := d.GetString(OptionHost); v != `localhost` {
		t.Errorf(`host: %v`, v)
	}

	rebuilt, err := ConnectionConfigOf(d)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Host() != `localhost` || rebuilt.Port() != 5672 {
		t.Fail()
	}
}

func TestSinkBuilder_Queue_Sink(t *testing.T) {
	cfg := testConnectionConfig(t)

	d, err := NewSinkBuilder().
		SetConnectionConfig(cfg).
		SetQueueName(`sink_queue`).
		SetSerializationSchema(kconnect.JSONSchema(`row<int,string>`)).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := d.GetString(OptionSinkQueueName); v != `sink_queue` {
		t.Errorf(`queueName: %v`, v)
	}

	if d.Kind() != kconnect.KindSink || d.Connector() != `rabbitmq` {
		t.Fail()
	}
}

func TestSourceBuilder_Requires_Connection_Queue_And_Schema(t *testing.T) {
	_, err := NewSourceBuilder().Build()

	missing, ok := err.(config.MissingFieldError)
	if !ok {
		t.Fatalf(`expected MissingFieldError got %T`, err)
	}

	if len(missing.Fields) != 3 {
		t.Errorf(`expected queueName, connectionConfig and schema, got %v`, missing.Fields)
	}
}
