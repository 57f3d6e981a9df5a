/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package rabbitmq builds source and sink descriptors for the RabbitMQ
// connector.
package rabbitmq

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tryfix/kconnect/config"
)

// ConnectionConfig is the immutable endpoint and credential descriptor for a
// RabbitMQ broker.
type ConnectionConfig struct {
	host                    string
	port                    int
	virtualHost             string
	userName                string
	password                string
	networkRecoveryInterval time.Duration
	prefetchCount           int
	connectionTimeout       time.Duration
}

func (c *ConnectionConfig) Host() string {
	return c.host
}

func (c *ConnectionConfig) Port() int {
	return c.port
}

func (c *ConnectionConfig) VirtualHost() string {
	return c.virtualHost
}

func (c *ConnectionConfig) UserName() string {
	return c.userName
}

func (c *ConnectionConfig) Password() string {
	return c.password
}

func (c *ConnectionConfig) NetworkRecoveryInterval() time.Duration {
	return c.networkRecoveryInterval
}

func (c *ConnectionConfig) PrefetchCount() int {
	return c.prefetchCount
}

func (c *ConnectionConfig) ConnectionTimeout() time.Duration {
	return c.connectionTimeout
}

// URI renders the broker endpoint in the client library's native form.
func (c *ConnectionConfig) URI() amqp.URI {
	return amqp.URI{
		Scheme:   `amqp`,
		Host:     c.host,
		Port:     c.port,
		Username: c.userName,
		Password: c.password,
		Vhost:    c.virtualHost,
	}
}

func (c *ConnectionConfig) URIString() string {
	return c.URI().String()
}

// ConnectionConfigBuilder builds a ConnectionConfig. Setters chain and are
// idempotent, required fields are checked on Build.
type ConnectionConfigBuilder struct {
	cfg ConnectionConfig
}

func NewConnectionConfigBuilder() *ConnectionConfigBuilder {
	return &ConnectionConfigBuilder{
		cfg: ConnectionConfig{
			virtualHost:             `/`,
			networkRecoveryInterval: 5 * time.Second,
			connectionTimeout:       30 * time.Second,
		},
	}
}

func (b *ConnectionConfigBuilder) SetHost(host string) *ConnectionConfigBuilder {
	b.cfg.host = host
	return b
}

func (b *ConnectionConfigBuilder) SetPort(port int) *ConnectionConfigBuilder {
	b.cfg.port = port
	return b
}

func (b *ConnectionConfigBuilder) SetVirtualHost(virtualHost string) *ConnectionConfigBuilder {
	b.cfg.virtualHost = virtualHost
	return b
}

func (b *ConnectionConfigBuilder) SetUserName(userName string) *ConnectionConfigBuilder {
	b.cfg.userName = userName
	return b
}

func (b *ConnectionConfigBuilder) SetPassword(password string) *ConnectionConfigBuilder {
	b.cfg.password = password
	return b
}

func (b *ConnectionConfigBuilder) SetNetworkRecoveryInterval(interval time.Duration) *ConnectionConfigBuilder {
	b.cfg.networkRecoveryInterval = interval
	return b
}

func (b *ConnectionConfigBuilder) SetPrefetchCount(count int) *ConnectionConfigBuilder {
	b.cfg.prefetchCount = count
	return b
}

func (b *ConnectionConfigBuilder) SetConnectionTimeout(timeout time.Duration) *ConnectionConfigBuilder {
	b.cfg.connectionTimeout = timeout
	return b
}

// Build fails with MissingFieldError listing every unset mandatory field.
func (b *ConnectionConfigBuilder) Build() (*ConnectionConfig, error) {
	var missing []string

	if b.cfg.host == `` {
		missing = append(missing, `host`)
	}
	if b.cfg.port == 0 {
		missing = append(missing, `port`)
	}
	if b.cfg.userName == `` {
		missing = append(missing, `userName`)
	}
	if b.cfg.password == `` {
		missing = append(missing, `password`)
	}

	if len(missing) > 0 {
		return nil, config.MissingFieldError{Fields: missing}
	}

	cfg := b.cfg
	return &cfg, nil
}
