/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package config provides typed connector configuration primitives. A Registry
// declares typed option keys (with optional defaults and deprecated aliases)
// and a Config is the immutable container a built descriptor reads from.
package config

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

type OptionType int

const (
	TypeString OptionType = iota
	TypeBoolean
	TypeLong
	TypeDuration
)

func (t OptionType) String() string {
	switch t {
	case TypeString:
		return `string`
	case TypeBoolean:
		return `boolean`
	case TypeLong:
		return `long`
	case TypeDuration:
		return `duration`
	}
	return fmt.Sprintf(`unknown(%d)`, int(t))
}

// Option is a declared configuration key. The type is fixed at declaration
// and the key is unique within its Registry.
type Option struct {
	key            string
	typ            OptionType
	def            interface{}
	deprecatedKeys []string
}

func (o *Option) Key() string {
	return o.key
}

func (o *Option) Type() OptionType {
	return o.typ
}

func (o *Option) HasDefault() bool {
	return o.def != nil
}

func (o *Option) Default() interface{} {
	return o.def
}

// DeprecatedKeys returns the aliases in declaration order.
func (o *Option) DeprecatedKeys() []string {
	keys := make([]string, len(o.deprecatedKeys))
	copy(keys, o.deprecatedKeys)
	return keys
}

func (o *Option) String() string {
	return fmt.Sprintf(`%s<%s>`, o.key, o.typ)
}

type DeclareOption func(*Option)

func WithDefault(def interface{}) DeclareOption {
	return func(o *Option) {
		o.def = def
	}
}

func WithDeprecatedKeys(keys ...string) DeclareOption {
	return func(o *Option) {
		o.deprecatedKeys = append(o.deprecatedKeys, keys...)
	}
}

// Registry is a process wide catalog of declared options. Declarations are
// expected at startup (typically connector package init). Reads are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	options map[string]*Option
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{options: make(map[string]*Option)}
}

// Declare registers a typed option key. Re-declaring an existing key with the
// same type returns the already declared Option, a different type fails with
// DuplicateKeyError.
func (r *Registry) Declare(key string, typ OptionType, opts ...DeclareOption) (*Option, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.options[key]; ok {
		if existing.typ != typ {
			return nil, DuplicateKeyError{Key: key, Declared: existing.typ, Requested: typ}
		}
		return existing, nil
	}

	option := &Option{key: key, typ: typ}
	for _, opt := range opts {
		opt(option)
	}

	if option.def != nil {
		def, err := Normalize(option, option.def)
		if err != nil {
			return nil, err
		}
		option.def = def
	}

	r.options[key] = option
	r.order = append(r.order, key)

	return option, nil
}

// MustDeclare panics on declaration failure. Meant for package level option
// variables initialized at startup.
func (r *Registry) MustDeclare(key string, typ OptionType, opts ...DeclareOption) *Option {
	option, err := r.Declare(key, typ, opts...)
	if err != nil {
		panic(fmt.Sprintf(`config: cannot declare option [%s], %s`, key, err))
	}
	return option
}

func (r *Registry) Resolve(key string) (*Option, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	option, ok := r.options[key]
	return option, ok
}

// Options returns all declared options in declaration order.
func (r *Registry) Options() []*Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	options := make([]*Option, 0, len(r.order))
	for _, key := range r.order {
		options = append(options, r.options[key])
	}
	return options
}

// Lookup resolves the value for option within values. The current key wins
// over deprecated aliases, aliases resolve in declaration order and the
// default applies only when nothing is set.
func (r *Registry) Lookup(values Values, option *Option) (interface{}, bool) {
	if v, ok := values[option.key]; ok {
		return v, true
	}

	for _, alias := range option.deprecatedKeys {
		if v, ok := values[alias]; ok {
			return v, true
		}
	}

	if option.def != nil {
		return option.def, true
	}

	return nil, false
}

// Values is the mutable draft state a builder accumulates before Build. Owned
// by exactly one in-progress builder, not safe for concurrent mutation.
type Values map[string]interface{}

func (v Values) Set(key string, value interface{}) {
	v[key] = value
}

func (v Values) Copy() Values {
	cp := make(Values, len(v))
	for k, val := range v {
		cp[k] = val
	}
	return cp
}

// Normalize coerces value into the canonical representation of the option's
// declared type (string, bool, int64 or time.Duration). String inputs are
// parsed, everything else must already carry a compatible type.
func Normalize(option *Option, value interface{}) (interface{}, error) {
	normalized, err := coerce(option.typ, value)
	if err != nil {
		return nil, InvalidTypeError{Key: option.key, Declared: option.typ, Value: value}
	}
	return normalized, nil
}

func coerce(typ OptionType, value interface{}) (interface{}, error) {
	switch typ {
	case TypeString:
		if s, ok := value.(string); ok {
			return s, nil
		}

	case TypeBoolean:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			if v == `true` {
				return true, nil
			}
			if v == `false` {
				return false, nil
			}
		}

	case TypeLong:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case string:
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				return parsed, nil
			}
		}

	case TypeDuration:
		switch v := value.(type) {
		case time.Duration:
			return v, nil
		case int64:
			// integral values are milliseconds
			return time.Duration(v) * time.Millisecond, nil
		case int:
			return time.Duration(v) * time.Millisecond, nil
		case string:
			if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
				return time.Duration(ms) * time.Millisecond, nil
			}
			if parsed, err := time.ParseDuration(v); err == nil {
				return parsed, nil
			}
		}
	}

	return nil, fmt.Errorf(`cannot represent %v as %s`, value, typ)
}
