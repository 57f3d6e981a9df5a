package config

import (
	"sort"
	"time"
)

// Config is the immutable, resolved option container a descriptor reads from.
// Values are keyed by the canonical option key, already normalized to the
// declared type. Safe for concurrent use.
type Config struct {
	values map[string]interface{}
}

// NewConfig copies values into an immutable container.
func NewConfig(values Values) *Config {
	return &Config{values: values.Copy()}
}

func (c *Config) Has(option *Option) bool {
	if _, ok := c.values[option.key]; ok {
		return true
	}
	return option.def != nil
}

// Keys returns the canonical keys with a value set, sorted.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) GetString(option *Option) (string, error) {
	v, err := c.get(option, TypeString)
	if err != nil {
		return ``, err
	}
	return v.(string), nil
}

func (c *Config) GetBoolean(option *Option) (bool, error) {
	v, err := c.get(option, TypeBoolean)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (c *Config) GetLong(option *Option) (int64, error) {
	v, err := c.get(option, TypeLong)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (c *Config) GetDuration(option *Option) (time.Duration, error) {
	v, err := c.get(option, TypeDuration)
	if err != nil {
		return 0, err
	}
	return v.(time.Duration), nil
}

func (c *Config) get(option *Option, requested OptionType) (interface{}, error) {
	if option.typ != requested {
		return nil, TypeMismatchError{Key: option.key, Declared: option.typ, Requested: requested}
	}

	if v, ok := c.values[option.key]; ok {
		return v, nil
	}

	if option.def != nil {
		return option.def, nil
	}

	return nil, NotFoundError{Key: option.key}
}
