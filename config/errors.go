package config

import (
	"fmt"
	"strings"
)

// DuplicateKeyError is returned when an option key is re-declared with a
// different type.
type DuplicateKeyError struct {
	Key       string
	Declared  OptionType
	Requested OptionType
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf(`option [%s] already declared as %s, cannot re-declare as %s`,
		e.Key, e.Declared, e.Requested)
}

// MissingFieldError lists every required field left unset at build time.
type MissingFieldError struct {
	Fields []string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf(`required fields [%s] are not set`, strings.Join(e.Fields, `, `))
}

// InvalidTypeError is returned when a supplied value cannot represent the
// option's declared type.
type InvalidTypeError struct {
	Key      string
	Declared OptionType
	Value    interface{}
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf(`option [%s] declared as %s, cannot accept value [%v]`,
		e.Key, e.Declared, e.Value)
}

// TypeMismatchError is returned when a typed accessor does not match the
// option's declared type.
type TypeMismatchError struct {
	Key       string
	Declared  OptionType
	Requested OptionType
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf(`option [%s] declared as %s, accessed as %s`,
		e.Key, e.Declared, e.Requested)
}

// NotFoundError is returned when a defaultless option is absent.
type NotFoundError struct {
	Key string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf(`option [%s] is not set and has no default`, e.Key)
}

// ConflictingConfigurationError is returned when two mutually exclusive
// options are both set.
type ConflictingConfigurationError struct {
	First  string
	Second string
}

func (e ConflictingConfigurationError) Error() string {
	return fmt.Sprintf(`[%s] and [%s] are mutually exclusive`, e.First, e.Second)
}

// IllegalStateError is returned when a builder is used after Build.
type IllegalStateError struct {
	Op string
}

func (e IllegalStateError) Error() string {
	return fmt.Sprintf(`builder already built, cannot %s`, e.Op)
}
