/**
 * Copyright 2021 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

// Package sequence builds descriptors for the bounded number sequence source,
// mostly useful in tests and examples.
package sequence

import (
	"github.com/tryfix/kconnect/config"
	"github.com/tryfix/kconnect/kconnect"
)

var registry = config.NewRegistry()

var (
	OptionFrom = registry.MustDeclare(`sequence.from`, config.TypeLong)
	OptionTo   = registry.MustDeclare(`sequence.to`, config.TypeLong)
)

// Registry exposes the sequence option catalog.
func Registry() *config.Registry {
	return registry
}

// NumberSequenceSource emits the numbers from through to inclusive and ends.
// The descriptor is always bounded.
func NumberSequenceSource(from, to int64, options ...kconnect.BuilderOption) (*kconnect.Descriptor, error) {
	engine := kconnect.NewBuilder(kconnect.KindSource, `sequence`, registry, options...)

	return engine.
		Set(OptionFrom, from).
		Set(OptionTo, to).
		Require(OptionFrom, OptionTo).
		Check(func(d *kconnect.Descriptor) error {
			if from > to {
				return config.ConflictingConfigurationError{
					First:  OptionFrom.Key(),
					Second: OptionTo.Key(),
				}
			}
			return nil
		}).
		Attach(kconnect.WithBoundedness(kconnect.Bounded)).
		Build()
}
