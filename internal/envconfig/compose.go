// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

// Decoder is implemented by aggregate configurations that build themselves
// from an environment snapshot, typically by calling [Compose].
type Decoder interface {
	DecodePairs(pairs Pairs) error
}

// Binding ties a sub-configuration field of an aggregate to its prefix.
type Binding struct {
	Prefix string
	Target any
}

// Sub returns the Binding of target under prefix.
func Sub(prefix string, target any) Binding {
	return Binding{Prefix: prefix, Target: target}
}

// Compose binds every sub-configuration against the same pairs in the order
// given and returns the first failure.
//
// Targets of bindings that were decoded before the failure keep their
// values, so aggregates should compose into a temporary value and copy it
// into place only when Compose returns nil.
func Compose(pairs Pairs, bindings ...Binding) error {
	for _, b := range bindings {
		if err := Bind(b.Prefix, pairs, b.Target); err != nil {
			return err
		}
	}

	return nil
}

// Load snapshots the process environment and decodes T from it.
func Load[T any, PT interface {
	*T
	Decoder
}]() (*T, error) {
	return LoadPairs[T, PT](Environ())
}

// LoadPairs decodes T from the given snapshot. It returns nil and the
// decoder's error if any sub-configuration fails.
func LoadPairs[T any, PT interface {
	*T
	Decoder
}](pairs Pairs) (*T, error) {
	cfg := PT(new(T))
	if err := cfg.DecodePairs(pairs); err != nil {
		return nil, err
	}

	return (*T)(cfg), nil
}
