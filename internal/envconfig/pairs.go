// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"os"
	"sort"
	"strings"
)

// Pair is a single KEY=value entry of the environment.
type Pair struct {
	Key   string
	Value string
}

// Pairs is a point-in-time snapshot of the environment.
//
// It is a plain slice so every sub-configuration can scan it independently;
// nothing in this package modifies a Pairs value after it is built.
type Pairs []Pair

// Environ snapshots the process environment.
// Later changes to the environment are not observed by the returned value.
func Environ() Pairs {
	return FromEnviron(os.Environ())
}

// FromEnviron builds Pairs from "KEY=value" strings as returned by
// [os.Environ]. The value is everything after the first '='. Entries without
// '=' and entries with an empty key are skipped.
func FromEnviron(environ []string) Pairs {
	pairs := make(Pairs, 0, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs
}

// FromMap builds Pairs from a map. The result is sorted by key so that two
// snapshots of the same map are identical.
func FromMap(m map[string]string) Pairs {
	pairs := make(Pairs, 0, len(m))
	for key, value := range m {
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})

	return pairs
}

// Scope returns the selector→value mapping for the given prefix.
//
// Only keys starting with prefix (case-sensitive) are kept. The prefix is
// stripped and the remaining selector is upper-cased, so "DB_HOST" under
// prefix "DB_" yields selector "HOST". Keys equal to the prefix are dropped.
// If a selector occurs twice the later pair wins.
//
// The returned map is never nil.
func (p Pairs) Scope(prefix string) map[string]string {
	selectors := make(map[string]string)
	for _, pair := range p {
		selector, ok := strings.CutPrefix(pair.Key, prefix)
		if !ok || selector == "" {
			continue
		}
		selectors[strings.ToUpper(selector)] = pair.Value
	}

	return selectors
}

// Lookup returns the value of the last pair with the given key.
func (p Pairs) Lookup(key string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}

	return "", false
}
