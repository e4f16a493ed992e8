// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envconfig binds typed configuration records from a snapshot of
// the process environment.
//
// The environment is materialized once into [Pairs], an immutable slice that
// can be scanned any number of times. Each sub-configuration is decoded by
// [Bind]: pairs whose key starts with the sub-configuration prefix are kept,
// the prefix is stripped, and the remaining selector→value mapping is decoded
// into the record with github.com/caarlos0/env/v11. Records declare their
// selectors with `env` struct tags:
//
//	type HTTPConfig struct {
//	    Host string         `env:"HOST"`
//	    Port envconfig.Port `env:"PORT"`
//	}
//
//	cfg, err := envconfig.BindAs[HTTPConfig]("HTTP_", envconfig.Environ())
//
// Every field without an `envDefault` tag is required. Selectors that match no
// field are ignored. All field failures of one record are reported together in
// a single [*DecodeError].
//
// Aggregates that own several sub-configurations implement [Decoder] and use
// [Compose], which binds in declaration order and stops at the first failing
// sub-configuration. [Load] materializes the environment and decodes an
// aggregate in one call.
package envconfig
