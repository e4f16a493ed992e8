// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/game-stats/internal/envconfig"
)

// GetAPIConfig loads the stats-api configuration from the process
// environment.
//
// Returns an error wrapping an [*envconfig.DecodeError] if any DB_ or HTTP_
// variable is missing or cannot be converted. There is no partial result.
func GetAPIConfig() (*APIConfig, error) {
	return envconfig.Load[APIConfig]()
}

// GetSyncerConfig loads the conifer-syncer configuration from the process
// environment. See [GetAPIConfig] for the error contract.
func GetSyncerConfig() (*SyncerConfig, error) {
	return envconfig.Load[SyncerConfig]()
}

// GetClientConfig loads the statsctl configuration from the process
// environment. See [GetAPIConfig] for the error contract.
func GetClientConfig() (*ClientConfig, error) {
	return envconfig.Load[ClientConfig]()
}

// wrapLoadError tags a decode failure with [ErrLoadingConfig] and the program
// it belongs to.
func wrapLoadError(service string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLoadingConfig, service, err)
}
