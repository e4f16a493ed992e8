// Package config declares the configuration of the stats-api and
// conifer-syncer services and of the statsctl command.
//
// Each program has its own aggregate ([APIConfig], [SyncerConfig],
// [ClientConfig]). All are built once at startup from the process
// environment with the envconfig package: every sub-configuration is bound
// from the variables under its prefix (DB_, HTTP_, GAME_DATA_SERVER_,
// CONIFER_DB_, STATS_API_). Loading is all-or-nothing and the first failing
// sub-configuration aborts it.
//
// The main entry points are [GetAPIConfig], [GetSyncerConfig] and
// [GetClientConfig].
package config
