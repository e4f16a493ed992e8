// Package adapter is the HTTP client of the stats API.
//
// The adapter implements [service.StatisticsService] on top of a remote
// stats-api, so callers can use a local service and a remote one
// interchangeably.
package adapter
