// Package http implements the HTTP transport of the stats API.
//
// It exposes player rankings read from the source database and a health
// endpoint. Request tracing, access logging and response compression are
// handled by middleware before requests reach the statistics service.
package http
