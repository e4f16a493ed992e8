// Package gamedata is the gRPC client of the game data server.
//
// The server exposes player statistics through the
// gamedata.v1.GameDataService service. Messages are exchanged as JSON with a
// forced codec, so the client needs no generated stubs.
package gamedata
