// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDatabase struct {
	Host         string `env:"HOST"`
	Port         Port   `env:"PORT"`
	DatabaseName string `env:"DATABASE_NAME"`
	User         string `env:"USER"`
	Password     string `env:"PASSWORD"`
}

type testHTTP struct {
	Host string `env:"HOST"`
	Port Port   `env:"PORT"`
}

type testWithDefaults struct {
	Endpoint string        `env:"ENDPOINT"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func databasePairs() Pairs {
	return FromMap(map[string]string{
		"DB_HOST":          "example.com",
		"DB_PORT":          "3307",
		"DB_DATABASE_NAME": "db",
		"DB_USER":          "bff",
		"DB_PASSWORD":      "$tr0ngpAssw0rd",
	})
}

func TestBindAs_DatabaseRecord(t *testing.T) {
	got, err := BindAs[testDatabase]("DB_", databasePairs())

	require.NoError(t, err)
	assert.Equal(t, testDatabase{
		Host:         "example.com",
		Port:         3307,
		DatabaseName: "db",
		User:         "bff",
		Password:     "$tr0ngpAssw0rd",
	}, got)
}

func TestBind_IgnoresUnknownKeys(t *testing.T) {
	pairs := append(databasePairs(),
		Pair{Key: "FOO_BAR", Value: "1"},
		Pair{Key: "DB_UNUSED", Value: "whatever"},
		Pair{Key: "HTTP_PORT", Value: "notanumber"},
	)

	got, err := BindAs[testDatabase]("DB_", pairs)

	require.NoError(t, err)
	assert.Equal(t, Port(3307), got.Port)
}

func TestBind_SelectorsMatchCaseInsensitively(t *testing.T) {
	pairs := Pairs{
		{Key: "HTTP_host", Value: "127.0.0.1"},
		{Key: "HTTP_Port", Value: "12345"},
	}

	got, err := BindAs[testHTTP]("HTTP_", pairs)

	require.NoError(t, err)
	assert.Equal(t, testHTTP{Host: "127.0.0.1", Port: 12345}, got)
}

func TestBind_PrefixIsCaseSensitive(t *testing.T) {
	pairs := Pairs{
		{Key: "http_HOST", Value: "127.0.0.1"},
		{Key: "http_PORT", Value: "12345"},
	}

	_, err := BindAs[testHTTP]("HTTP_", pairs)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Len(t, decodeErr.Fields, 2)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestBind_MissingField(t *testing.T) {
	var pairs Pairs
	for _, p := range databasePairs() {
		if p.Key != "DB_PASSWORD" {
			pairs = append(pairs, p)
		}
	}

	_, err := BindAs[testDatabase]("DB_", pairs)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrInvalidValue)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "DB_", decodeErr.Prefix)
	require.Len(t, decodeErr.Fields, 1)

	fe, ok := decodeErr.Field("password")
	require.True(t, ok)
	assert.Equal(t, CodeMissing, fe.Code)
	assert.Equal(t, "DB_PASSWORD", fe.Key)
	assert.Contains(t, err.Error(), "password: missing (DB_PASSWORD is not set)")
}

func TestBind_MissingMultiWordField(t *testing.T) {
	var pairs Pairs
	for _, p := range databasePairs() {
		if p.Key != "DB_DATABASE_NAME" {
			pairs = append(pairs, p)
		}
	}

	_, err := BindAs[testDatabase]("DB_", pairs)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	fe, ok := decodeErr.Field("database_name")
	require.True(t, ok)
	assert.Equal(t, "DB_DATABASE_NAME", fe.Key)
}

func TestBind_CoercionFailure(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr error
	}{
		{name: "non numeric", port: "notanumber", wantErr: ErrInvalidPort},
		{name: "exceeds 16 bit range", port: "99999999", wantErr: ErrPortOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := Pairs{
				{Key: "HTTP_HOST", Value: "127.0.0.1"},
				{Key: "HTTP_PORT", Value: tt.port},
			}

			_, err := BindAs[testHTTP]("HTTP_", pairs)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.ErrorIs(t, err, tt.wantErr)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			fe, ok := decodeErr.Field("port")
			require.True(t, ok)
			assert.Equal(t, CodeInvalidType, fe.Code)
			assert.Equal(t, "HTTP_PORT", fe.Key)
			assert.Equal(t, tt.port, fe.Value)
			assert.Equal(t, "envconfig.Port", fe.Type)
		})
	}
}

func TestBind_EmptyPortIsCoercionFailure(t *testing.T) {
	pairs := Pairs{
		{Key: "HTTP_HOST", Value: "h"},
		{Key: "HTTP_PORT", Value: ""},
	}

	got, err := BindAs[testHTTP]("HTTP_", pairs)

	require.Error(t, err)
	assert.Equal(t, testHTTP{}, got)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, ErrInvalidPort)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Len(t, decodeErr.Fields, 1)
	fe, ok := decodeErr.Field("port")
	require.True(t, ok)
	assert.Equal(t, CodeInvalidType, fe.Code)
	assert.Equal(t, "HTTP_PORT", fe.Key)
	assert.Empty(t, fe.Value)
	assert.Equal(t, "envconfig.Port", fe.Type)
}

func TestBind_EmptyPortKeepsDeclarationOrder(t *testing.T) {
	pairs := Pairs{
		{Key: "DB_HOST", Value: "example.com"},
		{Key: "DB_PORT", Value: ""},
		{Key: "DB_USER", Value: "bff"},
	}

	_, err := BindAs[testDatabase]("DB_", pairs)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	fields := make([]string, 0, len(decodeErr.Fields))
	for _, fe := range decodeErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"port", "database_name", "password"}, fields)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestBind_EmptyStringFieldIsAccepted(t *testing.T) {
	got, err := BindAs[testHTTP]("HTTP_", Pairs{
		{Key: "HTTP_HOST", Value: ""},
		{Key: "HTTP_PORT", Value: "8080"},
	})

	require.NoError(t, err)
	assert.Equal(t, testHTTP{Host: "", Port: 8080}, got)
}

func TestBind_ReportsAllFieldsOfOneRecord(t *testing.T) {
	pairs := Pairs{
		{Key: "DB_HOST", Value: "example.com"},
		{Key: "DB_PORT", Value: "abc"},
		{Key: "DB_USER", Value: "bff"},
	}

	_, err := BindAs[testDatabase]("DB_", pairs)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	fields := make([]string, 0, len(decodeErr.Fields))
	for _, fe := range decodeErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"port", "database_name", "password"}, fields)
	assert.True(t, strings.HasPrefix(err.Error(), `decode "DB_" config: 3 errors`))
}

func TestBind_DefaultsMakeFieldsOptional(t *testing.T) {
	got, err := BindAs[testWithDefaults]("GAME_", Pairs{{Key: "GAME_ENDPOINT", Value: "dns:///game:443"}})

	require.NoError(t, err)
	assert.Equal(t, "dns:///game:443", got.Endpoint)
	assert.Equal(t, 5*time.Second, got.Timeout)
}

func TestBind_DoesNotReadProcessEnvironment(t *testing.T) {
	t.Setenv("HOST", "from-process-env")
	t.Setenv("PORT", "1")

	_, err := BindAs[testHTTP]("HTTP_", Pairs{})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Len(t, decodeErr.Fields, 2)
}

func TestBind_InvalidTarget(t *testing.T) {
	var nilRecord *testHTTP
	targets := []any{testHTTP{}, nilRecord, new(int), nil}

	for _, target := range targets {
		err := Bind("HTTP_", Pairs{}, target)
		assert.True(t, errors.Is(err, ErrInvalidTarget), "target %T", target)
	}
}

func TestBind_IsPure(t *testing.T) {
	pairs := append(databasePairs(),
		Pair{Key: "HTTP_HOST", Value: "127.0.0.1"},
		Pair{Key: "HTTP_PORT", Value: "12345"},
	)
	before := append(Pairs(nil), pairs...)

	db1, err1 := BindAs[testDatabase]("DB_", pairs)
	http1, err2 := BindAs[testHTTP]("HTTP_", pairs)
	http2, err3 := BindAs[testHTTP]("HTTP_", pairs)
	db2, err4 := BindAs[testDatabase]("DB_", pairs)

	require.NoError(t, errors.Join(err1, err2, err3, err4))
	assert.Equal(t, db1, db2)
	assert.Equal(t, http1, http2)
	assert.Equal(t, before, pairs)
}
