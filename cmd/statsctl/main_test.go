package main

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantKind  models.StatisticKind
		wantLimit uint64
		wantErr   error
	}{
		{name: "kind only", args: []string{"play-ticks"}, wantKind: models.PlayTicks, wantLimit: service.DefaultLimit},
		{name: "kind and limit", args: []string{"vote-count", "25"}, wantKind: models.VoteCount, wantLimit: 25},
		{name: "unknown kind", args: []string{"jumps"}, wantErr: models.ErrUnknownStatisticKind},
		{name: "bad limit", args: []string{"break-count", "lots"}, wantErr: service.ErrInvalidLimit},
		{name: "limit too large", args: []string{"break-count", "5000"}, wantErr: service.ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, limit, err := newCLI().parseArgs(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseArgs_WrongArity(t *testing.T) {
	_, _, err := newCLI().parseArgs(nil)
	assert.Error(t, err)

	_, _, err = newCLI().parseArgs([]string{"play-ticks", "10", "extra"})
	assert.Error(t, err)
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.PlayerCount{{
		Player: models.Player{UUID: uuid.MustParse("0b9f8f0c-2b8a-4a43-9a3e-4c9bfb1d0a01"), Name: "alice"},
		Count:  42,
	}}

	require.NoError(t, printRanking(&buf, models.VoteCount, rows))

	assert.Contains(t, buf.String(), "vote-count")
	assert.Contains(t, buf.String(), "alice")
	assert.Contains(t, buf.String(), "0b9f8f0c-2b8a-4a43-9a3e-4c9bfb1d0a01")
	assert.Contains(t, buf.String(), "42")
}
