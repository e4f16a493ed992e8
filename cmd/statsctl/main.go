// Command statsctl prints a player ranking served by a running stats-api.
//
//	STATS_API_URL=http://localhost:8080 statsctl play-ticks 10
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/game-stats/internal/adapter"
	"github.com/MKhiriev/game-stats/internal/config"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/models"
	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New(os.Stderr, "statsctl")
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	c := newCLI()
	kind, limit, err := c.parseArgs(os.Args[1:])
	if err != nil {
		c.app.FatalUsage("%s\n", err)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	stats, err := adapter.NewHTTPStatisticsAdapter(cfg.StatsAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stats api adapter")
	}

	rows, err := ranking(context.Background(), stats, kind, limit)
	if err != nil {
		log.Fatal().Err(err).Str("kind", string(kind)).Msg("error loading ranking")
	}

	if err = printRanking(os.Stdout, kind, rows); err != nil {
		log.Fatal().Err(err).Msg("error printing ranking")
	}
}

// cli holds the parsed command line.
type cli struct {
	app   *kingpin.Application
	kind  *string
	limit *string
}

func newCLI() *cli {
	app := kingpin.New("statsctl", "Print a player ranking served by stats-api. The API is located by STATS_API_URL.")
	return &cli{
		app:   app,
		kind:  app.Arg("kind", "Ranked counter: break-count, build-count, play-ticks or vote-count.").Required().String(),
		limit: app.Arg("limit", "Number of players to print.").Default(strconv.FormatUint(service.DefaultLimit, 10)).String(),
	}
}

func (c *cli) parseArgs(args []string) (models.StatisticKind, uint64, error) {
	if _, err := c.app.Parse(args); err != nil {
		return "", 0, err
	}

	kind, err := models.ParseStatisticKind(*c.kind)
	if err != nil {
		return "", 0, err
	}

	limit, err := strconv.ParseUint(*c.limit, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", service.ErrInvalidLimit, *c.limit)
	}
	if err = service.ValidateLimit(limit); err != nil {
		return "", 0, err
	}

	return kind, limit, nil
}

// ranking flattens a typed ranking into generic rows.
func ranking(ctx context.Context, svc service.StatisticsService, kind models.StatisticKind, limit uint64) ([]models.PlayerCount, error) {
	var rows []models.PlayerCount

	switch kind {
	case models.BreakCount:
		r, err := svc.TopBreakCount(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range r {
			rows = append(rows, models.PlayerCount{Player: p.Player, Count: p.BreakCount})
		}
	case models.BuildCount:
		r, err := svc.TopBuildCount(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range r {
			rows = append(rows, models.PlayerCount{Player: p.Player, Count: p.BuildCount})
		}
	case models.PlayTicks:
		r, err := svc.TopPlayTicks(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range r {
			rows = append(rows, models.PlayerCount{Player: p.Player, Count: p.PlayTicks})
		}
	case models.VoteCount:
		r, err := svc.TopVoteCount(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range r {
			rows = append(rows, models.PlayerCount{Player: p.Player, Count: p.VoteCount})
		}
	}

	return rows, nil
}

func printRanking(w io.Writer, kind models.StatisticKind, rows []models.PlayerCount) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tNAME\tUUID\t%s\n", kind)
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, row.Player.Name, row.Player.UUID, row.Count)
	}
	return tw.Flush()
}
