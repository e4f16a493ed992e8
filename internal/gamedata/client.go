package gamedata

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/game-stats/internal/config"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const defaultCallTimeout = 30 * time.Second

type grpcClient struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	logger *logger.Logger
}

// NewClient connects to the game data server named by cfg.GRPCEndpointURL.
//
// grpc.NewClient does not dial eagerly: an unreachable server surfaces as an
// error from the first call.
func NewClient(cfg config.GameDataServerConfig, logger *logger.Logger) (Client, error) {
	ep, err := parseEndpoint(cfg.GRPCEndpointURL)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("target", ep.target).
		Bool("tls", ep.secure).
		Msg("creating game data client")

	return newClient(ep.target, ep.creds, logger)
}

func newClient(target string, creds credentials.TransportCredentials, logger *logger.Logger, opts ...grpc.DialOption) (*grpcClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingClient, err)
	}

	return &grpcClient{
		conn:    conn,
		timeout: defaultCallTimeout,
		logger:  logger,
	}, nil
}

// ListPlayerStatistics implements [Client].
//
// A record with a nil UUID or an empty name fails the whole call with
// [ErrInvalidPlayerRecord].
func (c *grpcClient) ListPlayerStatistics(ctx context.Context) ([]models.PlayerStatistics, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp ListPlayerStatisticsResponse
	if err := c.conn.Invoke(ctx, listPlayerStatisticsMethod, &ListPlayerStatisticsRequest{}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchingStatistics, err)
	}

	if err := validateResponse(&resp); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("players", len(resp.Statistics)).Msg("player statistics received")

	return resp.Statistics, nil
}

// Close implements [Client].
func (c *grpcClient) Close() error {
	return c.conn.Close()
}
