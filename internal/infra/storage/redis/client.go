// Package redis implements storage adapters on top of a Redis server.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client

	reportKey    string
	reportMaxLen int64
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Option configures the client.
type Option func(*client)

// WithReportStream sets the stream key transfer reports are appended to and
// its approximate maximum length.
// Default: "blocktransfer:transfers", 10000 entries.
func WithReportStream(key string, maxLen int64) Option {
	return func(c *client) {
		c.reportKey = key
		c.reportMaxLen = maxLen
	}
}

// NewClient connects to the Redis server at addr and checks it is reachable.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:         conn,
		reportKey:    "blocktransfer:transfers",
		reportMaxLen: 10000,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
