package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"cutting_report/internal/models"
)

type Client struct {
	rdb *redis.Client
}

// AdminSession is the logged-in admin state behind a session token.
type AdminSession struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrNotFound = fmt.Errorf("not found")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Workbook row cache, keyed by source URL.

func (c *Client) SetRows(url string, rows []models.OrderRow, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	return c.rdb.Set(ctx, "rows:"+url, jsonData, ttl).Err()
}

func (c *Client) GetRows(url string) ([]models.OrderRow, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "rows:"+url).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cached rows: %w", err)
	}

	var rows []models.OrderRow
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached rows: %w", err)
	}

	return rows, nil
}

// FlushRows drops every cached workbook, so new links take effect at once.
func (c *Client) FlushRows() error {
	ctx := context.Background()
	iter := c.rdb.Scan(ctx, 0, "rows:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached rows: %w", err)
		}
	}
	return iter.Err()
}

// Admin session management

func (c *Client) SetAdminSession(token string, session *AdminSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetAdminSession(token string) (*AdminSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session AdminSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteAdminSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
