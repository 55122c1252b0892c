package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pinger はデータベースの疎通確認インターフェース。*sql.DBが実装する。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RetryConfig は起動時の接続リトライ設定。
type RetryConfig struct {
	Attempts       int           // 試行回数（1以下なら1回のみ）
	InitialBackoff time.Duration // 初回の待機時間
	MaxBackoff     time.Duration // 待機時間の上限
	PingTimeout    time.Duration // 1回あたりのPingタイムアウト
}

// DefaultRetryConfig はデフォルトのリトライ設定を返す。
// 初回500ms、2倍ずつ増加、最大8秒。
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:       5,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     8 * time.Second,
		PingTimeout:    5 * time.Second,
	}
}

// CalculateBackoff は失敗回数に基づいて指数バックオフ遅延を計算する。
func (c RetryConfig) CalculateBackoff(failures int) time.Duration {
	delay := c.InitialBackoff
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay > c.MaxBackoff {
			return c.MaxBackoff
		}
	}
	return delay
}

// PingWithRetry はデータベースに到達できるまで指数バックオフでPingを繰り返す。
// 全試行が失敗した場合、またはctxがキャンセルされた場合は最後のエラーを返す。
func PingWithRetry(ctx context.Context, db Pinger, cfg RetryConfig, logger *slog.Logger) error {
	attempts := max(cfg.Attempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		delay := cfg.CalculateBackoff(attempt)
		logger.Warn("database not reachable, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Duration("backoff", delay),
			slog.String("error", lastErr.Error()),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to database: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, lastErr)
}
