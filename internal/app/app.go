package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hitoshi/socialnet/internal/auth"
	"github.com/hitoshi/socialnet/internal/config"
	"github.com/hitoshi/socialnet/internal/database"
	"github.com/hitoshi/socialnet/internal/feed"
	"github.com/hitoshi/socialnet/internal/follow"
	"github.com/hitoshi/socialnet/internal/handler"
	"github.com/hitoshi/socialnet/internal/logger"
	"github.com/hitoshi/socialnet/internal/metrics"
	"github.com/hitoshi/socialnet/internal/post"
	"github.com/hitoshi/socialnet/internal/repository"
	"github.com/hitoshi/socialnet/internal/security"
	"github.com/hitoshi/socialnet/internal/user"
	"github.com/hitoshi/socialnet/internal/worker/cleanup"
)

// defaultPool は本番用のコネクションプール設定。
var defaultPool = database.PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    25,
	ConnMaxLifetime: 5 * time.Minute,
}

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, slog.LevelInfo)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 3. 設定されたログレベルで再初期化
	logger.SetupDefault(w, logger.ParseLevel(cfg.LogLevel))

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	case CommandCleanup:
		return runCleanup(ctx, cfg)
	default:
		return runServe(ctx, cfg)
	}
}

// openDatabase はDB接続を開き、到達できるまでリトライする。
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := database.Open(cfg.DatabaseURL, defaultPool)
	if err != nil {
		return nil, err
	}
	retry := database.DefaultRetryConfig()
	retry.Attempts = cfg.DBConnectAttempts
	if err := database.PingWithRetry(ctx, db, retry, slog.Default()); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("database connection established",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)
	return db, nil
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// ctxがキャンセルされるとグレースフルシャットダウンを行う。
func runServe(ctx context.Context, cfg *config.Config) error {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewHandler(cfg, db, registry, slog.Default()),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	return serve(ctx, server, listener, cfg.ShutdownTimeout)
}

// NewHandler はリポジトリ・サービス・ハンドラーを組み立て、ルーターを返す。
// registryにはアプリケーションのメトリクスが登録される。
func NewHandler(cfg *config.Config, db *sql.DB, registry *prometheus.Registry, log *slog.Logger) http.Handler {
	// 1. リポジトリの初期化
	userRepo := repository.NewPostgresUserRepo(db)
	sessionRepo := repository.NewPostgresSessionRepo(db)
	postRepo := repository.NewPostgresPostRepo(db)
	followRepo := repository.NewPostgresFollowRepo(db)
	likeRepo := repository.NewPostgresLikeRepo(db)

	// 2. メトリクス
	collector := metrics.NewCollector(registry)

	// 3. ドメインサービスの初期化
	authService := auth.NewService(
		userRepo, sessionRepo, security.NewBcryptHasher(cfg.BcryptCost),
		auth.ServiceConfig{SessionMaxAge: cfg.SessionMaxAge},
	)
	feedService := feed.NewService(postRepo)
	followService := follow.NewService(userRepo, followRepo, collector)
	postService := post.NewService(postRepo, likeRepo, collector)
	userService := user.NewService(userRepo, followService, feedService)

	// 4. ルーターの構築
	return handler.NewRouter(&handler.RouterDeps{
		Logger:            log,
		SessionFinder:     sessionRepo,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		MetricsRecorder:   collector,

		AuthService: authService,
		AuthConfig: handler.AuthHandlerConfig{
			CookieDomain:  cfg.CookieDomain,
			CookieSecure:  cfg.CookieSecure,
			SessionMaxAge: cfg.SessionMaxAge,
		},

		FeedService:    feedService,
		ProfileService: handler.NewProfileServiceAdapter(userService),

		PostService:   postService,
		FollowService: followService,

		HealthChecker:  db,
		MetricsHandler: metrics.Handler(registry),
	})
}

// serve はlistener上でHTTPサーバーを起動し、ctxがキャンセルされるまでブロックする。
// キャンセル後はshutdownTimeout以内に処理中のリクエストを完了させて終了する。
func serve(ctx context.Context, server *http.Server, listener net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server starting", slog.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server listen error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	version, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully", slog.Uint64("version", uint64(version)))
	return nil
}

// runCleanup は期限切れセッションを削除して終了する。
func runCleanup(ctx context.Context, cfg *config.Config) error {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	job := cleanup.NewSessionCleanupJob(db, slog.Default(), cfg.SessionRetentionDays)
	if _, err := job.Run(ctx); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	return checkHealth(fmt.Sprintf("http://localhost:%s/health", port))
}

func checkHealth(healthURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(healthURL)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLのパスワードをマスクする。
// URLとして解釈できない場合は全体を伏せる。
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Redacted()
}
