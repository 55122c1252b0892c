package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/hitoshi/socialnet/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	SessionFinder     middleware.SessionFinder
	CORSAllowedOrigin string
	MetricsRecorder   middleware.HTTPMetricsRecorder

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// フィード・プロフィール
	FeedService    FeedServiceInterface
	ProfileService ProfileServiceInterface

	// 書き込み操作
	PostService   PostServiceInterface
	FollowService FollowServiceInterface

	// 運用
	HealthChecker  Pinger
	MetricsHandler http.Handler
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → RequestID → Session → Logging → Metrics → SecurityHeaders → CORS
//
// 認証必須のルートはグループ内でRequireAuthを追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(chimw.RequestID)
	r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
	r.Use(middleware.NewLoggingMiddleware(logger))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	feedHandler := NewFeedHandler(deps.FeedService)
	userHandler := NewUserHandler(deps.ProfileService, deps.FollowService)
	postHandler := NewPostHandler(deps.PostService)

	// --- 運用エンドポイント ---
	if deps.HealthChecker != nil {
		r.Get("/health", NewHealthHandler(deps.HealthChecker).Health)
	}
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- 認証 ---
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Post("/register", authHandler.Register)

	// --- 匿名でも閲覧できるルート ---
	r.Get("/", feedHandler.GlobalFeed)
	r.Get("/users/{username}", userHandler.Profile)

	// --- 認証が必要なルート ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRequireAuthMiddleware())

		r.Get("/following", feedHandler.FollowingFeed)
		r.Post("/users/{username}/follow", userHandler.ToggleFollow)

		r.Post("/posts", postHandler.Create)
		r.Route("/posts/{id}", func(r chi.Router) {
			r.Post("/edit", postHandler.Edit)
			r.Post("/like", postHandler.ToggleLike)
		})
	})

	return r
}
