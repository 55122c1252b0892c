package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hitoshi/socialnet/internal/auth"
	"github.com/hitoshi/socialnet/internal/middleware"
	"github.com/hitoshi/socialnet/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Register(ctx context.Context, in auth.RegisterInput) (*model.Session, error)
	Login(ctx context.Context, username, password string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieDomain  string
	CookieSecure  bool
	SessionMaxAge int // セッションCookieの有効期間（秒）
}

// AuthHandler は登録・ログイン・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
	}
}

// loginFormResponse はログインフォームが受け付ける項目を表す。
type loginFormResponse struct {
	Fields []string `json:"fields"`
	Next   string   `json:"next"`
}

// LoginForm はログインに必要な入力項目を返す。認証ガードのリダイレクト先。
// GET /login?next=/path
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, loginFormResponse{
		Fields: []string{"username", "password"},
		Next:   safeRedirectTarget(r.URL.Query().Get("next")),
	})
}

// Register はユーザーを登録し、そのままログイン状態にする。
// POST /register (form: username, email, password, confirmation)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Register(r.Context(), auth.RegisterInput{
		Username:     r.PostFormValue("username"),
		Email:        r.PostFormValue("email"),
		Password:     r.PostFormValue("password"),
		Confirmation: r.PostFormValue("confirmation"),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, session.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login はユーザー名とパスワードで認証し、セッションCookieを発行する。
// nextが同一オリジンのパスであればそこへ、それ以外はトップへリダイレクトする。
// POST /login (form: username, password, next)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, session.ID)
	http.Redirect(w, r, safeRedirectTarget(r.FormValue("next")), http.StatusFound)
}

// Logout はセッションを破棄する。
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if logoutErr := h.service.Logout(r.Context(), cookie.Value); logoutErr != nil {
			slog.Error("failed to logout", slog.String("error", logoutErr.Error()))
			// ログアウト失敗してもCookieはクリアする
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectTarget はnextがサイト内の絶対パスであればそのまま、それ以外は"/"を返す。
func safeRedirectTarget(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
