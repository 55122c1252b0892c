package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/socialnet/internal/feed"
	"github.com/hitoshi/socialnet/internal/middleware"
	"github.com/hitoshi/socialnet/internal/model"
)

// ProfileServiceInterface はプロフィール表示に必要なサービスインターフェース。
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, username, viewerID string, page int) (*profileResponse, error)
}

// FollowServiceInterface はフォロートグルに必要なサービスインターフェース。
type FollowServiceInterface interface {
	ToggleFollow(ctx context.Context, actorID, targetUsername string) (*model.FollowResult, error)
}

// UserHandler はユーザープロフィールとフォロー操作のHTTPハンドラー。
type UserHandler struct {
	profiles ProfileServiceInterface
	follows  FollowServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(profiles ProfileServiceInterface, follows FollowServiceInterface) *UserHandler {
	return &UserHandler{
		profiles: profiles,
		follows:  follows,
	}
}

// Profile はユーザーのプロフィールと投稿ページを返す。
// GET /users/{username}?page=N
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	viewerID := middleware.ViewerIDFromContext(r.Context())
	page := feed.ParsePageNumber(r.URL.Query().Get("page"))

	profile, err := h.profiles.GetProfile(r.Context(), username, viewerID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ToggleFollow はフォロー状態を反転する。
// Accept: application/json の場合は結果をJSONで、それ以外はプロフィールへリダイレクトする。
// POST /users/{username}/follow
func (h *UserHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}
	username := chi.URLParam(r, "username")

	result, err := h.follows.ToggleFollow(r.Context(), userID, username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if middleware.WantsJSON(r) {
		writeJSON(w, http.StatusOK, followResponse{
			Following:      result.Following,
			FollowersCount: result.FollowersCount,
		})
		return
	}
	http.Redirect(w, r, "/users/"+url.PathEscape(username), http.StatusFound)
}
