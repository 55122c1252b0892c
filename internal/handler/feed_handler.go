// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/socialnet/internal/feed"
	"github.com/hitoshi/socialnet/internal/middleware"
	"github.com/hitoshi/socialnet/internal/model"
)

// FeedServiceInterface はフィードハンドラーが必要とするサービスインターフェース。
type FeedServiceInterface interface {
	GlobalFeed(ctx context.Context, viewerID string, page int) (*model.Page, error)
	FollowingFeed(ctx context.Context, viewerID string, page int) (*model.Page, error)
}

// FeedHandler はフィード閲覧のHTTPハンドラー。
type FeedHandler struct {
	service FeedServiceInterface
}

// NewFeedHandler はFeedHandlerを生成する。
func NewFeedHandler(service FeedServiceInterface) *FeedHandler {
	return &FeedHandler{service: service}
}

// GlobalFeed は全投稿のフィードを返す。
// GET /?page=N
func (h *FeedHandler) GlobalFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerIDFromContext(r.Context())
	page := feed.ParsePageNumber(r.URL.Query().Get("page"))

	result, err := h.service.GlobalFeed(r.Context(), viewerID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(result))
}

// FollowingFeed は閲覧者がフォローしているユーザーの投稿フィードを返す。
// GET /following?page=N
func (h *FeedHandler) FollowingFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}
	page := feed.ParsePageNumber(r.URL.Query().Get("page"))

	result, err := h.service.FollowingFeed(r.Context(), viewerID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(result))
}
