package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/socialnet/internal/middleware"
	"github.com/hitoshi/socialnet/internal/model"
)

// maxEditBodyBytes は投稿編集リクエストボディの上限。
const maxEditBodyBytes = 1 << 20

// PostServiceInterface は投稿ハンドラーが必要とするサービスインターフェース。
type PostServiceInterface interface {
	CreatePost(ctx context.Context, authorID, content string) (*model.Post, error)
	CheckEditable(ctx context.Context, actorID string, postID int64) (*model.Post, error)
	EditPost(ctx context.Context, actorID string, postID int64, content string) (*model.Post, error)
	ToggleLike(ctx context.Context, actorID string, postID int64) (*model.LikeResult, error)
}

// PostHandler は投稿の作成・編集・いいねのHTTPハンドラー。
type PostHandler struct {
	service PostServiceInterface
}

// NewPostHandler はPostHandlerを生成する。
func NewPostHandler(service PostServiceInterface) *PostHandler {
	return &PostHandler{service: service}
}

// editPostRequest は投稿編集リクエストのボディ。
type editPostRequest struct {
	Content string `json:"content"`
}

// Create はフォーム送信された本文で投稿を作成し、トップへリダイレクトする。
// 本文が空の場合は何も作成せずにリダイレクトする。
// POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	_, err = h.service.CreatePost(r.Context(), userID, r.PostFormValue("content"))
	if err != nil {
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeEmptyContent {
			handleServiceError(w, err)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Edit は投稿本文を更新する。投稿者本人のみ実行できる。
// 存在確認と投稿者確認をボディの解釈より先に行う。
// POST /posts/{id}/edit
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	postID, ok := postIDFromURL(r)
	if !ok {
		writePostIDNotFound(w)
		return
	}

	if _, err := h.service.CheckEditable(r.Context(), userID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	var req editPostRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxEditBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("JSONの形式が不正です"))
		return
	}

	post, err := h.service.EditPost(r.Context(), userID, postID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, editResponse{
		OK:         true,
		ID:         post.ID,
		Content:    post.Content,
		LikesCount: post.LikesCount,
		Timestamp:  post.FormattedTimestamp(),
	})
}

// ToggleLike は投稿へのいいね状態を反転する。
// POST /posts/{id}/like
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	postID, ok := postIDFromURL(r)
	if !ok {
		writePostIDNotFound(w)
		return
	}

	result, err := h.service.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{
		Liked:      result.Liked,
		LikesCount: result.LikesCount,
	})
}

// postIDFromURL はURLパラメータ{id}を10進整数として解釈する。
func postIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// writePostIDNotFound は数値として解釈できない投稿IDに404を返す。
func writePostIDNotFound(w http.ResponseWriter) {
	writeAPIErrorResponse(w, http.StatusNotFound, &model.APIError{
		Code:     model.ErrCodePostNotFound,
		Message:  "指定された投稿が見つかりません。",
		Category: "post",
		Action:   "投稿IDを確認してください。",
	})
}
