// Package post は投稿の作成、編集、いいねのドメインロジックを提供する。
package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/socialnet/internal/metrics"
	"github.com/hitoshi/socialnet/internal/model"
	"github.com/hitoshi/socialnet/internal/repository"
)

// Service は投稿のサービス層。
type Service struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	metrics  metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	collector metrics.MetricsCollector,
) *Service {
	if collector == nil {
		collector = metrics.Noop{}
	}
	return &Service{
		postRepo: postRepo,
		likeRepo: likeRepo,
		metrics:  collector,
	}
}

// normalizeContent は前後の空白だけを取り除く。本文は投稿されたテキストのまま保存し、
// エスケープは出力側のJSONエンコードに任せる。
func normalizeContent(raw string) string {
	return strings.TrimSpace(raw)
}

// CreatePost は投稿を作成する。
// 本文が空白のみであればEMPTY_CONTENTを返し、何も保存しない。
func (s *Service) CreatePost(ctx context.Context, authorID, content string) (*model.Post, error) {
	if authorID == "" {
		return nil, model.NewUnauthorizedError()
	}

	clean := normalizeContent(content)
	if clean == "" {
		return nil, model.NewEmptyContentError()
	}

	post := &model.Post{
		AuthorID: authorID,
		Content:  clean,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.metrics.RecordPostCreated()
	slog.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.String("author_id", authorID),
	)
	return post, nil
}

// CheckEditable はactorが投稿を編集できるかを判定し、対象の投稿を返す。
// 存在しなければPOST_NOT_FOUND、投稿者でなければNOT_POST_AUTHORを返す。
func (s *Service) CheckEditable(ctx context.Context, actorID string, postID int64) (*model.Post, error) {
	if actorID == "" {
		return nil, model.NewUnauthorizedError()
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}
	if post.AuthorID != actorID {
		return nil, model.NewNotPostAuthorError()
	}
	return post, nil
}

// EditPost は投稿本文を更新する。
// 存在確認、投稿者確認、本文検証の順に判定し、失敗時は何も変更しない。
// created_atは保持される。
func (s *Service) EditPost(ctx context.Context, actorID string, postID int64, content string) (*model.Post, error) {
	post, err := s.CheckEditable(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	clean := normalizeContent(content)
	if clean == "" {
		return nil, model.NewEmptyContentError()
	}

	if err := s.postRepo.UpdateContent(ctx, postID, clean); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	post.Content = clean

	s.metrics.RecordPostEdited()
	slog.Info("post edited", slog.Int64("post_id", postID))
	return post, nil
}

// ToggleLike はactorの投稿へのいいねを反転させる。
// 投稿者本人のいいねも許可する。戻り値は反転後の状態と最新のいいね数。
func (s *Service) ToggleLike(ctx context.Context, actorID string, postID int64) (*model.LikeResult, error) {
	if actorID == "" {
		return nil, model.NewUnauthorizedError()
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if post == nil {
		return nil, model.NewPostNotFoundError(postID)
	}

	liked, err := s.flip(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	s.metrics.RecordLikeToggle(liked)
	return &model.LikeResult{Liked: liked, LikesCount: count}, nil
}

// flip は削除を先に試み、削除対象がなければ挿入する。
// 挿入が一意制約に衝突した場合は、いいね済みの状態として確定させる。
func (s *Service) flip(ctx context.Context, postID int64, userID string) (bool, error) {
	deleted, err := s.likeRepo.Delete(ctx, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	if deleted {
		return false, nil
	}

	err = s.likeRepo.Insert(ctx, postID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrDuplicate) {
		s.metrics.RecordToggleConflict(metrics.ConflictKindLike)
		slog.Warn("like toggle conflict resolved",
			slog.Int64("post_id", postID),
			slog.String("user_id", userID),
		)
		return true, nil
	}
	return false, fmt.Errorf("failed to insert like: %w", err)
}
