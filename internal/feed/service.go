// Package feed は投稿フィードのページ分割取得を提供する。
//
// フィードは状態を持たず、ページ番号さえあれば何度でも同じ位置から再取得できる。
// 並び順は常にcreated_at降順で、同時刻の投稿はID降順で安定させる。
package feed

import (
	"context"
	"fmt"

	"github.com/hitoshi/socialnet/internal/model"
	"github.com/hitoshi/socialnet/internal/repository"
)

// Service はフィード取得のサービス層。
type Service struct {
	postRepo repository.PostRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(postRepo repository.PostRepository) *Service {
	return &Service{postRepo: postRepo}
}

// GlobalFeed は全ユーザーの投稿を返す。viewerIDは匿名の場合は空文字列。
func (s *Service) GlobalFeed(ctx context.Context, viewerID string, page int) (*model.Page, error) {
	return s.paginate(ctx, model.PostFilter{}, viewerID, page)
}

// ProfileFeed は指定ユーザーの投稿のみを返す。
func (s *Service) ProfileFeed(ctx context.Context, authorID, viewerID string, page int) (*model.Page, error) {
	return s.paginate(ctx, model.PostFilter{AuthorID: authorID}, viewerID, page)
}

// FollowingFeed は閲覧者がフォローしているユーザーの投稿を返す。
// 閲覧者自身の投稿は含まない。匿名の場合はUNAUTHORIZEDを返す。
func (s *Service) FollowingFeed(ctx context.Context, viewerID string, page int) (*model.Page, error) {
	if viewerID == "" {
		return nil, model.NewUnauthorizedError()
	}
	return s.paginate(ctx, model.PostFilter{FollowedBy: viewerID}, viewerID, page)
}

// paginate は件数を数えてページ番号を補正し、該当ページの投稿を取得する。
func (s *Service) paginate(ctx context.Context, filter model.PostFilter, viewerID string, requested int) (*model.Page, error) {
	count, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("投稿数の取得に失敗しました: %w", err)
	}

	numPages := NumPages(count)
	number := ClampPage(requested, numPages)

	posts := []*model.Post{}
	if count > 0 {
		posts, err = s.postRepo.List(ctx, filter, viewerID, (number-1)*PageSize, PageSize)
		if err != nil {
			return nil, fmt.Errorf("投稿一覧の取得に失敗しました: %w", err)
		}
	}

	return &model.Page{
		Posts:    posts,
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  PageSize,
	}, nil
}
