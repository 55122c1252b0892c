// Package user はユーザープロフィールの組み立てを提供する。
package user

import (
	"context"
	"fmt"

	"github.com/hitoshi/socialnet/internal/model"
	"github.com/hitoshi/socialnet/internal/repository"
)

// FollowQuerier はフォロー関係の参照インターフェース。
type FollowQuerier interface {
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	FollowersCount(ctx context.Context, userID string) (int, error)
	FollowingCount(ctx context.Context, userID string) (int, error)
}

// ProfileFeedProvider はプロフィールに表示する投稿ページの取得インターフェース。
type ProfileFeedProvider interface {
	ProfileFeed(ctx context.Context, authorID, viewerID string, page int) (*model.Page, error)
}

// Profile はプロフィール画面の表示内容を表す。
type Profile struct {
	User           *model.User
	IsOwnProfile   bool
	IsFollowing    bool
	FollowersCount int
	FollowingCount int
	Page           *model.Page
}

// Service はプロフィール表示のサービス層。
type Service struct {
	userRepo repository.UserRepository
	follows  FollowQuerier
	feed     ProfileFeedProvider
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	userRepo repository.UserRepository,
	follows FollowQuerier,
	feed ProfileFeedProvider,
) *Service {
	return &Service{
		userRepo: userRepo,
		follows:  follows,
		feed:     feed,
	}
}

// GetProfile はusernameのプロフィールを閲覧者視点で組み立てる。
// viewerIDは匿名の場合は空文字列。匿名または本人の場合IsFollowingは常にfalse。
func (s *Service) GetProfile(ctx context.Context, username, viewerID string, page int) (*Profile, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(username)
	}

	profile := &Profile{
		User:         user,
		IsOwnProfile: viewerID != "" && viewerID == user.ID,
	}

	if viewerID != "" && !profile.IsOwnProfile {
		profile.IsFollowing, err = s.follows.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("フォロー状態の取得に失敗しました: %w", err)
		}
	}

	profile.FollowersCount, err = s.follows.FollowersCount(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("フォロワー数の取得に失敗しました: %w", err)
	}
	profile.FollowingCount, err = s.follows.FollowingCount(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("フォロー数の取得に失敗しました: %w", err)
	}

	profile.Page, err = s.feed.ProfileFeed(ctx, user.ID, viewerID, page)
	if err != nil {
		return nil, fmt.Errorf("投稿一覧の取得に失敗しました: %w", err)
	}

	return profile, nil
}
