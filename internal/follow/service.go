// Package follow はユーザー間のフォロー関係のドメインロジックを提供する。
package follow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/socialnet/internal/metrics"
	"github.com/hitoshi/socialnet/internal/model"
	"github.com/hitoshi/socialnet/internal/repository"
)

// Service はフォロー関係のサービス層。
// 1回のトグルで行う書き込みはエッジ1行の挿入または削除のみ。
type Service struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	metrics    metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	collector metrics.MetricsCollector,
) *Service {
	if collector == nil {
		collector = metrics.Noop{}
	}
	return &Service{
		userRepo:   userRepo,
		followRepo: followRepo,
		metrics:    collector,
	}
}

// ToggleFollow はactorからtargetUsernameへのフォローを反転させる。
// エッジが存在すれば削除し、存在しなければ作成する。
// 戻り値は反転後の状態と、対象ユーザーの最新フォロワー数。
func (s *Service) ToggleFollow(ctx context.Context, actorID, targetUsername string) (*model.FollowResult, error) {
	if actorID == "" {
		return nil, model.NewUnauthorizedError()
	}

	target, err := s.userRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to find target user: %w", err)
	}
	if target == nil {
		return nil, model.NewUserNotFoundError(targetUsername)
	}
	if target.ID == actorID {
		return nil, model.NewSelfFollowForbiddenError()
	}

	following, err := s.flip(ctx, actorID, target.ID)
	if err != nil {
		return nil, err
	}

	count, err := s.followRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	s.metrics.RecordFollowToggle(following)
	slog.Info("follow toggled",
		slog.String("follower_id", actorID),
		slog.String("following_id", target.ID),
		slog.Bool("following", following),
	)

	return &model.FollowResult{Following: following, FollowersCount: count}, nil
}

// flip は削除を先に試み、削除対象がなければ挿入する。
// 並行トグルで挿入が一意制約に衝突した場合は、エッジが存在する状態として確定させる。
func (s *Service) flip(ctx context.Context, followerID, followingID string) (bool, error) {
	deleted, err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}
	if deleted {
		return false, nil
	}

	err = s.followRepo.Insert(ctx, followerID, followingID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrDuplicate):
		s.metrics.RecordToggleConflict(metrics.ConflictKindFollow)
		slog.Warn("follow toggle conflict resolved",
			slog.String("follower_id", followerID),
			slog.String("following_id", followingID),
		)
		return true, nil
	case errors.Is(err, repository.ErrCheckViolation):
		return false, model.NewSelfFollowForbiddenError()
	default:
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}
}

// IsFollowing はfollowerIDがfollowingIDをフォローしているかを返す。
// 匿名（followerIDが空）または本人同士の場合はfalse。
func (s *Service) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	if followerID == "" || followerID == followingID {
		return false, nil
	}
	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

// FollowersCount は指定ユーザーのフォロワー数を返す。
func (s *Service) FollowersCount(ctx context.Context, userID string) (int, error) {
	count, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// FollowingCount は指定ユーザーがフォローしている数を返す。
func (s *Service) FollowingCount(ctx context.Context, userID string) (int, error) {
	count, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}
