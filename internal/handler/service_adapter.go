package handler

import (
	"context"

	"github.com/hitoshi/socialnet/internal/model"
	"github.com/hitoshi/socialnet/internal/user"
)

// ProfileServiceAdapter は user.Service を ProfileServiceInterface に適合させるアダプタ。
type ProfileServiceAdapter struct {
	svc *user.Service
}

// NewProfileServiceAdapter はProfileServiceAdapterを生成する。
func NewProfileServiceAdapter(svc *user.Service) *ProfileServiceAdapter {
	return &ProfileServiceAdapter{svc: svc}
}

// GetProfile はプロフィールをhandlerレスポンス型で返す。
func (a *ProfileServiceAdapter) GetProfile(ctx context.Context, username, viewerID string, page int) (*profileResponse, error) {
	profile, err := a.svc.GetProfile(ctx, username, viewerID, page)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(profile)
	return &resp, nil
}

// toProfileResponse はuser.Profileをレスポンス型に変換する。
func toProfileResponse(p *user.Profile) profileResponse {
	return profileResponse{
		ID:             p.User.ID,
		Username:       p.User.Username,
		JoinedAt:       p.User.CreatedAt.UTC().Format(model.TimestampLayout),
		IsOwnProfile:   p.IsOwnProfile,
		IsFollowing:    p.IsFollowing,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		Page:           toPageResponse(p.Page),
	}
}

// compile-time interface check
var _ ProfileServiceInterface = (*ProfileServiceAdapter)(nil)
