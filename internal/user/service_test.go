package user

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/socialnet/internal/model"
)

// --- モック ---

type mockUserRepo struct {
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, _ *model.User) error {
	return nil
}

type mockFollowQuerier struct {
	isFollowingFn    func(ctx context.Context, followerID, followingID string) (bool, error)
	followersCountFn func(ctx context.Context, userID string) (int, error)
	followingCountFn func(ctx context.Context, userID string) (int, error)
}

func (m *mockFollowQuerier) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	if m.isFollowingFn != nil {
		return m.isFollowingFn(ctx, followerID, followingID)
	}
	return false, nil
}

func (m *mockFollowQuerier) FollowersCount(ctx context.Context, userID string) (int, error) {
	if m.followersCountFn != nil {
		return m.followersCountFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFollowQuerier) FollowingCount(ctx context.Context, userID string) (int, error) {
	if m.followingCountFn != nil {
		return m.followingCountFn(ctx, userID)
	}
	return 0, nil
}

type mockFeedProvider struct {
	profileFeedFn func(ctx context.Context, authorID, viewerID string, page int) (*model.Page, error)
}

func (m *mockFeedProvider) ProfileFeed(ctx context.Context, authorID, viewerID string, page int) (*model.Page, error) {
	if m.profileFeedFn != nil {
		return m.profileFeedFn(ctx, authorID, viewerID, page)
	}
	return &model.Page{Number: 1, NumPages: 1, PerPage: 10}, nil
}

var alice = &model.User{ID: "id-alice", Username: "alice"}

func aliceRepo() *mockUserRepo {
	return &mockUserRepo{
		findByUsernameFn: func(_ context.Context, username string) (*model.User, error) {
			if username == "alice" {
				return alice, nil
			}
			return nil, nil
		},
	}
}

// --- テスト ---

func TestGetProfile_ViewedByFollower(t *testing.T) {
	var isFollowingArgs [2]string
	var feedArgs struct {
		author, viewer string
		page           int
	}

	follows := &mockFollowQuerier{
		isFollowingFn: func(_ context.Context, followerID, followingID string) (bool, error) {
			isFollowingArgs = [2]string{followerID, followingID}
			return true, nil
		},
		followersCountFn: func(_ context.Context, _ string) (int, error) { return 3, nil },
		followingCountFn: func(_ context.Context, _ string) (int, error) { return 5, nil },
	}
	feed := &mockFeedProvider{
		profileFeedFn: func(_ context.Context, authorID, viewerID string, page int) (*model.Page, error) {
			feedArgs.author, feedArgs.viewer, feedArgs.page = authorID, viewerID, page
			return &model.Page{Number: page, NumPages: 2, Count: 12, PerPage: 10}, nil
		},
	}
	svc := NewService(aliceRepo(), follows, feed)

	profile, err := svc.GetProfile(context.Background(), "alice", "id-bob", 2)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}

	if profile.User.ID != "id-alice" {
		t.Errorf("user = %q, want id-alice", profile.User.ID)
	}
	if profile.IsOwnProfile {
		t.Error("bob viewing alice is not own profile")
	}
	if !profile.IsFollowing {
		t.Error("expected IsFollowing = true")
	}
	if isFollowingArgs != [2]string{"id-bob", "id-alice"} {
		t.Errorf("IsFollowing args = %v", isFollowingArgs)
	}
	if profile.FollowersCount != 3 || profile.FollowingCount != 5 {
		t.Errorf("counts = %d/%d, want 3/5", profile.FollowersCount, profile.FollowingCount)
	}
	if feedArgs.author != "id-alice" || feedArgs.viewer != "id-bob" || feedArgs.page != 2 {
		t.Errorf("ProfileFeed args = %+v", feedArgs)
	}
	if profile.Page.Number != 2 {
		t.Errorf("page number = %d, want 2", profile.Page.Number)
	}
}

func TestGetProfile_OwnProfileAndAnonymous(t *testing.T) {
	tests := []struct {
		name    string
		viewer  string
		wantOwn bool
	}{
		{"本人", "id-alice", true},
		{"匿名", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follows := &mockFollowQuerier{
				isFollowingFn: func(_ context.Context, _, _ string) (bool, error) {
					t.Fatal("IsFollowing must not be queried")
					return false, nil
				},
			}
			svc := NewService(aliceRepo(), follows, &mockFeedProvider{})

			profile, err := svc.GetProfile(context.Background(), "alice", tt.viewer, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if profile.IsOwnProfile != tt.wantOwn {
				t.Errorf("IsOwnProfile = %v, want %v", profile.IsOwnProfile, tt.wantOwn)
			}
			if profile.IsFollowing {
				t.Error("IsFollowing must be false")
			}
		})
	}
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc := NewService(aliceRepo(), &mockFollowQuerier{}, &mockFeedProvider{})

	_, err := svc.GetProfile(context.Background(), "nobody", "", 1)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeUserNotFound {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestGetProfile_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		users   *mockUserRepo
		follows *mockFollowQuerier
		feed    *mockFeedProvider
	}{
		{
			name:    "ユーザー取得失敗",
			users:   &mockUserRepo{findByUsernameFn: func(context.Context, string) (*model.User, error) { return nil, boom }},
			follows: &mockFollowQuerier{},
			feed:    &mockFeedProvider{},
		},
		{
			name:    "フォロワー数取得失敗",
			users:   aliceRepo(),
			follows: &mockFollowQuerier{followersCountFn: func(context.Context, string) (int, error) { return 0, boom }},
			feed:    &mockFeedProvider{},
		},
		{
			name:    "フォロー数取得失敗",
			users:   aliceRepo(),
			follows: &mockFollowQuerier{followingCountFn: func(context.Context, string) (int, error) { return 0, boom }},
			feed:    &mockFeedProvider{},
		},
		{
			name:    "投稿一覧取得失敗",
			users:   aliceRepo(),
			follows: &mockFollowQuerier{},
			feed: &mockFeedProvider{profileFeedFn: func(context.Context, string, string, int) (*model.Page, error) {
				return nil, boom
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.users, tt.follows, tt.feed)
			_, err := svc.GetProfile(context.Background(), "alice", "id-bob", 1)
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped boom, got %v", err)
			}
		})
	}
}
