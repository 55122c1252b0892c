package repository

import (
	"strings"
	"testing"

	"github.com/hitoshi/socialnet/internal/model"
)

// 各Postgresリポジトリがインターフェースを満たすことを検証
func TestPostgresRepos_ImplementInterfaces(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
	var _ SessionRepository = (*PostgresSessionRepo)(nil)
	var _ PostRepository = (*PostgresPostRepo)(nil)
	var _ FollowRepository = (*PostgresFollowRepo)(nil)
	var _ LikeRepository = (*PostgresLikeRepo)(nil)
}

func TestNewPostgresRepos_Initialize(t *testing.T) {
	if NewPostgresUserRepo(nil) == nil {
		t.Error("expected non-nil user repo")
	}
	if NewPostgresSessionRepo(nil) == nil {
		t.Error("expected non-nil session repo")
	}
	if NewPostgresPostRepo(nil) == nil {
		t.Error("expected non-nil post repo")
	}
	if NewPostgresFollowRepo(nil) == nil {
		t.Error("expected non-nil follow repo")
	}
	if NewPostgresLikeRepo(nil) == nil {
		t.Error("expected non-nil like repo")
	}
}

func TestBuildPostWhere(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.PostFilter
		initial   []any
		wantWhere []string
		wantArgs  int
	}{
		{
			name:     "フィルタなしはWHERE句を生成しない",
			filter:   model.PostFilter{},
			wantArgs: 0,
		},
		{
			name:      "投稿者フィルタ",
			filter:    model.PostFilter{AuthorID: "u1"},
			wantWhere: []string{"p.author_id = $1"},
			wantArgs:  1,
		},
		{
			name:      "フォロー中フィルタは既存の引数に続けて採番する",
			filter:    model.PostFilter{FollowedBy: "viewer"},
			initial:   []any{"viewer"},
			wantWhere: []string{"f.follower_id = $2"},
			wantArgs:  2,
		},
		{
			name:      "両方指定時はANDで結合する",
			filter:    model.PostFilter{AuthorID: "u1", FollowedBy: "u2"},
			wantWhere: []string{"p.author_id = $1", "f.follower_id = $2", " AND "},
			wantArgs:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildPostWhere(tt.filter, tt.initial)

			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
			if len(tt.wantWhere) == 0 && where != "" {
				t.Errorf("expected empty where, got %q", where)
			}
			for _, frag := range tt.wantWhere {
				if !strings.Contains(where, frag) {
					t.Errorf("where %q does not contain %q", where, frag)
				}
			}
		})
	}
}
