// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/socialnet/internal/model"
)

var (
	// ErrDuplicate は一意制約違反（同一ペアの重複挿入）を表す。
	// 並行したトグル操作の競合時に返る。
	ErrDuplicate = errors.New("duplicate key")

	// ErrCheckViolation はCHECK制約違反（自己フォロー等）を表す。
	ErrCheckViolation = errors.New("check constraint violation")
)

// UserRepository はユーザー（アイデンティティ）データの永続化インターフェース。
type UserRepository interface {
	// FindByUsername はユーザー名でユーザーを取得する。見つからない場合はnilを返す。
	// PasswordHashも含めて返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成する。ユーザー名が重複する場合はErrDuplicateを返す。
	Create(ctx context.Context, user *model.User) error
}

// SessionRepository はセッションデータの永続化インターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error
	// FindByID は指定IDのセッションを取得する。期限切れの場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// DeleteByID は指定IDのセッションを削除する。
	DeleteByID(ctx context.Context, id string) error
}

// PostRepository は投稿データの永続化インターフェース。
type PostRepository interface {
	// Create は投稿を作成し、採番されたIDと作成日時をpostに設定する。
	Create(ctx context.Context, post *model.Post) error

	// FindByID は指定IDの投稿をいいね数付きで取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	// UpdateContent は投稿本文を更新する。created_atは変更しない。
	UpdateContent(ctx context.Context, id int64, content string) error

	// Count はフィルタ条件に一致する投稿数を返す。
	Count(ctx context.Context, filter model.PostFilter) (int, error)

	// List はフィルタ条件に一致する投稿をcreated_at降順（同時刻はid降順）で返す。
	// viewerIDが空でない場合は閲覧者のいいね状態を付与する。
	List(ctx context.Context, filter model.PostFilter, viewerID string, offset, limit int) ([]*model.Post, error)
}

// FollowRepository はフォローエッジの永続化インターフェース。
// (follower_id, following_id) の一意性と自己フォロー禁止はストレージ層の制約で保証する。
type FollowRepository interface {
	// Insert はエッジを作成する。既に存在する場合はErrDuplicate、
	// 自己フォローの場合はErrCheckViolationを返す。
	Insert(ctx context.Context, followerID, followingID string) error

	// Delete はエッジを削除し、削除した行があればtrueを返す。
	Delete(ctx context.Context, followerID, followingID string) (bool, error)

	// Exists はエッジが存在するかを返す。
	Exists(ctx context.Context, followerID, followingID string) (bool, error)

	// CountFollowers は指定ユーザーのフォロワー数を返す。
	CountFollowers(ctx context.Context, userID string) (int, error)

	// CountFollowing は指定ユーザーがフォローしている数を返す。
	CountFollowing(ctx context.Context, userID string) (int, error)
}

// LikeRepository は投稿へのいいね（post_likes）の永続化インターフェース。
type LikeRepository interface {
	// Insert はいいねを作成する。既に存在する場合はErrDuplicateを返す。
	Insert(ctx context.Context, postID int64, userID string) error

	// Delete はいいねを削除し、削除した行があればtrueを返す。
	Delete(ctx context.Context, postID int64, userID string) (bool, error)

	// CountByPost は投稿のいいね数を返す。
	CountByPost(ctx context.Context, postID int64) (int, error)
}
