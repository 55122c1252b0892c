package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresFollowRepo はPostgreSQLを使用したフォローエッジリポジトリ。
type PostgresFollowRepo struct {
	db *sql.DB
}

// NewPostgresFollowRepo はPostgresFollowRepoを生成する。
func NewPostgresFollowRepo(db *sql.DB) *PostgresFollowRepo {
	return &PostgresFollowRepo{db: db}
}

// Insert はエッジを作成する。
// ON CONFLICTは使わず、一意制約違反をErrDuplicateとして呼び出し元に返す。
func (r *PostgresFollowRepo) Insert(ctx context.Context, followerID, followingID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`,
		followerID, followingID,
	)
	if err != nil {
		return translatePQError(err, "failed to insert follow")
	}
	return nil
}

// Delete はエッジを削除し、削除した行があればtrueを返す。
func (r *PostgresFollowRepo) Delete(ctx context.Context, followerID, followingID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// Exists はエッジが存在するかを返す。
func (r *PostgresFollowRepo) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

// CountFollowers は指定ユーザーのフォロワー数を返す。
func (r *PostgresFollowRepo) CountFollowers(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID)
}

// CountFollowing は指定ユーザーがフォローしている数を返す。
func (r *PostgresFollowRepo) CountFollowing(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID)
}

func (r *PostgresFollowRepo) count(ctx context.Context, query, userID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ FollowRepository = (*PostgresFollowRepo)(nil)
