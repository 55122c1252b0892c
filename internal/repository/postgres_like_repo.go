package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresLikeRepo はPostgreSQLを使用したいいねリポジトリ。
type PostgresLikeRepo struct {
	db *sql.DB
}

// NewPostgresLikeRepo はPostgresLikeRepoを生成する。
func NewPostgresLikeRepo(db *sql.DB) *PostgresLikeRepo {
	return &PostgresLikeRepo{db: db}
}

// Insert はいいねを作成する。既に存在する場合はErrDuplicateを返す。
func (r *PostgresLikeRepo) Insert(ctx context.Context, postID int64, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`,
		postID, userID,
	)
	if err != nil {
		return translatePQError(err, "failed to insert like")
	}
	return nil
}

// Delete はいいねを削除し、削除した行があればtrueを返す。
func (r *PostgresLikeRepo) Delete(ctx context.Context, postID int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// CountByPost は投稿のいいね数を返す。
func (r *PostgresLikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = $1`,
		postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ LikeRepository = (*PostgresLikeRepo)(nil)
