package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hitoshi/socialnet/internal/model"
)

// PostgresPostRepo はPostgreSQLを使用した投稿リポジトリ。
type PostgresPostRepo struct {
	db *sql.DB
}

// NewPostgresPostRepo はPostgresPostRepoを生成する。
func NewPostgresPostRepo(db *sql.DB) *PostgresPostRepo {
	return &PostgresPostRepo{db: db}
}

// Create は投稿を作成し、採番されたIDと作成日時をpostに設定する。
func (r *PostgresPostRepo) Create(ctx context.Context, post *model.Post) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts (author_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		post.AuthorID, post.Content,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return translatePQError(err, "failed to insert post")
	}
	return nil
}

// FindByID は指定IDの投稿をいいね数付きで取得する。見つからない場合はnilを返す。
func (r *PostgresPostRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.author_id, u.username, p.content, p.created_at, p.updated_at,
		        (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id)
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = $1`,
		id,
	).Scan(
		&post.ID, &post.AuthorID, &post.AuthorUsername, &post.Content,
		&post.CreatedAt, &post.UpdatedAt, &post.LikesCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdateContent は投稿本文を更新する。created_atは変更しない。
func (r *PostgresPostRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET content = $2, updated_at = now() WHERE id = $1`,
		id, content,
	)
	if err != nil {
		return translatePQError(err, "failed to update post content")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("post not found: %d", id)
	}
	return nil
}

// Count はフィルタ条件に一致する投稿数を返す。
func (r *PostgresPostRepo) Count(ctx context.Context, filter model.PostFilter) (int, error) {
	where, args := buildPostWhere(filter, nil)

	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p`+where,
		args...,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// List はフィルタ条件に一致する投稿をcreated_at降順（同時刻はid降順）で返す。
// viewerIDが空でない場合は閲覧者のいいね状態を付与する。
func (r *PostgresPostRepo) List(ctx context.Context, filter model.PostFilter, viewerID string, offset, limit int) ([]*model.Post, error) {
	// $1 は閲覧者ID（匿名時はNULL）として予約する
	var viewer sql.NullString
	if viewerID != "" {
		viewer = sql.NullString{String: viewerID, Valid: true}
	}
	args := []any{viewer}

	where, args := buildPostWhere(filter, args)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT p.id, p.author_id, u.username, p.content, p.created_at, p.updated_at,
		        (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id),
		        EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1)
		 FROM posts p
		 JOIN users u ON u.id = p.author_id%s
		 ORDER BY p.created_at DESC, p.id DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0, limit)
	for rows.Next() {
		post := &model.Post{}
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.AuthorUsername, &post.Content,
			&post.CreatedAt, &post.UpdatedAt, &post.LikesCount, &post.LikedByViewer,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}
	return posts, nil
}

// buildPostWhere はPostFilterからWHERE句を構築する。
// プレースホルダ番号はargsの既存要素数に続けて採番する。
func buildPostWhere(filter model.PostFilter, args []any) (string, []any) {
	var conds []string

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		conds = append(conds, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if filter.FollowedBy != "" {
		args = append(args, filter.FollowedBy)
		conds = append(conds, fmt.Sprintf(
			"p.author_id IN (SELECT f.following_id FROM follows f WHERE f.follower_id = $%d)",
			len(args),
		))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\t\t WHERE " + strings.Join(conds, " AND "), args
}

// compile-time interface check
var _ PostRepository = (*PostgresPostRepo)(nil)
