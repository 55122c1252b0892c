package model

import "time"

// TimestampLayout はPostの日時をAPI応答に出力する際のレイアウト（分単位、タイムゾーン表記なし）。
const TimestampLayout = "2006-01-02 15:04"

// Post はユーザーが投稿した短いテキストを表す。
// CreatedAtは作成後に変更されない。Contentは投稿者本人のみ編集できる。
type Post struct {
	ID             int64
	AuthorID       string
	AuthorUsername string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// LikesCount はpost_likesの件数から導出される値。
	LikesCount int
	// LikedByViewer は閲覧者がいいね済みかどうか。匿名閲覧時は常にfalse。
	LikedByViewer bool
}

// FormattedTimestamp はCreatedAtをUTCでTimestampLayout形式に整形する。
func (p *Post) FormattedTimestamp() string {
	return p.CreatedAt.UTC().Format(TimestampLayout)
}

// PostFilter はフィード取得時の投稿絞り込み条件を表す。
// AuthorIDとFollowedByが両方空の場合は全投稿を対象とする。
type PostFilter struct {
	// AuthorID は指定ユーザーの投稿に限定する（プロフィールフィード）。
	AuthorID string
	// FollowedBy は指定ユーザーがフォローしているユーザーの投稿に限定する（フォロー中フィード）。
	FollowedBy string
}

// LikeResult はいいねトグル後の状態を表す。
type LikeResult struct {
	Liked      bool
	LikesCount int
}
