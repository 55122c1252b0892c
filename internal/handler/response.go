package handler

import "github.com/hitoshi/socialnet/internal/model"

// postResponse は投稿1件のJSON表現。
type postResponse struct {
	ID         int64  `json:"id"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	LikesCount int    `json:"likes_count"`
	Liked      bool   `json:"liked"`
}

// pageResponse はフィード1ページのJSON表現。
type pageResponse struct {
	Number      int            `json:"number"`
	NumPages    int            `json:"num_pages"`
	Count       int            `json:"count"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
	StartIndex  int            `json:"start_index"`
	EndIndex    int            `json:"end_index"`
	Posts       []postResponse `json:"posts"`
}

func toPostResponse(p *model.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		Author:     p.AuthorUsername,
		Content:    p.Content,
		Timestamp:  p.FormattedTimestamp(),
		LikesCount: p.LikesCount,
		Liked:      p.LikedByViewer,
	}
}

// toPageResponse はmodel.Pageをレスポンス型に変換する。投稿が0件でもpostsは空配列になる。
func toPageResponse(page *model.Page) pageResponse {
	posts := make([]postResponse, 0, len(page.Posts))
	for _, p := range page.Posts {
		posts = append(posts, toPostResponse(p))
	}
	return pageResponse{
		Number:      page.Number,
		NumPages:    page.NumPages,
		Count:       page.Count,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
		StartIndex:  page.StartIndex(),
		EndIndex:    page.EndIndex(),
		Posts:       posts,
	}
}

// profileResponse はプロフィール画面のJSON表現。
// メールアドレスとパスワードハッシュは公開しない。
type profileResponse struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	JoinedAt       string       `json:"joined_at"`
	IsOwnProfile   bool         `json:"is_own_profile"`
	IsFollowing    bool         `json:"is_following"`
	FollowersCount int          `json:"followers_count"`
	FollowingCount int          `json:"following_count"`
	Page           pageResponse `json:"page"`
}

// followResponse はフォロートグル結果のJSON表現。
type followResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
}

// likeResponse はいいねトグル結果のJSON表現。
type likeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// editResponse は投稿編集結果のJSON表現。
type editResponse struct {
	OK         bool   `json:"ok"`
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	LikesCount int    `json:"likes_count"`
	Timestamp  string `json:"timestamp"`
}
