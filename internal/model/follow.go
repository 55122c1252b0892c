package model

// FollowResult はフォロートグル後の状態を表す。
type FollowResult struct {
	Following      bool
	FollowersCount int
}
