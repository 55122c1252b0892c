// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザー（アイデンティティ）を表す。
// 登録後に削除されることはない。
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcryptハッシュ。API応答には含めない
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session はユーザーのログインセッションを表す。
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
