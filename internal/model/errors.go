// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, post, user, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeEmptyContent        = "EMPTY_CONTENT"
	ErrCodePostNotFound        = "POST_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeNotPostAuthor       = "NOT_POST_AUTHOR"
	ErrCodeSelfFollowForbidden = "SELF_FOLLOW_FORBIDDEN"
	ErrCodeUsernameTaken       = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodePasswordMismatch    = "PASSWORD_MISMATCH"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// NewUnauthorizedError は認証が必要な操作を匿名で実行した場合のエラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "ログインしてください。",
	}
}

// NewInvalidRequestError はリクエストの形式が不正な場合のエラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("リクエストが不正です: %s", reason),
		Category: "validation",
		Action:   "正しい形式でリクエストしてください。",
	}
}

// NewEmptyContentError は投稿本文が空（空白のみを含む）の場合のエラーを生成する。
func NewEmptyContentError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyContent,
		Message:  "投稿内容を空にすることはできません。",
		Category: "validation",
		Action:   "本文を入力してください。",
	}
}

// NewPostNotFoundError は投稿が見つからない場合のエラーを生成する。
func NewPostNotFoundError(postID int64) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("指定された投稿が見つかりません: %d", postID),
		Category: "post",
		Action:   "投稿IDを確認してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  fmt.Sprintf("ユーザーが見つかりません: %s", username),
		Category: "user",
		Action:   "ユーザー名を確認してください。",
	}
}

// NewNotPostAuthorError は投稿者以外が投稿を編集しようとした場合のエラーを生成する。
func NewNotPostAuthorError() *APIError {
	return &APIError{
		Code:     ErrCodeNotPostAuthor,
		Message:  "自分の投稿のみ編集できます。",
		Category: "post",
		Action:   "投稿者本人のアカウントで操作してください。",
	}
}

// NewSelfFollowForbiddenError は自分自身をフォローしようとした場合のエラーを生成する。
func NewSelfFollowForbiddenError() *APIError {
	return &APIError{
		Code:     ErrCodeSelfFollowForbidden,
		Message:  "自分自身をフォローすることはできません。",
		Category: "user",
		Action:   "他のユーザーを選択してください。",
	}
}

// NewUsernameTakenError はユーザー名が既に使われている場合のエラーを生成する。
func NewUsernameTakenError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeUsernameTaken,
		Message:  fmt.Sprintf("ユーザー名は既に使用されています: %s", username),
		Category: "auth",
		Action:   "別のユーザー名を指定してください。",
	}
}

// NewInvalidCredentialsError はユーザー名またはパスワードが誤っている場合のエラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "ユーザー名またはパスワードが正しくありません。",
		Category: "auth",
		Action:   "入力内容を確認してください。",
	}
}

// NewPasswordMismatchError はパスワードと確認用パスワードが一致しない場合のエラーを生成する。
func NewPasswordMismatchError() *APIError {
	return &APIError{
		Code:     ErrCodePasswordMismatch,
		Message:  "パスワードが一致しません。",
		Category: "validation",
		Action:   "同じパスワードを2回入力してください。",
	}
}

// NewInternalError は内部エラーの統一表現を生成する。詳細はログのみに記録する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	}
}
