package model

// Page はページ分割されたフィードの1ページを表す。
// Numberは1始まりで、常に1以上NumPages以下に補正済み。
type Page struct {
	Posts    []*Post
	Number   int
	NumPages int
	Count    int
	PerPage  int
}

// HasNext は次のページが存在するかを返す。
func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

// HasPrevious は前のページが存在するかを返す。
func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

// StartIndex はページ先頭の投稿の通し番号（1始まり）を返す。投稿が0件の場合は0。
func (p *Page) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return (p.Number-1)*p.PerPage + 1
}

// EndIndex はページ末尾の投稿の通し番号を返す。
func (p *Page) EndIndex() int {
	if p.Number == p.NumPages {
		return p.Count
	}
	return p.Number * p.PerPage
}
