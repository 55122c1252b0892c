package feed

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PageSize は1ページあたりの投稿数。
const PageSize = 10

// ParsePageNumber はクエリパラメータのページ番号を解釈する。
// 空または整数として解釈できない値は1とする。
// 範囲外の値はそのまま返し、補正はClampPageで行う。
func ParsePageNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// 桁あふれした正の整数は最終ページ扱いにするため上限値に丸める
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return math.MinInt
			}
			return math.MaxInt
		}
		return 1
	}
	return n
}

// NumPages は投稿数から総ページ数を返す。0件でも1ページとする。
func NumPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// ClampPage はページ番号を1以上numPages以下に補正する。
func ClampPage(number, numPages int) int {
	if number < 1 {
		return 1
	}
	if number > numPages {
		return numPages
	}
	return number
}
