// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// トグル競合の種別ラベル
const (
	ConflictKindFollow = "follow"
	ConflictKindLike   = "like"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層とHTTPミドルウェアから利用する。
type MetricsCollector interface {
	RecordPostCreated()
	RecordPostEdited()
	RecordFollowToggle(following bool)
	RecordLikeToggle(liked bool)
	RecordToggleConflict(kind string)
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	postsCreated    prometheus.Counter
	postsEdited     prometheus.Counter
	followToggles   *prometheus.CounterVec
	likeToggles     *prometheus.CounterVec
	toggleConflicts *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "socialnet_posts_created_total",
			Help: "作成された投稿の合計数",
		}),
		postsEdited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "socialnet_posts_edited_total",
			Help: "編集された投稿の合計数",
		}),
		followToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialnet_follow_toggles_total",
			Help: "フォロートグルの結果別の合計数",
		}, []string{"result"}),
		likeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialnet_like_toggles_total",
			Help: "いいねトグルの結果別の合計数",
		}, []string{"result"}),
		toggleConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialnet_toggle_conflicts_total",
			Help: "一意制約違反から回復したトグル操作の数",
		}, []string{"kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "socialnet_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "socialnet_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.postsCreated,
		c.postsEdited,
		c.followToggles,
		c.likeToggles,
		c.toggleConflicts,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordPostCreated は投稿作成を記録する。
func (c *Collector) RecordPostCreated() {
	c.postsCreated.Inc()
}

// RecordPostEdited は投稿編集を記録する。
func (c *Collector) RecordPostEdited() {
	c.postsEdited.Inc()
}

// RecordFollowToggle はフォロートグルの結果を記録する。
func (c *Collector) RecordFollowToggle(following bool) {
	c.followToggles.WithLabelValues(toggleResult(following, "followed", "unfollowed")).Inc()
}

// RecordLikeToggle はいいねトグルの結果を記録する。
func (c *Collector) RecordLikeToggle(liked bool) {
	c.likeToggles.WithLabelValues(toggleResult(liked, "liked", "unliked")).Inc()
}

// RecordToggleConflict はトグル競合からの回復を記録する。
func (c *Collector) RecordToggleConflict(kind string) {
	c.toggleConflicts.WithLabelValues(kind).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

func toggleResult(on bool, onLabel, offLabel string) string {
	if on {
		return onLabel
	}
	return offLabel
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)

// Noop は何も記録しないMetricsCollector。テストやメトリクス無効時に使用する。
type Noop struct{}

func (Noop) RecordPostCreated()                  {}
func (Noop) RecordPostEdited()                   {}
func (Noop) RecordFollowToggle(bool)             {}
func (Noop) RecordLikeToggle(bool)               {}
func (Noop) RecordToggleConflict(string)         {}
func (Noop) RecordHTTPStatus(int)                {}
func (Noop) RecordRequestDuration(time.Duration) {}

var _ MetricsCollector = Noop{}
