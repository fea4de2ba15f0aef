package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgLog "campus-chatbot/pkg/log"
)

var (
	unansweredQuestionsDesc = prometheus.NewDesc(
		namespace+"_unanswered_questions",
		"Distinct unprocessed unanswered questions by language.",
		[]string{"language"},
		nil,
	)
	unansweredAsksDesc = prometheus.NewDesc(
		namespace+"_unanswered_asks",
		"Times unprocessed unanswered questions were asked, by language.",
		[]string{"language"},
		nil,
	)
)

// UnansweredStat summarises open unanswered questions of one language.
type UnansweredStat struct {
	Language  string
	Questions int64
	Asks      int64
}

// UnansweredSource reads the current unanswered question totals.
type UnansweredSource interface {
	UnansweredStats(ctx context.Context) ([]UnansweredStat, error)
}

// UnansweredCollector reads unanswered question totals from the store on each scrape.
type UnansweredCollector struct {
	source  UnansweredSource
	l       pkgLog.Logger
	timeout time.Duration
}

// NewUnansweredCollector creates a collector querying source on every scrape.
func NewUnansweredCollector(source UnansweredSource, l pkgLog.Logger) *UnansweredCollector {
	return &UnansweredCollector{source: source, l: l, timeout: 5 * time.Second}
}

func (c *UnansweredCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- unansweredQuestionsDesc
	ch <- unansweredAsksDesc
}

func (c *UnansweredCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stats, err := c.source.UnansweredStats(ctx)
	if err != nil {
		c.l.Errorf(ctx, "metrics.UnansweredCollector: %v", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(unansweredQuestionsDesc, prometheus.GaugeValue, float64(s.Questions), s.Language)
		ch <- prometheus.MustNewConstMetric(unansweredAsksDesc, prometheus.GaugeValue, float64(s.Asks), s.Language)
	}
}
