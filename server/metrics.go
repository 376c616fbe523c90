package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"duel/stat"
)

// Metrics exposes a Tally's counters as prometheus counters, collected
// on scrape rather than pushed, since AtomicFloat64 reads are cheap
// and lock-free.
type Metrics struct {
	tally *stat.Tally

	winsA *prometheus.Desc
	winsB *prometheus.Desc
	ties  *prometheus.Desc
	total *prometheus.Desc
}

// NewMetrics returns a prometheus.Collector reporting tally's current
// counts under the duel_ namespace.
func NewMetrics(tally *stat.Tally) *Metrics {
	return &Metrics{
		tally: tally,
		winsA: prometheus.NewDesc("duel_wins_a_total", "Games won by side A.", nil, nil),
		winsB: prometheus.NewDesc("duel_wins_b_total", "Games won by side B.", nil, nil),
		ties:  prometheus.NewDesc("duel_ties_total", "Games ending in a tie.", nil, nil),
		total: prometheus.NewDesc("duel_games_total", "Total games played.", nil, nil),
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.winsA
	ch <- m.winsB
	ch <- m.ties
	ch <- m.total
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(m.winsA, prometheus.CounterValue, m.tally.WinsA.AtomicRead())
	ch <- prometheus.MustNewConstMetric(m.winsB, prometheus.CounterValue, m.tally.WinsB.AtomicRead())
	ch <- prometheus.MustNewConstMetric(m.ties, prometheus.CounterValue, m.tally.Ties.AtomicRead())
	ch <- prometheus.MustNewConstMetric(m.total, prometheus.CounterValue, m.tally.Total())
}
