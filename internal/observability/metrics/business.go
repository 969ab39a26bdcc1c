// Package metrics exposes business-level Prometheus metrics.
// HTTP transport metrics live with the HTTP middleware; this package counts
// domain events so dashboards can track write traffic on the articles
// resource without parsing access logs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	articlesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_created_total",
		Help: "Total number of articles created",
	})

	articlesUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "articles_updated_total",
		Help: "Total number of articles updated",
	})

	articlesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "articles_total",
		Help: "Current number of articles in the store",
	})
)

// RecordArticleCreated increments the created counter.
func RecordArticleCreated() {
	articlesCreatedTotal.Inc()
}

// RecordArticleUpdated increments the updated counter.
func RecordArticleUpdated() {
	articlesUpdatedTotal.Inc()
}

// UpdateArticlesTotal sets the current article count gauge.
func UpdateArticlesTotal(count int) {
	articlesTotal.Set(float64(count))
}
