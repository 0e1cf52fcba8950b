package queryclient

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_hits_total",
		Help: "Fetches served from a fresh cache entry",
	})
	cacheStale = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_stale_served_total",
		Help: "Fetches served from a stale cache entry while revalidating",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_misses_total",
		Help: "Fetches that found no cached value",
	})
	cacheRefetches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_refetches_total",
		Help: "Background refetches triggered by staleness or invalidation",
	})
	cacheRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_retries_total",
		Help: "Automatic retries of failed fetches",
	})
	cacheEvictions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_evictions_total",
		Help: "Entries evicted after the retention window with no observers",
	})
	cacheDiscards = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "query_cache_discarded_responses_total",
		Help: "Completed fetches discarded because a newer generation already applied",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheStale, cacheMisses, cacheRefetches, cacheRetries, cacheEvictions, cacheDiscards)
}
