package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsWhoisLookupsSucceeded is counter metric for total successful WHOIS API calls
	StatsWhoisLookupsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_whois_lookups_succeeded",
		Help:         "stats_whois_lookups_succeeded provides total WHOIS API calls succeeded",
		RequiredTags: []string{"endpoint"},
	}

	StatsWhoisLookupsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_whois_lookups_failed",
		Help:         "stats_whois_lookups_failed provides total WHOIS API calls failed",
		RequiredTags: []string{"endpoint"},
	}

	StatsWhoisCacheHits = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_whois_cache_hits",
		Help:         "stats_whois_cache_hits provides total lookups served from the service cache",
		RequiredTags: []string{"endpoint"},
	}
)

// Perf
var (
	PerfWhoisLookup = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_whois_lookup",
		Help:         "perf_whois_lookup provides duration of WHOIS API call",
		RequiredTags: []string{"endpoint"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfWhoisLookup,
	&StatsWhoisCacheHits,
	&StatsWhoisLookupsFailed,
	&StatsWhoisLookupsSucceeded,
}
