// Package metrics defines all custom Prometheus metrics for the evaluation
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "evaluation"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// QuestionnairesActivatedTotal counts successful questionnaire activations.
var QuestionnairesActivatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questionnaires_activated_total",
		Help:      "Total number of questionnaire activations.",
	},
)

// EvaluationsSubmittedTotal counts persisted public evaluation responses.
var EvaluationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_submitted_total",
		Help:      "Total number of evaluation responses accepted.",
	},
)

// ActiveQuestionnaireCacheTotal counts public active-questionnaire cache lookups.
// Label:
//   - result: "hit" or "miss"
var ActiveQuestionnaireCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "active_questionnaire_cache_total",
		Help:      "Active questionnaire cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// AIRequestsTotal counts calls forwarded to the AI gateway.
// Label:
//   - status: "ok" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI gateway calls, by status.",
	},
	[]string{"status"},
)
