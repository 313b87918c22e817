package captcha

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	challengesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gauntlet_challenges_issued",
		Help: "The total number of challenges issued",
	}, []string{"family"})

	challengesValidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gauntlet_challenges_validated",
		Help: "The total number of successfully validated challenges",
	}, []string{"family"})

	failedVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gauntlet_failed_verifications",
		Help: "The total number of failed verification attempts",
	}, []string{"family", "reason"})
)
