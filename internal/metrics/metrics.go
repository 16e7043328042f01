package metrics

import (
	"net/http"

	"slots_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "slots"
	subsystem = "vault"
)

// Metrics счётчики экономики
type Metrics struct {
	spins         *prometheus.CounterVec
	staked        prometheus.Counter
	paidToPlayers prometheus.Counter
	poolAccrued   prometheus.Counter
	poolBalance   prometheus.Gauge
	distributions prometheus.Counter
	distributed   prometheus.Counter
	claims        prometheus.Counter
	claimed       prometheus.Counter
	holders       prometheus.Gauge
	failures      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New регистрирует метрики в reg
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		spins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "spins_total",
			Help: "Number of spins by resolved tier",
		}, []string{"tier"}),
		staked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "staked_total",
			Help: "Value charged as stakes",
		}),
		paidToPlayers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "player_winnings_total",
			Help: "Value moved from the treasury to player accounts as winnings",
		}),
		poolAccrued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "reward_pool_accrued_total",
			Help: "Value reserved into the holder reward pool",
		}),
		poolBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "reward_pool_balance",
			Help: "Current holder reward pool balance",
		}),
		distributions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "distributions_total",
			Help: "Number of holder reward shares paid",
		}),
		distributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "distributed_total",
			Help: "Value paid out of the reward pool",
		}),
		claims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "claims_total",
			Help: "Number of winnings claims",
		}),
		claimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "claimed_total",
			Help: "Value claimed by players",
		}),
		holders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "registered_holders",
			Help: "Number of registered holders",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "operation_failures_total",
			Help: "Failed operations by operation name",
		}, []string{"operation"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.spins, m.staked, m.paidToPlayers, m.poolAccrued, m.poolBalance,
		m.distributions, m.distributed, m.claims, m.claimed, m.holders, m.failures,
	)
	return m
}

func (m *Metrics) ObserveSpin(res *model.SpinResult) {
	m.spins.WithLabelValues(res.Tier.String()).Inc()
	m.staked.Add(float64(res.Bet))
	m.paidToPlayers.Add(float64(res.UserWinnings))
	m.poolAccrued.Add(float64(res.HolderReward))
	m.poolBalance.Set(float64(res.RewardPool))
}

func (m *Metrics) ObserveDistribution(res *model.DistributionResult) {
	m.distributions.Inc()
	m.distributed.Add(float64(res.Share))
	m.poolBalance.Set(float64(res.RemainingPool))
	m.holders.Set(float64(res.HolderCount))
}

func (m *Metrics) ObserveClaim(res *model.ClaimResult) {
	m.claims.Inc()
	m.claimed.Add(float64(res.Claimed))
}

func (m *Metrics) SetHolders(n int) {
	m.holders.Set(float64(n))
}

func (m *Metrics) ObserveFailure(operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

// Handler отдаёт метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
