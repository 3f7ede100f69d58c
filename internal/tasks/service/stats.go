package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsService periodically counts users and tasks and publishes the totals
// as Prometheus gauges.
type StatsService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	users prometheus.Gauge
	tasks prometheus.Gauge

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStatsService registers the gauges on reg. If interval is 0 or negative,
// defaults to 1 minute.
func NewStatsService(st store.Store, logger *slog.Logger, interval time.Duration, reg prometheus.Registerer) *StatsService {
	if interval <= 0 {
		interval = time.Minute
	}

	s := &StatsService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tasks",
			Name:      "users",
			Help:      "Registered users.",
		}),
		tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tasks",
			Name:      "tasks",
			Help:      "Stored tasks across all users.",
		}),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	reg.MustRegister(s.users, s.tasks)
	return s
}

// Start begins the background worker. Call Stop to shut it down.
func (s *StatsService) Start() {
	go s.run()
	s.Logger.Info("stats service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished any in-progress refresh.
func (s *StatsService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("stats service stopped")
}

func (s *StatsService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Refresh(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Refresh(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Refresh recounts both tables. Each count is independent so one failing
// query leaves the other gauge current.
func (s *StatsService) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if n, err := s.Store.Users().CountUsers(ctx); err != nil {
		s.Logger.Error("failed to count users", "error", err)
	} else {
		s.users.Set(float64(n))
	}

	if n, err := s.Store.Tasks().CountTasks(ctx); err != nil {
		s.Logger.Error("failed to count tasks", "error", err)
	} else {
		s.tasks.Set(float64(n))
	}

	s.Logger.Debug("stats refreshed")
}
