package scheduler

import (
	"sync"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
)

// Job is a unit of periodic work
type Job struct {
	Name     string
	Interval time.Duration
	Run      func() error
}

// Service runs jobs on their intervals until stopped
type Service struct {
	jobs     []Job
	logger   *logger.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler service
func New(jobs ...Job) *Service {
	return &Service{
		jobs:     jobs,
		logger:   logger.New("scheduler"),
		stopChan: make(chan struct{}),
	}
}

// Start starts one goroutine per job
func (s *Service) Start() {
	s.logger.Info("Starting scheduler with %d jobs", len(s.jobs))
	for _, job := range s.jobs {
		if job.Interval <= 0 || job.Run == nil {
			s.logger.Warn("Skipping job %q: no interval or function", job.Name)
			continue
		}
		s.wg.Add(1)
		go s.run(job)
	}
}

// Stop stops every job and waits for running ones to return. It is safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *Service) run(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := job.Run(); err != nil {
				s.logger.Error("Job %s failed: %v", job.Name, err)
			}
		case <-s.stopChan:
			return
		}
	}
}
