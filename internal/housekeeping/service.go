// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"strings"
	"time"

	"recipehub/internal/logging"
	"recipehub/internal/shared"
)

const (
	// MinInterval is the minimum time between exports to prevent busy-looping.
	MinInterval = 1 * time.Minute
)

// Exporter is the single dependency of the auto-export worker.
type Exporter interface {
	ExportToFile() (string, error)
}

// Service periodically writes the store to the snapshot document, so a
// crash loses at most one interval of changes.
type Service struct {
	Exporter Exporter
	interval time.Duration
	timer    *time.Timer
	stopCh   chan struct{}
}

// NewService creates a new auto-export service. The interval string
// supports day suffixes ("7d", "24h", "30m"); "0" disables the worker.
// An unset interval means disabled too, so a fresh config without the
// key starts up cleanly.
func NewService(exporter Exporter, intervalStr string) (*Service, error) {
	if strings.TrimSpace(intervalStr) == "" {
		intervalStr = "0"
	}
	interval, err := shared.ParseDuration(intervalStr)
	if err != nil {
		return nil, err
	}
	if interval != 0 && interval < MinInterval {
		interval = MinInterval
	}
	return &Service{
		Exporter: exporter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start kicks off the background export loop. A zero interval makes Start
// a no-op.
func (s *Service) Start() {
	if s.interval == 0 {
		logging.Log.Debug("Snapshot auto-export disabled.")
		return
	}

	logging.Log.Infof("Starting snapshot auto-export every %v.", s.interval)
	s.timer = time.NewTimer(s.interval)

	go func() {
		for {
			select {
			case <-s.timer.C:
				if path, err := s.Exporter.ExportToFile(); err != nil {
					logging.Log.Errorf("Snapshot auto-export failed: %v", err)
				} else {
					logging.Log.Infof("Snapshot auto-export written to %s.", path)
				}
				s.timer.Reset(s.interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background export loop.
func (s *Service) Stop() {
	if s.interval == 0 {
		return
	}
	logging.Log.Info("Stopping snapshot auto-export.")
	close(s.stopCh)
}
