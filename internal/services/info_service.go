// filepath: internal/services/info_service.go
package services

import (
	"time"

	"recipehub/internal/models"
)

// Compile-time check to ensure interface is implemented
var _ InfoService = (*infoService)(nil)

// ServiceVersion is stamped at build time via -ldflags.
var ServiceVersion = "dev"

type infoService struct {
	startedAt time.Time
}

// NewInfoService creates a new InfoService.
func NewInfoService() *infoService {
	return &infoService{startedAt: time.Now().UTC()}
}

// GetInfo returns static service metadata for the info endpoint.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "recipehub",
		Version:     ServiceVersion,
		UptimeSince: s.startedAt,
	}
}
