package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ascent-cms/events"
	"github.com/ascent-cms/logger"
	"github.com/ascent-cms/models"
	"github.com/ascent-cms/repositories"
)

// SettingsCollection is the change feed name of site setting writes
const SettingsCollection = "site_settings"

// ServiceCatalogue lists the services shown on the public site
var ServiceCatalogue = []string{
	"Web Application",
	"UI/UX Design",
	"Digital Strategy",
	"SEO & Marketing",
	"Mobile Applications",
	"Cloud & DevOps",
}

// SettingsService reads and writes the service "coming soon" flags
type SettingsService struct {
	repo      repositories.SettingRepository
	publisher events.Publisher
	timeout   time.Duration
	log       *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repositories.SettingRepository, deps ManagerDeps) *SettingsService {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsService{repo: repo, publisher: deps.Publisher, timeout: deps.Timeout, log: log}
}

func (s *SettingsService) step(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ServiceStatuses returns every catalogue service and any stored name with its coming-soon flag
func (s *SettingsService) ServiceStatuses(ctx context.Context) (models.Flags, error) {
	stepCtx, cancel := s.step(ctx)
	defer cancel()

	stored, err := s.repo.Get(stepCtx, models.ServiceStatusKey)
	if err != nil {
		return nil, err
	}
	out := make(models.Flags, len(ServiceCatalogue)+len(stored))
	for _, name := range ServiceCatalogue {
		out[name] = false
	}
	for name, comingSoon := range stored {
		out[name] = comingSoon
	}
	return out, nil
}

// ComingSoon reports whether a service is marked as coming soon; unknown services are active
func (s *SettingsService) ComingSoon(ctx context.Context, name string) (bool, error) {
	statuses, err := s.ServiceStatuses(ctx)
	if err != nil {
		return false, err
	}
	return statuses[strings.TrimSpace(name)], nil
}

// SetComingSoon stores the flag of one service and returns every status
func (s *SettingsService) SetComingSoon(ctx context.Context, name string, comingSoon bool) (models.Flags, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "is required"}
	}

	stepCtx, cancel := s.step(ctx)
	defer cancel()

	stored, err := s.repo.Get(stepCtx, models.ServiceStatusKey)
	if err != nil {
		return nil, err
	}
	stored[name] = comingSoon
	if err := s.repo.Put(stepCtx, models.ServiceStatusKey, stored); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.log)
	log.Info("Service status updated", zap.String("service", name), zap.Bool("coming_soon", comingSoon))
	if s.publisher != nil {
		change := events.Change{Collection: SettingsCollection, Op: events.OpUpdate, At: time.Now().UTC()}
		if err := s.publisher.Publish(stepCtx, change); err != nil {
			log.Warn("Failed to publish change", zap.Error(err))
		}
	}
	return s.ServiceStatuses(ctx)
}

// Toggle flips the coming-soon flag of a service
func (s *SettingsService) Toggle(ctx context.Context, name string) (models.Flags, error) {
	current, err := s.ComingSoon(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.SetComingSoon(ctx, name, !current)
}
