// Package wire provides dependency injection for the CEO application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/ceo/internal/adapters/sqlite"
	"github.com/example/ceo/internal/app"
	"github.com/example/ceo/internal/db"
	"github.com/example/ceo/internal/ports/primary"
)

var (
	checkinService   primary.CheckinService
	projectService   primary.ProjectService
	decisionService  primary.DecisionService
	emergencyService primary.EmergencyService
	metricsService   primary.MetricsService
	once             sync.Once
)

// CheckinService returns the singleton CheckinService instance.
func CheckinService() primary.CheckinService {
	once.Do(initServices)
	return checkinService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// DecisionService returns the singleton DecisionService instance.
func DecisionService() primary.DecisionService {
	once.Do(initServices)
	return decisionService
}

// EmergencyService returns the singleton EmergencyService instance.
func EmergencyService() primary.EmergencyService {
	once.Do(initServices)
	return emergencyService
}

// MetricsService returns the singleton MetricsService instance.
func MetricsService() primary.MetricsService {
	once.Do(initServices)
	return metricsService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	logRepo := sqlite.NewLogRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	decisionRepo := sqlite.NewDecisionRepository(database)
	breakerRepo := sqlite.NewBreakerRepository(database)

	// Services (primary ports implementation). The emergency service is
	// built first because check-ins evaluate the breaker on every run.
	emergencyService = app.NewEmergencyService(breakerRepo, logRepo, projectRepo, decisionRepo)
	checkinService = app.NewCheckinService(logRepo, emergencyService)
	projectService = app.NewProjectService(projectRepo, breakerRepo)
	decisionService = app.NewDecisionService(decisionRepo)
	metricsService = app.NewMetricsService(logRepo, decisionRepo, projectRepo)
}
