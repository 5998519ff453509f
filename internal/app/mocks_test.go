package app

import (
	"context"
	"sort"
	"strings"

	"github.com/example/ceo/internal/ports/secondary"
)

// mockLogRepository implements secondary.LogRepository for testing.
type mockLogRepository struct {
	logs map[string]*secondary.LogRecord // keyed by date
}

func newMockLogRepository() *mockLogRepository {
	return &mockLogRepository{logs: make(map[string]*secondary.LogRecord)}
}

func (m *mockLogRepository) Create(ctx context.Context, log *secondary.LogRecord) error {
	if _, ok := m.logs[log.Date]; ok {
		return &secondary.DuplicateDateError{Date: log.Date}
	}
	m.logs[log.Date] = log
	return nil
}

func (m *mockLogRepository) GetByDate(ctx context.Context, date string) (*secondary.LogRecord, error) {
	if l, ok := m.logs[date]; ok {
		return l, nil
	}
	return nil, &secondary.NotFoundError{Kind: "daily log", Key: date}
}

func (m *mockLogRepository) Update(ctx context.Context, log *secondary.LogRecord) error {
	if _, ok := m.logs[log.Date]; !ok {
		return &secondary.NotFoundError{Kind: "daily log", Key: log.Date}
	}
	m.logs[log.Date] = log
	return nil
}

func (m *mockLogRepository) ListSince(ctx context.Context, since string) ([]*secondary.LogRecord, error) {
	var result []*secondary.LogRecord
	for _, l := range m.logs {
		if l.Date >= since {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockLogRepository) ListRange(ctx context.Context, since, until string) ([]*secondary.LogRecord, error) {
	var result []*secondary.LogRecord
	for _, l := range m.logs {
		if l.Date >= since && l.Date <= until {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

// mockProjectRepository implements secondary.ProjectRepository for testing.
type mockProjectRepository struct {
	projects map[string]*secondary.ProjectRecord
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[string]*secondary.ProjectRecord)}
}

func (m *mockProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, &secondary.NotFoundError{Kind: "project", Key: id}
}

func (m *mockProjectRepository) GetByPrefix(ctx context.Context, prefix string) (*secondary.ProjectRecord, error) {
	var match *secondary.ProjectRecord
	for _, p := range m.projects {
		if strings.HasPrefix(p.ID, prefix) {
			if match != nil {
				return nil, &secondary.NotFoundError{Kind: "project", Key: prefix}
			}
			match = p
		}
	}
	if match == nil {
		return nil, &secondary.NotFoundError{Kind: "project", Key: prefix}
	}
	return match, nil
}

func (m *mockProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	var result []*secondary.ProjectRecord
	for _, p := range m.projects {
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProjectRepository) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, p := range m.projects {
		if p.Status == "active" {
			count++
		}
	}
	return count, nil
}

func (m *mockProjectRepository) UpdateStatus(ctx context.Context, id string, update secondary.StatusUpdate) error {
	p, ok := m.projects[id]
	if !ok {
		return &secondary.NotFoundError{Kind: "project", Key: id}
	}
	if p.Status != "active" {
		return &secondary.InvalidTransitionError{Kind: "project", ID: id, Status: p.Status, Attempt: update.Status}
	}
	p.Status = update.Status
	p.ShippedEarly = update.ShippedEarly
	p.KillReason = update.KillReason
	p.CompletedAt = update.CompletedAt
	return nil
}

// mockDecisionRepository implements secondary.DecisionRepository for testing.
type mockDecisionRepository struct {
	decisions []*secondary.DecisionRecord
}

func newMockDecisionRepository() *mockDecisionRepository {
	return &mockDecisionRepository{}
}

func (m *mockDecisionRepository) Create(ctx context.Context, decision *secondary.DecisionRecord) error {
	m.decisions = append(m.decisions, decision)
	return nil
}

func (m *mockDecisionRepository) ListSince(ctx context.Context, since string) ([]*secondary.DecisionRecord, error) {
	var result []*secondary.DecisionRecord
	for _, d := range m.decisions {
		if d.Date >= since {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

// mockBreakerRepository implements secondary.BreakerRepository for testing.
type mockBreakerRepository struct {
	cycles map[string]*secondary.BreakerRecord
}

func newMockBreakerRepository() *mockBreakerRepository {
	return &mockBreakerRepository{cycles: make(map[string]*secondary.BreakerRecord)}
}

func (m *mockBreakerRepository) Create(ctx context.Context, state *secondary.BreakerRecord) error {
	m.cycles[state.ID] = state
	return nil
}

func (m *mockBreakerRepository) GetActive(ctx context.Context) (*secondary.BreakerRecord, error) {
	for _, c := range m.cycles {
		if c.Status == "active" {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockBreakerRepository) End(ctx context.Context, id string) error {
	c, ok := m.cycles[id]
	if !ok {
		return &secondary.NotFoundError{Kind: "breaker cycle", Key: id}
	}
	c.Status = "ended"
	c.DeactivatedAt = "2026-01-01T00:00:00Z"
	return nil
}
