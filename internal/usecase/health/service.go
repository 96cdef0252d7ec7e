package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the store cannot serve documents.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	docs DocumentCounter
	db   DBPinger
}

// New creates a Service. db can be nil when documents are not backed by a database.
func New(docs DocumentCounter, db DBPinger) *Service {
	return &Service{docs: docs, db: db}
}

// Check runs health checks against all components.
// An empty or unreadable store is Unhealthy. A failing database ping only degrades.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if n, err := s.docs.Count(ctx); err != nil || n == 0 {
		checks["documents"] = CheckError
		status = Unhealthy
	} else {
		checks["documents"] = CheckOK
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			checks["database"] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks["database"] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
