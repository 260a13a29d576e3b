package health

import (
	"context"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

const (
	StatusOK   = "ok"
	StatusFail = "fail"
)

// CheckResult is the outcome of one Checker.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report lists every dependency, not only the first failing one.
type Report struct {
	Ready  bool          `json:"-"`
	Checks []CheckResult `json:"checks"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) Report
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Ready(ctx context.Context) Report {
	r := Report{Ready: true, Checks: make([]CheckResult, 0, len(s.checkers))}
	for _, ch := range s.checkers {
		res := CheckResult{Name: ch.Name(), Status: StatusOK}
		if err := ch.Check(ctx); err != nil {
			res.Status = StatusFail
			res.Error = err.Error()
			r.Ready = false
		}
		r.Checks = append(r.Checks, res)
	}
	return r
}
