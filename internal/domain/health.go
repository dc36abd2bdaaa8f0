package domain

// CheckStatus indicates doctor check outcomes.
type CheckStatus string

const (
	StatusSuccess CheckStatus = "success"
	StatusWarning CheckStatus = "warning"
	StatusError   CheckStatus = "error"
)

// CheckCategory tags which part of the error taxonomy a result belongs to.
type CheckCategory string

const (
	CategoryEnvironment   CheckCategory = "environment"
	CategoryResource      CheckCategory = "resource"
	CategoryConfiguration CheckCategory = "configuration"
	CategoryNetwork       CheckCategory = "network"
	CategoryDrift         CheckCategory = "drift"
)

// CheckResult captures a single diagnostic result.
type CheckResult struct {
	Name     string
	Status   CheckStatus
	Message  string
	Details  string
	Category CheckCategory
}

// Indeterminate reports whether an error reflects external network
// conditions rather than local misconfiguration.
func (c CheckResult) Indeterminate() bool {
	return c.Status == StatusError && c.Category == CategoryNetwork
}

// Success builds a passing result.
func Success(name, message, details string) CheckResult {
	return CheckResult{Name: name, Status: StatusSuccess, Message: message, Details: details}
}

// Warning builds a degraded result.
func Warning(category CheckCategory, name, message, details string) CheckResult {
	return CheckResult{Name: name, Status: StatusWarning, Message: message, Details: details, Category: category}
}

// Failure builds an error result.
func Failure(category CheckCategory, name, message, details string) CheckResult {
	return CheckResult{Name: name, Status: StatusError, Message: message, Details: details, Category: category}
}

// Verdict is the overall outcome of a doctor run.
type Verdict string

const (
	VerdictReady    Verdict = "ready"
	VerdictDegraded Verdict = "degraded"
	VerdictFailed   Verdict = "failed"
)

// HealthSummary counts results per status.
type HealthSummary struct {
	Success int
	Warning int
	Error   int
}

// HealthReport aggregates checks in execution order.
type HealthReport struct {
	Checks []CheckResult
}

// Summary counts every check; it never stops at the first error.
func (r HealthReport) Summary() HealthSummary {
	var s HealthSummary
	for _, check := range r.Checks {
		switch check.Status {
		case StatusSuccess:
			s.Success++
		case StatusWarning:
			s.Warning++
		case StatusError:
			s.Error++
		}
	}
	return s
}

// Verdict rolls the summary up into a single outcome.
func (r HealthReport) Verdict() Verdict {
	s := r.Summary()
	switch {
	case s.Error > 0:
		return VerdictFailed
	case s.Warning > 0:
		return VerdictDegraded
	default:
		return VerdictReady
	}
}

// ExitCode is 0 iff no check reported an error.
func (r HealthReport) ExitCode() int {
	if r.Verdict() == VerdictFailed {
		return 1
	}
	return 0
}
