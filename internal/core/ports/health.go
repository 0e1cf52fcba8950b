package ports

import "context"

// HealthChecker probes one dependency the gateway relies on, such as the
// consumed REST backend. A nil error means the dependency is usable; the
// health endpoint aggregates checkers into an overall status.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
