package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// backendHealthChecker probes the consumed REST backend.
type backendHealthChecker struct {
	baseURL string
	client  *http.Client
}

func (b *backendHealthChecker) Name() string { return "backend" }

func (b *backendHealthChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/products", nil)
	if err != nil {
		return err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}
	return nil
}

// NewBackendHealthChecker creates a health checker for the REST backend.
func NewBackendHealthChecker(baseURL string) ports.HealthChecker {
	return &backendHealthChecker{baseURL: baseURL, client: &http.Client{}}
}
