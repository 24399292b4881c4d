package connectivity

import (
	"context"
	"net/http"
	"time"

	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// DefaultTimeout bounds one probe request
const DefaultTimeout = 3 * time.Second

// Checker implements ports.ConnectivityChecker. It is offline when forced
// by settings, or when the probe URL does not answer. Without a probe URL
// the store is local and always reachable.
type Checker struct {
	client   *http.Client
	forced   func() bool
	probeURL string
}

// Compile-time interface verification
var _ ports.ConnectivityChecker = (*Checker)(nil)

// NewChecker creates a checker. forced is consulted on every call so a
// settings change applies without a restart; nil never forces offline.
func NewChecker(probeURL string, forced func() bool, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if forced == nil {
		forced = func() bool { return false }
	}
	return &Checker{
		client:   &http.Client{Timeout: timeout},
		forced:   forced,
		probeURL: probeURL,
	}
}

// Online reports whether the store can be written now
func (c *Checker) Online(ctx context.Context) bool {
	if c.forced() {
		return false
	}
	if c.probeURL == "" {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.probeURL, nil)
	if err != nil {
		logging.Logger.Warn("Invalid connectivity probe URL", "url", c.probeURL, "error", err)
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Logger.Debug("Connectivity probe failed", "url", c.probeURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	online := resp.StatusCode < http.StatusInternalServerError
	logging.Logger.Debug("Connectivity probe", "url", c.probeURL, "status", resp.StatusCode, "online", online)
	return online
}
