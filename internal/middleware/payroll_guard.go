package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultCommitsPerMinute caps payroll commits per organization
	DefaultCommitsPerMinute = 6
	// DefaultCommitBurst is the burst size for payroll commits
	DefaultCommitBurst = 2
	// guardCleanupInterval is the interval for cleaning up stale entries
	guardCleanupInterval = 5 * time.Minute
	// guardEntryTTL is the time-to-live for inactive entries
	guardEntryTTL = 10 * time.Minute
)

// PayrollGuard serializes payroll commits per organization and rate-limits
// them. Commits regenerate expense rows, so two concurrent commits for the
// same organization must not interleave.
type PayrollGuard struct {
	entries   map[int32]*guardEntry
	mu        sync.Mutex
	rateLimit float64
	burst     int
	stopCh    chan struct{}
}

type guardEntry struct {
	commitMu *sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewPayrollGuard creates a new PayrollGuard with default settings
func NewPayrollGuard() *PayrollGuard {
	return NewPayrollGuardWithConfig(DefaultCommitsPerMinute, DefaultCommitBurst)
}

// NewPayrollGuardWithConfig creates a PayrollGuard with custom configuration
func NewPayrollGuardWithConfig(commitsPerMinute int, burst int) *PayrollGuard {
	g := &PayrollGuard{
		entries:   make(map[int32]*guardEntry),
		rateLimit: float64(commitsPerMinute) / 60.0,
		burst:     burst,
		stopCh:    make(chan struct{}),
	}

	go g.cleanup()

	return g
}

func (g *PayrollGuard) entry(organizationID int32) *guardEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, exists := g.entries[organizationID]
	if !exists {
		e = &guardEntry{
			commitMu: &sync.Mutex{},
			limiter:  rate.NewLimiter(rate.Limit(g.rateLimit), g.burst),
		}
		g.entries[organizationID] = e
	}
	e.lastSeen = time.Now()
	return e
}

// cleanup periodically removes stale entries to prevent memory leaks
func (g *PayrollGuard) cleanup() {
	ticker := time.NewTicker(guardCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.mu.Lock()
			now := time.Now()
			for organizationID, e := range g.entries {
				if now.Sub(e.lastSeen) > guardEntryTTL {
					delete(g.entries, organizationID)
					log.Debug().Int32("organization_id", organizationID).Msg("Cleaned up stale payroll guard entry")
				}
			}
			g.mu.Unlock()
		case <-g.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (g *PayrollGuard) Stop() {
	close(g.stopCh)
}

// PayrollCommitMiddleware rate-limits payroll commits per organization and
// holds a per-organization lock for the duration of the request.
func PayrollCommitMiddleware(g *PayrollGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			organizationID := GetOrganizationID(c)
			if organizationID == 0 {
				return next(c)
			}

			e := g.entry(organizationID)
			if !e.limiter.Allow() {
				log.Warn().Int32("organization_id", organizationID).Msg("Payroll commit rate limit exceeded")
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(time.Minute.Seconds())))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"type":   "https://crm.gtech.app/errors/rate-limit",
					"title":  "Rate Limit Exceeded",
					"status": http.StatusTooManyRequests,
					"detail": "Too many payroll commits. Please retry later.",
				})
			}

			e.commitMu.Lock()
			defer e.commitMu.Unlock()
			return next(c)
		}
	}
}
