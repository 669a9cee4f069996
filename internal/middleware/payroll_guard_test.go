package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func commitRequest(t *testing.T, guard *PayrollGuard, organizationID int32) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payroll/commits", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(OrganizationIDKey), organizationID)

	handler := PayrollCommitMiddleware(guard)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	return rec.Code
}

func TestPayrollCommitMiddleware_AllowsWithinBurst(t *testing.T) {
	guard := NewPayrollGuardWithConfig(6, 2)
	defer guard.Stop()

	if code := commitRequest(t, guard, 1); code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", code)
	}
	if code := commitRequest(t, guard, 1); code != http.StatusOK {
		t.Errorf("Expected status 200 within burst, got %d", code)
	}
}

func TestPayrollCommitMiddleware_RejectsOverBurst(t *testing.T) {
	guard := NewPayrollGuardWithConfig(1, 1)
	defer guard.Stop()

	if code := commitRequest(t, guard, 1); code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if code := commitRequest(t, guard, 1); code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 over burst, got %d", code)
	}
}

func TestPayrollCommitMiddleware_PerOrganizationLimits(t *testing.T) {
	guard := NewPayrollGuardWithConfig(1, 1)
	defer guard.Stop()

	if code := commitRequest(t, guard, 1); code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", code)
	}
	// A different organization has its own limiter
	if code := commitRequest(t, guard, 2); code != http.StatusOK {
		t.Errorf("Expected status 200 for second organization, got %d", code)
	}
}
