package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// OrganizationIDKey is the context key for the resolved organization ID
	OrganizationIDKey contextKey = "organizationID"
)

// OrganizationProvider resolves organizations during request scoping.
type OrganizationProvider interface {
	GetByID(id int32) (*domain.Organization, error)
}

// OrganizationScope parses the :orgId path parameter, verifies the
// organization exists, and stores its ID in the request context. Every
// record and report route runs behind it.
func OrganizationScope(provider OrganizationProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			orgID, err := strconv.ParseInt(c.Param("orgId"), 10, 32)
			if err != nil || orgID <= 0 {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"type":   "https://crm.gtech.app/errors/validation",
					"title":  "Validation Error",
					"status": http.StatusBadRequest,
					"detail": "Invalid organization ID",
				})
			}

			if _, err := provider.GetByID(int32(orgID)); err != nil {
				if errors.Is(err, domain.ErrOrganizationNotFound) {
					return c.JSON(http.StatusNotFound, map[string]interface{}{
						"type":   "https://crm.gtech.app/errors/not-found",
						"title":  "Not Found",
						"status": http.StatusNotFound,
						"detail": "Organization not found",
					})
				}
				log.Error().Err(err).Int64("organization_id", orgID).Msg("Failed to resolve organization")
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"type":   "https://crm.gtech.app/errors/internal",
					"title":  "Internal Server Error",
					"status": http.StatusInternalServerError,
				})
			}

			c.Set(string(OrganizationIDKey), int32(orgID))
			return next(c)
		}
	}
}

// GetOrganizationID extracts the organization ID from the context
func GetOrganizationID(c echo.Context) int32 {
	if id, ok := c.Get(string(OrganizationIDKey)).(int32); ok {
		return id
	}
	return 0
}
