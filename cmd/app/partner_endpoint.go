package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPartnerRoutes(g *echo.Group, ps *services.PartnerService) {
	grp := g.Group("/partners")

	grp.GET("", func(c echo.Context) error {
		list, err := ps.ListPartners(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	grp.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid partner id"})
		}

		partner, err := ps.GetPartner(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, model.ErrPartnerNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, partner)
	})

	grp.GET("/:id/fee-policies", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid partner id"})
		}

		policies, err := ps.ListPolicies(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, model.ErrPartnerNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, policies)
	})
}
