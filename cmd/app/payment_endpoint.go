package main

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"
	"unicode"

	"github.com/Imadeveloperrr/backend-test-v1/external/midtrans"
	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/labstack/echo/v4"
)

type payRequest struct {
	PartnerID   int64  `json:"partnerId"`
	Amount      int64  `json:"amount"`
	CardBin     string `json:"cardBin"`
	CardLast4   string `json:"cardLast4"`
	ProductName string `json:"productName"`
}

func (r payRequest) validate() error {
	if r.PartnerID <= 0 {
		return errors.New("partnerId must be positive")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !digits(r.CardBin) || len(r.CardBin) < 4 || len(r.CardBin) > 8 {
		return errors.New("cardBin must be 4 to 8 digits")
	}
	if !digits(r.CardLast4) || len(r.CardLast4) != 4 {
		return errors.New("cardLast4 must be exactly 4 digits")
	}
	return nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService, qs *services.PaymentQueryService) {
	p := g.Group("/payments")

	// Midtrans requires HTTP 200 on its notification callbacks or it retries.
	// Payment rows are immutable here, so a verified notification is only
	// acknowledged; settlement state stays with the processor.
	p.POST("/midtrans/notification", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": "invalid payload",
			})
		}

		orderID, _ := payload["order_id"].(string)
		statusCode, _ := payload["status_code"].(string)
		grossAmount, _ := payload["gross_amount"].(string)
		signature, _ := payload["signature_key"].(string)

		if !midtrans.VerifySignature(
			orderID,
			statusCode,
			grossAmount,
			signature,
			os.Getenv("MIDTRANS_SERVER_KEY"),
		) {
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": "invalid signature",
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
		})
	})

	p.POST("", func(c echo.Context) error {
		var req payRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid payload",
			})
		}
		if err := req.validate(); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}

		payment, err := ps.Pay(c.Request().Context(), services.PaymentCommand{
			PartnerID:   req.PartnerID,
			Amount:      req.Amount,
			CardBin:     req.CardBin,
			CardLast4:   req.CardLast4,
			ProductName: req.ProductName,
		})
		if err != nil {
			return paymentError(c, err)
		}

		return c.JSON(http.StatusCreated, payment)
	})

	p.GET("", func(c echo.Context) error {
		query := services.PaymentListQuery{
			Status: c.QueryParam("status"),
			Cursor: c.QueryParam("cursor"),
		}

		if v := c.QueryParam("partnerId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid partnerId"})
			}
			query.PartnerID = &id
		}
		if v := c.QueryParam("from"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from"})
			}
			query.From = &t
		}
		if v := c.QueryParam("to"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to"})
			}
			query.To = &t
		}
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
			}
			query.Limit = n
		}

		listing, err := qs.List(c.Request().Context(), query)
		if err != nil {
			if errors.Is(err, model.ErrInvalidStatus) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, listing)
	})
}

func paymentError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrPartnerNotFound):
		code = http.StatusNotFound
	case errors.Is(err, model.ErrPartnerInactive):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrProcessorUnavailable),
		errors.Is(err, model.ErrAuthorizationFailed):
		code = http.StatusBadGateway
	}
	return c.JSON(code, echo.Map{
		"error": err.Error(),
	})
}
