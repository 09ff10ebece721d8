// Package server exposes the settlement engine over HTTP.
package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"yeonmal/internal/calculation"
	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// SettlementRequest is the calculation request body. Nested sections reuse
// the domain records; scalar figures are validated here.
type SettlementRequest struct {
	Salary         money.Won                    `json:"salary" validate:"gte=0"`
	Exemptions     domain.ExemptionSelections   `json:"exemptions"`
	Pensions       domain.PensionSelections     `json:"pensions" validate:"dive,keys,oneof=national-pension public-pension military-pension private-school-pension post-office-pension,endkeys"`
	Special        domain.SpecialDeductionInput `json:"special"`
	Other          domain.OtherDeductionInput   `json:"other"`
	Credits        domain.TaxCreditInput        `json:"credits"`
	TaxReduction   money.Won                    `json:"taxReduction" validate:"gte=0"`
	CurrentPaidTax money.Won                    `json:"currentPaidTax" validate:"gte=0"`
	PreviousTax    money.Won                    `json:"previousTax" validate:"gte=0"`
}

// SettlementResponse carries the full result plus any advisory findings.
type SettlementResponse struct {
	Result domain.SettlementResult  `json:"result"`
	Issues []domain.ValidationIssue `json:"issues,omitempty"`
}

// ResponseMsg is the error response body.
type ResponseMsg struct {
	Message string `json:"message"`
}

// SettlementHandler serves settlement calculations.
type SettlementHandler struct {
	vl     *validator.Validate
	engine *calculation.Engine
}

// NewSettlementHandler creates a handler around the given engine.
func NewSettlementHandler(vl *validator.Validate, engine *calculation.Engine) *SettlementHandler {
	return &SettlementHandler{vl: vl, engine: engine}
}

// Calculate handles POST /api/settlement.
func (h *SettlementHandler) Calculate(c echo.Context) error {
	var req SettlementRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: "Bad request"})
	}

	if err := h.vl.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{Message: "Bad request"})
	}

	input := domain.SettlementInput{
		Salary:         req.Salary,
		Exemptions:     req.Exemptions,
		Pensions:       req.Pensions,
		Special:        req.Special,
		Other:          req.Other,
		Credits:        req.Credits,
		TaxReduction:   req.TaxReduction,
		CurrentPaidTax: req.CurrentPaidTax,
		PreviousTax:    req.PreviousTax,
	}

	return c.JSON(http.StatusOK, SettlementResponse{
		Result: h.engine.Settle(input),
		Issues: calculation.ValidateInput(input),
	})
}

// Healthcheck handles GET /healthz.
func Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, ResponseMsg{Message: "ok"})
}

// New assembles the echo instance with all routes registered.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	handler := NewSettlementHandler(validator.New(), calculation.NewEngine())
	e.POST("/api/settlement", handler.Calculate)
	e.GET("/healthz", Healthcheck)

	return e
}
