package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/pagination"
	"fundboard/internal/services"
)

// HoldingHandler handles holding-related requests.
type HoldingHandler struct {
	holdingService services.HoldingServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService}
}

// CreateHoldingRequest represents the request payload for creating a holding.
type CreateHoldingRequest struct {
	FundID        uint            `json:"fund_id" binding:"required"`
	Ticker        string          `json:"ticker" binding:"required,ticker"`
	CompanyName   string          `json:"company_name" binding:"omitempty,max=200"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  string          `json:"purchase_date" binding:"required,datetime=2006-01-02"`
	Sector        *string         `json:"sector" binding:"omitempty,max=100"`
	MarketCap     *int64          `json:"market_cap" binding:"omitempty,gte=0"`
}

// UpdateHoldingRequest represents the request payload for updating a holding.
// Only descriptive fields and the share count are mutable.
type UpdateHoldingRequest struct {
	CompanyName *string          `json:"company_name" binding:"omitempty,max=200"`
	Shares      *decimal.Decimal `json:"shares"`
	Sector      *string          `json:"sector" binding:"omitempty,max=100"`
	MarketCap   *int64           `json:"market_cap" binding:"omitempty,gte=0"`
}

// holdingListQuery carries the filter parameters for listing holdings.
// Search takes precedence over ticker, ticker over fund_id.
type holdingListQuery struct {
	Search string `form:"search" binding:"omitempty,max=200"`
	Ticker string `form:"ticker" binding:"omitempty,ticker"`
	FundID *uint  `form:"fund_id"`
}

// topHoldingsQuery bounds the top-N listing.
type topHoldingsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// GetHoldings handles listing holdings with the filter precedence
// search > ticker > fund_id > paginated.
// @Summary     List holdings
// @Description Get holdings enriched with cost basis and live valuation, filtered by search term, ticker, or fund
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       search  query string false "Match against ticker or company name"
// @Param       ticker  query string false "Exact ticker filter"
// @Param       fund_id query int    false "Fund filter"
// @Param       skip    query int    false "Rows to skip (default 0)"
// @Param       limit   query int    false "Max rows (default 100, max 1000)"
// @Success     200 {object} map[string][]services.HoldingView "Holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *HoldingHandler) GetHoldings(c *gin.Context) {
	var params pagination.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query holdingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holdings, err := h.holdingService.ListHoldings(params, services.HoldingFilter{
		Search: query.Search,
		Ticker: query.Ticker,
		FundID: query.FundID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// GetHolding handles retrieving a specific holding with valuation fields.
// @Summary     Get holding by ID
// @Description Get a holding with cost basis, current valuation, and weight in its fund
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id path int true "Holding ID"
// @Success     200 {object} map[string]services.HoldingView "Holding details"
// @Failure     400 {object} ErrorResponse "Invalid holding ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHoldingByID(holdingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// CreateHolding handles adding a position to a fund.
// @Summary     Create a holding
// @Description Add a stock position to an existing fund
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       request body CreateHoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := requirePositive("shares", req.Shares); err != nil {
		respondWithError(c, err)
		return
	}
	if err := requirePositive("purchase_price", req.PurchasePrice); err != nil {
		respondWithError(c, err)
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.CreateHolding(services.CreateHoldingInput{
		FundID:        req.FundID,
		Ticker:        req.Ticker,
		CompanyName:   req.CompanyName,
		Shares:        req.Shares,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Sector:        req.Sector,
		MarketCap:     req.MarketCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// UpdateHolding handles a partial update of an existing holding.
// @Summary     Update holding
// @Description Update a holding's descriptive fields or share count
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Updated holding details"
// @Success     200 {object} models.Holding "Updated holding"
// @Failure     400 {object} ErrorResponse "Invalid input or holding ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Shares != nil {
		if err := requirePositive("shares", *req.Shares); err != nil {
			respondWithError(c, err)
			return
		}
	}

	holding, err := h.holdingService.UpdateHolding(holdingID, services.UpdateHoldingInput{
		CompanyName: req.CompanyName,
		Shares:      req.Shares,
		Sector:      req.Sector,
		MarketCap:   req.MarketCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding handles removing a position.
// @Summary     Delete holding
// @Description Delete a holding by ID
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id path int true "Holding ID"
// @Success     204 "Holding deleted"
// @Failure     400 {object} ErrorResponse "Invalid holding ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(holdingID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFundHoldingsSummary handles aggregating one fund's holdings.
// @Summary     Get fund holdings summary
// @Description Get counts, total cost basis, and unique tickers/sectors for a fund's holdings
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       fund_id path int true "Fund ID"
// @Success     200 {object} services.FundHoldingsSummary "Holdings summary"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/fund/{fund_id}/summary [get]
func (h *HoldingHandler) GetFundHoldingsSummary(c *gin.Context) {
	fundID, err := parsePathID(c, "fund_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.holdingService.GetFundHoldingsSummary(fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSectorBreakdown handles grouping a fund's holdings by sector.
// @Summary     Get sector breakdown
// @Description Get a fund's holdings grouped by sector, ordered by total cost value
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       fund_id path int true "Fund ID"
// @Success     200 {object} map[string][]services.SectorSlice "Sector breakdown"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/fund/{fund_id}/sectors [get]
func (h *HoldingHandler) GetSectorBreakdown(c *gin.Context) {
	fundID, err := parsePathID(c, "fund_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sectors, err := h.holdingService.GetSectorBreakdown(fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sectors": sectors})
}

// GetTopHoldings handles listing a fund's largest positions by cost value.
// @Summary     Get top holdings
// @Description Get a fund's largest positions by cost value
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       fund_id path  int true  "Fund ID"
// @Param       limit   query int false "Max positions (default 10, max 50)"
// @Success     200 {object} map[string][]services.HoldingView "Top holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/fund/{fund_id}/top [get]
func (h *HoldingHandler) GetTopHoldings(c *gin.Context) {
	fundID, err := parsePathID(c, "fund_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query topHoldingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	holdings, err := h.holdingService.GetTopHoldings(fundID, query.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}
