package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
	"fundboard/internal/services"
)

// FundHandler handles fund-related requests.
type FundHandler struct {
	fundService services.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// CreateFundRequest represents the request payload for creating a fund.
// Decimal bounds are checked in the handler.
type CreateFundRequest struct {
	Name          string              `json:"name" binding:"required,min=1,max=200"`
	Strategy      models.FundStrategy `json:"strategy" binding:"required,fund_strategy"`
	InceptionDate string              `json:"inception_date" binding:"required,datetime=2006-01-02"`
	TotalAUM      decimal.Decimal     `json:"total_aum"`
	ManagerName   string              `json:"manager_name" binding:"omitempty,max=100"`
	ExpenseRatio  decimal.Decimal     `json:"expense_ratio"`
	Description   string              `json:"description" binding:"omitempty,max=1000"`
}

// UpdateFundRequest represents the request payload for updating a fund.
// Nil fields are left untouched.
type UpdateFundRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1,max=200"`
	Strategy     *models.FundStrategy `json:"strategy" binding:"omitempty,fund_strategy"`
	ManagerName  *string              `json:"manager_name" binding:"omitempty,max=100"`
	ExpenseRatio *decimal.Decimal     `json:"expense_ratio"`
	Description  *string              `json:"description" binding:"omitempty,max=1000"`
	TotalAUM     *decimal.Decimal     `json:"total_aum"`
}

// RecordPerformanceRequest represents the request payload for recording a
// NAV observation for a fund.
type RecordPerformanceRequest struct {
	Date                  string           `json:"date" binding:"required,datetime=2006-01-02"`
	NAVPrice              decimal.Decimal  `json:"nav_price"`
	TotalReturn           *decimal.Decimal `json:"total_return"`
	DailyReturn           *decimal.Decimal `json:"daily_return"`
	AssetsUnderManagement *decimal.Decimal `json:"assets_under_management"`
	SharesOutstanding     *int64           `json:"shares_outstanding" binding:"omitempty,gt=0"`
}

// fundListQuery carries the query parameters for listing funds.
type fundListQuery struct {
	Search string `form:"search" binding:"omitempty,max=200"`
}

// daysQuery carries the lookback window for performance-style endpoints.
type daysQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

// Expense ratios are percentages, 0 to 10.
func validateExpenseRatio(ratio decimal.Decimal) error {
	if ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(10)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "expense_ratio must be between 0 and 10")
	}
	return nil
}

// GetFunds handles listing funds with optional name/manager search.
// @Summary     List funds
// @Description Get funds enriched with holdings count and latest performance, optionally filtered by a search term
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       search query string false "Match against fund name or manager name"
// @Param       skip   query int    false "Rows to skip (default 0)"
// @Param       limit  query int    false "Max rows (default 100, max 1000)"
// @Success     200 {object} map[string][]services.FundSummary "Funds"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [get]
func (h *FundHandler) GetFunds(c *gin.Context) {
	var params pagination.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query fundListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	funds, err := h.fundService.ListFunds(params, query.Search)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"funds": funds})
}

// GetFund handles retrieving a specific fund with valuation fields.
// @Summary     Get fund by ID
// @Description Get a fund with holdings count, current value, and unrealized gain/loss
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Fund ID"
// @Success     200 {object} map[string]services.FundDetail "Fund details"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.GetFundByID(fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fund": fund})
}

// CreateFund handles the creation of a new fund.
// @Summary     Create a fund
// @Description Create a new investment fund with a unique name
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       request body CreateFundRequest true "Fund details"
// @Success     201 {object} models.Fund "Fund created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	var req CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := requireNonNegative("total_aum", req.TotalAUM); err != nil {
		respondWithError(c, err)
		return
	}
	if err := validateExpenseRatio(req.ExpenseRatio); err != nil {
		respondWithError(c, err)
		return
	}

	inceptionDate, err := parseDate(req.InceptionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.CreateFund(services.CreateFundInput{
		Name:          req.Name,
		Strategy:      req.Strategy,
		InceptionDate: inceptionDate,
		TotalAUM:      req.TotalAUM,
		ManagerName:   req.ManagerName,
		ExpenseRatio:  req.ExpenseRatio,
		Description:   req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fund": fund})
}

// UpdateFund handles a partial update of an existing fund.
// @Summary     Update fund
// @Description Update an existing fund; omitted fields are left untouched
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Fund ID"
// @Param       request body UpdateFundRequest true "Updated fund details"
// @Success     200 {object} models.Fund "Updated fund"
// @Failure     400 {object} ErrorResponse "Invalid input or fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [put]
func (h *FundHandler) UpdateFund(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.TotalAUM != nil {
		if err := requireNonNegative("total_aum", *req.TotalAUM); err != nil {
			respondWithError(c, err)
			return
		}
	}
	if req.ExpenseRatio != nil {
		if err := validateExpenseRatio(*req.ExpenseRatio); err != nil {
			respondWithError(c, err)
			return
		}
	}

	fund, err := h.fundService.UpdateFund(fundID, services.UpdateFundInput{
		Name:         req.Name,
		Strategy:     req.Strategy,
		ManagerName:  req.ManagerName,
		ExpenseRatio: req.ExpenseRatio,
		Description:  req.Description,
		TotalAUM:     req.TotalAUM,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fund": fund})
}

// DeleteFund handles deleting a fund and its dependent rows.
// @Summary     Delete fund
// @Description Delete a fund along with its holdings and performance records
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Fund ID"
// @Success     204 "Fund deleted"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [delete]
func (h *FundHandler) DeleteFund(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.fundService.DeleteFund(fundID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFundPerformance handles retrieving a fund's NAV history window.
// @Summary     Get fund performance
// @Description Get NAV observations for the last N days, falling back to the latest records when the window is empty
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id   path  int true  "Fund ID"
// @Param       days query int false "Lookback window in days (default 30, max 365)"
// @Success     200 {object} services.PerformanceReport "Performance window"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id}/performance [get]
func (h *FundHandler) GetFundPerformance(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query daysQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Days == 0 {
		query.Days = 30
	}

	report, err := h.fundService.GetFundPerformance(fundID, query.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RecordPerformance handles recording a NAV observation for a fund.
// @Summary     Record fund performance
// @Description Record a NAV observation for a fund; one record per fund and date
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Fund ID"
// @Param       request body RecordPerformanceRequest true "NAV observation"
// @Success     201 {object} models.FundPerformance "Performance recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate date"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id}/performance [post]
func (h *FundHandler) RecordPerformance(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := requirePositive("nav_price", req.NAVPrice); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.fundService.RecordPerformance(fundID, services.RecordPerformanceInput{
		Date:                  date,
		NAVPrice:              req.NAVPrice,
		TotalReturn:           req.TotalReturn,
		DailyReturn:           req.DailyReturn,
		AssetsUnderManagement: req.AssetsUnderManagement,
		SharesOutstanding:     req.SharesOutstanding,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"performance": record})
}

// GetPeerComparison handles comparing a fund against category-matched peers.
// @Summary     Compare fund against peers
// @Description Get the fund's latest total return alongside up to 10 benchmark peers
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Fund ID"
// @Success     200 {object} services.PeerComparisonReport "Peer comparison"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id}/peers [get]
func (h *FundHandler) GetPeerComparison(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.fundService.GetPeerComparison(fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetFundStatistics handles retrieving aggregate statistics for a fund.
// @Summary     Get fund statistics
// @Description Get holdings count and total cost basis alongside the fund profile
// @Tags        funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Fund ID"
// @Success     200 {object} services.FundStatistics "Fund statistics"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id}/stats [get]
func (h *FundHandler) GetFundStatistics(c *gin.Context) {
	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.fundService.GetFundStatistics(fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
