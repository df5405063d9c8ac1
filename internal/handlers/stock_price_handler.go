package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/pagination"
	"fundboard/internal/services"
)

// StockPriceHandler handles stock price-related requests.
type StockPriceHandler struct {
	priceService services.StockPriceServicer
}

// NewStockPriceHandler creates a new StockPriceHandler.
func NewStockPriceHandler(priceService services.StockPriceServicer) *StockPriceHandler {
	return &StockPriceHandler{priceService: priceService}
}

// CreateStockPriceRequest represents the request payload for creating a
// daily OHLCV record.
type CreateStockPriceRequest struct {
	Ticker        string           `json:"ticker" binding:"required,ticker"`
	Date          string           `json:"date" binding:"required,datetime=2006-01-02"`
	OpenPrice     decimal.Decimal  `json:"open_price"`
	HighPrice     decimal.Decimal  `json:"high_price"`
	LowPrice      decimal.Decimal  `json:"low_price"`
	ClosePrice    decimal.Decimal  `json:"close_price"`
	Volume        int64            `json:"volume" binding:"min=0"`
	AdjustedClose *decimal.Decimal `json:"adjusted_close"`
}

// UpdateStockPriceRequest represents the request payload for updating a
// price record. Nil fields are left untouched.
type UpdateStockPriceRequest struct {
	OpenPrice     *decimal.Decimal `json:"open_price"`
	HighPrice     *decimal.Decimal `json:"high_price"`
	LowPrice      *decimal.Decimal `json:"low_price"`
	ClosePrice    *decimal.Decimal `json:"close_price"`
	Volume        *int64           `json:"volume" binding:"omitempty,min=0"`
	AdjustedClose *decimal.Decimal `json:"adjusted_close"`
}

// LatestPricesRequest represents the request payload for the batch latest
// price lookup.
type LatestPricesRequest struct {
	Tickers []string `json:"tickers" binding:"required,min=1,max=100,dive,ticker"`
}

// priceListQuery carries the filter parameters for listing prices.
type priceListQuery struct {
	Ticker    string `form:"ticker" binding:"omitempty,ticker"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// GetStockPrices handles listing price records, optionally scoped to one
// ticker and date range.
// @Summary     List stock prices
// @Description Get price records newest first, optionally filtered by ticker and an inclusive date range
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       ticker     query string false "Ticker filter"
// @Param       start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param       skip       query int    false "Rows to skip (default 0)"
// @Param       limit      query int    false "Max rows (default 100, max 1000)"
// @Success     200 {object} map[string][]models.StockPrice "Price records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices [get]
func (h *StockPriceHandler) GetStockPrices(c *gin.Context) {
	var params pagination.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query priceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := parseOptionalDate(query.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalDate(query.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	prices, err := h.priceService.ListPrices(params, query.Ticker, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

// GetStockPrice handles retrieving a specific price record.
// @Summary     Get stock price by ID
// @Description Get a single price record by ID
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       id path int true "Price record ID"
// @Success     200 {object} map[string]models.StockPrice "Price record"
// @Failure     400 {object} ErrorResponse "Invalid price ID"
// @Failure     404 {object} ErrorResponse "Price not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/{id} [get]
func (h *StockPriceHandler) GetStockPrice(c *gin.Context) {
	priceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	price, err := h.priceService.GetPriceByID(priceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": price})
}

// CreateStockPrice handles creating a daily OHLCV record.
// @Summary     Create a stock price
// @Description Create a daily OHLCV record; one record per ticker and date
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       request body CreateStockPriceRequest true "Price details"
// @Success     201 {object} models.StockPrice "Price created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate ticker/date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices [post]
func (h *StockPriceHandler) CreateStockPrice(c *gin.Context) {
	var req CreateStockPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	for field, value := range map[string]decimal.Decimal{
		"open_price":  req.OpenPrice,
		"high_price":  req.HighPrice,
		"low_price":   req.LowPrice,
		"close_price": req.ClosePrice,
	} {
		if err := requirePositive(field, value); err != nil {
			respondWithError(c, err)
			return
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	price, err := h.priceService.CreatePrice(services.CreateStockPriceInput{
		Ticker:        req.Ticker,
		Date:          date,
		OpenPrice:     req.OpenPrice,
		HighPrice:     req.HighPrice,
		LowPrice:      req.LowPrice,
		ClosePrice:    req.ClosePrice,
		Volume:        req.Volume,
		AdjustedClose: req.AdjustedClose,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"price": price})
}

// UpdateStockPrice handles a partial update of an existing price record.
// @Summary     Update stock price
// @Description Update a price record; the merged OHLC values must stay ordered
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       id      path int                     true "Price record ID"
// @Param       request body UpdateStockPriceRequest true "Updated price details"
// @Success     200 {object} models.StockPrice "Updated price"
// @Failure     400 {object} ErrorResponse "Invalid input or price ID"
// @Failure     404 {object} ErrorResponse "Price not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/{id} [put]
func (h *StockPriceHandler) UpdateStockPrice(c *gin.Context) {
	priceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStockPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	for field, value := range map[string]*decimal.Decimal{
		"open_price":  req.OpenPrice,
		"high_price":  req.HighPrice,
		"low_price":   req.LowPrice,
		"close_price": req.ClosePrice,
	} {
		if value == nil {
			continue
		}
		if err := requirePositive(field, *value); err != nil {
			respondWithError(c, err)
			return
		}
	}

	price, err := h.priceService.UpdatePrice(priceID, services.UpdateStockPriceInput{
		OpenPrice:     req.OpenPrice,
		HighPrice:     req.HighPrice,
		LowPrice:      req.LowPrice,
		ClosePrice:    req.ClosePrice,
		Volume:        req.Volume,
		AdjustedClose: req.AdjustedClose,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": price})
}

// DeleteStockPrice handles removing a price record.
// @Summary     Delete stock price
// @Description Delete a price record by ID
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       id path int true "Price record ID"
// @Success     204 "Price deleted"
// @Failure     400 {object} ErrorResponse "Invalid price ID"
// @Failure     404 {object} ErrorResponse "Price not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/{id} [delete]
func (h *StockPriceHandler) DeleteStockPrice(c *gin.Context) {
	priceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.priceService.DeletePrice(priceID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLatestPrice handles retrieving the most recent record for a ticker.
// @Summary     Get latest price
// @Description Get the most recent price record for a ticker
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       ticker path string true "Ticker symbol"
// @Success     200 {object} map[string]models.StockPrice "Latest price"
// @Failure     404 {object} ErrorResponse "No price data for ticker"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/ticker/{ticker}/latest [get]
func (h *StockPriceHandler) GetLatestPrice(c *gin.Context) {
	price, err := h.priceService.GetLatestPrice(c.Param("ticker"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": price})
}

// GetLatestPrices handles the batch latest price lookup.
// @Summary     Get latest prices for several tickers
// @Description Get each requested ticker's most recent record; tickers without data are omitted
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       request body LatestPricesRequest true "Tickers (1-100)"
// @Success     200 {object} map[string][]models.StockPrice "Latest prices"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/batch/latest [post]
func (h *StockPriceHandler) GetLatestPrices(c *gin.Context) {
	var req LatestPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prices, err := h.priceService.GetLatestPrices(req.Tickers)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

// GetPriceHistory handles retrieving a ticker's recent price window.
// @Summary     Get price history
// @Description Get a ticker's price records over the last N days, newest first
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       ticker path  string true  "Ticker symbol"
// @Param       days   query int    false "Lookback window in days (default 30, max 365)"
// @Success     200 {object} services.PriceHistory "Price history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No price data in window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/ticker/{ticker}/history [get]
func (h *StockPriceHandler) GetPriceHistory(c *gin.Context) {
	var query daysQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Days == 0 {
		query.Days = 30
	}

	history, err := h.priceService.GetPriceHistory(c.Param("ticker"), query.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetPriceSummary handles aggregating a ticker's recent prices.
// @Summary     Get price summary
// @Description Get min/max/avg close, volume, and period return for a ticker over the last N days
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Param       ticker path  string true  "Ticker symbol"
// @Param       days   query int    false "Lookback window in days (default 30, max 365)"
// @Success     200 {object} services.PriceSummary "Price summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/ticker/{ticker}/summary [get]
func (h *StockPriceHandler) GetPriceSummary(c *gin.Context) {
	var query daysQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Days == 0 {
		query.Days = 30
	}

	summary, err := h.priceService.GetPriceSummary(c.Param("ticker"), query.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTickers handles listing all tickers with price data.
// @Summary     List tickers
// @Description Get the distinct sorted tickers that have any price data
// @Tags        stock-prices
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]string "Tickers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock-prices/tickers [get]
func (h *StockPriceHandler) GetTickers(c *gin.Context) {
	tickers, err := h.priceService.ListTickers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickers": tickers})
}
