package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
	"fundboard/internal/services"
)

type mockHoldingService struct {
	listHoldingsFn           func(params pagination.ListParams, filter services.HoldingFilter) ([]services.HoldingView, error)
	getHoldingByIDFn         func(id uint) (*services.HoldingView, error)
	createHoldingFn          func(input services.CreateHoldingInput) (*models.Holding, error)
	updateHoldingFn          func(id uint, input services.UpdateHoldingInput) (*models.Holding, error)
	deleteHoldingFn          func(id uint) error
	getFundHoldingsSummaryFn func(fundID uint) (*services.FundHoldingsSummary, error)
	getSectorBreakdownFn     func(fundID uint) ([]services.SectorSlice, error)
	getTopHoldingsFn         func(fundID uint, limit int) ([]services.HoldingView, error)
}

func (m *mockHoldingService) ListHoldings(params pagination.ListParams, filter services.HoldingFilter) ([]services.HoldingView, error) {
	if m.listHoldingsFn != nil {
		return m.listHoldingsFn(params, filter)
	}
	return []services.HoldingView{}, nil
}

func (m *mockHoldingService) GetHoldingByID(id uint) (*services.HoldingView, error) {
	if m.getHoldingByIDFn != nil {
		return m.getHoldingByIDFn(id)
	}
	return &services.HoldingView{}, nil
}

func (m *mockHoldingService) CreateHolding(input services.CreateHoldingInput) (*models.Holding, error) {
	if m.createHoldingFn != nil {
		return m.createHoldingFn(input)
	}
	return &models.Holding{}, nil
}

func (m *mockHoldingService) UpdateHolding(id uint, input services.UpdateHoldingInput) (*models.Holding, error) {
	if m.updateHoldingFn != nil {
		return m.updateHoldingFn(id, input)
	}
	return &models.Holding{}, nil
}

func (m *mockHoldingService) DeleteHolding(id uint) error {
	if m.deleteHoldingFn != nil {
		return m.deleteHoldingFn(id)
	}
	return nil
}

func (m *mockHoldingService) GetFundHoldingsSummary(fundID uint) (*services.FundHoldingsSummary, error) {
	if m.getFundHoldingsSummaryFn != nil {
		return m.getFundHoldingsSummaryFn(fundID)
	}
	return &services.FundHoldingsSummary{}, nil
}

func (m *mockHoldingService) GetSectorBreakdown(fundID uint) ([]services.SectorSlice, error) {
	if m.getSectorBreakdownFn != nil {
		return m.getSectorBreakdownFn(fundID)
	}
	return []services.SectorSlice{}, nil
}

func (m *mockHoldingService) GetTopHoldings(fundID uint, limit int) ([]services.HoldingView, error) {
	if m.getTopHoldingsFn != nil {
		return m.getTopHoldingsFn(fundID, limit)
	}
	return []services.HoldingView{}, nil
}

var _ services.HoldingServicer = (*mockHoldingService)(nil)

func setupHoldingRouter(handler *HoldingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/holdings", handler.GetHoldings)
	r.POST("/holdings", handler.CreateHolding)
	r.GET("/holdings/:id", handler.GetHolding)
	r.PUT("/holdings/:id", handler.UpdateHolding)
	r.DELETE("/holdings/:id", handler.DeleteHolding)
	r.GET("/holdings/fund/:fund_id/summary", handler.GetFundHoldingsSummary)
	r.GET("/holdings/fund/:fund_id/sectors", handler.GetSectorBreakdown)
	r.GET("/holdings/fund/:fund_id/top", handler.GetTopHoldings)
	return r
}

func TestHoldingHandler_CreateHolding(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotInput services.CreateHoldingInput
		svc := &mockHoldingService{
			createHoldingFn: func(input services.CreateHoldingInput) (*models.Holding, error) {
				gotInput = input
				return &models.Holding{ID: 1, FundID: input.FundID, Ticker: input.Ticker}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":1,"ticker":"AAPL","company_name":"Apple Inc.","shares":100,"purchase_price":150.25,"purchase_date":"2023-06-01","sector":"Technology"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotInput.Shares.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100 shares, got %s", gotInput.Shares)
		}
		if gotInput.Sector == nil || *gotInput.Sector != "Technology" {
			t.Errorf("expected Technology sector, got %v", gotInput.Sector)
		}
	})

	t.Run("accepts missing company name", func(t *testing.T) {
		svc := &mockHoldingService{
			createHoldingFn: func(input services.CreateHoldingInput) (*models.Holding, error) {
				return &models.Holding{ID: 1, FundID: input.FundID, Ticker: input.Ticker}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":1,"ticker":"AAPL","shares":100,"purchase_price":150.25,"purchase_date":"2023-06-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("accepts zero market cap", func(t *testing.T) {
		var gotInput services.CreateHoldingInput
		svc := &mockHoldingService{
			createHoldingFn: func(input services.CreateHoldingInput) (*models.Holding, error) {
				gotInput = input
				return &models.Holding{ID: 1}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":1,"ticker":"AAPL","shares":100,"purchase_price":150.25,"purchase_date":"2023-06-01","market_cap":0}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.MarketCap == nil || *gotInput.MarketCap != 0 {
			t.Errorf("expected market cap 0, got %v", gotInput.MarketCap)
		}
	})

	t.Run("returns 400 on invalid ticker", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":1,"ticker":"not a ticker!","company_name":"X","shares":1,"purchase_price":1,"purchase_date":"2023-06-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero shares", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":1,"ticker":"AAPL","company_name":"Apple Inc.","shares":0,"purchase_price":150,"purchase_date":"2023-06-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when fund is missing", func(t *testing.T) {
		svc := &mockHoldingService{
			createHoldingFn: func(services.CreateHoldingInput) (*models.Holding, error) {
				return nil, apperrors.ErrFundNotFound
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"fund_id":999,"ticker":"AAPL","company_name":"Apple Inc.","shares":1,"purchase_price":1,"purchase_date":"2023-06-01"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FUND_NOT_FOUND")
	})
}

func TestHoldingHandler_GetHoldings(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		var gotFilter services.HoldingFilter
		svc := &mockHoldingService{
			listHoldingsFn: func(params pagination.ListParams, filter services.HoldingFilter) ([]services.HoldingView, error) {
				gotFilter = filter
				return []services.HoldingView{}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings?search=apple&ticker=AAPL&fund_id=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter.Search != "apple" || gotFilter.Ticker != "AAPL" {
			t.Errorf("unexpected filter %+v", gotFilter)
		}
		if gotFilter.FundID == nil || *gotFilter.FundID != 3 {
			t.Errorf("expected fund_id 3, got %v", gotFilter.FundID)
		}
	})

	t.Run("returns 400 on invalid ticker filter", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "GET", "/holdings?ticker=bad+ticker", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHoldingHandler_GetHolding(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockHoldingService{
			getHoldingByIDFn: func(id uint) (*services.HoldingView, error) {
				return &services.HoldingView{
					Holding:   models.Holding{ID: id, Ticker: "AAPL"},
					CostBasis: decimal.NewFromInt(1000),
				}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		holding := result["holding"].(map[string]interface{})
		if holding["ticker"] != "AAPL" {
			t.Errorf("expected AAPL, got %v", holding["ticker"])
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockHoldingService{
			getHoldingByIDFn: func(uint) (*services.HoldingView, error) {
				return nil, apperrors.ErrHoldingNotFound
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "HOLDING_NOT_FOUND")
	})
}

func TestHoldingHandler_UpdateHolding(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotInput services.UpdateHoldingInput
		svc := &mockHoldingService{
			updateHoldingFn: func(id uint, input services.UpdateHoldingInput) (*models.Holding, error) {
				gotInput = input
				return &models.Holding{ID: id}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "PUT", "/holdings/1", `{"shares":250}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotInput.Shares == nil || !gotInput.Shares.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected 250 shares, got %v", gotInput.Shares)
		}
		if gotInput.CompanyName != nil {
			t.Error("expected omitted fields to stay nil")
		}
	})

	t.Run("returns 400 on non-positive shares", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "PUT", "/holdings/1", `{"shares":-10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHoldingHandler_DeleteHolding(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "DELETE", "/holdings/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockHoldingService{
			deleteHoldingFn: func(uint) error { return apperrors.ErrHoldingNotFound },
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "DELETE", "/holdings/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHoldingHandler_GetFundHoldingsSummary(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockHoldingService{
			getFundHoldingsSummaryFn: func(fundID uint) (*services.FundHoldingsSummary, error) {
				return &services.FundHoldingsSummary{
					FundID:         fundID,
					TotalHoldings:  3,
					TotalCostBasis: decimal.NewFromInt(3000),
					UniqueTickers:  3,
					UniqueSectors:  2,
				}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/fund/1/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_holdings"] != float64(3) {
			t.Errorf("expected total_holdings 3, got %v", result["total_holdings"])
		}
	})

	t.Run("returns 404 when fund is missing", func(t *testing.T) {
		svc := &mockHoldingService{
			getFundHoldingsSummaryFn: func(uint) (*services.FundHoldingsSummary, error) {
				return nil, apperrors.ErrFundNotFound
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/fund/999/summary", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHoldingHandler_GetSectorBreakdown(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockHoldingService{
			getSectorBreakdownFn: func(uint) ([]services.SectorSlice, error) {
				return []services.SectorSlice{
					{Sector: "Technology", Count: 2, TotalValue: decimal.NewFromInt(3000)},
					{Sector: "Unknown", Count: 1, TotalValue: decimal.NewFromInt(500)},
				}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/fund/1/sectors", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		sectors := result["sectors"].([]interface{})
		if len(sectors) != 2 {
			t.Fatalf("expected 2 sectors, got %d", len(sectors))
		}
		first := sectors[0].(map[string]interface{})
		if first["sector"] != "Technology" {
			t.Errorf("expected Technology first, got %v", first["sector"])
		}
	})
}

func TestHoldingHandler_GetTopHoldings(t *testing.T) {
	t.Run("defaults to 10", func(t *testing.T) {
		var gotLimit int
		svc := &mockHoldingService{
			getTopHoldingsFn: func(fundID uint, limit int) ([]services.HoldingView, error) {
				gotLimit = limit
				return []services.HoldingView{}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/fund/1/top", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 10 {
			t.Errorf("expected default limit 10, got %d", gotLimit)
		}
	})

	t.Run("returns 400 on limit above bound", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "GET", "/holdings/fund/1/top?limit=100", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
