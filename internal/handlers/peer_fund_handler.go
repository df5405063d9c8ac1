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

// PeerFundHandler handles benchmark peer fund requests.
type PeerFundHandler struct {
	peerService services.PeerFundServicer
}

// NewPeerFundHandler creates a new PeerFundHandler.
func NewPeerFundHandler(peerService services.PeerFundServicer) *PeerFundHandler {
	return &PeerFundHandler{peerService: peerService}
}

// CreatePeerFundRequest represents the request payload for creating a
// benchmark peer fund.
type CreatePeerFundRequest struct {
	Name              string              `json:"name" binding:"required,min=1,max=200"`
	BenchmarkCategory models.PeerCategory `json:"benchmark_category" binding:"required,peer_category"`
	TotalAUM          *decimal.Decimal    `json:"total_aum"`
	ExpenseRatio      *decimal.Decimal    `json:"expense_ratio"`
	InceptionDate     string              `json:"inception_date" binding:"omitempty,datetime=2006-01-02"`
	ManagerCompany    string              `json:"manager_company" binding:"omitempty,max=200"`
	Description       string              `json:"description" binding:"omitempty,max=1000"`
}

// GetPeerFunds handles listing benchmark peer funds.
// @Summary     List peer funds
// @Description Get benchmark peer funds ordered by name
// @Tags        peer-funds
// @Accept      json
// @Produce     json
// @Param       skip  query int false "Rows to skip (default 0)"
// @Param       limit query int false "Max rows (default 100, max 1000)"
// @Success     200 {object} map[string][]models.PeerFund "Peer funds"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /peer-funds [get]
func (h *PeerFundHandler) GetPeerFunds(c *gin.Context) {
	var params pagination.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	peers, err := h.peerService.ListPeerFunds(params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peer_funds": peers})
}

// GetPeerFund handles retrieving one peer fund.
// @Summary     Get peer fund by ID
// @Description Get a benchmark peer fund by ID
// @Tags        peer-funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Peer fund ID"
// @Success     200 {object} map[string]models.PeerFund "Peer fund"
// @Failure     400 {object} ErrorResponse "Invalid peer fund ID"
// @Failure     404 {object} ErrorResponse "Peer fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /peer-funds/{id} [get]
func (h *PeerFundHandler) GetPeerFund(c *gin.Context) {
	peerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	peer, err := h.peerService.GetPeerFundByID(peerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peer_fund": peer})
}

// CreatePeerFund handles creating a benchmark peer fund.
// @Summary     Create a peer fund
// @Description Create a benchmark fund used for peer comparisons
// @Tags        peer-funds
// @Accept      json
// @Produce     json
// @Param       request body CreatePeerFundRequest true "Peer fund details"
// @Success     201 {object} models.PeerFund "Peer fund created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /peer-funds [post]
func (h *PeerFundHandler) CreatePeerFund(c *gin.Context) {
	var req CreatePeerFundRequest
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

	inceptionDate, err := parseOptionalDate(req.InceptionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	peer, err := h.peerService.CreatePeerFund(services.CreatePeerFundInput{
		Name:              req.Name,
		BenchmarkCategory: req.BenchmarkCategory,
		TotalAUM:          req.TotalAUM,
		ExpenseRatio:      req.ExpenseRatio,
		InceptionDate:     inceptionDate,
		ManagerCompany:    req.ManagerCompany,
		Description:       req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"peer_fund": peer})
}

// DeletePeerFund handles removing a peer fund.
// @Summary     Delete peer fund
// @Description Delete a benchmark peer fund by ID
// @Tags        peer-funds
// @Accept      json
// @Produce     json
// @Param       id path int true "Peer fund ID"
// @Success     204 "Peer fund deleted"
// @Failure     400 {object} ErrorResponse "Invalid peer fund ID"
// @Failure     404 {object} ErrorResponse "Peer fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /peer-funds/{id} [delete]
func (h *PeerFundHandler) DeletePeerFund(c *gin.Context) {
	peerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.peerService.DeletePeerFund(peerID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
