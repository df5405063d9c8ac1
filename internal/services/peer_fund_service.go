package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fundboard/internal/errors"
	"fundboard/internal/models"
	"fundboard/internal/pagination"
)

// peerFundService handles peer fund business logic.
type peerFundService struct {
	db *gorm.DB
}

// NewPeerFundService creates a new PeerFundServicer.
func NewPeerFundService(db *gorm.DB) PeerFundServicer {
	return &peerFundService{db: db}
}

// ListPeerFunds returns peer funds ordered by name.
func (s *peerFundService) ListPeerFunds(params pagination.ListParams) ([]models.PeerFund, error) {
	params.Defaults()

	var peers []models.PeerFund
	err := s.db.
		Order("name ASC").
		Scopes(pagination.Scope(params)).
		Find(&peers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return peers, nil
}

// CreatePeerFund creates a benchmark fund record.
func (s *peerFundService) CreatePeerFund(input CreatePeerFundInput) (*models.PeerFund, error) {
	peer := &models.PeerFund{
		Name:              input.Name,
		BenchmarkCategory: input.BenchmarkCategory,
		TotalAUM:          nullDecimal(input.TotalAUM),
		ExpenseRatio:      nullDecimal(input.ExpenseRatio),
		InceptionDate:     input.InceptionDate,
		ManagerCompany:    input.ManagerCompany,
		Description:       input.Description,
	}
	if err := s.db.Create(peer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return peer, nil
}

// GetPeerFundByID returns one peer fund.
func (s *peerFundService) GetPeerFundByID(id uint) (*models.PeerFund, error) {
	var peer models.PeerFund
	if err := s.db.First(&peer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeerFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &peer, nil
}

// DeletePeerFund removes a peer fund.
func (s *peerFundService) DeletePeerFund(id uint) error {
	var peer models.PeerFund
	if err := s.db.First(&peer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPeerFundNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&peer).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
