package service

import (
	"context"

	"github.com/prodpilot/prodpilot/internal/domain"
	"github.com/prodpilot/prodpilot/internal/repository"
)

// AdminService handles the dashboard CRUD surface: businesses, products,
// escalations, and stats. It has no session semantics of its own.
type AdminService struct {
	businessRepo   *repository.BusinessRepository
	productRepo    *repository.ProductRepository
	chatLogRepo    *repository.ChatLogRepository
	escalationRepo *repository.EscalationRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	businessRepo *repository.BusinessRepository,
	productRepo *repository.ProductRepository,
	chatLogRepo *repository.ChatLogRepository,
	escalationRepo *repository.EscalationRepository,
) *AdminService {
	return &AdminService{
		businessRepo:   businessRepo,
		productRepo:    productRepo,
		chatLogRepo:    chatLogRepo,
		escalationRepo: escalationRepo,
	}
}

// Business operations

func (s *AdminService) CreateBusiness(ctx context.Context, req *domain.CreateBusinessRequest) (*domain.Business, error) {
	business := &domain.Business{
		Name:         req.Name,
		SupportEmail: req.SupportEmail,
		SupportPhone: req.SupportPhone,
	}
	if err := s.businessRepo.Create(business); err != nil {
		return nil, err
	}
	return business, nil
}

func (s *AdminService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	return s.businessRepo.Get(id)
}

func (s *AdminService) ListBusinesses(ctx context.Context) ([]*domain.Business, error) {
	return s.businessRepo.List()
}

func (s *AdminService) UpdateBusiness(ctx context.Context, id string, req *domain.UpdateBusinessRequest) (*domain.Business, error) {
	business, err := s.businessRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != "" {
		business.Name = req.Name
	}
	if req.SupportEmail != "" {
		business.SupportEmail = req.SupportEmail
	}
	if req.SupportPhone != "" {
		business.SupportPhone = req.SupportPhone
	}

	if err := s.businessRepo.Update(business); err != nil {
		return nil, err
	}
	return business, nil
}

// Product operations

func (s *AdminService) CreateProduct(ctx context.Context, req *domain.CreateProductRequest) (*domain.Product, error) {
	business, err := s.businessRepo.Get(req.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	product := &domain.Product{
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ManualURL:   req.ManualURL,
		Model:       req.Model,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *AdminService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.Get(id)
}

func (s *AdminService) ListProducts(ctx context.Context, businessID string) ([]*domain.Product, error) {
	return s.productRepo.List(businessID)
}

func (s *AdminService) UpdateProduct(ctx context.Context, id string, req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.ManualURL != "" {
		product.ManualURL = req.ManualURL
	}
	if req.Model != "" {
		product.Model = req.Model
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(id)
}

// Escalation operations

func (s *AdminService) ListEscalations(ctx context.Context) ([]*domain.Escalation, error) {
	return s.escalationRepo.List()
}

func (s *AdminService) UpdateEscalation(ctx context.Context, id string, req *domain.UpdateEscalationRequest) error {
	if req.Status != domain.EscalationStatusPending && req.Status != domain.EscalationStatusResolved {
		return domain.ErrInvalidRequest
	}
	return s.escalationRepo.UpdateStatus(id, req.Status)
}

// Stats

func (s *AdminService) GetStats(ctx context.Context) (*domain.Stats, error) {
	businesses, _ := s.businessRepo.List()
	products, _ := s.productRepo.Count()
	exchanges, _ := s.chatLogRepo.Count()
	unhelpful, _ := s.chatLogRepo.CountAllUnhelpful()
	open, _ := s.escalationRepo.CountOpen()

	return &domain.Stats{
		TotalBusinesses:    len(businesses),
		TotalProducts:      products,
		TotalExchanges:     exchanges,
		UnhelpfulExchanges: unhelpful,
		OpenEscalations:    open,
	}, nil
}
