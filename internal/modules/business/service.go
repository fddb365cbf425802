package business

import (
	"context"
	"errors"

	"zebratime/internal/domain"
	"zebratime/internal/pkg/validator"
	"zebratime/internal/repository"
)

type Service struct {
	businesses BusinessRepository
	rules      RuleRepository
	tables     TableRepository
}

func NewService(businesses BusinessRepository, rules RuleRepository, tables TableRepository) *Service {
	return &Service{businesses: businesses, rules: rules, tables: tables}
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Business, error) {
	return s.businesses.ListByOwner(ctx, ownerID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateBusinessRequest) (*domain.Business, error) {
	mode := domain.ConfirmationMode(req.ConfirmationMode)
	if mode == "" {
		mode = domain.ConfirmManual
	}
	if mode != domain.ConfirmAuto && mode != domain.ConfirmManual {
		return nil, ErrValidation
	}
	if req.SlotDuration < 0 {
		return nil, ErrValidation
	}

	b := &domain.Business{
		OwnerID:          ownerID,
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		Address:          req.Address,
		City:             req.City,
		Phone:            req.Phone,
		Timezone:         req.Timezone,
		SlotDuration:     req.SlotDuration,
		ConfirmationMode: mode,
		IsActive:         true,
	}
	if err := s.businesses.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBusinessRequest) (*domain.Business, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.City != nil {
		b.City = *req.City
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.Timezone != nil {
		b.Timezone = *req.Timezone
	}
	if req.SlotDuration != nil {
		if *req.SlotDuration < 0 {
			return nil, ErrValidation
		}
		b.SlotDuration = *req.SlotDuration
	}
	if req.ConfirmationMode != nil {
		mode := domain.ConfirmationMode(*req.ConfirmationMode)
		if mode != domain.ConfirmAuto && mode != domain.ConfirmManual {
			return nil, ErrValidation
		}
		b.ConfirmationMode = mode
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.businesses.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListRules(ctx context.Context, businessID int64) ([]domain.AvailabilityRule, error) {
	return s.rules.ListByBusiness(ctx, businessID)
}

func (s *Service) AddRule(ctx context.Context, businessID int64, req RuleRequest) (*domain.AvailabilityRule, error) {
	if err := validateRule(req); err != nil {
		return nil, err
	}
	rule := &domain.AvailabilityRule{
		BusinessID: businessID,
		DayOfWeek:  req.DayOfWeek,
		Open:       req.Open,
		Close:      req.Close,
	}
	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// ReplaceRules swaps the whole weekly schedule, the way the settings screen
// saves it in one shot.
func (s *Service) ReplaceRules(ctx context.Context, businessID int64, reqs []RuleRequest) ([]domain.AvailabilityRule, error) {
	rules := make([]domain.AvailabilityRule, 0, len(reqs))
	for _, req := range reqs {
		if err := validateRule(req); err != nil {
			return nil, err
		}
		rules = append(rules, domain.AvailabilityRule{
			BusinessID: businessID,
			DayOfWeek:  req.DayOfWeek,
			Open:       req.Open,
			Close:      req.Close,
		})
	}
	if err := s.rules.Replace(ctx, businessID, rules); err != nil {
		return nil, err
	}
	return s.rules.ListByBusiness(ctx, businessID)
}

func (s *Service) DeleteRule(ctx context.Context, ruleID, businessID int64) error {
	err := s.rules.Delete(ctx, ruleID, businessID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateRule(req RuleRequest) error {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return ErrValidation
	}
	if !validator.IsClock(req.Open) || !validator.IsClock(req.Close) {
		return ErrValidation
	}
	return nil
}

func (s *Service) ListTables(ctx context.Context, businessID int64) ([]domain.Table, error) {
	return s.tables.ListAllByBusiness(ctx, businessID)
}

func (s *Service) AddTable(ctx context.Context, businessID int64, req TableRequest) (*domain.Table, error) {
	t := &domain.Table{
		BusinessID: businessID,
		Label:      req.Label,
		Capacity:   req.Capacity,
		IsActive:   true,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTable(ctx context.Context, tableID, businessID int64, req TableRequest) (*domain.Table, error) {
	t, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.BusinessID != businessID {
		return nil, ErrNotFound
	}

	t.Label = req.Label
	t.Capacity = req.Capacity
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.tables.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTable(ctx context.Context, tableID, businessID int64) error {
	err := s.tables.Delete(ctx, tableID, businessID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
