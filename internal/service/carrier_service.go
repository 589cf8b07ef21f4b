package service

import (
	"context"
	"fmt"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
)

// CarrierService manages the carrier profile of a user.
type CarrierService interface {
	GetCarrier(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error)
	UpdateCarrier(ctx context.Context, userID uuid.UUID, patch domain.CarrierPatch) (*domain.Carrier, error)
	DeleteCarrier(ctx context.Context, userID uuid.UUID) error
}

type carrierService struct {
	carrierStore store.CarrierStore
}

// NewCarrierService creates a CarrierService.
func NewCarrierService(carrierStore store.CarrierStore) CarrierService {
	return &carrierService{carrierStore: carrierStore}
}

func (s *carrierService) GetCarrier(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	carrier, err := s.carrierStore.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve carrier: %w", err)
	}
	if carrier == nil {
		return nil, store.ErrCarrierNotFound
	}
	return carrier, nil
}

func (s *carrierService) UpdateCarrier(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.CarrierPatch,
) (*domain.Carrier, error) {
	carrier, err := s.carrierStore.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update carrier: %w", err)
	}
	return carrier, nil
}

func (s *carrierService) DeleteCarrier(ctx context.Context, userID uuid.UUID) error {
	if err := s.carrierStore.DeleteByKey(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete carrier: %w", err)
	}
	return nil
}
