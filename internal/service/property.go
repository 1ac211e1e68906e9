package service

import (
	"context"
	"fmt"

	"github.com/Milkwastaken07/DEHA-Rental/internal/domain"
	"github.com/Milkwastaken07/DEHA-Rental/internal/logger"
	"github.com/Milkwastaken07/DEHA-Rental/internal/repository"

	"github.com/mmcloughlin/geohash"
)

// geohashPrecision gives ~5m cells, enough for per-address indexing.
const geohashPrecision = 9

type propertyService struct {
	propertyRepo repository.PropertyRepository
	locationRepo repository.LocationRepository
	managerRepo  repository.ManagerRepository
	geocoder     Geocoder
}

func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	locationRepo repository.LocationRepository,
	managerRepo repository.ManagerRepository,
	geocoder Geocoder,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		locationRepo: locationRepo,
		managerRepo:  managerRepo,
		geocoder:     geocoder,
	}
}

func (s *propertyService) Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	return s.propertyRepo.Search(ctx, filter)
}

func (s *propertyService) Get(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error) {
	if in.Address == "" || in.City == "" || in.Country == "" || in.ManagerCognitoID == "" {
		return nil, fmt.Errorf("address, city, country and managerCognitoId are required: %w", domain.ErrInvalid)
	}
	if in.PricePerMonth < 0 || in.SecurityDeposit < 0 || in.ApplicationFee < 0 {
		return nil, fmt.Errorf("price, deposit and fee must be non-negative: %w", domain.ErrInvalid)
	}
	if in.Beds < 0 || in.SquareFeet < 0 || in.Baths < 0 {
		return nil, fmt.Errorf("beds, baths and square feet must be non-negative: %w", domain.ErrInvalid)
	}

	if _, err := s.managerRepo.GetByCognitoID(ctx, in.ManagerCognitoID); err != nil {
		return nil, err
	}

	coords, err := s.geocoder.Geocode(ctx, in.Address, in.City, in.Country, in.PostalCode)
	if err != nil {
		logger.Error("Geocoding failed", "op", "CreateProperty", "address", in.Address, "error", err)
		return nil, fmt.Errorf("geocode address: %w", err)
	}

	loc := &domain.Location{
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		PostalCode:  in.PostalCode,
		Coordinates: coords,
		Geohash:     geohash.EncodeWithPrecision(coords.Latitude, coords.Longitude, geohashPrecision),
	}
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	p := &domain.Property{
		Name:              in.Name,
		Description:       in.Description,
		PricePerMonth:     in.PricePerMonth,
		SecurityDeposit:   in.SecurityDeposit,
		ApplicationFee:    in.ApplicationFee,
		PhotoURLs:         in.PhotoURLs,
		Amenities:         in.Amenities,
		Highlights:        in.Highlights,
		IsPetsAllowed:     in.IsPetsAllowed,
		IsParkingIncluded: in.IsParkingIncluded,
		Beds:              in.Beds,
		Baths:             in.Baths,
		SquareFeet:        in.SquareFeet,
		PropertyType:      domain.PropertyType(in.PropertyType),
		LocationID:        loc.ID,
		ManagerCognitoID:  in.ManagerCognitoID,
	}
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Location = loc
	return p, nil
}
