package converter

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
)

// CatalogServiceToResponse converts a CatalogService entity to its DTO
func CatalogServiceToResponse(svc *entity.CatalogService) *dto.CatalogServiceResponse {
	if svc == nil {
		return nil
	}

	return &dto.CatalogServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Category:    svc.Category,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
		IsActive:    svc.IsActive,
		CreatedAt:   svc.CreatedAt,
	}
}

// CatalogServicesToResponses converts a slice of CatalogService entities
func CatalogServicesToResponses(services []entity.CatalogService) []dto.CatalogServiceResponse {
	responses := make([]dto.CatalogServiceResponse, len(services))
	for i, svc := range services {
		resp := CatalogServiceToResponse(&svc)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// CatalogProductToResponse converts a CatalogProduct entity to its DTO
func CatalogProductToResponse(prod *entity.CatalogProduct) *dto.CatalogProductResponse {
	if prod == nil {
		return nil
	}

	return &dto.CatalogProductResponse{
		ID:          prod.ID,
		Name:        prod.Name,
		Category:    prod.Category,
		Description: prod.Description,
		Price:       prod.Price,
		IsActive:    prod.IsActive,
		CreatedAt:   prod.CreatedAt,
	}
}

// CatalogProductsToResponses converts a slice of CatalogProduct entities
func CatalogProductsToResponses(products []entity.CatalogProduct) []dto.CatalogProductResponse {
	responses := make([]dto.CatalogProductResponse, len(products))
	for i, prod := range products {
		resp := CatalogProductToResponse(&prod)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
