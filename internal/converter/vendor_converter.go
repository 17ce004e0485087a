package converter

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/service"

	"github.com/google/uuid"
)

// VendorToResponse converts a Vendor entity to VendorResponse DTO
func VendorToResponse(vendor *entity.Vendor) *dto.VendorResponse {
	if vendor == nil {
		return nil
	}

	response := &dto.VendorResponse{
		ID:              vendor.ID,
		UserID:          vendor.UserID,
		ShopName:        vendor.ShopName,
		Address:         vendor.Address,
		City:            vendor.City,
		Status:          string(vendor.Status),
		RejectionReason: vendor.RejectionReason,
		OpeningTime:     vendor.OpeningTime,
		ClosingTime:     vendor.ClosingTime,
		CreatedAt:       vendor.CreatedAt,
	}

	if vendor.User.ID != uuid.Nil {
		response.OwnerName = vendor.User.FullName()
	}

	return response
}

// VendorsToResponses converts a slice of Vendor entities to VendorResponse DTOs
func VendorsToResponses(vendors []entity.Vendor) []dto.VendorResponse {
	responses := make([]dto.VendorResponse, len(vendors))
	for i, vendor := range vendors {
		resp := VendorToResponse(&vendor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// VendorServiceToResponse converts a VendorService offering, taking the
// display name from the preloaded catalog entry when present.
func VendorServiceToResponse(offering *entity.VendorService) dto.VendorServiceResponse {
	response := dto.VendorServiceResponse{
		ID:               offering.ID,
		CatalogServiceID: offering.CatalogServiceID,
		Category:         offering.Category,
		Price:            offering.Price,
		CreatedAt:        offering.CreatedAt,
	}
	if offering.CatalogService.ID != uuid.Nil {
		response.Name = offering.CatalogService.Name
	}
	return response
}

func VendorProductToResponse(offering *entity.VendorProduct) dto.VendorProductResponse {
	response := dto.VendorProductResponse{
		ID:               offering.ID,
		CatalogProductID: offering.CatalogProductID,
		Category:         offering.Category,
		Price:            offering.Price,
		CreatedAt:        offering.CreatedAt,
	}
	if offering.CatalogProduct.ID != uuid.Nil {
		response.Name = offering.CatalogProduct.Name
	}
	return response
}

// MatchToEligibleVendorResponse converts one matching-engine candidate
func MatchToEligibleVendorResponse(match service.VendorMatch) dto.EligibleVendorResponse {
	response := dto.EligibleVendorResponse{
		ID:        match.Vendor.ID,
		ShopName:  match.Vendor.ShopName,
		Location:  match.Vendor.Location(),
		MatchType: match.MatchType,
		Inventory: match.Inventory,
	}
	if match.Vendor.User.ID != uuid.Nil {
		response.OwnerName = match.Vendor.User.FullName()
	}
	return response
}

// MatchResultToEligibleVendorsResponse converts a full matching-engine result
func MatchResultToEligibleVendorsResponse(result *service.MatchResult) *dto.EligibleVendorsResponse {
	if result == nil {
		return nil
	}

	response := &dto.EligibleVendorsResponse{
		ServiceVendors: make([]dto.EligibleVendorResponse, 0, len(result.ServiceVendors)),
		ProductVendors: make([]dto.EligibleVendorResponse, 0, len(result.ProductVendors)),
	}
	for _, match := range result.ServiceVendors {
		response.ServiceVendors = append(response.ServiceVendors, MatchToEligibleVendorResponse(match))
	}
	for _, match := range result.ProductVendors {
		response.ProductVendors = append(response.ProductVendors, MatchToEligibleVendorResponse(match))
	}
	return response
}
