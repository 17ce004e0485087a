package converter

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                 booking.ID,
		CustomerID:         booking.CustomerID,
		VendorID:           booking.VendorID,
		EmployeeID:         booking.EmployeeID,
		BookingType:        string(booking.BookingType),
		Status:             string(booking.Status),
		ScheduledDate:      booking.ScheduledDate,
		ScheduledTime:      booking.ScheduledTime,
		Subtotal:           booking.Subtotal,
		Discount:           booking.Discount,
		Tax:                booking.Tax,
		Total:              booking.Total,
		Notes:              booking.Notes,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.Customer.ID != uuid.Nil {
		response.CustomerName = booking.Customer.FullName()
	}
	if booking.Vendor != nil {
		response.VendorShopName = booking.Vendor.ShopName
	}
	if booking.Employee != nil {
		response.EmployeeName = booking.Employee.Name
	}

	for _, item := range booking.Services {
		response.Services = append(response.Services, BookingServiceToItemResponse(item))
	}
	for _, item := range booking.Products {
		response.Products = append(response.Products, BookingProductToItemResponse(item))
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// BookingServiceToItemResponse converts one service line item
func BookingServiceToItemResponse(item entity.BookingService) dto.BookingItemResponse {
	response := dto.BookingItemResponse{
		ID:               item.ID,
		CatalogID:        item.CatalogServiceID,
		AssignedVendorID: item.AssignedVendorID,
		Status:           string(item.Status),
		Price:            item.Price,
		Quantity:         item.Quantity,
	}
	if item.CatalogService.ID != uuid.Nil {
		response.Name = item.CatalogService.Name
		response.Category = item.CatalogService.Category
	}
	return response
}

// BookingProductToItemResponse converts one product line item
func BookingProductToItemResponse(item entity.BookingProduct) dto.BookingItemResponse {
	response := dto.BookingItemResponse{
		ID:               item.ID,
		CatalogID:        item.CatalogProductID,
		AssignedVendorID: item.AssignedVendorID,
		Status:           string(item.Status),
		Price:            item.Price,
		Quantity:         item.Quantity,
	}
	if item.CatalogProduct.ID != uuid.Nil {
		response.Name = item.CatalogProduct.Name
		response.Category = item.CatalogProduct.Category
	}
	return response
}

// BookingEventToResponse converts a BookingEvent entity to its DTO
func BookingEventToResponse(event *entity.BookingEvent) *dto.BookingEventResponse {
	if event == nil {
		return nil
	}

	return &dto.BookingEventResponse{
		ID:        event.ID,
		BookingID: event.BookingID,
		Type:      event.Type,
		ActorID:   event.ActorID,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}
}

// BookingEventsToResponses converts a slice of BookingEvent entities
func BookingEventsToResponses(events []entity.BookingEvent) []dto.BookingEventResponse {
	responses := make([]dto.BookingEventResponse, len(events))
	for i, event := range events {
		resp := BookingEventToResponse(&event)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
