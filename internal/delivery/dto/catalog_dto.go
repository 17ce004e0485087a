package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateCatalogServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Duration    int             `json:"duration" validate:"omitempty,min=0"`
}

type CreateCatalogProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// Response DTOs

type CatalogServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CatalogProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CatalogServiceListResponse struct {
	Services []CatalogServiceResponse `json:"services"`
	Total    int                      `json:"total"`
}

type CatalogProductListResponse struct {
	Products []CatalogProductResponse `json:"products"`
	Total    int                      `json:"total"`
}
