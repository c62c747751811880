package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
	}
}

// ListAll handles listing the catalog.
func (h *ProductHandler) ListAll(c echo.Context) error {
	products, err := h.productUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	responses := make([]*ProductResponse, len(products))
	for i, product := range products {
		responses[i] = toProductResponse(product)
	}

	return response.Success(c, http.StatusOK, responses, "Products retrieved successfully")
}

// GetByID handles fetching a single product.
func (h *ProductHandler) GetByID(c echo.Context) error {
	product, err := h.productUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved successfully")
}

// Create handles adding a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.Create(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// Update handles replacing a product's stored fields.
func (h *ProductHandler) Update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// Delete handles removing a product from the catalog.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
