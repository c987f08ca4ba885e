package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"voice-ecommerce-be/internal/dto"
	"voice-ecommerce-be/internal/pkg/serverutils"
	"voice-ecommerce-be/internal/service"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	SearchProducts(ctx *fiber.Ctx) error
	GetProduct(ctx *fiber.Ctx) error
	GetMetadata(ctx *fiber.Ctx) error
}

type productController struct {
	service  service.ICatalogService
	validate *validator.Validate
}

func NewProductController(service service.ICatalogService) IProductController {
	return &productController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	r.Get("/products", c.SearchProducts)
	r.Get("/products/:id", c.GetProduct)
	r.Get("/metadata", c.GetMetadata)
}

// SearchProducts serves the manual UI filters. It calls the same catalog
// search as voice commands, so both paths always agree.
func (c *productController) SearchProducts(ctx *fiber.Ctx) error {
	var req dto.SearchProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid query parameters"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	result := c.service.Search(service.SearchParams{
		Query:    req.Query,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Brand:    req.Brand,
		SortBy:   req.SortBy,
		Limit:    req.Limit,
	})

	return ctx.JSON(dto.SearchProductsResponse{
		Success: true,
		Data: dto.SearchProductsData{
			Products:       result.Products,
			Total:          result.Total,
			Returned:       result.Returned,
			FiltersApplied: result.FiltersApplied,
		},
		Metadata: dto.SearchMetadata{
			AvailableCategories: c.service.Categories(),
			AvailableBrands:     c.service.Brands(),
			PriceRange:          c.service.PriceRange(),
		},
	})
}

func (c *productController) GetProduct(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	product, found := c.service.GetByID(id)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Product not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse(product))
}

func (c *productController) GetMetadata(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.MetadataResponse{
		Categories: c.service.Categories(),
		Brands:     c.service.Brands(),
		PriceRange: c.service.PriceRange(),
	})
}
