package handler

import (
	"errors"
	"net/http"

	"soulseer-admin/internal/dto"
	"soulseer-admin/internal/model"
	"soulseer-admin/internal/repository"
	"soulseer-admin/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	return h.save(c, "")
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *ProductHandler) save(c echo.Context, id string) error {
	ctx := c.Request().Context()

	var req dto.SaveProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Save(ctx, req.ToModel(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict)
		}
		return err
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}

	return c.JSON(status, dto.NewProductResponse(product))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := &repository.ProductFilter{
		Search: c.QueryParam("q"),
	}
	if v := c.QueryParam("product_type"); v != "" {
		productType := model.ProductType(v)
		filter.ProductType = &productType
	}
	if v := c.QueryParam("reader_id"); v != "" {
		filter.ReaderID = &v
	}
	if isActive, ok := boolParam(c, "is_active"); ok {
		filter.IsActive = &isActive
	}

	products, err := h.productService.List(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.productService.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
