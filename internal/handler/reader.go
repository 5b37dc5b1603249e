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

type ReaderHandler struct {
	readerService service.ReaderService
}

func NewReaderHandler(readerService service.ReaderService) *ReaderHandler {
	return &ReaderHandler{
		readerService: readerService,
	}
}

func (h *ReaderHandler) CreateReader(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateReaderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reader, err := h.readerService.Create(ctx, req.ToModel())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "reader with this clerk_id or email already exists")
		}
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewReaderResponse(reader))
}

func (h *ReaderHandler) GetReader(c echo.Context) error {
	ctx := c.Request().Context()

	reader, err := h.readerService.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewReaderResponse(reader))
}

func (h *ReaderHandler) ListReaders(c echo.Context) error {
	ctx := c.Request().Context()

	filter := &repository.ReaderFilter{
		Search: c.QueryParam("q"),
	}
	if v := c.QueryParam("status"); v != "" {
		status := model.ReaderStatus(v)
		filter.Status = &status
	}
	if isActive, ok := boolParam(c, "is_active"); ok {
		filter.IsActive = &isActive
	}

	readers, err := h.readerService.List(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewReaderListResponse(readers))
}

func (h *ReaderHandler) UpdateReader(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateReaderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reader, err := h.readerService.Update(ctx, req.ToModel(c.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "reader with this email already exists")
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewReaderResponse(reader))
}

func (h *ReaderHandler) DeactivateReader(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.readerService.Deactivate(ctx, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "deactivated",
	})
}

func boolParam(c echo.Context, name string) (bool, bool) {
	switch c.QueryParam(name) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}
