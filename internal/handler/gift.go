package handler

import (
	"errors"
	"net/http"

	"soulseer-admin/internal/dto"
	"soulseer-admin/internal/repository"
	"soulseer-admin/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type GiftHandler struct {
	giftService service.GiftService
}

func NewGiftHandler(giftService service.GiftService) *GiftHandler {
	return &GiftHandler{
		giftService: giftService,
	}
}

func (h *GiftHandler) CreateGift(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SaveGiftRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	gift, err := h.giftService.Create(ctx, req.ToModel(""))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewGiftResponse(gift))
}

func (h *GiftHandler) UpdateGift(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SaveGiftRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	gift, err := h.giftService.Update(ctx, req.ToModel(c.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewGiftResponse(gift))
}

func (h *GiftHandler) GetGift(c echo.Context) error {
	ctx := c.Request().Context()

	gift, err := h.giftService.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.NewGiftResponse(gift))
}

func (h *GiftHandler) ListGifts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := &repository.GiftFilter{
		Search: c.QueryParam("q"),
	}
	if isActive, ok := boolParam(c, "is_active"); ok {
		filter.IsActive = &isActive
	}

	gifts, err := h.giftService.List(ctx, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewGiftListResponse(gifts))
}

func (h *GiftHandler) DeleteGift(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.giftService.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
