package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"soulseer-admin/internal/dto"
	"soulseer-admin/internal/model"
	"soulseer-admin/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

// fakeReaderService backs handler tests without a database.
type fakeReaderService struct {
	readers   []*model.ReaderProfile
	createErr error
}

func (f *fakeReaderService) Create(_ context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	reader.ID = "reader-1"
	return reader, nil
}

func (f *fakeReaderService) Update(_ context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error) {
	return reader, nil
}

func (f *fakeReaderService) Get(_ context.Context, id string) (*model.ReaderProfile, error) {
	for _, r := range f.readers {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReaderService) List(_ context.Context, _ *repository.ReaderFilter) ([]*model.ReaderProfile, error) {
	return f.readers, nil
}

func (f *fakeReaderService) Deactivate(_ context.Context, id string) error {
	return nil
}

func TestReaderHandler_ListIncludesStatusBadge(t *testing.T) {
	svc := &fakeReaderService{
		readers: []*model.ReaderProfile{
			{
				ID: "r1", ClerkID: "c1", Email: "a@example.com", DisplayName: "Luna",
				Status:   model.ReaderStatusOnline,
				ChatRate: decimal.RequireFromString("2.99"),
				CreatedAt: time.Now(),
			},
			{
				ID: "r2", ClerkID: "c2", Email: "b@example.com", DisplayName: "Sol",
				Status: model.ReaderStatusBusy,
			},
		},
	}
	h := NewReaderHandler(svc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/readers", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListReaders(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*dto.ReaderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "green", got[0].StatusBadge)
	assert.Equal(t, "orange", got[1].StatusBadge)
	assert.Equal(t, "2.99", got[0].ChatRate)
}

func TestReaderHandler_CreateValidatesRequest(t *testing.T) {
	h := NewReaderHandler(&fakeReaderService{})
	e := newTestEcho()

	body := `{"clerk_id": "", "email": "not-an-email", "display_name": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/readers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.CreateReader(e.NewContext(req, rec))
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestReaderHandler_CreateDuplicateIsConflict(t *testing.T) {
	h := NewReaderHandler(&fakeReaderService{createErr: gorm.ErrDuplicatedKey})
	e := newTestEcho()

	body := `{"clerk_id": "c1", "email": "a@example.com", "display_name": "Luna"}`
	req := httptest.NewRequest(http.MethodPost, "/api/readers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.CreateReader(e.NewContext(req, rec))
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestReaderHandler_CreateAppliesDefaultRates(t *testing.T) {
	h := NewReaderHandler(&fakeReaderService{})
	e := newTestEcho()

	body := `{"clerk_id": "c1", "email": "a@example.com", "display_name": "Luna", "specialties": ["tarot"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/readers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReader(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ReaderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2.99", got.ChatRate)
	assert.Equal(t, "3.99", got.CallRate)
	assert.Equal(t, "4.99", got.VideoRate)
	assert.Equal(t, "offline", got.Status)
	assert.Equal(t, "gray", got.StatusBadge)
}
