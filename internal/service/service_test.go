package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"soulseer-admin/internal/client"
	"soulseer-admin/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ReaderProfile{},
		&model.Product{},
		&model.VirtualGift{},
	))

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackendClient records provisioning calls and fails on demand.
type fakeBackendClient struct {
	calls []*client.ProvisionReaderRequest
	err   error
}

func (f *fakeBackendClient) ProvisionReader(_ context.Context, req *client.ProvisionReaderRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

// fakeStripeClient records catalog calls and fails on demand.
type fakeStripeClient struct {
	productID string

	productCalls []struct{ Name, Description string }
	priceCalls   []struct {
		ProductID  string
		UnitAmount int64
		Currency   string
	}

	productErr error
	priceErr   error
}

func (f *fakeStripeClient) CreateProduct(_ context.Context, name, description string) (string, error) {
	f.productCalls = append(f.productCalls, struct{ Name, Description string }{name, description})
	if f.productErr != nil {
		return "", f.productErr
	}
	return f.productID, nil
}

func (f *fakeStripeClient) CreatePrice(_ context.Context, productID string, unitAmount int64, currency string) (string, error) {
	f.priceCalls = append(f.priceCalls, struct {
		ProductID  string
		UnitAmount int64
		Currency   string
	}{productID, unitAmount, currency})
	if f.priceErr != nil {
		return "", f.priceErr
	}
	return "price_" + f.productID, nil
}
