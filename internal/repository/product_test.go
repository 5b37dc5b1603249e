package repository

import (
	"context"
	"testing"
	"time"

	"soulseer-admin/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProduct(name string) *model.Product {
	return &model.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "a " + name,
		ProductType: model.ProductTypeService,
		Price:       decimal.RequireFromString("9.99"),
		IsActive:    true,
		Images:      []string{},
		Metadata:    map[string]string{},
	}
}

func TestProductRepository_ListNewestFirst(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		product := newProduct(name)
		product.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, product))
	}

	products, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "newest", products[0].Name)
	assert.Equal(t, "oldest", products[2].Name)
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	service := newProduct("tarot session")
	require.NoError(t, repo.Create(ctx, service))

	physical := newProduct("crystal set")
	physical.ProductType = model.ProductTypePhysical
	physical.InventoryCount = ptr(12)
	require.NoError(t, repo.Create(ctx, physical))

	productType := model.ProductTypePhysical
	products, err := repo.List(ctx, &ProductFilter{ProductType: &productType})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "crystal set", products[0].Name)

	products, err = repo.List(ctx, &ProductFilter{Search: "tarot"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "tarot session", products[0].Name)
}

func TestProductRepository_UpdateClaimsStripeIDOnce(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newProduct("tarot session")
	require.NoError(t, repo.Create(ctx, product))

	// First update carries a freshly assigned id
	product.StripeProductID = "prod_first"
	require.NoError(t, repo.Update(ctx, product))

	saved, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "prod_first", saved.StripeProductID)

	// A later update cannot overwrite it, whatever the caller passes
	saved.StripeProductID = "prod_second"
	saved.Name = "renamed session"
	require.NoError(t, repo.Update(ctx, saved))

	saved, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "prod_first", saved.StripeProductID)
	assert.Equal(t, "renamed session", saved.Name)
}

func TestProductRepository_UpdateMissingProduct(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	err := repo.Update(context.Background(), newProduct("ghost"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_DeletingReaderClearsReference(t *testing.T) {
	db := newTestDB(t)
	productRepo := NewProductRepository(db)
	readerRepo := NewReaderRepository(db)
	ctx := context.Background()

	reader := newReader("clerk_1", "a@example.com", "Luna")
	require.NoError(t, readerRepo.Create(ctx, reader))

	product := newProduct("reading with luna")
	product.ReaderID = &reader.ID
	require.NoError(t, productRepo.Create(ctx, product))

	require.NoError(t, db.WithContext(ctx).Delete(&model.ReaderProfile{}, "id = ?", reader.ID).Error)

	saved, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, saved.ReaderID)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newProduct("tarot session")
	require.NoError(t, repo.Create(ctx, product))
	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
