package service

import (
	"context"
	"fmt"
	"log/slog"

	"soulseer-admin/internal/client"
	"soulseer-admin/internal/model"
	"soulseer-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	Save(ctx context.Context, product *model.Product) (*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter *repository.ProductFilter) ([]*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productServiceImpl struct {
	productRepo  repository.ProductRepository
	stripeClient client.StripeClient
	currency     string
	logger       *slog.Logger
}

func NewProductService(
	productRepo repository.ProductRepository,
	stripeClient client.StripeClient,
	currency string,
	logger *slog.Logger,
) ProductService {
	return &productServiceImpl{
		productRepo:  productRepo,
		stripeClient: stripeClient,
		currency:     currency,
		logger:       logger,
	}
}

// Save handles both creation and edits. A product without a Stripe id is
// synced to the Stripe catalog first, and the returned id lands in the same
// save as the rest of the edit. A product that already carries an id is
// never re-synced. A sync failure is logged and the save proceeds with the
// id left empty, to be picked up by the next save.
func (s *productServiceImpl) Save(ctx context.Context, product *model.Product) (*model.Product, error) {
	creating := product.ID == ""
	if creating {
		product.ID = uuid.NewString()
	} else {
		existing, err := s.productRepo.FindByID(ctx, product.ID)
		if err != nil {
			return nil, fmt.Errorf("find product: %w", err)
		}
		// Once assigned, the Stripe id is immutable
		product.StripeProductID = existing.StripeProductID
	}

	if product.StripeProductID == "" {
		if err := s.syncWithStripe(ctx, product); err != nil {
			s.logger.Error("error syncing product with stripe",
				"product_id", product.ID,
				"name", product.Name,
				"error", err,
			)
		}
	}

	if creating {
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("create product: %w", err)
		}
		return product, nil
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return s.productRepo.FindByID(ctx, product.ID)
}

// syncWithStripe creates the catalog product and its price. The Stripe id
// is placed on the record only after both calls succeed; only the product
// id is kept, the price id stays in Stripe.
func (s *productServiceImpl) syncWithStripe(ctx context.Context, product *model.Product) error {
	stripeProductID, err := s.stripeClient.CreateProduct(ctx, product.Name, product.Description)
	if err != nil {
		return fmt.Errorf("stripe create product: %w", err)
	}

	_, err = s.stripeClient.CreatePrice(ctx, stripeProductID, UnitAmount(product.Price), s.currency)
	if err != nil {
		return fmt.Errorf("stripe create price: %w", err)
	}

	product.StripeProductID = stripeProductID
	return nil
}

// UnitAmount converts a price to Stripe's integer minor units: rounded to
// the nearest cent, times 100. 9.99 → 999.
func UnitAmount(price decimal.Decimal) int64 {
	return price.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

func (s *productServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productServiceImpl) List(ctx context.Context, filter *repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
