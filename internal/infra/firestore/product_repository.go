package firestore

import (
	"context"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{
		client: client,
	}
}

// FindProductByID retrieves a single catalog entry by its document ID.
func (repo *productRepository) FindProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	snapshot, err := repo.client.Collection(collectionProducts).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find product by ID")
	}

	var productM model.ProductModel
	if err := snapshot.DataTo(&productM); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return model.ToProductDomain(snapshot.Ref.ID, &productM), nil
}

// ListProducts retrieves catalog entries matching the filter. Category is an
// indexed equality query; name search is a substring match applied after the
// fetch, since the store has no substring operator.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.client.Collection(collectionProducts).Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	products := make([]*entity.Product, 0)
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
		}

		var productM model.ProductModel
		if err := snapshot.DataTo(&productM); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}

		if search != "" && !strings.Contains(strings.ToLower(productM.Name), search) {
			continue
		}

		products = append(products, model.ToProductDomain(snapshot.Ref.ID, &productM))
	}

	return products, nil
}
