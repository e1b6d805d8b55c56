package firestore

import (
	"context"

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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{
		client: client,
	}
}

func (repo *cartRepository) itemRef(userID, productID string) *firestore.DocumentRef {
	return repo.client.Collection(collectionCarts).Doc(userID).
		Collection(collectionCartItems).Doc(productID)
}

// UpsertItem writes an item keyed by its product ID. Set overwrites any
// existing document, which is the re-add-replaces behavior.
func (repo *cartRepository) UpsertItem(ctx context.Context, userID string, item *entity.CartItem) error {
	itemM := model.FromCartItemDomain(item)

	if _, err := repo.itemRef(userID, item.ProductID).Set(ctx, itemM); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// FindItemByID retrieves a single cart item by its product ID.
func (repo *cartRepository) FindItemByID(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	snapshot, err := repo.itemRef(userID, productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find cart item")
	}

	var itemM model.CartItemModel
	if err := snapshot.DataTo(&itemM); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart item document")
	}

	return model.ToCartItemDomain(snapshot.Ref.ID, &itemM), nil
}

// ListItems retrieves all pending items for a user, oldest added first.
func (repo *cartRepository) ListItems(ctx context.Context, userID string) (entity.CartItems, error) {
	items := make(entity.CartItems, 0)

	iter := repo.client.Collection(collectionCarts).Doc(userID).
		Collection(collectionCartItems).
		OrderBy("addedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list cart items")
		}

		var itemM model.CartItemModel
		if err := snapshot.DataTo(&itemM); err != nil {
			return nil, errors.Wrap(err, "failed to decode cart item document")
		}

		items = append(items, model.ToCartItemDomain(snapshot.Ref.ID, &itemM))
	}

	return items, nil
}

// UpdateQuantity sets an item's quantity to an absolute value.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	_, err := repo.itemRef(userID, productID).Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCartItemNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update cart item quantity")
	}

	return nil
}

// DeleteItem removes an item from the cart. Firestore deletes are
// idempotent, so deleting an absent item is not an error.
func (repo *cartRepository) DeleteItem(ctx context.Context, userID, productID string) error {
	if _, err := repo.itemRef(userID, productID).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete cart item")
	}

	return nil
}
