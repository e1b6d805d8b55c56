package firestore

import (
	"context"
	"fmt"

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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{
		client: client,
	}
}

func attemptDocID(userID, idempotencyKey string) string {
	return fmt.Sprintf("%s:%s", userID, idempotencyKey)
}

// PlaceOrder commits a checkout in a single transaction: the order document,
// the idempotency record and the consumed cart items all change together.
// When the idempotency key was already committed, the previous order ID is
// returned and nothing is written.
func (repo *orderRepository) PlaceOrder(ctx context.Context, placement *repository.OrderPlacement) (*repository.PlacementResult, error) {
	attemptRef := repo.client.Collection(collectionCheckoutAttempts).
		Doc(attemptDocID(placement.Order.UserID, placement.IdempotencyKey))

	result := &repository.PlacementResult{}

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Reads must precede writes within a Firestore transaction.
		attemptSnap, err := tx.Get(attemptRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return errors.Wrap(err, "failed to read checkout attempt")
		}

		if attemptSnap != nil && attemptSnap.Exists() {
			var attemptM model.CheckoutAttemptModel
			if err := attemptSnap.DataTo(&attemptM); err != nil {
				return errors.Wrap(err, "failed to decode checkout attempt")
			}
			result.OrderID = attemptM.OrderID
			result.AlreadyPlaced = true

			return nil
		}

		orderRef := repo.client.Collection(collectionOrders).NewDoc()
		if err := tx.Create(orderRef, model.FromOrderDomain(placement.Order)); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		attempt := &model.CheckoutAttemptModel{
			UserID:  placement.Order.UserID,
			OrderID: orderRef.ID,
		}
		if err := tx.Create(attemptRef, attempt); err != nil {
			return errors.Wrap(err, "failed to record checkout attempt")
		}

		for _, productID := range placement.ConsumeProductIDs {
			itemRef := repo.client.Collection(collectionCarts).Doc(placement.Order.UserID).
				Collection(collectionCartItems).Doc(productID)
			if err := tx.Delete(itemRef); err != nil {
				return errors.Wrap(err, "failed to consume cart item")
			}
		}

		result.OrderID = orderRef.ID
		result.AlreadyPlaced = false

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to place order")
	}

	return result, nil
}

// FindOrderByID retrieves an order by its document ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, orderID string) (*entity.Order, error) {
	snapshot, err := repo.client.Collection(collectionOrders).Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find order by ID")
	}

	var orderM model.OrderModel
	if err := snapshot.DataTo(&orderM); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}

	return model.ToOrderDomain(snapshot.Ref.ID, &orderM), nil
}

// ListOrdersByUser retrieves all orders owned by a user, newest first.
// Requires the composite index on (userId, createdAt desc).
func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)

	iter := repo.client.Collection(collectionOrders).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list orders by user")
		}

		var orderM model.OrderModel
		if err := snapshot.DataTo(&orderM); err != nil {
			return nil, errors.Wrap(err, "failed to decode order document")
		}

		orders = append(orders, model.ToOrderDomain(snapshot.Ref.ID, &orderM))
	}

	return orders, nil
}
