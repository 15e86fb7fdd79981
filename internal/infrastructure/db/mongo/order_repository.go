package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"id": id}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// SetFields applies a field-level $set so concurrent updates touching
// disjoint fields both survive.
func (r *OrderRepository) SetFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// List returns orders newest first. An empty companyID lists across all
// tenants (admin view).
func (r *OrderRepository) List(ctx context.Context, companyID string) ([]domain.Order, error) {
	filter := bson.M{}
	if companyID != "" {
		filter["company_id"] = companyID
	}
	return r.find(ctx, filter)
}

// FindClosedBetween returns completed and cancelled orders created
// inside [start, end].
func (r *OrderRepository) FindClosedBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	filter := bson.M{
		"status":     bson.M{"$in": []domain.OrderStatus{domain.StatusCompleted, domain.StatusCancelled}},
		"created_at": bson.M{"$gte": start, "$lte": end},
	}
	return r.find(ctx, filter)
}

func (r *OrderRepository) CountByStatus(ctx context.Context, companyID string) (domain.StatusCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := bson.M{}
	if companyID != "" {
		base["company_id"] = companyID
	}

	var counts domain.StatusCounts
	var err error

	if counts.Total, err = r.col.CountDocuments(ctx, base); err != nil {
		return domain.StatusCounts{}, err
	}

	byStatus := func(status domain.OrderStatus) (int64, error) {
		filter := bson.M{"status": status}
		for k, v := range base {
			filter[k] = v
		}
		return r.col.CountDocuments(ctx, filter)
	}

	if counts.Ongoing, err = byStatus(domain.StatusOngoing); err != nil {
		return domain.StatusCounts{}, err
	}
	if counts.Completed, err = byStatus(domain.StatusCompleted); err != nil {
		return domain.StatusCounts{}, err
	}
	if counts.Cancelled, err = byStatus(domain.StatusCancelled); err != nil {
		return domain.StatusCounts{}, err
	}
	return counts, nil
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// EnsureIndexes creates the indexes the list, report and stats queries rely on.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
