package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

const orderCollection = "orders"

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(orderCollection)}
}

type mongoOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OrderNumber string             `bson:"order_number"`
	ProductName string             `bson:"product_name"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	PlacedBy    string             `bson:"placed_by,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d mongoOrder) toDomain() *domain.Order {
	return &domain.Order{
		ID:          d.ID.Hex(),
		OrderNumber: d.OrderNumber,
		ProductName: d.ProductName,
		Price:       d.Price,
		Quantity:    d.Quantity,
		PlacedBy:    d.PlacedBy,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var doc mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	doc := mongoOrder{
		OrderNumber: order.OrderNumber,
		ProductName: order.ProductName,
		Price:       order.Price,
		Quantity:    order.Quantity,
		PlacedBy:    order.PlacedBy,
		CreatedAt:   order.CreatedAt.Unix(),
		UpdatedAt:   order.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoOrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(order.ID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"order_number": order.OrderNumber,
		"product_name": order.ProductName,
		"price":        order.Price,
		"quantity":     order.Quantity,
		"updated_at":   order.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *MongoOrderRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]*domain.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Order
	for cur.Next(ctx) {
		var doc mongoOrder
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *MongoOrderRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"placed_by": accountID})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
