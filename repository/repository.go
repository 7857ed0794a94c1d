package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Repositories bundles one repository per collection. Services only see the
// interfaces; main picks the backend.
type Repositories struct {
	Vendors       VendorRepository
	Foods         FoodRepository
	Customers     CustomerRepository
	Orders        OrderRepository
	Transactions  TransactionRepository
	DeliveryUsers DeliveryUserRepository
	Offers        OfferRepository
}

const (
	vendorsCollection       = "vendors"
	foodsCollection         = "foods"
	customersCollection     = "customers"
	ordersCollection        = "orders"
	transactionsCollection  = "transactions"
	deliveryUsersCollection = "delivery_users"
	offersCollection        = "offers"
)

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Vendors:       &mongoVendorRepository{col: db.Collection(vendorsCollection)},
		Foods:         &mongoFoodRepository{col: db.Collection(foodsCollection)},
		Customers:     &mongoCustomerRepository{col: db.Collection(customersCollection)},
		Orders:        &mongoOrderRepository{col: db.Collection(ordersCollection)},
		Transactions:  &mongoTransactionRepository{col: db.Collection(transactionsCollection)},
		DeliveryUsers: &mongoDeliveryUserRepository{col: db.Collection(deliveryUsersCollection)},
		Offers:        &mongoOfferRepository{col: db.Collection(offersCollection)},
	}
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Vendors:       &gormVendorRepository{db: db},
		Foods:         &gormFoodRepository{db: db},
		Customers:     &gormCustomerRepository{db: db},
		Orders:        &gormOrderRepository{db: db},
		Transactions:  &gormTransactionRepository{db: db},
		DeliveryUsers: &gormDeliveryUserRepository{db: db},
		Offers:        &gormOfferRepository{db: db},
	}
}

// EnsureMongoIndexes creates the unique email indexes and the lookup indexes
// the shopping and assignment queries rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		vendorsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "pincode", Value: 1}, {Key: "rating", Value: -1}}},
		},
		customersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		deliveryUsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "pincode", Value: 1}, {Key: "verified", Value: 1}, {Key: "isAvailable", Value: 1}}},
		},
		foodsCollection: {
			{Keys: bson.D{{Key: "vendorId", Value: 1}}},
		},
		ordersCollection: {
			{Keys: bson.D{{Key: "vendorId", Value: 1}}},
		},
		offersCollection: {
			{Keys: bson.D{{Key: "pincode", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func gormErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func stampCreated(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// mongoDocs is the shared Mongo access for one collection of T.
type mongoDocs[T any] struct{}

func (mongoDocs[T]) insert(ctx context.Context, col *mongo.Collection, doc *T) error {
	_, err := col.InsertOne(ctx, doc)
	return mongoErr(err)
}

func (mongoDocs[T]) findOne(ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := col.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, mongoErr(err)
	}
	return &out, nil
}

func (mongoDocs[T]) find(ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (mongoDocs[T]) replace(ctx context.Context, col *mongo.Collection, id string, doc *T) error {
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// gormRows is the shared gorm access for one table of T.
type gormRows[T any] struct{}

func (gormRows[T]) first(ctx context.Context, q *gorm.DB) (*T, error) {
	var out T
	if err := q.WithContext(ctx).First(&out).Error; err != nil {
		return nil, gormErr(err)
	}
	return &out, nil
}

func (gormRows[T]) find(ctx context.Context, q *gorm.DB) ([]T, error) {
	out := []T{}
	if err := q.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, gormErr(err)
	}
	return out, nil
}
