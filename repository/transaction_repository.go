package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	List(ctx context.Context) ([]entity.Transaction, error)
	Save(ctx context.Context, t *entity.Transaction) error
}

// ---------------- mongo ----------------

type mongoTransactionRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Transaction]
}

func (r *mongoTransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = entity.NewID()
	}
	stampCreated(&t.CreatedAt, &t.UpdatedAt)
	return r.insert(ctx, r.col, t)
}

func (r *mongoTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoTransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	return r.find(ctx, r.col, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *mongoTransactionRepository) Save(ctx context.Context, t *entity.Transaction) error {
	stampCreated(&t.CreatedAt, &t.UpdatedAt)
	return r.replace(ctx, r.col, t.ID, t)
}

// ---------------- gorm ----------------

type gormTransactionRepository struct {
	db *gorm.DB
	gormRows[entity.Transaction]
}

func (r *gormTransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(t).Error)
}

func (r *gormTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormTransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	return r.find(ctx, r.db.Order("created_at DESC"))
}

func (r *gormTransactionRepository) Save(ctx context.Context, t *entity.Transaction) error {
	return gormErr(r.db.WithContext(ctx).Save(t).Error)
}
