package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// FindByIDs returns existing orders among ids, newest first.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Order, error)
	ListByVendor(ctx context.Context, vendorID string) ([]entity.Order, error)
	Save(ctx context.Context, o *entity.Order) error
}

var newestOrdersFirst = bson.D{{Key: "orderDate", Value: -1}}

// ---------------- mongo ----------------

type mongoOrderRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Order]
}

func (r *mongoOrderRepository) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	stampCreated(&o.CreatedAt, &o.UpdatedAt)
	return r.insert(ctx, r.col, o)
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoOrderRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Order, error) {
	if len(ids) == 0 {
		return []entity.Order{}, nil
	}
	return r.find(ctx, r.col, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetSort(newestOrdersFirst))
}

func (r *mongoOrderRepository) ListByVendor(ctx context.Context, vendorID string) ([]entity.Order, error) {
	return r.find(ctx, r.col, bson.M{"vendorId": vendorID}, options.Find().SetSort(newestOrdersFirst))
}

func (r *mongoOrderRepository) Save(ctx context.Context, o *entity.Order) error {
	stampCreated(&o.CreatedAt, &o.UpdatedAt)
	return r.replace(ctx, r.col, o.ID, o)
}

// ---------------- gorm ----------------

type gormOrderRepository struct {
	db *gorm.DB
	gormRows[entity.Order]
}

func (r *gormOrderRepository) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(o).Error)
}

func (r *gormOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormOrderRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Order, error) {
	if len(ids) == 0 {
		return []entity.Order{}, nil
	}
	return r.find(ctx, r.db.Where("id IN ?", ids).Order("order_date DESC"))
}

func (r *gormOrderRepository) ListByVendor(ctx context.Context, vendorID string) ([]entity.Order, error) {
	return r.find(ctx, r.db.Where("vendor_id = ?", vendorID).Order("order_date DESC"))
}

func (r *gormOrderRepository) Save(ctx context.Context, o *entity.Order) error {
	return gormErr(r.db.WithContext(ctx).Save(o).Error)
}
