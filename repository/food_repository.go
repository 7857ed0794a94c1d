package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(ctx context.Context, f *entity.Food) error
	FindByID(ctx context.Context, id string) (*entity.Food, error)
	// FindByIDs returns the foods that exist among ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Food, error)
	ListByVendor(ctx context.Context, vendorID string) ([]entity.Food, error)
}

// ---------------- mongo ----------------

type mongoFoodRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Food]
}

func (r *mongoFoodRepository) Create(ctx context.Context, f *entity.Food) error {
	if f.ID == "" {
		f.ID = entity.NewID()
	}
	stampCreated(&f.CreatedAt, &f.UpdatedAt)
	return r.insert(ctx, r.col, f)
}

func (r *mongoFoodRepository) FindByID(ctx context.Context, id string) (*entity.Food, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoFoodRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Food, error) {
	if len(ids) == 0 {
		return []entity.Food{}, nil
	}
	return r.find(ctx, r.col, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoFoodRepository) ListByVendor(ctx context.Context, vendorID string) ([]entity.Food, error) {
	return r.find(ctx, r.col, bson.M{"vendorId": vendorID})
}

// ---------------- gorm ----------------

type gormFoodRepository struct {
	db *gorm.DB
	gormRows[entity.Food]
}

func (r *gormFoodRepository) Create(ctx context.Context, f *entity.Food) error {
	if f.ID == "" {
		f.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(f).Error)
}

func (r *gormFoodRepository) FindByID(ctx context.Context, id string) (*entity.Food, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormFoodRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Food, error) {
	if len(ids) == 0 {
		return []entity.Food{}, nil
	}
	return r.find(ctx, r.db.Where("id IN ?", ids))
}

func (r *gormFoodRepository) ListByVendor(ctx context.Context, vendorID string) ([]entity.Food, error) {
	return r.find(ctx, r.db.Where("vendor_id = ?", vendorID).Order("created_at ASC"))
}
