package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

type DeliveryUserRepository interface {
	Create(ctx context.Context, d *entity.DeliveryUser) error
	FindByID(ctx context.Context, id string) (*entity.DeliveryUser, error)
	FindByEmail(ctx context.Context, email string) (*entity.DeliveryUser, error)
	List(ctx context.Context) ([]entity.DeliveryUser, error)
	// FindAvailable returns verified, available delivery users serving
	// pincode in signup order.
	FindAvailable(ctx context.Context, pincode string) ([]entity.DeliveryUser, error)
	Save(ctx context.Context, d *entity.DeliveryUser) error
}

// ---------------- mongo ----------------

type mongoDeliveryUserRepository struct {
	col *mongo.Collection
	mongoDocs[entity.DeliveryUser]
}

func (r *mongoDeliveryUserRepository) Create(ctx context.Context, d *entity.DeliveryUser) error {
	if d.ID == "" {
		d.ID = entity.NewID()
	}
	stampCreated(&d.CreatedAt, &d.UpdatedAt)
	return r.insert(ctx, r.col, d)
}

func (r *mongoDeliveryUserRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryUser, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoDeliveryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.DeliveryUser, error) {
	return r.findOne(ctx, r.col, bson.M{"email": email})
}

func (r *mongoDeliveryUserRepository) List(ctx context.Context) ([]entity.DeliveryUser, error) {
	return r.find(ctx, r.col, bson.M{})
}

func (r *mongoDeliveryUserRepository) FindAvailable(ctx context.Context, pincode string) ([]entity.DeliveryUser, error) {
	filter := bson.M{"pincode": pincode, "verified": true, "isAvailable": true}
	return r.find(ctx, r.col, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *mongoDeliveryUserRepository) Save(ctx context.Context, d *entity.DeliveryUser) error {
	stampCreated(&d.CreatedAt, &d.UpdatedAt)
	return r.replace(ctx, r.col, d.ID, d)
}

// ---------------- gorm ----------------

type gormDeliveryUserRepository struct {
	db *gorm.DB
	gormRows[entity.DeliveryUser]
}

func (r *gormDeliveryUserRepository) Create(ctx context.Context, d *entity.DeliveryUser) error {
	if d.ID == "" {
		d.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(d).Error)
}

func (r *gormDeliveryUserRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryUser, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormDeliveryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.DeliveryUser, error) {
	return r.first(ctx, r.db.Where("email = ?", email))
}

func (r *gormDeliveryUserRepository) List(ctx context.Context) ([]entity.DeliveryUser, error) {
	return r.find(ctx, r.db.Order("id ASC"))
}

func (r *gormDeliveryUserRepository) FindAvailable(ctx context.Context, pincode string) ([]entity.DeliveryUser, error) {
	q := r.db.Where("pincode = ? AND verified = ? AND is_available = ?", pincode, true, true).Order("id ASC")
	return r.find(ctx, q)
}

func (r *gormDeliveryUserRepository) Save(ctx context.Context, d *entity.DeliveryUser) error {
	return gormErr(r.db.WithContext(ctx).Save(d).Error)
}
