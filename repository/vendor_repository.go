package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	List(ctx context.Context) ([]entity.Vendor, error)
	// ListByPincode returns vendors in pincode whose serviceAvailable flag
	// equals serviceAvailable, best rated first. limit <= 0 means no limit.
	ListByPincode(ctx context.Context, pincode string, serviceAvailable bool, limit int) ([]entity.Vendor, error)
	Save(ctx context.Context, v *entity.Vendor) error
}

// ---------------- mongo ----------------

type mongoVendorRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Vendor]
}

func (r *mongoVendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	if v.ID == "" {
		v.ID = entity.NewID()
	}
	stampCreated(&v.CreatedAt, &v.UpdatedAt)
	return r.insert(ctx, r.col, v)
}

func (r *mongoVendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoVendorRepository) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.findOne(ctx, r.col, bson.M{"email": email})
}

func (r *mongoVendorRepository) List(ctx context.Context) ([]entity.Vendor, error) {
	return r.find(ctx, r.col, bson.M{})
}

func (r *mongoVendorRepository) ListByPincode(ctx context.Context, pincode string, serviceAvailable bool, limit int) ([]entity.Vendor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, r.col, bson.M{"pincode": pincode, "serviceAvailable": serviceAvailable}, opts)
}

func (r *mongoVendorRepository) Save(ctx context.Context, v *entity.Vendor) error {
	stampCreated(&v.CreatedAt, &v.UpdatedAt)
	return r.replace(ctx, r.col, v.ID, v)
}

// ---------------- gorm ----------------

type gormVendorRepository struct {
	db *gorm.DB
	gormRows[entity.Vendor]
}

func (r *gormVendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	if v.ID == "" {
		v.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(v).Error)
}

func (r *gormVendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormVendorRepository) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.first(ctx, r.db.Where("email = ?", email))
}

func (r *gormVendorRepository) List(ctx context.Context) ([]entity.Vendor, error) {
	return r.find(ctx, r.db.Order("created_at ASC"))
}

func (r *gormVendorRepository) ListByPincode(ctx context.Context, pincode string, serviceAvailable bool, limit int) ([]entity.Vendor, error) {
	q := r.db.Where("pincode = ? AND service_available = ?", pincode, serviceAvailable).Order("rating DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.find(ctx, q)
}

func (r *gormVendorRepository) Save(ctx context.Context, v *entity.Vendor) error {
	return gormErr(r.db.WithContext(ctx).Save(v).Error)
}
