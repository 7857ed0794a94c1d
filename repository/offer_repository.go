package repository

import (
	"context"
	"fmt"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type OfferRepository interface {
	Create(ctx context.Context, o *entity.Offer) error
	FindByID(ctx context.Context, id string) (*entity.Offer, error)
	// ListForVendor returns offers naming vendorID plus every GENERIC offer.
	ListForVendor(ctx context.Context, vendorID string) ([]entity.Offer, error)
	ListActiveByPincode(ctx context.Context, pincode string) ([]entity.Offer, error)
	Save(ctx context.Context, o *entity.Offer) error
}

// ---------------- mongo ----------------

type mongoOfferRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Offer]
}

func (r *mongoOfferRepository) Create(ctx context.Context, o *entity.Offer) error {
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	stampCreated(&o.CreatedAt, &o.UpdatedAt)
	return r.insert(ctx, r.col, o)
}

func (r *mongoOfferRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoOfferRepository) ListForVendor(ctx context.Context, vendorID string) ([]entity.Offer, error) {
	return r.find(ctx, r.col, bson.M{"$or": bson.A{
		bson.M{"vendors": vendorID},
		bson.M{"offerType": entity.OfferTypeGeneric},
	}})
}

func (r *mongoOfferRepository) ListActiveByPincode(ctx context.Context, pincode string) ([]entity.Offer, error) {
	return r.find(ctx, r.col, bson.M{"pincode": pincode, "isActive": true})
}

func (r *mongoOfferRepository) Save(ctx context.Context, o *entity.Offer) error {
	stampCreated(&o.CreatedAt, &o.UpdatedAt)
	return r.replace(ctx, r.col, o.ID, o)
}

// ---------------- gorm ----------------

type gormOfferRepository struct {
	db *gorm.DB
	gormRows[entity.Offer]
}

func (r *gormOfferRepository) Create(ctx context.Context, o *entity.Offer) error {
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	return gormErr(r.db.WithContext(ctx).Create(o).Error)
}

func (r *gormOfferRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

// vendors is stored as a JSON array, so membership is a quoted substring match.
func (r *gormOfferRepository) ListForVendor(ctx context.Context, vendorID string) ([]entity.Offer, error) {
	q := r.db.Where("vendors LIKE ? OR offer_type = ?", fmt.Sprintf("%%%q%%", vendorID), entity.OfferTypeGeneric)
	return r.find(ctx, q.Order("created_at ASC"))
}

func (r *gormOfferRepository) ListActiveByPincode(ctx context.Context, pincode string) ([]entity.Offer, error) {
	return r.find(ctx, r.db.Where("pincode = ? AND is_active = ?", pincode, true).Order("created_at ASC"))
}

func (r *gormOfferRepository) Save(ctx context.Context, o *entity.Offer) error {
	return gormErr(r.db.WithContext(ctx).Save(o).Error)
}
