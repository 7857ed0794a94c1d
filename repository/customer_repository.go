package repository

import (
	"context"

	"fooddelivery/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Save(ctx context.Context, c *entity.Customer) error
}

// ---------------- mongo ----------------

type mongoCustomerRepository struct {
	col *mongo.Collection
	mongoDocs[entity.Customer]
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	normalizeCustomer(c)
	stampCreated(&c.CreatedAt, &c.UpdatedAt)
	return r.insert(ctx, r.col, c)
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.findOne(ctx, r.col, bson.M{"_id": id})
}

func (r *mongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.findOne(ctx, r.col, bson.M{"email": email})
}

func (r *mongoCustomerRepository) Save(ctx context.Context, c *entity.Customer) error {
	normalizeCustomer(c)
	stampCreated(&c.CreatedAt, &c.UpdatedAt)
	return r.replace(ctx, r.col, c.ID, c)
}

// ---------------- gorm ----------------

type gormCustomerRepository struct {
	db *gorm.DB
	gormRows[entity.Customer]
}

func (r *gormCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	normalizeCustomer(c)
	return gormErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *gormCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *gormCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.first(ctx, r.db.Where("email = ?", email))
}

func (r *gormCustomerRepository) Save(ctx context.Context, c *entity.Customer) error {
	normalizeCustomer(c)
	return gormErr(r.db.WithContext(ctx).Save(c).Error)
}

// keep the embedded arrays as [] instead of null in storage and responses
func normalizeCustomer(c *entity.Customer) {
	if c.Cart == nil {
		c.Cart = []entity.CartItem{}
	}
	if c.Orders == nil {
		c.Orders = []string{}
	}
}
