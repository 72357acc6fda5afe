package repository

import (
	"context"
	"errors"
	"time"

	"github.com/umalmyha/customer-directory/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const customersCollection = "customers"

type mongoCustomerRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomerRepository builds customer repository on top of MongoDB database
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{collection: db.Collection(customersCollection)}
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	customers := make([]*model.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	_, err := r.collection.InsertOne(ctx, c)
	return err
}

func (r *mongoCustomerRepository) Update(ctx context.Context, id string, patch *model.PatchCustomer, updatedAt time.Time) (*model.Customer, error) {
	set := patchDocument(patch)
	set["updatedAt"] = updatedAt

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c model.Customer
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return customerNotFound(id)
	}
	return nil
}

func patchDocument(patch *model.PatchCustomer) bson.M {
	doc := bson.M{}
	if patch == nil {
		return doc
	}

	fields := map[string]*string{
		"name":    patch.Name,
		"phone":   patch.Phone,
		"address": patch.Address,
		"home":    patch.Home,
		"road":    patch.Road,
		"block":   patch.Block,
		"town":    patch.Town,
	}

	for k, v := range fields {
		if v != nil {
			doc[k] = *v
		}
	}
	return doc
}
