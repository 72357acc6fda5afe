package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const customersIndexKey = "customers"

type redisCustomerRepository struct {
	client *redis.Client
}

// NewRedisCustomerRepository builds customer repository which keeps customers in Redis.
// Every customer is stored msgpack-encoded under its own key, creation order is kept in sorted set.
func NewRedisCustomerRepository(client *redis.Client) CustomerRepository {
	return &redisCustomerRepository{client: client}
}

func (r *redisCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return r.decode(res)
}

func (r *redisCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	ids, err := r.client.ZRange(ctx, customersIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	customers := make([]*model.Customer, 0, len(ids))
	if len(ids) == 0 {
		return customers, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.key(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		encoded, ok := v.(string)
		if !ok { // deleted between ZRANGE and MGET
			continue
		}

		c, err := r.decode([]byte(encoded))
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *redisCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(c.ID), encoded, 0)
		pipe.ZAdd(ctx, customersIndexKey, redis.Z{Score: float64(c.CreatedAt.UnixMilli()), Member: c.ID})
		return nil
	})
	return err
}

func (r *redisCustomerRepository) Update(ctx context.Context, id string, patch *model.PatchCustomer, updatedAt time.Time) (*model.Customer, error) {
	key := r.key(id)

	var updated *model.Customer
	txFn := func(tx *redis.Tx) error {
		res, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return customerNotFound(id)
			}
			return err
		}

		existing, err := r.decode(res)
		if err != nil {
			return err
		}

		merged := existing.MergePatch(patch)
		merged.UpdatedAt = updatedAt

		encoded, err := msgpack.Marshal(&merged)
		if err != nil {
			return err
		}

		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, 0)
			return nil
		}); err != nil {
			return err
		}

		updated = &merged
		return nil
	}

	if err := r.client.Watch(ctx, txFn, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, fmt.Errorf("customer %s was modified concurrently - %w", id, err)
		}
		return nil, err
	}
	return updated, nil
}

func (r *redisCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	var delCmd *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		delCmd = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, customersIndexKey, id)
		return nil
	})
	if err != nil {
		return err
	}

	if delCmd.Val() == 0 {
		return customerNotFound(id)
	}
	return nil
}

func (r *redisCustomerRepository) decode(encoded []byte) (*model.Customer, error) {
	var c model.Customer
	if err := msgpack.Unmarshal(encoded, &c); err != nil {
		return nil, err
	}

	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func (r *redisCustomerRepository) key(id string) string {
	return fmt.Sprintf("customer:%s", id)
}
