package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
)

const customerEntity = "customer"

// CustomerRepository represents behavior of customer storage
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, string, *model.PatchCustomer, time.Time) (*model.Customer, error)
	DeleteByID(context.Context, string) error
}

func customerNotFound(id string) error {
	return apperrors.NewEntryNotFoundErr(customerEntity, id)
}

const customerColumns = "id, name, phone, address, home, road, block, town, created_at, updated_at"

type postgresCustomerRepository struct {
	db pgxtype.Querier
}

// NewPostgresCustomerRepository builds customer repository on top of PostgreSQL
func NewPostgresCustomerRepository(db pgxtype.Querier) CustomerRepository {
	return &postgresCustomerRepository{db: db}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1"

	c, err := scanCustomer(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers ORDER BY created_at, id"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(` + customerColumns + `)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Phone, c.Address, c.Home, c.Road, c.Block, c.Town, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *postgresCustomerRepository) Update(ctx context.Context, id string, patch *model.PatchCustomer, updatedAt time.Time) (*model.Customer, error) {
	q := `UPDATE customers SET
			name = COALESCE($1, name),
			phone = COALESCE($2, phone),
			address = COALESCE($3, address),
			home = COALESCE($4, home),
			road = COALESCE($5, road),
			block = COALESCE($6, block),
			town = COALESCE($7, town),
			updated_at = $8
		  WHERE id = $9
		  RETURNING ` + customerColumns

	row := r.db.QueryRow(ctx, q, patch.Name, patch.Phone, patch.Address, patch.Home, patch.Road, patch.Block, patch.Town, updatedAt, id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customerNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM customers WHERE id = $1"

	comm, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if comm.RowsAffected() == 0 {
		return customerNotFound(id)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Home, &c.Road, &c.Block, &c.Town, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}
