package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, customer_id, user_id, name, contact_person, email, phone, addresses, gst_number,
	pan_number, payment_terms, credit_limit, notes, status, created_at, created_by, updated_at, updated_by,
	deleted_at, deleted_by`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	db  Querier
	now func() time.Time
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db Querier) *CustomerRepo {
	return &CustomerRepo{db: db, now: time.Now}
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.OwnerID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &c.Addresses,
		&c.GSTNumber, &c.PANNumber, &c.PaymentTerms, &c.CreditLimit, &c.Notes, &c.Status, &c.CreatedAt,
		&c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy, &c.DeletedAt, &c.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, customer_id, user_id, name, contact_person, email, phone, addresses,
			gst_number, pan_number, payment_terms, credit_limit, notes, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.CustomerID, c.OwnerID, c.Name, c.ContactPerson, c.Email, c.Phone, []byte(c.Addresses),
		c.GSTNumber, c.PANNumber, c.PaymentTerms, c.CreditLimit, c.Notes, c.Status, c.CreatedAt, c.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// FindByKey busca por id nativo o por CUST0001.
func (r *CustomerRepo) FindByKey(ctx context.Context, key entity.Key) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + keyColumn(key, "customer_id") + ` = $1`
	c, err := scanCustomer(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by key: %w", err)
	}
	return c, nil
}

// Update aplica los campos presentes del patch y siempre refresca updated_at.
func (r *CustomerRepo) Update(ctx context.Context, key entity.Key, patch entity.CustomerPatch) (repository.UpdateResult, error) {
	var set setList
	set.addPartyPatch(patch.PartyPatch)
	set.add("updated_at", r.now())

	query, args := set.update("customers", keyColumn(key, "customer_id"), key.Value)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update customer: %w", err)
	}
	n := tag.RowsAffected()
	return repository.UpdateResult{Matched: n > 0, ModifiedCount: n}, nil
}

// Delete borra y devuelve el registro en una sola sentencia.
func (r *CustomerRepo) Delete(ctx context.Context, key entity.Key) (*entity.Customer, error) {
	query := `DELETE FROM customers WHERE ` + keyColumn(key, "customer_id") + ` = $1 RETURNING ` + customerColumns
	c, err := scanCustomer(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete customer: %w", err)
	}
	return c, nil
}

// ListByOwner clientes de un usuario, más recientes primero.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
