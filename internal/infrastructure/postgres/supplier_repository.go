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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, supplier_id, user_id, name, contact_person, email, phone, addresses, gst_number,
	pan_number, bank_details, payment_terms, credit_limit, rating, products_supplied, notes, status,
	created_at, created_by, updated_at, updated_by, deleted_at, deleted_by`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	db  Querier
	now func() time.Time
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db Querier) *SupplierRepo {
	return &SupplierRepo{db: db, now: time.Now}
}

func scanSupplier(row rowScanner) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.SupplierID, &s.OwnerID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Addresses,
		&s.GSTNumber, &s.PANNumber, &s.BankDetails, &s.PaymentTerms, &s.CreditLimit, &s.Rating,
		&s.ProductsSupplied, &s.Notes, &s.Status, &s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
		&s.DeletedAt, &s.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, supplier_id, user_id, name, contact_person, email, phone, addresses,
			gst_number, pan_number, bank_details, payment_terms, credit_limit, rating, products_supplied,
			notes, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11::jsonb, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.SupplierID, s.OwnerID, s.Name, s.ContactPerson, s.Email, s.Phone, []byte(s.Addresses),
		s.GSTNumber, s.PANNumber, []byte(s.BankDetails), s.PaymentTerms, s.CreditLimit, s.Rating,
		s.ProductsSupplied, s.Notes, s.Status, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// FindByKey busca por id nativo o por SUPP0001.
func (r *SupplierRepo) FindByKey(ctx context.Context, key entity.Key) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE ` + keyColumn(key, "supplier_id") + ` = $1`
	s, err := scanSupplier(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by key: %w", err)
	}
	return s, nil
}

// Update aplica los campos presentes del patch y siempre refresca updated_at.
func (r *SupplierRepo) Update(ctx context.Context, key entity.Key, patch entity.SupplierPatch) (repository.UpdateResult, error) {
	var set setList
	set.addPartyPatch(patch.PartyPatch)
	if patch.BankDetails != nil {
		set.addJSON("bank_details", patch.BankDetails)
	}
	if patch.Rating != nil {
		set.add("rating", *patch.Rating)
	}
	if patch.ProductsSupplied != nil {
		set.add("products_supplied", *patch.ProductsSupplied)
	}
	set.add("updated_at", r.now())

	query, args := set.update("suppliers", keyColumn(key, "supplier_id"), key.Value)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update supplier: %w", err)
	}
	n := tag.RowsAffected()
	return repository.UpdateResult{Matched: n > 0, ModifiedCount: n}, nil
}

// Delete borra y devuelve el registro en una sola sentencia.
func (r *SupplierRepo) Delete(ctx context.Context, key entity.Key) (*entity.Supplier, error) {
	query := `DELETE FROM suppliers WHERE ` + keyColumn(key, "supplier_id") + ` = $1 RETURNING ` + supplierColumns
	s, err := scanSupplier(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete supplier: %w", err)
	}
	return s, nil
}

// ListByOwner proveedores de un usuario, más recientes primero.
func (r *SupplierRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Supplier, error) {
	return r.list(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
}

// List todos los proveedores.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	return r.list(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC`)
}

func (r *SupplierRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
