package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, user_id, full_name, email, phone, password_hash, role, business_name, address,
	status, created_at, created_by, updated_at, updated_by, deleted_at, deleted_by`

// Listados sin hash de password.
var userListColumns = strings.Replace(userColumns, "password_hash", "'' AS password_hash", 1)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db  Querier
	now func() time.Time
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.UserID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.BusinessName, &u.Address,
		&u.Status, &u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy, &u.DeletedAt, &u.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByEmail indica si hay un usuario vivo con ese email (comparación exacta).
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

// Create persiste un nuevo usuario. El índice único de email cubre la carrera entre ExistsByEmail y el INSERT.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, user_id, full_name, email, phone, password_hash, role, business_name, address,
			status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.UserID, user.FullName, user.Email, user.Phone, user.PasswordHash, user.Role,
		user.BusinessName, []byte(user.Address), user.Status, user.CreatedAt, user.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByKey busca por id nativo o por USR0001.
func (r *UserRepo) FindByKey(ctx context.Context, key entity.Key) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + keyColumn(key, "user_id") + ` = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by key: %w", err)
	}
	return u, nil
}

// FindByEmail obtiene un usuario vivo por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL LIMIT 1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update aplica los campos presentes del patch y siempre refresca updated_at.
func (r *UserRepo) Update(ctx context.Context, key entity.Key, patch entity.UserPatch) (repository.UpdateResult, error) {
	var set setList
	if patch.FullName != nil {
		set.add("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if patch.Phone != nil {
		set.add("phone", *patch.Phone)
	}
	if patch.Role != nil {
		set.add("role", *patch.Role)
	}
	if patch.BusinessName != nil {
		set.add("business_name", *patch.BusinessName)
	}
	if patch.Address != nil {
		set.addJSON("address", patch.Address)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.UpdatedBy != nil {
		set.add("updated_by", *patch.UpdatedBy)
	}
	set.add("updated_at", r.now())

	query, args := set.update("users", keyColumn(key, "user_id"), key.Value)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.UpdateResult{}, domain.ErrEmailAlreadyExists
		}
		return repository.UpdateResult{}, fmt.Errorf("update user: %w", err)
	}
	n := tag.RowsAffected()
	return repository.UpdateResult{Matched: n > 0, ModifiedCount: n}, nil
}

// Delete borra y devuelve el registro en una sola sentencia; (nil, nil) si no existía.
func (r *UserRepo) Delete(ctx context.Context, key entity.Key) (*entity.User, error) {
	query := `DELETE FROM users WHERE ` + keyColumn(key, "user_id") + ` = $1 RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query, key.Value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return u, nil
}

// ListByOwner usuarios creados por ownerID, más recientes primero.
func (r *UserRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.User, error) {
	query := `SELECT ` + userListColumns + ` FROM users WHERE created_by = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

// List todos los usuarios sin hash de password.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userListColumns+` FROM users ORDER BY created_at DESC`)
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
