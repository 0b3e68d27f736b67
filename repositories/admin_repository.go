package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
)

var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrAdminUsernameConflict = errors.New("admin username conflict")
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Delete(ctx context.Context, id int) error
}

type postgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

func (r *postgresAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admin_users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		admin.Username,
		admin.PasswordHash,
		admin.Role,
	).Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "admin_users_username_key" {
				return ErrAdminUsernameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresAdminRepository) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE id = $1`
	return r.scanAdmin(ctx, query, id)
}

func (r *postgresAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE username = $1`
	return r.scanAdmin(ctx, query, username)
}

func (r *postgresAdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]models.Admin, 0)
	for rows.Next() {
		var admin models.Admin
		if scanErr := rows.Scan(
			&admin.ID,
			&admin.Username,
			&admin.PasswordHash,
			&admin.Role,
			&admin.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		admins = append(admins, admin)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *postgresAdminRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM admin_users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAdminNotFound)
}

func (r *postgresAdminRepository) scanAdmin(ctx context.Context, query string, args ...interface{}) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
