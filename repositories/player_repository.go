package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
)

var ErrPlayerNotFound = errors.New("player not found")

const playerColumns = `
	id, nickname, telegram, password_hash, preferred_roles, status,
	has_friends, friend1_nickname, friend1_telegram, friend1_roles,
	friend2_nickname, friend2_telegram, friend2_roles, created_at`

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByTelegram(ctx context.Context, telegram string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int64, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO individual_players (
			nickname, telegram, password_hash, preferred_roles, status,
			has_friends, friend1_nickname, friend1_telegram, friend1_roles,
			friend2_nickname, friend2_telegram, friend2_roles
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Nickname,
		player.Telegram,
		player.PasswordHash,
		pq.Array(player.PreferredRoles),
		player.Status,
		player.HasFriends,
		player.Friend1Nickname,
		player.Friend1Telegram,
		nullableRoles(player.Friend1Roles),
		player.Friend2Nickname,
		player.Friend2Telegram,
		nullableRoles(player.Friend2Roles),
	).Scan(&player.ID, &player.CreatedAt)

	return err
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT` + playerColumns + ` FROM individual_players WHERE id = $1`
	return r.scanPlayer(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByTelegram(ctx context.Context, telegram string) (*models.Player, error) {
	query := `SELECT` + playerColumns + ` FROM individual_players WHERE telegram = $1`
	return r.scanPlayer(ctx, query, telegram)
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	query := `SELECT` + playerColumns + ` FROM individual_players ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := scanPlayerRow(rows, &player); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error {
	query := `UPDATE individual_players SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM individual_players WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM individual_players`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *postgresPlayerRepository) scanPlayer(ctx context.Context, query string, args ...interface{}) (*models.Player, error) {
	player := &models.Player{}
	err := scanPlayerRow(r.db.QueryRowContext(ctx, query, args...), player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func scanPlayerRow(row rowScanner, player *models.Player) error {
	err := row.Scan(
		&player.ID,
		&player.Nickname,
		&player.Telegram,
		&player.PasswordHash,
		pq.Array(&player.PreferredRoles),
		&player.Status,
		&player.HasFriends,
		&player.Friend1Nickname,
		&player.Friend1Telegram,
		pq.Array(&player.Friend1Roles),
		&player.Friend2Nickname,
		&player.Friend2Telegram,
		pq.Array(&player.Friend2Roles),
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to scan player: %w", err)
	}
	return nil
}

// nullableRoles сохраняет NULL вместо пустого массива для ролей друзей.
func nullableRoles(roles []string) interface{} {
	if len(roles) == 0 {
		return nil
	}
	return pq.Array(roles)
}
