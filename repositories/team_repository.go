package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
)

const teamColumns = `
	id, team_name, captain_nick, captain_telegram, password_hash,
	top_nick, top_telegram, jungle_nick, jungle_telegram,
	mid_nick, mid_telegram, adc_nick, adc_telegram,
	support_nick, support_telegram, sub1_nick, sub1_telegram,
	sub2_nick, sub2_telegram, status, is_edited, created_at`

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetByCaptainTelegram(ctx context.Context, telegram string) (*models.Team, error)
	ListByStatus(ctx context.Context, status models.RegistrationStatus) ([]models.Team, error)
	UpdateRoster(ctx context.Context, team *models.Team, renameAllowed bool) error
	UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus, edited bool) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int64, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (
			team_name, captain_nick, captain_telegram, password_hash,
			top_nick, top_telegram, jungle_nick, jungle_telegram,
			mid_nick, mid_telegram, adc_nick, adc_telegram,
			support_nick, support_telegram, sub1_nick, sub1_telegram,
			sub2_nick, sub2_telegram, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, is_edited, created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.TeamName,
		team.CaptainNick,
		team.CaptainTelegram,
		team.PasswordHash,
		team.TopNick, team.TopTelegram,
		team.JungleNick, team.JungleTelegram,
		team.MidNick, team.MidTelegram,
		team.AdcNick, team.AdcTelegram,
		team.SupportNick, team.SupportTelegram,
		team.Sub1Nick, team.Sub1Telegram,
		team.Sub2Nick, team.Sub2Telegram,
		team.Status,
	).Scan(&team.ID, &team.IsEdited, &team.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_team_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT` + teamColumns + ` FROM teams WHERE id = $1`
	return r.scanTeam(ctx, query, id)
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	query := `SELECT` + teamColumns + ` FROM teams WHERE team_name = $1`
	return r.scanTeam(ctx, query, name)
}

func (r *postgresTeamRepository) GetByCaptainTelegram(ctx context.Context, telegram string) (*models.Team, error) {
	query := `SELECT` + teamColumns + ` FROM teams WHERE captain_telegram = $1`
	return r.scanTeam(ctx, query, telegram)
}

func (r *postgresTeamRepository) ListByStatus(ctx context.Context, status models.RegistrationStatus) ([]models.Team, error) {
	query := `SELECT` + teamColumns + ` FROM teams WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := scanTeamRow(rows, &team); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateRoster обновляет составы. При renameAllowed (админ) меняется и
// название команды; статус и is_edited здесь не трогаются — капитанский
// сценарий переводит заявку в pending отдельным вызовом UpdateStatus.
func (r *postgresTeamRepository) UpdateRoster(ctx context.Context, team *models.Team, renameAllowed bool) error {
	query := `
		UPDATE teams SET
			top_nick = $1, top_telegram = $2,
			jungle_nick = $3, jungle_telegram = $4,
			mid_nick = $5, mid_telegram = $6,
			adc_nick = $7, adc_telegram = $8,
			support_nick = $9, support_telegram = $10,
			sub1_nick = $11, sub1_telegram = $12,
			sub2_nick = $13, sub2_telegram = $14
		WHERE id = $15`
	args := []interface{}{
		team.TopNick, team.TopTelegram,
		team.JungleNick, team.JungleTelegram,
		team.MidNick, team.MidTelegram,
		team.AdcNick, team.AdcTelegram,
		team.SupportNick, team.SupportTelegram,
		team.Sub1Nick, team.Sub1Telegram,
		team.Sub2Nick, team.Sub2Telegram,
		team.ID,
	}

	if renameAllowed {
		query = `
		UPDATE teams SET
			team_name = $1,
			top_nick = $2, top_telegram = $3,
			jungle_nick = $4, jungle_telegram = $5,
			mid_nick = $6, mid_telegram = $7,
			adc_nick = $8, adc_telegram = $9,
			support_nick = $10, support_telegram = $11,
			sub1_nick = $12, sub1_telegram = $13,
			sub2_nick = $14, sub2_telegram = $15
		WHERE id = $16`
		args = append([]interface{}{team.TeamName}, args...)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_team_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus, edited bool) error {
	query := `UPDATE teams SET status = $1, is_edited = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, edited, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM teams WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *postgresTeamRepository) scanTeam(ctx context.Context, query string, args ...interface{}) (*models.Team, error) {
	team := &models.Team{}
	err := scanTeamRow(r.db.QueryRowContext(ctx, query, args...), team)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTeamRow(row rowScanner, team *models.Team) error {
	err := row.Scan(
		&team.ID,
		&team.TeamName,
		&team.CaptainNick,
		&team.CaptainTelegram,
		&team.PasswordHash,
		&team.TopNick, &team.TopTelegram,
		&team.JungleNick, &team.JungleTelegram,
		&team.MidNick, &team.MidTelegram,
		&team.AdcNick, &team.AdcTelegram,
		&team.SupportNick, &team.SupportTelegram,
		&team.Sub1Nick, &team.Sub1Telegram,
		&team.Sub2Nick, &team.Sub2Telegram,
		&team.Status,
		&team.IsEdited,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to scan team: %w", err)
	}
	return nil
}
