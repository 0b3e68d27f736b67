package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrScheduleTeamNotFound = errors.New("schedule team not found")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	List(ctx context.Context) ([]models.Match, error)
	UpdateResult(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error

	GetScheduleTeamByName(ctx context.Context, name string) (int, error)
	CreateScheduleTeam(ctx context.Context, name string) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (
			match_date, match_time, team1_id, team2_id, team1_name, team2_name,
			round, status, stream_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		match.MatchDate,
		match.MatchTime,
		match.Team1ID,
		match.Team2ID,
		match.Team1Name,
		match.Team2Name,
		match.Round,
		match.Status,
		match.StreamURL,
	).Scan(&match.ID)
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]models.Match, error) {
	// Дата и время отдаются строками: формат контракта расписания.
	query := `
		SELECT
			id,
			to_char(match_date, 'YYYY-MM-DD'),
			to_char(match_time, 'HH24:MI:SS'),
			team1_id, team2_id, team1_name, team2_name,
			status, winner_team_id, score_team1, score_team2, round, stream_url
		FROM matches
		ORDER BY match_date ASC, match_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.ID,
			&match.MatchDate,
			&match.MatchTime,
			&match.Team1ID,
			&match.Team2ID,
			&match.Team1Name,
			&match.Team2Name,
			&match.Status,
			&match.WinnerTeamID,
			&match.ScoreTeam1,
			&match.ScoreTeam2,
			&match.Round,
			&match.StreamURL,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET status = $1, winner_team_id = $2, score_team1 = $3, score_team2 = $4,
			stream_url = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		match.Status,
		match.WinnerTeamID,
		match.ScoreTeam1,
		match.ScoreTeam2,
		match.StreamURL,
		match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM matches`)
	return err
}

func (r *postgresMatchRepository) GetScheduleTeamByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM schedule_teams WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrScheduleTeamNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *postgresMatchRepository) CreateScheduleTeam(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO schedule_teams (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
