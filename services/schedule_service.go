package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

type ScheduleService interface {
	ListMatches(ctx context.Context, includeUnpublished bool) ([]models.Match, error)
	Published(ctx context.Context) (bool, error)
	CreateMatch(ctx context.Context, input CreateMatchInput) (int, error)
	UpdateMatch(ctx context.Context, input UpdateMatchInput) error
	SetPublished(ctx context.Context, published bool) error
	DeleteMatch(ctx context.Context, id int) error
	ClearMatches(ctx context.Context) error
}

type CreateMatchInput struct {
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	Team1Name string `json:"team1_name"`
	Team2Name string `json:"team2_name"`
	Round     string `json:"round"`
	Status    string `json:"status"`
	StreamURL string `json:"stream_url"`
}

type UpdateMatchInput struct {
	ID           int    `json:"id"`
	Status       string `json:"status"`
	WinnerTeamID *int   `json:"winner_team_id"`
	ScoreTeam1   *int   `json:"score_team1"`
	ScoreTeam2   *int   `json:"score_team2"`
	StreamURL    string `json:"stream_url"`
}

type scheduleService struct {
	matches  repositories.MatchRepository
	settings repositories.SettingRepository
}

func NewScheduleService(matches repositories.MatchRepository, settings repositories.SettingRepository) ScheduleService {
	return &scheduleService{
		matches:  matches,
		settings: settings,
	}
}

// ListMatches прячет неопубликованное расписание от всех, кроме админов:
// обычный клиент получает пустой список, а не ошибку.
func (s *scheduleService) ListMatches(ctx context.Context, includeUnpublished bool) ([]models.Match, error) {
	published, err := s.Published(ctx)
	if err != nil {
		return nil, err
	}
	if !published && !includeUnpublished {
		return []models.Match{}, nil
	}
	return s.matches.List(ctx)
}

func (s *scheduleService) Published(ctx context.Context) (bool, error) {
	value, err := s.settings.Get(ctx, models.SettingSchedulePublished)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}
	return value == "true", nil
}

func (s *scheduleService) CreateMatch(ctx context.Context, input CreateMatchInput) (int, error) {
	if input.MatchDate == "" || input.MatchTime == "" ||
		input.Team1Name == "" || input.Team2Name == "" || input.Round == "" {
		return 0, ErrMatchFieldsRequired
	}

	status := models.MatchStatus(input.Status)
	if status == "" {
		status = models.MatchStatusWaiting
	}

	team1ID, err := s.ensureScheduleTeam(ctx, input.Team1Name)
	if err != nil {
		return 0, err
	}
	team2ID, err := s.ensureScheduleTeam(ctx, input.Team2Name)
	if err != nil {
		return 0, err
	}

	match := &models.Match{
		MatchDate: input.MatchDate,
		MatchTime: input.MatchTime,
		Team1ID:   &team1ID,
		Team2ID:   &team2ID,
		Team1Name: input.Team1Name,
		Team2Name: input.Team2Name,
		Round:     input.Round,
		Status:    status,
		StreamURL: input.StreamURL,
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return 0, fmt.Errorf("failed to create match: %w", err)
	}
	return match.ID, nil
}

func (s *scheduleService) UpdateMatch(ctx context.Context, input UpdateMatchInput) error {
	if input.ID <= 0 {
		return ErrMatchIDRequired
	}

	match := &models.Match{
		ID:           input.ID,
		Status:       models.MatchStatus(input.Status),
		WinnerTeamID: input.WinnerTeamID,
		ScoreTeam1:   input.ScoreTeam1,
		ScoreTeam2:   input.ScoreTeam2,
		StreamURL:    input.StreamURL,
	}
	err := s.matches.UpdateResult(ctx, match)
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrMatchNotFound
	}
	return err
}

func (s *scheduleService) SetPublished(ctx context.Context, published bool) error {
	return s.settings.Upsert(ctx, models.SettingSchedulePublished, strconv.FormatBool(published))
}

func (s *scheduleService) DeleteMatch(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrMatchIDRequired
	}
	err := s.matches.Delete(ctx, id)
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrMatchNotFound
	}
	return err
}

func (s *scheduleService) ClearMatches(ctx context.Context) error {
	return s.matches.DeleteAll(ctx)
}

// ensureScheduleTeam находит команду расписания по имени, создавая её при
// отсутствии. Поиск и вставка не атомарны: гонка двух создателей всплывёт
// нарушением уникальности имени.
func (s *scheduleService) ensureScheduleTeam(ctx context.Context, name string) (int, error) {
	id, err := s.matches.GetScheduleTeamByName(ctx, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, repositories.ErrScheduleTeamNotFound) {
		return 0, err
	}
	return s.matches.CreateScheduleTeam(ctx, name)
}
