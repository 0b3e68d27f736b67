package services_test

import (
	"context"
	"sort"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

// Фейки репозиториев поверх карт в памяти. Методы возвращают копии,
// чтобы повторное чтение вело себя как свежий запрос к базе.

type fakeAdminRepo struct {
	admins map[int]*models.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[int]*models.Admin), nextID: 1}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	for _, existing := range r.admins {
		if existing.Username == admin.Username {
			return repositories.ErrAdminUsernameConflict
		}
	}
	admin.ID = r.nextID
	r.nextID++
	stored := *admin
	r.admins[admin.ID] = &stored
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Username == username {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *fakeAdminRepo) List(_ context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0, len(r.admins))
	for _, admin := range r.admins {
		admins = append(admins, *admin)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].ID < admins[j].ID })
	return admins, nil
}

func (r *fakeAdminRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.admins[id]; !ok {
		return repositories.ErrAdminNotFound
	}
	delete(r.admins, id)
	return nil
}

type fakeTeamRepo struct {
	teams  map[int]*models.Team
	nextID int
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int]*models.Team), nextID: 1}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	for _, existing := range r.teams {
		if existing.TeamName == team.TeamName {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = r.nextID
	r.nextID++
	stored := *team
	r.teams[team.ID] = &stored
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.TeamName == name {
			copied := *team
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) GetByCaptainTelegram(_ context.Context, telegram string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.CaptainTelegram == telegram {
			copied := *team
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) ListByStatus(_ context.Context, status models.RegistrationStatus) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	for _, team := range r.teams {
		if team.Status == status {
			teams = append(teams, *team)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (r *fakeTeamRepo) UpdateRoster(_ context.Context, team *models.Team, renameAllowed bool) error {
	stored, ok := r.teams[team.ID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	if renameAllowed {
		for id, existing := range r.teams {
			if id != team.ID && existing.TeamName == team.TeamName {
				return repositories.ErrTeamNameConflict
			}
		}
		stored.TeamName = team.TeamName
	}
	stored.TopNick = team.TopNick
	stored.TopTelegram = team.TopTelegram
	stored.JungleNick = team.JungleNick
	stored.JungleTelegram = team.JungleTelegram
	stored.MidNick = team.MidNick
	stored.MidTelegram = team.MidTelegram
	stored.AdcNick = team.AdcNick
	stored.AdcTelegram = team.AdcTelegram
	stored.SupportNick = team.SupportNick
	stored.SupportTelegram = team.SupportTelegram
	stored.Sub1Nick = team.Sub1Nick
	stored.Sub1Telegram = team.Sub1Telegram
	stored.Sub2Nick = team.Sub2Nick
	stored.Sub2Telegram = team.Sub2Telegram
	return nil
}

func (r *fakeTeamRepo) UpdateStatus(_ context.Context, id int, status models.RegistrationStatus, edited bool) error {
	stored, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	stored.Status = status
	stored.IsEdited = edited
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.teams))
	r.teams = make(map[int]*models.Team)
	return n, nil
}

type fakePlayerRepo struct {
	players map[int]*models.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]*models.Player), nextID: 1}
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	player.ID = r.nextID
	r.nextID++
	stored := *player
	r.players[player.ID] = &stored
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (r *fakePlayerRepo) GetByTelegram(_ context.Context, telegram string) (*models.Player, error) {
	for _, player := range r.players {
		if player.Telegram == telegram {
			copied := *player
			return &copied, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) List(_ context.Context) ([]models.Player, error) {
	players := make([]models.Player, 0, len(r.players))
	for _, player := range r.players {
		players = append(players, *player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (r *fakePlayerRepo) UpdateStatus(_ context.Context, id int, status models.RegistrationStatus) error {
	stored, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	stored.Status = status
	return nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.players))
	r.players = make(map[int]*models.Player)
	return n, nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *models.Session) error {
	stored := *session
	r.sessions[session.Token] = &stored
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*models.Session, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

type fakeSettingRepo struct {
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (r *fakeSettingRepo) Get(_ context.Context, key string) (string, error) {
	value, ok := r.values[key]
	if !ok {
		return "", repositories.ErrSettingNotFound
	}
	return value, nil
}

func (r *fakeSettingRepo) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

type fakeMatchRepo struct {
	matches       map[int]*models.Match
	scheduleTeams map[string]int
	nextID        int
	nextTeamID    int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		matches:       make(map[int]*models.Match),
		scheduleTeams: make(map[string]int),
		nextID:        1,
		nextTeamID:    1,
	}
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	stored := *match
	r.matches[match.ID] = &stored
	return nil
}

func (r *fakeMatchRepo) List(_ context.Context) ([]models.Match, error) {
	matches := make([]models.Match, 0, len(r.matches))
	for _, match := range r.matches {
		matches = append(matches, *match)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeMatchRepo) UpdateResult(_ context.Context, match *models.Match) error {
	stored, ok := r.matches[match.ID]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	stored.Status = match.Status
	stored.WinnerTeamID = match.WinnerTeamID
	stored.ScoreTeam1 = match.ScoreTeam1
	stored.ScoreTeam2 = match.ScoreTeam2
	stored.StreamURL = match.StreamURL
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeMatchRepo) DeleteAll(_ context.Context) error {
	r.matches = make(map[int]*models.Match)
	return nil
}

func (r *fakeMatchRepo) GetScheduleTeamByName(_ context.Context, name string) (int, error) {
	id, ok := r.scheduleTeams[name]
	if !ok {
		return 0, repositories.ErrScheduleTeamNotFound
	}
	return id, nil
}

func (r *fakeMatchRepo) CreateScheduleTeam(_ context.Context, name string) (int, error) {
	id := r.nextTeamID
	r.nextTeamID++
	r.scheduleTeams[name] = id
	return id, nil
}
