package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// In-memory repository fakes. Each mirrors the semantics of its
// Postgres counterpart closely enough for service-level tests,
// including the unique-index and conditional-update behavior the
// services depend on.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) mustAdd(username string) uuid.UUID {
	user := &model.User{Username: username, Name: username, Password: "x"}
	if err := r.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user.ID
}

type fakeInviteRepo struct {
	users *fakeUserRepo
	codes map[uuid.UUID]*model.InviteCode
}

func newFakeInviteRepo(users *fakeUserRepo) *fakeInviteRepo {
	return &fakeInviteRepo{users: users, codes: make(map[uuid.UUID]*model.InviteCode)}
}

func (r *fakeInviteRepo) Create(_ context.Context, code *model.InviteCode) error {
	for _, c := range r.codes {
		if c.CreatedBy == code.CreatedBy || c.Code == code.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	stored := *code
	r.codes[code.ID] = &stored
	return nil
}

func (r *fakeInviteRepo) GetByCode(_ context.Context, raw string) (*model.InviteCode, error) {
	for _, c := range r.codes {
		if c.Code == raw {
			out := *c
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInviteRepo) GetByCreator(_ context.Context, userID uuid.UUID) (*model.InviteCode, error) {
	for _, c := range r.codes {
		if c.CreatedBy == userID {
			out := *c
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInviteRepo) Bind(_ context.Context, userID uuid.UUID, code *model.InviteCode) error {
	user, ok := r.users.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if user.InvitedBy != nil {
		return repository.ErrAlreadyBound
	}
	createdBy := code.CreatedBy
	user.InvitedBy = &createdBy
	if stored, ok := r.codes[code.ID]; ok {
		now := time.Now()
		stored.UsedAt = &now
		stored.UsedBy = &userID
	}
	return nil
}

type noteKey struct {
	user uuid.UUID
	date string
}

type fakeNoteRepo struct {
	notes map[noteKey]string
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[noteKey]string)}
}

func (r *fakeNoteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Note, error) {
	var out []model.Note
	for k, content := range r.notes {
		if k.user == userID {
			out = append(out, model.Note{UserID: k.user, Date: k.date, Content: content})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeNoteRepo) Get(_ context.Context, userID uuid.UUID, date string) (*model.Note, error) {
	content, ok := r.notes[noteKey{userID, date}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Note{UserID: userID, Date: date, Content: content}, nil
}

func (r *fakeNoteRepo) Upsert(_ context.Context, userID uuid.UUID, date, content string) error {
	r.notes[noteKey{userID, date}] = content
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, userID uuid.UUID, date string) (int64, error) {
	if _, ok := r.notes[noteKey{userID, date}]; !ok {
		return 0, nil
	}
	delete(r.notes, noteKey{userID, date})
	return 1, nil
}

type counterKey struct {
	user uuid.UUID
	typ  string
}

type fakeCounterRepo struct {
	counters map[counterKey]int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[counterKey]int)}
}

func (r *fakeCounterRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Counter, error) {
	var out []model.Counter
	for k, v := range r.counters {
		if k.user == userID {
			out = append(out, model.Counter{UserID: k.user, Type: k.typ, Value: v})
		}
	}
	return out, nil
}

func (r *fakeCounterRepo) ApplyDelta(_ context.Context, userID uuid.UUID, counterType string, init, delta int) (int, error) {
	key := counterKey{userID, counterType}
	v, ok := r.counters[key]
	if !ok {
		r.counters[key] = init
		return init, nil
	}
	v += delta
	if v < 0 {
		v = 0
	}
	r.counters[key] = v
	return v, nil
}

func (r *fakeCounterRepo) SetValue(_ context.Context, userID uuid.UUID, counterType string, value int) (int, error) {
	r.counters[counterKey{userID, counterType}] = value
	return value, nil
}

func (r *fakeCounterRepo) ResetAll(_ context.Context, userID uuid.UUID) error {
	for k := range r.counters {
		if k.user == userID {
			r.counters[k] = 0
		}
	}
	return nil
}

type fakeWheelRepo struct {
	settings map[uuid.UUID]*model.WheelSetting
	history  []model.WheelHistory
}

func newFakeWheelRepo() *fakeWheelRepo {
	return &fakeWheelRepo{settings: make(map[uuid.UUID]*model.WheelSetting)}
}

func (r *fakeWheelRepo) ListSettings(_ context.Context, userID uuid.UUID) ([]model.WheelSetting, error) {
	var out []model.WheelSetting
	for _, s := range r.settings {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeWheelRepo) GetSetting(_ context.Context, id, userID uuid.UUID) (*model.WheelSetting, error) {
	s, ok := r.settings[id]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeWheelRepo) CreateSetting(_ context.Context, setting *model.WheelSetting) error {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}
	stored := *setting
	r.settings[setting.ID] = &stored
	return nil
}

func (r *fakeWheelRepo) UpdateSetting(_ context.Context, setting *model.WheelSetting) (int64, error) {
	s, ok := r.settings[setting.ID]
	if !ok || s.UserID != setting.UserID {
		return 0, nil
	}
	s.Name = setting.Name
	s.Options = setting.Options
	s.Theme = setting.Theme
	return 1, nil
}

func (r *fakeWheelRepo) DeleteSetting(_ context.Context, id, userID uuid.UUID) (int64, error) {
	s, ok := r.settings[id]
	if !ok || s.UserID != userID {
		return 0, nil
	}
	delete(r.settings, id)
	return 1, nil
}

func (r *fakeWheelRepo) ListHistory(_ context.Context, userID uuid.UUID) ([]model.WheelHistory, error) {
	var out []model.WheelHistory
	for _, h := range r.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeWheelRepo) CreateHistory(_ context.Context, entry *model.WheelHistory) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.history = append(r.history, *entry)
	return nil
}

type memberKey struct {
	list uuid.UUID
	user uuid.UUID
}

type fakeListRepo struct {
	lists   map[uuid.UUID]*model.SharedList
	members map[memberKey]*model.ListMember
	items   map[uuid.UUID]*model.ListItem
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists:   make(map[uuid.UUID]*model.SharedList),
		members: make(map[memberKey]*model.ListMember),
		items:   make(map[uuid.UUID]*model.ListItem),
	}
}

func (r *fakeListRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]model.SharedList, error) {
	var out []model.SharedList
	for k, m := range r.members {
		if m.UserID == userID {
			if l, ok := r.lists[k.list]; ok {
				out = append(out, *l)
			}
		}
	}
	return out, nil
}

func (r *fakeListRepo) CreateWithOwner(_ context.Context, list *model.SharedList) error {
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	stored := *list
	r.lists[list.ID] = &stored
	r.members[memberKey{list.ID, list.OwnerID}] = &model.ListMember{
		ID:     uuid.New(),
		ListID: list.ID,
		UserID: list.OwnerID,
		Role:   model.ListRoleOwner,
	}
	return nil
}

func (r *fakeListRepo) Get(_ context.Context, listID uuid.UUID) (*model.SharedList, error) {
	l, ok := r.lists[listID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *l
	return &out, nil
}

func (r *fakeListRepo) GetMember(_ context.Context, listID, userID uuid.UUID) (*model.ListMember, error) {
	m, ok := r.members[memberKey{listID, userID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *m
	return &out, nil
}

func (r *fakeListRepo) ListMembers(_ context.Context, listID uuid.UUID) ([]model.ListMember, error) {
	var out []model.ListMember
	for k, m := range r.members {
		if k.list == listID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeListRepo) AddMember(_ context.Context, member *model.ListMember) error {
	key := memberKey{member.ListID, member.UserID}
	if _, ok := r.members[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	stored := *member
	r.members[key] = &stored
	return nil
}

func (r *fakeListRepo) ListItems(_ context.Context, listID uuid.UUID) ([]model.ListItem, error) {
	var out []model.ListItem
	for _, item := range r.items {
		if item.ListID == listID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeListRepo) GetItem(_ context.Context, itemID uuid.UUID) (*model.ListItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *item
	return &out, nil
}

func (r *fakeListRepo) CreateItem(_ context.Context, item *model.ListItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeListRepo) UpdateItem(_ context.Context, item *model.ListItem) error {
	stored, ok := r.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = item.Name
	stored.Description = item.Description
	stored.Completed = item.Completed
	return nil
}

func (r *fakeListRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	delete(r.items, itemID)
	return nil
}

type fakeExerciseRepo struct {
	exercises map[uuid.UUID]*model.Exercise
	types     map[uuid.UUID]*model.ExerciseType
	reminders map[uuid.UUID]*model.ReminderSetting
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		exercises: make(map[uuid.UUID]*model.Exercise),
		types:     make(map[uuid.UUID]*model.ExerciseType),
		reminders: make(map[uuid.UUID]*model.ReminderSetting),
	}
}

func (r *fakeExerciseRepo) List(_ context.Context, userID uuid.UUID) ([]model.Exercise, error) {
	var out []model.Exercise
	for _, e := range r.exercises {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *model.Exercise) error {
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	stored := *exercise
	r.exercises[exercise.ID] = &stored
	return nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *model.Exercise) (int64, error) {
	e, ok := r.exercises[exercise.ID]
	if !ok || e.UserID != exercise.UserID {
		return 0, nil
	}
	e.Name = exercise.Name
	e.Type = exercise.Type
	e.Duration = exercise.Duration
	e.Intensity = exercise.Intensity
	return 1, nil
}

func (r *fakeExerciseRepo) SetCompleted(_ context.Context, id, userID uuid.UUID, completed bool) (*model.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok || e.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	e.Completed = completed
	out := *e
	return &out, nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id, userID uuid.UUID) (int64, error) {
	e, ok := r.exercises[id]
	if !ok || e.UserID != userID {
		return 0, nil
	}
	delete(r.exercises, id)
	return 1, nil
}

func (r *fakeExerciseRepo) ListTypes(_ context.Context, userID uuid.UUID) ([]model.ExerciseType, error) {
	var out []model.ExerciseType
	for _, t := range r.types {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (r *fakeExerciseRepo) CreateType(_ context.Context, exerciseType *model.ExerciseType) error {
	for _, t := range r.types {
		if t.UserID == exerciseType.UserID && t.Type == exerciseType.Type {
			return gorm.ErrDuplicatedKey
		}
	}
	if exerciseType.ID == uuid.Nil {
		exerciseType.ID = uuid.New()
	}
	stored := *exerciseType
	r.types[exerciseType.ID] = &stored
	return nil
}

func (r *fakeExerciseRepo) DeleteType(_ context.Context, id, userID uuid.UUID) (int64, error) {
	t, ok := r.types[id]
	if !ok || t.UserID != userID {
		return 0, nil
	}
	delete(r.types, id)
	return 1, nil
}

func (r *fakeExerciseRepo) GetReminder(_ context.Context, userID uuid.UUID) (*model.ReminderSetting, error) {
	s, ok := r.reminders[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeExerciseRepo) UpsertReminder(_ context.Context, setting *model.ReminderSetting) error {
	stored := *setting
	r.reminders[setting.UserID] = &stored
	return nil
}

type fakeCuisineRepo struct {
	categories map[uuid.UUID]map[string][]string
	history    []model.CuisineHistory
}

func newFakeCuisineRepo() *fakeCuisineRepo {
	return &fakeCuisineRepo{categories: make(map[uuid.UUID]map[string][]string)}
}

func (r *fakeCuisineRepo) ListCategories(_ context.Context, userID uuid.UUID) ([]model.CuisineCategory, error) {
	var out []model.CuisineCategory
	for name, dishes := range r.categories[userID] {
		category := model.CuisineCategory{ID: uuid.New(), UserID: userID, Name: name}
		sorted := append([]string(nil), dishes...)
		sort.Strings(sorted)
		for _, dish := range sorted {
			category.Dishes = append(category.Dishes, model.Dish{ID: uuid.New(), CategoryID: category.ID, Name: dish})
		}
		out = append(out, category)
	}
	return out, nil
}

func (r *fakeCuisineRepo) ReplaceCategories(_ context.Context, userID uuid.UUID, categories map[string][]string) error {
	copied := make(map[string][]string, len(categories))
	for name, dishes := range categories {
		copied[name] = append([]string(nil), dishes...)
	}
	r.categories[userID] = copied
	return nil
}

func (r *fakeCuisineRepo) ListHistory(_ context.Context, userID uuid.UUID, limit int) ([]model.CuisineHistory, error) {
	var out []model.CuisineHistory
	for i := len(r.history) - 1; i >= 0 && len(out) < limit; i-- {
		if r.history[i].UserID == userID {
			out = append(out, r.history[i])
		}
	}
	return out, nil
}

func (r *fakeCuisineRepo) CreateHistory(_ context.Context, entry *model.CuisineHistory) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.history = append(r.history, *entry)
	return nil
}

func (r *fakeCuisineRepo) ClearHistory(_ context.Context, userID uuid.UUID) error {
	kept := r.history[:0]
	for _, h := range r.history {
		if h.UserID != userID {
			kept = append(kept, h)
		}
	}
	r.history = kept
	return nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.InviteCodeRepository = (*fakeInviteRepo)(nil)
	_ repository.NoteRepository       = (*fakeNoteRepo)(nil)
	_ repository.CounterRepository    = (*fakeCounterRepo)(nil)
	_ repository.WheelRepository      = (*fakeWheelRepo)(nil)
	_ repository.ListRepository       = (*fakeListRepo)(nil)
	_ repository.ExerciseRepository   = (*fakeExerciseRepo)(nil)
	_ repository.CuisineRepository    = (*fakeCuisineRepo)(nil)
)
