package service

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repo fakes. They return pgx.ErrNoRows for missing rows and a
// pgconn.PgError with code 23505 where the real schema has a unique index,
// so the services' error mapping is exercised as in production.

func uniqueViolation() error { return &pgconn.PgError{Code: "23505"} }

type fakeBoardRepo struct {
	boards  map[int64]dom.Board
	collabs map[int64]dom.BoardCollaborator
	nextID  int64
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{
		boards:  map[int64]dom.Board{},
		collabs: map[int64]dom.BoardCollaborator{},
	}
}

func (r *fakeBoardRepo) Create(_ context.Context, b dom.Board) (dom.Board, error) {
	r.nextID++
	b.ID = r.nextID
	r.boards[b.ID] = b
	return b, nil
}

func (r *fakeBoardRepo) GetByID(_ context.Context, id int64) (dom.Board, error) {
	b, ok := r.boards[id]
	if !ok {
		return dom.Board{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *fakeBoardRepo) Update(_ context.Context, id int64, name string) (dom.Board, error) {
	b, ok := r.boards[id]
	if !ok {
		return dom.Board{}, pgx.ErrNoRows
	}
	b.Name = name
	r.boards[id] = b
	return b, nil
}

func (r *fakeBoardRepo) Delete(_ context.Context, id int64) error {
	delete(r.boards, id)
	return nil
}

func (r *fakeBoardRepo) ListForUser(_ context.Context, userID int64) ([]dom.Board, error) {
	var list []dom.Board
	for _, b := range r.boards {
		if b.OwnerID == userID {
			list = append(list, b)
			continue
		}
		for _, c := range r.collabs {
			if c.BoardID == b.ID && c.UserID == userID {
				list = append(list, b)
				break
			}
		}
	}
	return list, nil
}

func (r *fakeBoardRepo) Grants(_ context.Context, boardID int64) ([]dom.BoardCollaborator, error) {
	var list []dom.BoardCollaborator
	for _, c := range r.collabs {
		if c.BoardID == boardID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeBoardRepo) AddCollaborator(_ context.Context, c dom.BoardCollaborator) (dom.BoardCollaborator, error) {
	for _, existing := range r.collabs {
		if existing.BoardID == c.BoardID && existing.UserID == c.UserID {
			return dom.BoardCollaborator{}, uniqueViolation()
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.collabs[c.ID] = c
	return c, nil
}

func (r *fakeBoardRepo) GetCollaborator(_ context.Context, id int64) (dom.BoardCollaborator, error) {
	c, ok := r.collabs[id]
	if !ok {
		return dom.BoardCollaborator{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeBoardRepo) UpdateCollaboratorRole(_ context.Context, id int64, role dom.Role) (dom.BoardCollaborator, error) {
	c, ok := r.collabs[id]
	if !ok {
		return dom.BoardCollaborator{}, pgx.ErrNoRows
	}
	c.Role = role
	r.collabs[id] = c
	return c, nil
}

func (r *fakeBoardRepo) RemoveCollaborator(_ context.Context, id int64) error {
	delete(r.collabs, id)
	return nil
}

func (r *fakeBoardRepo) ListAllCollaborators(_ context.Context) ([]dom.BoardCollaborator, error) {
	var list []dom.BoardCollaborator
	for _, c := range r.collabs {
		list = append(list, c)
	}
	return list, nil
}

type fakeUserRepo struct {
	users  map[int64]dom.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	// Start IDs high so created users never collide with the hard-coded
	// principal/owner IDs (1, 2, 7) the tests use.
	return &fakeUserRepo{users: map[int64]dom.User{}, nextID: 1000}
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (dom.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, login, name, passwordHash string) (dom.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			return dom.User{}, uniqueViolation()
		}
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Login: login, Name: name, PasswordHash: passwordHash, IsActive: true}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, name, passwordHash string) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	u.Name = name
	u.PasswordHash = passwordHash
	r.users[id] = u
	return u, nil
}

type fakeColumnRepo struct {
	columns map[int64]dom.Column
	nextID  int64
}

func newFakeColumnRepo() *fakeColumnRepo {
	return &fakeColumnRepo{columns: map[int64]dom.Column{}}
}

func (r *fakeColumnRepo) PositionTaken(_ context.Context, boardID int64, pos int, excludeID int64) (bool, error) {
	for _, c := range r.columns {
		if c.BoardID == boardID && c.Position == pos && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeColumnRepo) Create(_ context.Context, c dom.Column) (dom.Column, error) {
	r.nextID++
	c.ID = r.nextID
	r.columns[c.ID] = c
	return c, nil
}

func (r *fakeColumnRepo) GetByID(_ context.Context, id int64) (dom.Column, error) {
	c, ok := r.columns[id]
	if !ok {
		return dom.Column{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeColumnRepo) ListByBoard(_ context.Context, boardID int64) ([]dom.Column, error) {
	var list []dom.Column
	for _, c := range r.columns {
		if c.BoardID == boardID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeColumnRepo) Update(_ context.Context, id int64, patch dom.Column) (dom.Column, error) {
	if _, ok := r.columns[id]; !ok {
		return dom.Column{}, pgx.ErrNoRows
	}
	patch.ID = id
	r.columns[id] = patch
	return patch, nil
}

func (r *fakeColumnRepo) Delete(_ context.Context, id int64) error {
	delete(r.columns, id)
	return nil
}

type fakeCardRepo struct {
	cards  map[int64]dom.Card
	tags   map[int64][]int64 // cardID -> tagIDs
	nextID int64
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[int64]dom.Card{}, tags: map[int64][]int64{}}
}

func (r *fakeCardRepo) PositionTaken(_ context.Context, columnID int64, pos int, excludeID int64) (bool, error) {
	for _, c := range r.cards {
		if c.ColumnID == columnID && c.Position != nil && *c.Position == pos && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCardRepo) Create(_ context.Context, c dom.Card) (dom.Card, error) {
	r.nextID++
	c.ID = r.nextID
	r.cards[c.ID] = c
	return c, nil
}

func (r *fakeCardRepo) GetByID(_ context.Context, id int64) (dom.Card, error) {
	c, ok := r.cards[id]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeCardRepo) ListByColumn(_ context.Context, columnID int64) ([]dom.Card, error) {
	var list []dom.Card
	for _, c := range r.cards {
		if c.ColumnID == columnID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeCardRepo) Update(_ context.Context, id int64, patch dom.Card) (dom.Card, error) {
	existing, ok := r.cards[id]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.UserID = existing.UserID // creator never changes
	r.cards[id] = patch
	return patch, nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id int64) error {
	delete(r.cards, id)
	delete(r.tags, id)
	return nil
}

func (r *fakeCardRepo) AttachTag(_ context.Context, cardID, tagID int64) error {
	for _, id := range r.tags[cardID] {
		if id == tagID {
			return nil
		}
	}
	r.tags[cardID] = append(r.tags[cardID], tagID)
	return nil
}

func (r *fakeCardRepo) DetachTag(_ context.Context, cardID, tagID int64) error {
	ids := r.tags[cardID]
	for i, id := range ids {
		if id == tagID {
			r.tags[cardID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCardRepo) ListTags(_ context.Context, cardID int64) ([]dom.Tag, error) {
	var list []dom.Tag
	for _, id := range r.tags[cardID] {
		list = append(list, dom.Tag{ID: id})
	}
	return list, nil
}

type fakeTaskRepo struct {
	tasks  map[int64]dom.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]dom.Task{}}
}

func (r *fakeTaskRepo) PositionTaken(_ context.Context, cardID int64, pos int, excludeID int64) (bool, error) {
	for _, t := range r.tasks {
		if t.CardID == cardID && t.Position == pos && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.nextID++
	t.ID = r.nextID
	r.tasks[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) ListByCard(_ context.Context, cardID int64) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		if t.CardID == cardID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id int64, patch dom.Task) (dom.Task, error) {
	if _, ok := r.tasks[id]; !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	patch.ID = id
	r.tasks[id] = patch
	return patch, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	delete(r.tasks, id)
	return nil
}

type fakeTagRepo struct {
	tags   map[int64]dom.Tag
	nextID int64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[int64]dom.Tag{}}
}

func (r *fakeTagRepo) Create(_ context.Context, t dom.Tag) (dom.Tag, error) {
	for _, existing := range r.tags {
		if existing.Name == t.Name {
			return dom.Tag{}, uniqueViolation()
		}
	}
	r.nextID++
	t.ID = r.nextID
	r.tags[t.ID] = t
	return t, nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, id int64) (dom.Tag, error) {
	t, ok := r.tags[id]
	if !ok {
		return dom.Tag{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTagRepo) List(_ context.Context) ([]dom.Tag, error) {
	var list []dom.Tag
	for _, t := range r.tags {
		list = append(list, t)
	}
	return list, nil
}

func (r *fakeTagRepo) Update(_ context.Context, id int64, patch dom.Tag) (dom.Tag, error) {
	if _, ok := r.tags[id]; !ok {
		return dom.Tag{}, pgx.ErrNoRows
	}
	for _, existing := range r.tags {
		if existing.ID != id && existing.Name == patch.Name {
			return dom.Tag{}, uniqueViolation()
		}
	}
	patch.ID = id
	r.tags[id] = patch
	return patch, nil
}

func (r *fakeTagRepo) Delete(_ context.Context, id int64) error {
	delete(r.tags, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[int64]dom.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]dom.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c dom.Comment) (dom.Comment, error) {
	r.nextID++
	c.ID = r.nextID
	r.comments[c.ID] = c
	return c, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (dom.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return dom.Comment{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByCard(_ context.Context, cardID int64) ([]dom.Comment, error) {
	var list []dom.Comment
	for _, c := range r.comments {
		if c.CardID == cardID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[int64]dom.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[int64]dom.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n dom.Notification) (dom.Notification, error) {
	r.nextID++
	n.ID = r.nextID
	r.notifications[n.ID] = n
	return n, nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id int64) (dom.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return dom.Notification{}, pgx.ErrNoRows
	}
	return n, nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64, unreadOnly bool) ([]dom.Notification, error) {
	var list []dom.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		list = append(list, n)
	}
	return list, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id int64) (dom.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return dom.Notification{}, pgx.ErrNoRows
	}
	n.Read = true
	r.notifications[id] = n
	return n, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id int64) error {
	delete(r.notifications, id)
	return nil
}
