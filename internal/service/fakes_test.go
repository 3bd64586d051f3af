package service

import (
	"context"
	"sort"

	"therapy_platform/internal/model"
)

// In-memory repository fakes for service tests. They mirror the SQL
// behavior the real repositories rely on: assigned IDs, nil for
// not-found lookups, newest-first ordering on list queries.

type fakeUserRepo struct {
	users  []model.User
	nextID int
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]model.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	r.sessions[s.ID] = *s
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id string) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type fakePostRepo struct {
	posts  []model.Post
	nextID int64
}

func (r *fakePostRepo) Create(_ context.Context, p *model.Post) error {
	r.nextID++
	p.ID = r.nextID
	r.posts = append(r.posts, *p)
	return nil
}

func (r *fakePostRepo) FindAll(_ context.Context) ([]model.Post, error) {
	out := append([]model.Post(nil), r.posts...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeCommentRepo struct {
	comments []model.Comment
	nextID   int64
}

func (r *fakeCommentRepo) Create(_ context.Context, c *model.Comment) error {
	r.nextID++
	c.ID = r.nextID
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) FindByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments []model.Appointment
	nextID       int64
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	r.nextID++
	a.ID = r.nextID
	r.appointments = append(r.appointments, *a)
	return nil
}

func (r *fakeAppointmentRepo) FindByUser(_ context.Context, userID int) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range r.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByTherapist(_ context.Context, therapistID int) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range r.appointments {
		if a.TherapistID == therapistID {
			out = append(out, a)
		}
	}
	return out, nil
}
