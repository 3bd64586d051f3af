package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"therapy_platform/internal/middleware"
	"therapy_platform/internal/model"
	"therapy_platform/internal/service"
	"therapy_platform/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// memStore backs in-memory repository implementations so the full
// handler → service stack can be exercised without a database.
type memStore struct {
	users        []model.User
	sessions     map[string]model.Session
	posts        []model.Post
	comments     []model.Comment
	appointments []model.Appointment
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]model.Session)}
}

func (s *memStore) id() int64 { s.nextID++; return s.nextID }

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = int(r.s.id())
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

type memSessionRepo struct{ s *memStore }

func (r memSessionRepo) Create(_ context.Context, sess *model.Session) error {
	r.s.sessions[sess.ID] = *sess
	return nil
}

func (r memSessionRepo) FindByID(_ context.Context, id string) (*model.Session, error) {
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (r memSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.s.sessions, id)
	return nil
}

type memPostRepo struct{ s *memStore }

func (r memPostRepo) Create(_ context.Context, p *model.Post) error {
	p.ID = r.s.id()
	r.s.posts = append(r.s.posts, *p)
	return nil
}

func (r memPostRepo) FindAll(_ context.Context) ([]model.Post, error) {
	out := append([]model.Post(nil), r.s.posts...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type memCommentRepo struct{ s *memStore }

func (r memCommentRepo) Create(_ context.Context, c *model.Comment) error {
	c.ID = r.s.id()
	r.s.comments = append(r.s.comments, *c)
	return nil
}

func (r memCommentRepo) FindByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memAppointmentRepo struct{ s *memStore }

func (r memAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	a.ID = r.s.id()
	r.s.appointments = append(r.s.appointments, *a)
	return nil
}

func (r memAppointmentRepo) FindByUser(_ context.Context, userID int) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range r.s.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memAppointmentRepo) FindByTherapist(_ context.Context, therapistID int) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range r.s.appointments {
		if a.TherapistID == therapistID {
			out = append(out, a)
		}
	}
	return out, nil
}

// setupRouter wires handlers, services and middleware exactly like
// cmd/server does, on top of the in-memory store.
func setupRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	jwtUtil := utils.NewJWTUtil("test-secret", 1)

	authService := service.NewAuthService(memUserRepo{store}, memSessionRepo{store}, jwtUtil)
	postService := service.NewPostService(memPostRepo{store}, t.TempDir())
	commentService := service.NewCommentService(memCommentRepo{store})
	appointmentService := service.NewAppointmentService(memAppointmentRepo{store})

	sessionAuthMW := middleware.SessionAuthMiddleware(authService)
	therapistMW := middleware.TherapistMiddleware()

	router := gin.New()
	api := router.Group("")
	NewAuthHandler(authService).RegisterAuthRoutes(api, sessionAuthMW)
	NewPostHandler(postService).RegisterPostRoutes(api, sessionAuthMW, therapistMW)
	NewCommentHandler(commentService).RegisterCommentRoutes(api, sessionAuthMW)
	NewAppointmentHandler(appointmentService).RegisterAppointmentRoutes(api, sessionAuthMW)
	return router, store
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doCreatePost(router *gin.Engine, token, title, content string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	_ = form.WriteField("title", title)
	_ = form.WriteField("content", content)
	_ = form.Close()

	req, _ := http.NewRequest(http.MethodPost, "/post", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, router *gin.Engine, username string, therapist bool) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/register", "", gin.H{
		"username":     username,
		"email":        username + "@example.com",
		"password":     "password123",
		"is_therapist": therapist,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func login(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router, store := setupRouter(t)

	register(t, router, "alice", false)

	w := doJSON(router, http.MethodPost, "/register", "", gin.H{
		"username": "alice",
		"email":    "different@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, store.users, 1)
	assert.Equal(t, "alice@example.com", store.users[0].Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, store := setupRouter(t)

	register(t, router, "alice", false)

	w := doJSON(router, http.MethodPost, "/login", "", gin.H{
		"username": "alice",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// No session may be established on a failed login
	assert.Empty(t, store.sessions)
}

func TestCreatePost_RequiresTherapist(t *testing.T) {
	router, store := setupRouter(t)

	register(t, router, "alice", false)
	token := login(t, router, "alice")

	w := doCreatePost(router, token, "Hello", "world")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.posts)

	// Unauthenticated requests never reach the therapist check
	w = doCreatePost(router, "", "Hello", "world")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPosts_NewestFirst(t *testing.T) {
	router, _ := setupRouter(t)

	register(t, router, "dr_bob", true)
	token := login(t, router, "dr_bob")

	for _, title := range []string{"one", "two", "three"} {
		w := doCreatePost(router, token, title, "content")
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/posts", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []model.Post
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 3)
	assert.Equal(t, "three", posts[0].Title)
	assert.Equal(t, "two", posts[1].Title)
	assert.Equal(t, "one", posts[2].Title)
}

func TestAddComment_RequiresAuth(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/comment", "", gin.H{"post_id": 1, "content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookAppointment_InvalidDate(t *testing.T) {
	router, store := setupRouter(t)

	register(t, router, "alice", false)
	token := login(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/appointment", token, gin.H{
		"therapist_id": 1,
		"date":         "next tuesday",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.appointments)
}

func TestDoubleBookingAllowed(t *testing.T) {
	router, _ := setupRouter(t)

	register(t, router, "dr_bob", true)
	register(t, router, "alice", false)
	register(t, router, "carol", false)

	body := gin.H{"therapist_id": 1, "date": "2026-09-10T14:00:00Z"}
	for _, username := range []string{"alice", "carol"} {
		token := login(t, router, username)
		w := doJSON(router, http.MethodPost, "/appointment", token, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	router, store := setupRouter(t)

	register(t, router, "alice", false)
	token := login(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.sessions)

	// The token no longer grants access
	w = doJSON(router, http.MethodGet, "/appointments", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEndScenario(t *testing.T) {
	router, _ := setupRouter(t)

	// alice is a regular user, dr_bob a therapist
	register(t, router, "alice", false)
	register(t, router, "dr_bob", true)

	// dr_bob publishes a post
	bobToken := login(t, router, "dr_bob")
	w := doCreatePost(router, bobToken, "Hello", "A note on getting started")
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		PostID int64 `json:"post_id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// alice comments on it
	aliceToken := login(t, router, "alice")
	w = doJSON(router, http.MethodPost, "/comment", aliceToken, gin.H{
		"post_id": created.PostID,
		"content": "Looking forward to more posts!",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// the comment is listed, authored by alice (user id 1)
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/comments/%d", created.PostID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var comments []model.Comment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Len(t, comments, 1)
	assert.Equal(t, 1, comments[0].UserID)

	// alice books an appointment with dr_bob (user id 2)
	w = doJSON(router, http.MethodPost, "/appointment", aliceToken, gin.H{
		"therapist_id": 2,
		"date":         "2026-09-10T14:00:00Z",
		"notes":        "Initial consultation",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var booked struct {
		AppointmentID int64 `json:"appointment_id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	// dr_bob sees it as the target therapist
	w = doJSON(router, http.MethodGet, "/appointments", bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var bobAppointments []model.Appointment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &bobAppointments))
	assert.Len(t, bobAppointments, 1)
	assert.Equal(t, booked.AppointmentID, bobAppointments[0].ID)

	// alice sees it as the requester
	w = doJSON(router, http.MethodGet, "/appointments", aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var aliceAppointments []model.Appointment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliceAppointments))
	assert.Len(t, aliceAppointments, 1)
	assert.Equal(t, booked.AppointmentID, aliceAppointments[0].ID)
}
