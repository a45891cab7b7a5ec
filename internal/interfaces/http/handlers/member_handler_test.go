package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/infrastructure/revalidate"
)

type teamMemberRepoStub struct {
	items map[uuid.UUID]*entities.TeamMember
}

func newTeamMemberRepoStub() *teamMemberRepoStub {
	return &teamMemberRepoStub{items: map[uuid.UUID]*entities.TeamMember{}}
}

func (s *teamMemberRepoStub) Create(_ context.Context, input *entities.CreateMemberInput) (*entities.TeamMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	m := &entities.TeamMember{
		ID:        uuid.New(),
		Name:      input.Name,
		Role:      input.Role,
		Email:     input.Email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.items[m.ID] = m
	return m, nil
}

func (s *teamMemberRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return m, nil
}

func (s *teamMemberRepoStub) Update(_ context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.TeamMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	m, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	if input.Name != nil {
		m.Name = *input.Name
	}
	if input.Role != nil {
		m.Role = *input.Role
	}
	if input.Email != nil {
		m.Email = *input.Email
	}
	return m, nil
}

func (s *teamMemberRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *teamMemberRepoStub) List(_ context.Context) ([]*entities.TeamMember, error) {
	out := make([]*entities.TeamMember, 0, len(s.items))
	for _, m := range s.items {
		out = append(out, m)
	}
	return out, nil
}

func teamRouter(repo *teamMemberRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTeamMemberHandler(repo, revalidate.NewNotifier(""))
	r := gin.New()
	r.GET("/team", h.List)
	r.POST("/admin/team", h.Create)
	r.GET("/admin/team/:id", h.Get)
	r.PATCH("/admin/team/:id", h.Update)
	r.DELETE("/admin/team/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), "body: %s", rec.Body.String())
	return rec.Code, parsed
}

func TestTeamMemberHandlerFlow(t *testing.T) {
	repo := newTeamMemberRepoStub()
	r := teamRouter(repo)

	code, body := doJSON(t, r, http.MethodPost, "/admin/team", `{
		"name": "Ada Example",
		"role": "Security Engineer",
		"email": "ada@mintfire.dev"
	}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, true, body["success"])

	created := body["data"].(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	code, body = doJSON(t, r, http.MethodGet, "/team", "")
	require.Equal(t, http.StatusOK, code)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 1)

	code, body = doJSON(t, r, http.MethodPatch, "/admin/team/"+id, `{"role": "Principal Engineer"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Principal Engineer", body["data"].(map[string]interface{})["role"])

	code, _ = doJSON(t, r, http.MethodDelete, "/admin/team/"+id, "")
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, r, http.MethodGet, "/admin/team/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestTeamMemberHandlerValidationEnvelope(t *testing.T) {
	r := teamRouter(newTeamMemberRepoStub())

	code, body := doJSON(t, r, http.MethodPost, "/admin/team", `{"name": "", "role": "x", "email": "bad"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])

	fields := body["fields"].([]interface{})
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, f.(map[string]interface{})["path"].(string))
	}
	assert.ElementsMatch(t, []string{"name", "email"}, paths)
}

func TestTeamMemberHandlerBadID(t *testing.T) {
	r := teamRouter(newTeamMemberRepoStub())

	code, body := doJSON(t, r, http.MethodGet, "/admin/team/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
}
