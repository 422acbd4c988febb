package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casaok/internal/domain/entity"
	"casaok/internal/usecase"
	apperrors "casaok/pkg/errors"
)

type stubUserRepo struct {
	users  map[string]*entity.User
	getErr error
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepo) Upsert(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, apperrors.NotFound("User", nil)
}

func (r *stubUserRepo) FindByPartnerCode(ctx context.Context, partnerCode string, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func newRoleMiddlewareForTest(repo *stubUserRepo) *RoleMiddleware {
	return NewRoleMiddleware(usecase.NewAuthUseCase(repo, nil, nil))
}

func newTestContext(uid string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	return c
}

func callWithRole(t *testing.T, m *RoleMiddleware, uid string, roles ...string) error {
	t.Helper()
	handler := m.Require(roles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(newTestContext(uid))
}

func TestRequireAllowsStoredRole(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"uid-admin": {ID: "uid-admin", Role: entity.RoleAdmin},
	}}
	m := newRoleMiddlewareForTest(repo)

	err := callWithRole(t, m, "uid-admin", entity.RoleTecnico, entity.RoleAdmin)
	assert.NoError(t, err)
}

func TestRequireRejectsWrongRole(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"uid-cliente": {ID: "uid-cliente", Role: entity.RoleCliente},
	}}
	m := newRoleMiddlewareForTest(repo)

	err := callWithRole(t, m, "uid-cliente", entity.RoleAdmin)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireDefaultsMissingProfileToCliente(t *testing.T) {
	m := newRoleMiddlewareForTest(&stubUserRepo{users: map[string]*entity.User{}})

	assert.NoError(t, callWithRole(t, m, "uid-novo", entity.RoleCliente))

	err := callWithRole(t, m, "uid-novo", entity.RoleAdmin)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestRequireWithoutAuthentication(t *testing.T) {
	m := newRoleMiddlewareForTest(&stubUserRepo{users: map[string]*entity.User{}})

	err := callWithRole(t, m, "", entity.RoleCliente)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireFailsOnProfileReadError(t *testing.T) {
	repo := &stubUserRepo{
		users:  map[string]*entity.User{},
		getErr: apperrors.Internal("Failed to get user", nil),
	}
	m := newRoleMiddlewareForTest(repo)

	err := callWithRole(t, m, "uid-qualquer", entity.RoleCliente)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestResolveSetsRoleWithoutGating(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"uid-tec": {ID: "uid-tec", Role: entity.RoleTecnico},
	}}
	m := newRoleMiddlewareForTest(repo)

	c := newTestContext("uid-tec")
	handler := m.Resolve(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, entity.RoleTecnico, c.Get("role"))

	// A missing profile still passes, as cliente.
	c = newTestContext("uid-novo")
	require.NoError(t, handler(c))
	assert.Equal(t, entity.RoleCliente, c.Get("role"))
}
