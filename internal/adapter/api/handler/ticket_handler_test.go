package handler

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

type stubTicketRepo struct {
	tickets map[string]*entity.Ticket
}

func (r *stubTicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error { return nil }

func (r *stubTicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, apperrors.NotFound("Ticket", nil)
	}
	return ticket, nil
}

func (r *stubTicketRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Ticket, error) {
	return nil, nil
}

func (r *stubTicketRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, int64, error) {
	return nil, 0, nil
}

func newTicketGetContext(uid, role, ticketID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets/"+ticketID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(ticketID)
	c.Set("uid", uid)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func newTicketHandlerForTest(repo *stubTicketRepo) *TicketHandler {
	return NewTicketHandler(usecase.NewTicketUseCase(repo, nil, nil, nil, nil))
}

func TestTicketGetOwner(t *testing.T) {
	repo := &stubTicketRepo{tickets: map[string]*entity.Ticket{
		"t1": {ID: "t1", OwnerUID: "user-1", Title: "Tomada sem energia"},
	}}
	h := newTicketHandlerForTest(repo)

	c, rec := newTicketGetContext("user-1", "", "t1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTicketGetStaffCanReadOthersTickets(t *testing.T) {
	repo := &stubTicketRepo{tickets: map[string]*entity.Ticket{
		"t1": {ID: "t1", OwnerUID: "user-1", Title: "Tomada sem energia"},
	}}
	h := newTicketHandlerForTest(repo)

	for _, role := range []string{entity.RoleTecnico, entity.RoleAdmin} {
		c, rec := newTicketGetContext("uid-staff", role, "t1")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestTicketGetForeignTicketForbidden(t *testing.T) {
	repo := &stubTicketRepo{tickets: map[string]*entity.Ticket{
		"t1": {ID: "t1", OwnerUID: "user-1", Title: "Tomada sem energia"},
	}}
	h := newTicketHandlerForTest(repo)

	c, rec := newTicketGetContext("user-2", entity.RoleCliente, "t1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
