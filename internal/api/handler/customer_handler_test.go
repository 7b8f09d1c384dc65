package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/customer-api/internal/api/middleware"
	"github.com/contactdesk/customer-api/internal/core/domain"
	"github.com/contactdesk/customer-api/internal/core/ports"
)

type stubCustomerService struct {
	createFn func(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Customer, error)
	updateFn func(ctx context.Context, ownerID, id string, input ports.CreateCustomerInput) error
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (s *stubCustomerService) Create(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubCustomerService) List(ctx context.Context, ownerID string) ([]*domain.Customer, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubCustomerService) Update(ctx context.Context, ownerID, id string, input ports.CreateCustomerInput) error {
	return s.updateFn(ctx, ownerID, id, input)
}

func (s *stubCustomerService) Delete(ctx context.Context, ownerID, id string) error {
	return s.deleteFn(ctx, ownerID, id)
}

func newAuthedContext(t *testing.T, method, path, body, callerID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if callerID != "" {
		c.Set(middleware.CtxUserID, callerID)
	}
	return c, rec
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
			if ownerID != "user-1" {
				t.Fatalf("expected caller id, got %q", ownerID)
			}
			if input.Name != "Acme" || input.Email != "a@acme.test" || input.Phone != "555" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Customer{ID: "c1", OwnerID: ownerID}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/customers",
		`{"name":"Acme","email":"a@acme.test","phone":"555"}`, "user-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCustomerHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/customers",
		`{"name":"Acme","email":"a@acme.test","phone":"555"}`, "")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestCustomerHandler_Create_MissingFields(t *testing.T) {
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/customers", `{"name":"Acme"}`, "user-1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCustomerHandler_List_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubCustomerService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Customer, error) {
			if ownerID != "user-1" {
				t.Fatalf("expected caller id, got %q", ownerID)
			}
			return []*domain.Customer{
				{ID: "c1", Name: "A", Email: "a@t.test", Phone: "1", OwnerID: ownerID, CreatedAt: now, UpdatedAt: now},
				{ID: "c2", Name: "B", Email: "b@t.test", Phone: "2", Company: "B Inc", OwnerID: ownerID, CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/customers", "", "user-1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(resp))
	}
	if resp[0]["owner_id"] != "user-1" || resp[1]["company"] != "B Inc" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCustomerHandler_List_Empty(t *testing.T) {
	stub := &stubCustomerService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Customer, error) {
			return nil, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/customers", "", "user-1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestCustomerHandler_Update_NotFound(t *testing.T) {
	stub := &stubCustomerService{
		updateFn: func(ctx context.Context, ownerID, id string, input ports.CreateCustomerInput) error {
			if ownerID != "user-1" || id != "c9" {
				t.Fatalf("unexpected args: %s %s", ownerID, id)
			}
			return domain.ErrCustomerNotFound
		},
	}
	h := NewCustomerHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPut, "/customers/c9",
		`{"name":"Acme","email":"a@acme.test","phone":"555"}`, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("c9")

	if err := h.Update(c); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound to propagate, got %v", err)
	}
}

func TestCustomerHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubCustomerService{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			deleted = ownerID + "/" + id
			return nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/customers/c1", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "user-1/c1" {
		t.Fatalf("unexpected delete call: %q", deleted)
	}
}
