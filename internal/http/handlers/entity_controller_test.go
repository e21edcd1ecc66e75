package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crudkit/internal/domain"
	"crudkit/internal/repositories"
)

type gadget struct {
	domain.EntityFields
	Label string `json:"label"`
}

type gadgetRepo struct {
	entities map[uuid.UUID]*gadget
	lastList *domain.Filter
}

func newGadgetRepo() *gadgetRepo {
	return &gadgetRepo{entities: map[uuid.UUID]*gadget{}}
}

func (r *gadgetRepo) Read(_ context.Context, id uuid.UUID, _ *domain.Filter) (*gadget, error) {
	g, ok := r.entities[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return g, nil
}

func (r *gadgetRepo) ReadAll(_ context.Context, filter *domain.Filter) (*domain.PagedQuery[*gadget], error) {
	r.lastList = filter
	items := make([]*gadget, 0, len(r.entities))
	for _, g := range r.entities {
		items = append(items, g)
	}
	return domain.NewPagedQuery(items, len(items)), nil
}

func (r *gadgetRepo) Create(_ context.Context, g *gadget) (uuid.UUID, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.entities[g.ID] = g
	return g.ID, nil
}

func (r *gadgetRepo) Update(_ context.Context, g *gadget) (bool, error) {
	if _, ok := r.entities[g.ID]; !ok {
		return false, nil
	}
	r.entities[g.ID] = g
	return true, nil
}

func (r *gadgetRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.entities[id]; !ok {
		return false, nil
	}
	delete(r.entities, id)
	return true, nil
}

func (r *gadgetRepo) ReadConcurrencyStamp(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	g, ok := r.entities[id]
	if !ok {
		return uuid.Nil, repositories.ErrNotFound
	}
	return g.ConcurrencyStamp, nil
}

func newGadgetRouter(repo *gadgetRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewEntityController[*gadget](repo, domain.EntityName{Singular: "gadget", Plural: "gadgets"}, nil, func() *gadget { return &gadget{} })
	ctl.Mount(r.Group("/gadgets"))
	return r
}

func TestControllerListBindsFilterAndWrapsEnvelope(t *testing.T) {
	repo := newGadgetRepo()
	repo.Create(context.Background(), &gadget{Label: "a"})
	router := newGadgetRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gadgets?searchTerm=a&page=2&pageSize=10&sortDescending=true", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if repo.lastList == nil {
		t.Fatalf("filter never reached the repository")
	}
	if repo.lastList.SearchTerm != "a" || repo.lastList.Page != 2 || repo.lastList.PageSize != 10 || !repo.lastList.SortDescending {
		t.Fatalf("filter bound incorrectly: %+v", repo.lastList)
	}

	var envelope struct {
		Result        *domain.PagedQuery[*gadget] `json:"result"`
		Notifications []domain.Notification       `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	if envelope.Result == nil || len(envelope.Result.Items) != 1 {
		t.Fatalf("unexpected envelope result: %+v", envelope.Result)
	}
	if envelope.Notifications == nil {
		t.Fatalf("notifications must serialize as an array")
	}
}

func TestControllerListHonorsExplicitZeroPageSize(t *testing.T) {
	repo := newGadgetRepo()
	router := newGadgetRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gadgets?pageSize=0", nil)
	router.ServeHTTP(w, req)

	if repo.lastList.PageSize != 0 {
		t.Fatalf("pageSize = %d, explicit zero must disable paging", repo.lastList.PageSize)
	}
}

func TestControllerGetMissingEntityIs404(t *testing.T) {
	router := newGadgetRouter(newGadgetRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gadgets/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var envelope struct {
		Result        *gadget               `json:"result"`
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	if envelope.Result != nil {
		t.Fatalf("missing entity must serialize a null result")
	}
	if len(envelope.Notifications) == 0 {
		t.Fatalf("expected a not-found notification")
	}
}

func TestControllerGetMalformedIDIs422(t *testing.T) {
	router := newGadgetRouter(newGadgetRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gadgets/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestControllerCreateRoundTrip(t *testing.T) {
	repo := newGadgetRepo()
	router := newGadgetRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gadgets", strings.NewReader(`{"label":"new"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Result uuid.UUID `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	if _, ok := repo.entities[envelope.Result]; !ok {
		t.Fatalf("returned id %v not present in repository", envelope.Result)
	}
}

func TestControllerDeleteMissingEntityIs404(t *testing.T) {
	router := newGadgetRouter(newGadgetRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/gadgets/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
