package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/foodmap-backend/internal/data/aggregates"
	"github.com/yungbote/foodmap-backend/internal/data/repos"
	repotest "github.com/yungbote/foodmap-backend/internal/data/repos/testutil"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	httpH "github.com/yungbote/foodmap-backend/internal/http/handlers"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/services"
)

type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func newTestRouter(t *testing.T) (*gin.Engine, *observability.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := repotest.DB(t)
	log := repotest.Logger(t)
	metrics := observability.New()

	agg := aggregates.NewFoodResourceAggregate(aggregates.FoodResourceAggregateDeps{
		Base:          aggregates.BaseDeps{DB: db, Log: log, Hooks: aggregates.NewObservabilityHooks(metrics)},
		FoodResources: repos.NewFoodResourceRepo(db, log),
		Tags:          repos.NewTagRepo(db, log),
		Days:          repos.NewDayRepo(db, log),
		ResourceTags:  repos.NewResourceTagRepo(db, log),
		BusinessHours: repos.NewBusinessHoursRepo(db, log),
	})
	svc := services.NewFoodResourceService(log, agg, nil)

	r := NewRouter(RouterConfig{
		Log:                 log,
		Metrics:             metrics,
		FoodResourceHandler: httpH.NewFoodResourceHandler(svc, metrics, log),
		HealthHandler:       httpH.NewHealthHandler(gormPinger{db: db}, log),
	})
	return r, metrics
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const createBody = `{
	"name": "Eastside Pantry",
	"streetAddress": "1200 E 6th St",
	"city": "Austin",
	"state": "tx",
	"zipcode": 78702,
	"latitude": 30.2649,
	"longitude": -97.7312,
	"tags": [{"name": "Pantry"}, {"name": "Halal"}],
	"businessHours": [{"day": {"name": "Monday"}, "openTime": "9:00 AM", "closeTime": "5:00 PM"}]
}`

func TestRouterFoodResourceLifecycle(t *testing.T) {
	r, metrics := newTestRouter(t)

	rec := send(r, stdhttp.MethodPost, FoodResourcesPath, createBody)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	location := rec.Header().Get("Location")
	var created directory.FoodResourceView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if location != FoodResourcesPath+"/1" || created.ID != 1 {
		t.Fatalf("unexpected location %q / id %d", location, created.ID)
	}
	if created.State != "TX" || len(created.BusinessHours) != 7 {
		t.Fatalf("unexpected created view %+v", created)
	}

	rec = send(r, stdhttp.MethodGet, location, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var got directory.FoodResourceView
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if strings.Join(got.Tags, ",") != "Halal,Pantry" {
		t.Fatalf("unexpected tags %v", got.Tags)
	}

	update := `{"id": 1, "name": "Eastside Pantry", "streetAddress": "1200 E 6th St", "city": "Austin",
		"state": "TX", "zipcode": 78702, "tags": [{"name": "Walk-in"}],
		"businessHours": [{"day": {"name": "Friday"}, "openTime": "8:00 AM", "closeTime": "noon"}]}`
	rec = send(r, stdhttp.MethodPut, FoodResourcesAliasPath+"/1", update)
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("update: expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = send(r, stdhttp.MethodGet, FoodResourcesPath, "")
	var list []directory.FoodResourceView
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || strings.Join(list[0].Tags, ",") != "Walk-in" {
		t.Fatalf("unexpected list after update %+v", list)
	}
	for _, bh := range list[0].BusinessHours {
		if bh.Day == "Monday" && bh.OpenTime != nil {
			t.Fatalf("Monday hours should be cleared by full replace")
		}
		if bh.Day == "Friday" && (bh.CloseTime == nil || *bh.CloseTime != "noon") {
			t.Fatalf("Friday hours not replaced: %+v", bh)
		}
	}

	if rec = send(r, stdhttp.MethodDelete, location, ""); rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec = send(r, stdhttp.MethodGet, location, ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
	if rec = send(r, stdhttp.MethodDelete, location, ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
	if rec = send(r, stdhttp.MethodPut, location, update); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("update after delete: expected 404, got %d", rec.Code)
	}

	if n := metrics.APIRequestCount(stdhttp.MethodPost, FoodResourcesPath, "201"); n != 1 {
		t.Fatalf("expected one POST 201 sample, got %v", n)
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := send(r, stdhttp.MethodGet, "/healthcheck", "")
	if rec.Code != stdhttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}

	rec = send(r, stdhttp.MethodGet, "/metrics", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "foodmap_api_requests_total") {
		t.Fatalf("metrics body missing api counter:\n%s", rec.Body.String())
	}
}

func TestRouterWithoutMetricsHasNoMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{})
	if rec := send(r, stdhttp.MethodGet, "/metrics", ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("expected 404 without metrics, got %d", rec.Code)
	}
}
