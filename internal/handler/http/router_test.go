package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroverde/packhouse-backend-go/internal/domain/user"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/jwt"
)

const (
	routerTestAccessExp  = "1h"
	routerTestRefreshExp = "24h"
	routerTestSecret     = "test-secret-key-for-jwt"
)

// stubHandlers implements every handler interface and answers 200 on each
// route, so the tests can tell a request that cleared the role middleware
// from one it rejected.
type stubHandlers struct{}

func (stubHandlers) ok(w http.ResponseWriter) { w.WriteHeader(http.StatusOK) }

func (s stubHandlers) Login(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) Logout(w http.ResponseWriter, r *http.Request)       { s.ok(w) }
func (s stubHandlers) RefreshToken(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandlers) RegisterUser(w http.ResponseWriter, r *http.Request) { s.ok(w) }

func (s stubHandlers) Enroll(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandlers) Update(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandlers) Deactivate(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandlers) Get(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) List(w http.ResponseWriter, r *http.Request)       { s.ok(w) }

func (s stubHandlers) CheckIn(w http.ResponseWriter, r *http.Request)  { s.ok(w) }
func (s stubHandlers) CheckOut(w http.ResponseWriter, r *http.Request) { s.ok(w) }

func (s stubHandlers) Open(w http.ResponseWriter, r *http.Request)          { s.ok(w) }
func (s stubHandlers) Close(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandlers) MarkValidated(w http.ResponseWriter, r *http.Request) { s.ok(w) }

func (s stubHandlers) Record(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandlers) ProgressStatus(w http.ResponseWriter, r *http.Request) { s.ok(w) }

func (s stubHandlers) CreateExporter(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) GetExporter(w http.ResponseWriter, r *http.Request)           { s.ok(w) }
func (s stubHandlers) ListExporters(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandlers) UpdateExporter(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) DeactivateExporter(w http.ResponseWriter, r *http.Request)    { s.ok(w) }
func (s stubHandlers) CreateCooperative(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandlers) GetCooperative(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) ListCooperatives(w http.ResponseWriter, r *http.Request)      { s.ok(w) }
func (s stubHandlers) UpdateCooperative(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandlers) DeactivateCooperative(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandlers) CreateFacility(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) GetFacility(w http.ResponseWriter, r *http.Request)           { s.ok(w) }
func (s stubHandlers) ListFacilities(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) UpdateFacility(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandlers) DeactivateFacility(w http.ResponseWriter, r *http.Request)    { s.ok(w) }

func (s stubHandlers) Create(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandlers) ListByExporter(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandlers) DailyEarnings(w http.ResponseWriter, r *http.Request)  { s.ok(w) }

func (s stubHandlers) DailyOperations(w http.ResponseWriter, r *http.Request)  { s.ok(w) }
func (s stubHandlers) WorkerDetail(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandlers) WorkforceStats(w http.ResponseWriter, r *http.Request)   { s.ok(w) }
func (s stubHandlers) AttendanceReport(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandlers) ExporterRanking(w http.ResponseWriter, r *http.Request)  { s.ok(w) }

func routerTestRouter(jwtService jwt.Service) http.Handler {
	stub := stubHandlers{}
	return NewRouter(jwtService, Handlers{
		Auth:       stub,
		Worker:     stub,
		Attendance: stub,
		Session:    stub,
		Bag:        stub,
		Master:     stub,
		RateCard:   stub,
		Report:     stub,
	})
}

func routerTestToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com", role, nil, nil)
	require.NoError(t, err)
	return token
}

func routerTestGet(router http.Handler, path string, bearer string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRouter_ReportRoutesRequireSupervisorOrAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService(routerTestSecret, routerTestAccessExp, routerTestRefreshExp)
	router := routerTestRouter(jwtService)

	paths := []string{
		"/api/v1/reports/daily-operations",
		"/api/v1/reports/workforce",
		"/api/v1/reports/attendance",
		"/api/v1/reports/exporter-ranking",
		"/api/v1/workers/worker-1/stats",
		"/api/v1/workers/worker-1/earnings/daily",
	}

	exporterToken := routerTestToken(t, jwtService, user.RoleExporter)
	supervisorToken := routerTestToken(t, jwtService, user.RoleSupervisor)
	adminToken := routerTestToken(t, jwtService, user.RoleAdmin)

	for _, path := range paths {
		assert.Equal(t, http.StatusForbidden, routerTestGet(router, path, exporterToken),
			"exporter role must not reach %s", path)
		assert.Equal(t, http.StatusOK, routerTestGet(router, path, supervisorToken),
			"supervisor role must reach %s", path)
		assert.Equal(t, http.StatusOK, routerTestGet(router, path, adminToken),
			"admin role must reach %s", path)
	}
}

func TestRouter_ReportRoutesRequireAuthentication(t *testing.T) {
	jwtService := jwt.NewJWTService(routerTestSecret, routerTestAccessExp, routerTestRefreshExp)
	router := routerTestRouter(jwtService)

	code := routerTestGet(router, "/api/v1/reports/workforce", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}
