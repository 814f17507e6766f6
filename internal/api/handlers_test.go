package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/timetrack/internal/api"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/internal/service/mocks"
	"github.com/limbo/timetrack/pkg/entity"
	jwtservice "github.com/limbo/timetrack/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
)

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	result := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
	return result
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		assert.Equal(t, uid.String(), decodeMap(t, rr)["uid"])
	})

	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestRegisterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{Name: "1bad", Password: "x"})
	require.NoError(t, err)
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.NewValidationError(map[string]string{"name": "invalid"}))
			},
		},
		{
			Desc:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		token, _ := decodeMap(t, rr)["token"].(string)
		assert.NotEmpty(t, token)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func scopeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"scope": "` + api.GetScopeFromCtx(r.Context()).Key() + `"}`))
}

func TestScopeMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.ScopeMiddleware(http.HandlerFunc(scopeHandler))
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Name: username})
	require.NoError(t, err)

	testCases := []struct {
		Desc          string
		Header        string
		ExpectedCode  int
		ExpectedScope string
		MockPrepFunc  func()
	}{
		{
			Desc:          "anonymous without header",
			ExpectedCode:  http.StatusOK,
			ExpectedScope: "anonymous",
			MockPrepFunc:  func() {},
		},
		{
			Desc:          "user scope with valid token",
			Header:        "Bearer " + token,
			ExpectedCode:  http.StatusOK,
			ExpectedScope: "user:" + uid.String(),
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
			},
		},
		{
			Desc:         "error malformed header",
			Header:       "Token " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error garbage token",
			Header:       "Bearer garbage",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error deleted user",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				assert.Equal(t, tc.ExpectedScope, decodeMap(t, rr)["scope"])
			}
		})
	}
}

func TestRecovererMiddleware(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	handler := serv.RecovererMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	assert.Equal(t, "Internal server error.", decodeMap(t, rr)["detail"])
}

func TestRouterFallbacks(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	testCases := []struct {
		Desc         string
		Method       string
		Path         string
		ExpectedCode int
	}{
		{Desc: "index", Method: http.MethodGet, Path: "/", ExpectedCode: http.StatusOK},
		{Desc: "healthz without health check", Method: http.MethodGet, Path: "/healthz", ExpectedCode: http.StatusOK},
		{Desc: "unknown route", Method: http.MethodGet, Path: "/nope", ExpectedCode: http.StatusNotFound},
		{Desc: "wrong method", Method: http.MethodPut, Path: "/dashboard", ExpectedCode: http.StatusMethodNotAllowed},
		{Desc: "metrics", Method: http.MethodGet, Path: "/metrics", ExpectedCode: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := httptest.NewRecorder()
			serv.Handler().ServeHTTP(rr, httptest.NewRequest(tc.Method, tc.Path, nil))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.Path != "/metrics" {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHealthzNotReady(t *testing.T) {
	serv := api.New(&api.ServicesList{
		HealthCheck: func(ctx context.Context) error { return errors.New("connection refused") },
	})
	rr := httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Result().StatusCode)
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) repository.PgConnection {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("timetrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()

	pool, err := repository.NewPool(context.Background(), &testPGConfig{connStr: connStr})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestHandlersIntegrational(t *testing.T) {
	pool := setupTestDB(t)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	templatesRepo := repository.NewTemplatesRepoWithConn(pool)
	entriesRepo := repository.NewTimeEntriesRepoWithConn(pool)
	server := api.New(&api.ServicesList{
		UserService:        service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		TemplatesService:   service.NewTemplatesService(templatesRepo),
		TasksService:       service.NewTasksService(tasksRepo, templatesRepo, time.UTC),
		TimerService:       service.NewTimerService(tasksRepo, entriesRepo),
		TimeEntriesService: service.NewTimeEntriesService(tasksRepo, entriesRepo),
		DashboardService:   service.NewDashboardService(tasksRepo, entriesRepo, time.UTC),
		JwtService:         jwtservice.New("secret"),
		Location:           time.UTC,
	})
	handler := server.Handler()
	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			raw, err := sonic.ConfigDefault.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}
		r := httptest.NewRequest(method, path, reader)
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		return rr
	}
	creds := api.RegisterRequest{Name: username, Password: password}

	var token string
	t.Run("registered and logged in", func(t *testing.T) {
		rr := do(http.MethodPost, "/auth/register", "", creds)
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		rr = do(http.MethodPost, "/auth/login", "", creds)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		token, _ = decodeMap(t, rr)["token"].(string)
		require.NotEmpty(t, token)
	})
	t.Run("error login: wrong password", func(t *testing.T) {
		rr := do(http.MethodPost, "/auth/login", "", api.LoginRequest{Name: username, Password: password + "12345"})
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})

	var userTaskID, anonTaskID string
	t.Run("tasks are scoped", func(t *testing.T) {
		rr := do(http.MethodPost, "/tasks", token, service.CreateTaskRequest{Title: "mine", TargetSeconds: 60})
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		userTaskID, _ = decodeMap(t, rr)["id"].(string)
		rr = do(http.MethodPost, "/tasks", "", service.CreateTaskRequest{Title: "shared"})
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		anonTaskID, _ = decodeMap(t, rr)["id"].(string)

		rr = do(http.MethodGet, "/tasks/"+anonTaskID, token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
		rr = do(http.MethodGet, "/tasks/"+userTaskID, "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("error invalid token", func(t *testing.T) {
		rr := do(http.MethodGet, "/tasks", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("timer round trip", func(t *testing.T) {
		rr := do(http.MethodPost, "/tasks/"+userTaskID+"/start-timer", token, nil)
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		rr = do(http.MethodGet, "/tasks/"+userTaskID, token, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, true, decodeMap(t, rr)["has_active_timer"])
		rr = do(http.MethodPost, "/tasks/"+userTaskID+"/stop-timer", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		rr = do(http.MethodPost, "/tasks/"+userTaskID+"/stop-timer", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		assert.Equal(t, "No active timer for this task.", decodeMap(t, rr)["detail"])
	})
	t.Run("validation error lists fields", func(t *testing.T) {
		rr := do(http.MethodPost, "/tasks", token, service.CreateTaskRequest{TargetSeconds: -1})
		require.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		fields, _ := decodeMap(t, rr)["errors"].(map[string]any)
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "target_seconds")
	})
	t.Run("account deleted", func(t *testing.T) {
		rr := do(http.MethodDelete, "/auth/account", token, api.DeleteAccountRequest{Password: password})
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
		rr = do(http.MethodGet, "/tasks", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}
