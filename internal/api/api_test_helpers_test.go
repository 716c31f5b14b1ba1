package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pawmart-backend-go/internal/auth"
	"pawmart-backend-go/internal/core"
	"pawmart-backend-go/internal/middleware"
	"pawmart-backend-go/internal/mocks"
)

// testToken is the one bearer token the test verifier accepts.
const testToken = "valid-token"

type testEnv struct {
	router   *gin.Engine
	users    *mocks.MemoryUserRepo
	listings *mocks.MemoryListingRepo
	orders   *mocks.MemoryOrderRepo
	verifier *mocks.FakeVerifier
}

// newTestEnv wires the real services and auth middleware over in-memory
// repositories and a fake verifier that maps testToken to identity.
func newTestEnv(t *testing.T, identity auth.Identity) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    mocks.NewMemoryUserRepo(),
		listings: mocks.NewMemoryListingRepo(),
		orders:   &mocks.MemoryOrderRepo{},
		verifier: &mocks.FakeVerifier{Token: testToken, Identity: identity},
	}

	logger := zap.NewNop()
	authMW := middleware.NewAuthMiddleware(env.verifier, logger)
	env.router = gin.New()
	SetupRoutes(
		env.router,
		logger,
		authMW,
		core.NewUserService(env.users),
		core.NewListingService(env.listings),
		core.NewOrderService(env.orders),
	)
	return env
}

// do performs a request against the test router. A non-empty token is sent
// as a bearer Authorization header; a non-nil body is JSON-encoded.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}
