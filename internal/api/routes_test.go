package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"pawmart-backend-go/internal/auth"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, auth.Identity{})
	recorder := env.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "PawMart server is running", recorder.Body.String())
}
