package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(RequestIDKey, "req-1")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestOK(t *testing.T) {
	c, w := testContext()

	OK(c, gin.H{"id": "x1"})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "req-1", env.Meta.RequestID)
	assert.Nil(t, env.Error)
	assert.Equal(t, "x1", env.Data.(map[string]any)["id"])
}

func TestPage(t *testing.T) {
	c, w := testContext()

	Page(c, []string{"a", "b"}, 2, 20, 41)

	env := decode(t, w)
	assert.Equal(t, 2, env.Meta.Page)
	assert.Equal(t, 20, env.Meta.PageSize)
	assert.Equal(t, 41, env.Meta.Total)
	assert.Len(t, env.Data, 2)
}

func TestPageNilItems(t *testing.T) {
	c, w := testContext()

	Page[string](c, nil, 1, 20, 0)

	assert.Contains(t, w.Body.String(), `"data":[]`, "empty pages must not serialize as null")
}

func TestErrorWithAppError(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.New(http.StatusConflict, "ROOM_UNAVAILABLE", "room is not available"))

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROOM_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "room is not available", env.Error.Message)
	assert.Nil(t, env.Data)
}

func TestErrorHidesInternalDetails(t *testing.T) {
	c, w := testContext()

	Error(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL", env.Error.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
