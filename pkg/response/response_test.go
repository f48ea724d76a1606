package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKAndFail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "rid-1")
	OK(c, 0, map[string]string{"id": "n1"}, "fetched", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body APIResponse[map[string]string]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "rid-1", body.RequestID)
	assert.Equal(t, "n1", body.Data["id"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Fail(c, http.StatusForbidden, "invalid token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestOKWithFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "rid-2")
	OKWithFields(c, http.StatusOK, map[string]string{"token": "t"}, "signin successful", nil,
		map[string]any{"token": "t", "success": "shadowed"})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "t", body["token"])
	assert.Equal(t, true, body["success"], "envelope keys are kept")
	assert.Equal(t, "rid-2", body["request_id"])
	assert.Equal(t, map[string]any{"token": "t"}, body["data"])
}
