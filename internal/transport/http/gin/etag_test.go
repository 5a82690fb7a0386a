package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, header http.Header) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != nil {
		req.Header = header
	}
	c.Request = req

	return c, w
}

func TestWriteJSONWithCacheSetsETagAndBody(t *testing.T) {
	c, w := newTestContext(t, nil)

	writeJSONWithCache(c, http.StatusOK, map[string]int{"n": 1}, "public, max-age=60", true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"n":1}`, w.Body.String())
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	tag := w.Header().Get("ETag")
	require.NotEmpty(t, tag)
	assert.True(t, len(tag) > 2 && tag[:2] == "W/")
}

func TestWriteJSONWithCacheNotModified(t *testing.T) {
	payload := map[string]string{"status": "available"}

	c1, w1 := newTestContext(t, nil)
	writeJSONWithCache(c1, http.StatusOK, payload, "public, max-age=15", true)
	tag := w1.Header().Get("ETag")
	require.NotEmpty(t, tag)

	h := http.Header{}
	h.Set("If-None-Match", tag)
	c2, w2 := newTestContext(t, h)
	writeJSONWithCache(c2, http.StatusOK, payload, "public, max-age=15", true)
	// gin defers c.Status until the engine flushes headers; with a bare
	// test context the body-less 304 path needs an explicit flush.
	c2.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNotModified, w2.Code)
	assert.Empty(t, w2.Body.String())
	assert.Equal(t, tag, w2.Header().Get("ETag"))
}

func TestWriteJSONWithCacheChangedBodyMisses(t *testing.T) {
	c1, w1 := newTestContext(t, nil)
	writeJSONWithCache(c1, http.StatusOK, map[string]int{"available": 10}, "", true)
	tag := w1.Header().Get("ETag")

	h := http.Header{}
	h.Set("If-None-Match", tag)
	c2, w2 := newTestContext(t, h)
	writeJSONWithCache(c2, http.StatusOK, map[string]int{"available": 9}, "", true)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.NotEqual(t, tag, w2.Header().Get("ETag"))
}

func TestETagMatchesList(t *testing.T) {
	tag := etagFor([]byte(`{"a":1}`), true)

	assert.True(t, etagMatches(tag, tag))
	assert.True(t, etagMatches(`"stale", `+tag, tag))
	assert.True(t, etagMatches("*", tag))
	assert.False(t, etagMatches(`"stale"`, tag))
	assert.False(t, etagMatches("", tag))
}
