package serve_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"dj-launcher/feature/serve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_ServesStaticFiles(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>dj</html>"), 0o644)
	require.NoError(t, err)

	app := serve.NewApp(root)

	resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestNewApp_MissingFileReturns404(t *testing.T) {
	app := serve.NewApp(t.TempDir())

	resp, err := app.Test(httptest.NewRequest("GET", "/nope.js", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
