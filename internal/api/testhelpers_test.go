package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praxishq/praxis-client/internal/history"
	"github.com/praxishq/praxis-client/internal/request"
)

func newExecutor(t *testing.T, h http.Handler) *request.Executor {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return request.New(request.Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		History:    history.NewRecorder(),
	})
}
