package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-web-server/internal/config"
	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/models"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID  = "req-0001"
	testCookieName = "auth-token"
	testVersion    = "v1.2.3"
)

type fixedIDGenerator struct {
	id string
}

func (g fixedIDGenerator) Generate() string { return g.id }

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-web-server-test",
			TokenDuration: time.Hour,
			Version:       testVersion,
		},
		Cookie: config.Cookie{
			Name:          testCookieName,
			Path:          "/",
			SameSite:      "lax",
			RefreshWindow: 10 * time.Minute,
		},
		Server: config.Server{
			HTTPAddress:    "127.0.0.1:0",
			StaticDir:      t.TempDir(),
			RequestTimeout: time.Second,
		},
	}
}

// newTestHandler builds a Handler around the given services with a fixed
// request id generator.
func newTestHandler(t *testing.T, auth service.AuthService, tasks service.TaskService) *Handler {
	t.Helper()
	h := NewHandler(&service.Services{AuthService: auth, TaskService: tasks}, testConfig(t), logger.Nop())
	h.idGenerator = fixedIDGenerator{id: testRequestID}
	return h
}

// pipelineRequest returns a request carrying everything the outer
// middleware would have installed: request context, cookie jar, logger and
// failure slot.
func pipelineRequest(t *testing.T, method, target, body string) (*http.Request, *reqctx.Context, *cookies.Jar, *failureSlot) {
	t.Helper()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	rc := reqctx.New(testRequestID, time.Now())
	jar := cookies.NewJar(r)
	slot := &failureSlot{}

	ctx := logger.Nop().Logger.WithContext(r.Context())
	ctx = reqctx.WithContext(ctx, rc)
	ctx = cookies.WithJar(ctx, jar)
	ctx = withFailureSlot(ctx, slot)

	return r.WithContext(ctx), rc, jar, slot
}

// withIdentity resolves rc to id and attaches id to r the way requireAuth does.
func withIdentity(t *testing.T, r *http.Request, rc *reqctx.Context, id reqctx.Identity) *http.Request {
	t.Helper()
	require.NoError(t, rc.Resolve(reqctx.IdentifiedOutcome(id)))
	return r.WithContext(reqctx.WithIdentity(r.Context(), id))
}

func decodeErrorResponse(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func findCookie(cs []*http.Cookie, name string) *http.Cookie {
	for _, c := range cs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func asPipelineError(t *testing.T, err error) *PipelineError {
	t.Helper()
	require.Error(t, err)
	return toPipelineError(err)
}
