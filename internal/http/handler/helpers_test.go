package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/config"
	"kodevidecamp/internal/models"
	"kodevidecamp/internal/seed"
	"kodevidecamp/internal/store"
)

const (
	testSecret   = "test-secret"
	testPassword = "camp-password"
)

var fixedNow = time.Date(2025, time.March, 3, 1, 2, 3, 0, time.UTC)

func clock() time.Time { return fixedNow }

// flakySlot fails writes or pings on demand.
type flakySlot struct {
	*store.Memory
	setErr  error
	pingErr error
}

func (f *flakySlot) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(ctx, key, value)
}

func (f *flakySlot) Ping(context.Context) error { return f.pingErr }

type testServer struct {
	app  *fiber.App
	slot *flakySlot
	h    *Handler
}

func newTestServer(t *testing.T, opts ...func(*Deps)) *testServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	slot := &flakySlot{Memory: store.NewMemory()}
	defaults := seed.BuiltinAt(clock)

	deps := Deps{
		Settings: config.Settings{
			StoreBackend:      "memory",
			JWTSecret:         testSecret,
			JWTTTL:            time.Hour,
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			BasicAuthUser:     "backup",
			BasicAuthPass:     "backup-pass",
			RecaptchaMinScore: 0.5,
		},
		Slot: slot,
		FAQs: catalog.NewFAQService(
			store.NewDocument[models.FAQ](slot, "kodevidecamp_faqs", defaults.FAQs),
			catalog.WithClock(clock),
		),
		Notices: catalog.NewNoticeService(
			store.NewDocument[models.Notice](slot, "kodevidecamp_notices", defaults.Notices),
			catalog.WithClock(clock),
		),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	h := New(deps)
	app := fiber.New()
	h.Routes(app)
	return &testServer{app: app, slot: slot, h: h}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
	Deleted *bool           `json:"deleted"`
	Updated *bool           `json:"updated"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func (s *testServer) doJSON(t *testing.T, method, path, body, token string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, raw := s.do(t, req)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := config.GenerateToken(testSecret, "admin", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

var errDiskFull = errors.New("disk full")

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
