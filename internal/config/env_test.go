package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_BACKEND", "FAQ_KEY", "NOTICE_KEY", "JWT_TTL", "RECAPTCHA_MIN_SCORE", "STORE_PREFIX"} {
		t.Setenv(key, "")
	}

	s := Load()
	assert.Equal(t, "8080", s.AppPort)
	assert.Equal(t, "memory", s.StoreBackend)
	assert.Equal(t, "kodevidecamp_faqs", s.FAQKey)
	assert.Equal(t, "kodevidecamp_notices", s.NoticeKey)
	assert.Equal(t, 24*time.Hour, s.JWTTTL)
	assert.InDelta(t, 0.5, s.RecaptchaMinScore, 1e-9)
	assert.Equal(t, "kodevidecamp_faqs", s.Key(s.FAQKey))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("STORE_PREFIX", "staging:")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("RECAPTCHA_MIN_SCORE", "0.7")

	s := Load()
	assert.Equal(t, "127.0.0.1:9000", s.Addr())
	assert.Equal(t, "redis", s.StoreBackend)
	assert.Equal(t, 3, s.RedisDB)
	assert.Equal(t, 90*time.Minute, s.JWTTTL)
	assert.InDelta(t, 0.7, s.RecaptchaMinScore, 1e-9)
	assert.Equal(t, "staging:kodevidecamp_faqs", s.Key(s.FAQKey))
}

func TestTypedHelpersFallBack(t *testing.T) {
	t.Setenv("BAD_INT", "many")
	t.Setenv("BAD_DURATION", "soon")
	t.Setenv("BAD_FLOAT", "high")

	assert.Equal(t, 7, GetEnvInt("BAD_INT", 7))
	assert.Equal(t, time.Second, GetEnvDuration("BAD_DURATION", time.Second))
	assert.InDelta(t, 1.5, GetEnvFloat("BAD_FLOAT", 1.5), 1e-9)
	assert.Equal(t, "fallback", GetEnv("UNSET_KEY_FOR_TEST", "fallback"))
}

func TestDriverFor(t *testing.T) {
	tests := map[string]string{
		"mysql":    "mysql",
		"postgres": "pgx",
		"sqlite":   "sqlite",
	}
	for backend, driver := range tests {
		got, err := DriverFor(backend)
		assert.NoError(t, err)
		assert.Equal(t, driver, got)
	}

	_, err := DriverFor("memory")
	assert.Error(t, err)
}

func TestInitDBRequiresDSN(t *testing.T) {
	_, err := InitDB(Settings{StoreBackend: "sqlite"})
	assert.ErrorContains(t, err, "DB_DSN")
}
