package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "dash")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_NAME", "rip")

	assert.Equal(t, "host=db.internal port=6543 user=dash password=pw dbname=rip sslmode=disable", FromEnv())
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=salaries sslmode=disable", FromEnv())
}
