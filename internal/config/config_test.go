package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STREAM_DRIVER", "BILLING_CRON_EXPRESSION", "INCOME_WINDOW_MONTHS", "RENT_DUE_DAY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Stream.Driver)
	assert.Equal(t, "0 0 0 1 * *", cfg.Scheduler.BillingCronExpression)
	assert.Equal(t, 6, cfg.Billing.IncomeWindowMonths)
}

func TestLoadRejectsUnknownStreamDriver(t *testing.T) {
	t.Setenv("STREAM_DRIVER", "kafka")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDueDay(t *testing.T) {
	t.Setenv("RENT_DUE_DAY", "31")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "apt", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=apt sslmode=disable", d.GetDSN())
	assert.Equal(t, "postgres://u:p@db:5432/apt?sslmode=disable", d.GetURL())
}
