package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("ALLOCATION_LOCK_TIMEOUT", "750ms")
	t.Setenv("ALLOCATION_LAST_RESORT_WAVE", "true")
	t.Setenv("ALLOCATION_MAX_ATTEMPTS", "not-a-number")
	t.Setenv("REDIS_POOL_SIZE", "4")

	cfg := Load()

	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.Allocation.LockTimeout)
	assert.True(t, cfg.Allocation.LastResortWave)
	assert.Equal(t, 3, cfg.Allocation.MaxAttempts)
	assert.Equal(t, 4, cfg.Redis.PoolSize)
	assert.Equal(t, 30*time.Second, cfg.Redis.LockTTL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ALLOCATION_LAST_RESORT_WAVE", "")
	t.Setenv("ALLOCATION_MAX_ATTEMPTS", "")
	t.Setenv("REDIS_POOL_SIZE", "")

	cfg := Load()

	assert.False(t, cfg.Allocation.LastResortWave)
	assert.Equal(t, 3, cfg.Allocation.MaxAttempts)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
}

func TestConfig_GetDSN(t *testing.T) {
	base := DatabaseConfig{Host: "db", Port: 3306, User: "u", Password: "p", Name: "stock", SSLMode: "disable"}

	tests := []struct {
		name        string
		driver      string
		lockTimeout time.Duration
		want        string
	}{
		{name: "mysql", driver: "mysql", want: "u:p@tcp(db:3306)/stock?parseTime=true&loc=UTC"},
		{name: "mysql lock wait rounds up", driver: "mysql", lockTimeout: 2500 * time.Millisecond, want: "u:p@tcp(db:3306)/stock?parseTime=true&loc=UTC&innodb_lock_wait_timeout=3"},
		{name: "mysql sub-second lock wait", driver: "mysql", lockTimeout: 200 * time.Millisecond, want: "u:p@tcp(db:3306)/stock?parseTime=true&loc=UTC&innodb_lock_wait_timeout=1"},
		{name: "postgres", driver: "pgx", want: "postgres://u:p@db:3306/stock?sslmode=disable"},
		{name: "sqlite", driver: "sqlite", want: "file:stock?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := base
			db.Driver = tt.driver
			cfg := &Config{Database: db, Allocation: AllocationConfig{LockTimeout: tt.lockTimeout}}
			assert.Equal(t, tt.want, cfg.GetDSN())
		})
	}
}
