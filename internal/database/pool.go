package database

import (
	"log/slog"
	"time"
)

// PoolStats is a snapshot of the connection pool. The seeder issues whole
// batches of inserts concurrently, so pool pressure translates directly into
// stage duration.
type PoolStats struct {
	MaxOpenConns      int           `json:"max_open_connections"`
	OpenConns         int           `json:"open_connections"`
	InUse             int           `json:"in_use"`
	Idle              int           `json:"idle"`
	WaitCount         int64         `json:"wait_count"`
	WaitDuration      time.Duration `json:"wait_duration"`
	MaxIdleClosed     int64         `json:"max_idle_closed"`
	MaxLifetimeClosed int64         `json:"max_lifetime_closed"`
}

func (db *DB) GetPoolStats() PoolStats {
	stats := db.Stats()
	return PoolStats{
		MaxOpenConns:      stats.MaxOpenConnections,
		OpenConns:         stats.OpenConnections,
		InUse:             stats.InUse,
		Idle:              stats.Idle,
		WaitCount:         stats.WaitCount,
		WaitDuration:      stats.WaitDuration,
		MaxIdleClosed:     stats.MaxIdleClosed,
		MaxLifetimeClosed: stats.MaxLifetimeClosed,
	}
}

// LogPoolPressure reports how hard the run leaned on the pool. A non-trivial
// wait duration means MaxOpenConns is smaller than the configured batch sizes
// need.
func (db *DB) LogPoolPressure(log *slog.Logger) {
	stats := db.GetPoolStats()

	log.Debug("Connection pool stats",
		"max_open", stats.MaxOpenConns,
		"in_use", stats.InUse,
		"idle", stats.Idle,
		"wait_count", stats.WaitCount,
		"wait_duration", stats.WaitDuration)

	if stats.WaitCount > 0 && stats.WaitDuration > time.Second {
		log.Warn("Insert batches waited on the connection pool, consider raising DB_MAX_OPEN_CONNS",
			"wait_count", stats.WaitCount, "wait_duration", stats.WaitDuration)
	}
}
