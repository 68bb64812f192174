package monitor

import "time"

type Status struct {
	Upstream     bool      `json:"upstream"`
	RedisEnabled bool      `json:"redis_enabled"`
	Redis        bool      `json:"redis"`
	Journal      bool      `json:"journal"`
	JournalSize  int       `json:"journal_size"`
	LastCheck    time.Time `json:"last_check"`
}

// Healthy reports whether the board can serve: the service must answer and
// Redis must be up when it is in use. The journal is best effort.
func (s Status) Healthy() bool {
	if !s.Upstream {
		return false
	}
	return !s.RedisEnabled || s.Redis
}
