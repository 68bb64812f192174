package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is a single journal record. Data is opaque to the store.
type Item struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}

// key orders items by time; the id suffix keeps same-nanosecond items distinct.
func (i Item) key() []byte {
	return []byte(fmt.Sprintf("%020d_%s", i.Timestamp.UnixNano(), i.ID))
}

func cutoffKey(t time.Time) []byte {
	return []byte(fmt.Sprintf("%020d_", t.UnixNano()))
}
