package domain

import (
	"encoding/json"
	"time"
)

// SavedFilter keeps the last filter spec a user applied on a given screen,
// serialized as a versioned JSON envelope. A missing row or an envelope the
// current code cannot parse is treated as "no saved filter".
type SavedFilter struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Screen    string          `json:"screen"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}
