package history

import "time"

// maxErrorLength bounds the stored error text.
const maxErrorLength = 1024

// Run is one recorded reconciliation.
type Run struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"column:run_id;size:36;uniqueIndex" json:"run_id"`
	State      string    `gorm:"column:state;size:16" json:"state"`
	Aborted    bool      `gorm:"column:aborted" json:"aborted"`
	Kept       int       `gorm:"column:kept" json:"kept"`
	Created    int       `gorm:"column:created" json:"created"`
	Deleted    int       `gorm:"column:deleted" json:"deleted"`
	Failed     int       `gorm:"column:failed" json:"failed"`
	Error      string    `gorm:"column:error;type:text" json:"error,omitempty"`
	StartedAt  time.Time `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`
}

// TableName overrides the table name used by GORM.
func (Run) TableName() string {
	return "emoji_sync_runs"
}

// Duration returns the wall time of the run.
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
