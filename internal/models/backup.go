package models

import "time"

// Backup is the file written by /admin/export and campctl export.
type Backup struct {
	ExportedAt time.Time `json:"exported_at"`
	FAQs       []FAQ     `json:"faqs"`
	Notices    []Notice  `json:"notices"`
}
