package models

import "time"

// Answer values accepted for the smoking and family_history fields.
// Anything outside this enumeration is rejected during validation so
// that malformed input is never silently classified as "no".
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// HealthRecord is one immutable submitted vitals reading together with
// the risk category computed for it at insert time.
//
// The risk category is a pure function of the other attributes at the
// moment of creation; it is never recalculated, even if the active
// classification policy changes later.
type HealthRecord struct {
	// RecordID is the internal unique identifier of the record.
	RecordID int64 `json:"-"`

	// UserID is the identifier of the owning account.
	UserID int64 `json:"-"`

	// Age in full years. Validated to [1,120]; accepted but never
	// weighted by any classification policy.
	Age int `json:"age"`

	// BP is the systolic blood pressure in mmHg. Validated to [70,250].
	BP int `json:"bp"`

	// Sugar is the blood sugar level in mg/dL. Validated to [50,500].
	Sugar int `json:"sugar"`

	// Smoking is AnswerYes or AnswerNo.
	Smoking string `json:"smoking"`

	// FamilyHistory is AnswerYes or AnswerNo and reports a family
	// history of cardiovascular disease.
	FamilyHistory string `json:"family_history"`

	// Risk is the category computed at insert time: "Low", "Medium" or
	// "High".
	Risk string `json:"risk"`

	// CreatedAt is the submission timestamp. Dashboard listings are
	// ordered by it, most recent first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HealthRecord model.
func (r HealthRecord) TableName() string {
	return "health_records"
}
