package store

import "time"

// Report lifecycle statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Report is a citizen-submitted damage report. Status transitions happen
// only through moderation actions.
type Report struct {
	ID            string    `bson:"_id" json:"id"`
	Lat           float64   `bson:"lat" json:"lat"`
	Lng           float64   `bson:"lng" json:"lng"`
	City          string    `bson:"city" json:"city"`
	Location      string    `bson:"location" json:"location"`
	Type          string    `bson:"type" json:"type"`
	Severity      string    `bson:"severity" json:"severity"`
	Description   string    `bson:"description" json:"description"`
	ImageURL      string    `bson:"image_url" json:"image_url"`
	ReporterName  string    `bson:"reporter_name" json:"reporter_name"`
	ReporterPhone string    `bson:"reporter_phone" json:"reporter_phone"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// User is an account created on first successful delegated login and
// updated on every subsequent one. The external identity reference is
// never exposed over the API.
type User struct {
	ID            string    `bson:"_id" json:"id"`
	GoogleID      string    `bson:"google_id" json:"-"`
	Email         string    `bson:"email" json:"email"`
	Name          string    `bson:"name" json:"name"`
	Picture       string    `bson:"picture" json:"picture"`
	EmailVerified bool      `bson:"verified_email" json:"verified_email"`
	Role          string    `bson:"role" json:"role"`
	ReportsCount  int       `bson:"reports_count" json:"reports_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	LastLogin     time.Time `bson:"last_login" json:"last_login"`
}
