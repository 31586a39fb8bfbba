package models

import (
	"time"

	"google.golang.org/api/gmail/v1"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusOffer     ApplicationStatus = "Offer"
)

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "Pending"
	ReminderCompleted ReminderStatus = "Completed"
)

// ResumeFile is an object in the resume bucket, not a table row.
type ResumeFile struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
	Size       int64     `json:"size"`
}

type ResumeVersion struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string    `gorm:"type:uuid;index;not null" json:"user_id"`
	ResumeID         string    `gorm:"not null" json:"resume_id"`
	OriginalFilename string    `gorm:"not null" json:"original_filename"`
	JobDescription   *string   `gorm:"type:text" json:"job_description"`
	TweakedText      string    `gorm:"type:text;not null" json:"tweaked_text"`
	IsDefault        bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}

func (ResumeVersion) TableName() string { return "resume_versions" }

type Application struct {
	ID            string            `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	UserID        string            `gorm:"type:uuid;index;not null" json:"user_id"`
	JobTitle      string            `gorm:"not null" json:"job_title"`
	Company       string            `gorm:"not null" json:"company"`
	AppliedDate   time.Time         `gorm:"type:date;not null" json:"applied_date"`
	Status        ApplicationStatus `gorm:"not null;default:'Applied'" json:"status"`
	Notes         *string           `gorm:"type:text" json:"notes"`
	ResumeID      *string           `json:"resume_id"`
	CoverLetterID *string           `json:"cover_letter_id"`
	FollowUpDate  *time.Time        `gorm:"type:date" json:"follow_up_date"`
}

func (Application) TableName() string { return "applications" }

type CoverLetter struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         string    `gorm:"type:uuid;index;not null" json:"user_id"`
	JobTitle       string    `gorm:"not null" json:"job_title"`
	CompanyName    string    `gorm:"not null" json:"company_name"`
	JobDescription string    `gorm:"type:text;not null" json:"job_description"`
	ResumeID       string    `gorm:"not null" json:"resume_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
}

func (CoverLetter) TableName() string { return "cover_letters" }

type Reminder struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UserID        string         `gorm:"type:uuid;index;not null" json:"user_id"`
	Title         string         `gorm:"not null" json:"title"`
	ReminderTime  time.Time      `gorm:"not null" json:"reminder_time"`
	Status        ReminderStatus `gorm:"not null;default:'Pending'" json:"status"`
	Note          *string        `gorm:"type:text" json:"note"`
	ApplicationID *string        `gorm:"type:uuid" json:"application_id"`
}

func (Reminder) TableName() string { return "reminders" }

// LegendPoints is maintained by an external process; this service only reads it.
type LegendPoints struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	LastUpdated time.Time `json:"last_updated"`
}

func (LegendPoints) TableName() string { return "legend_points" }

type EmailResponse struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UserID        string    `gorm:"type:uuid;index;not null" json:"user_id"`
	MessageID     string    `gorm:"uniqueIndex;not null" json:"message_id"`
	Sender        string    `gorm:"not null" json:"sender"`
	Subject       string    `gorm:"not null" json:"subject"`
	BodyPreview   string    `gorm:"type:text;not null" json:"body_preview"`
	ReceivedAt    time.Time `gorm:"index" json:"received_at"`
	ApplicationID *string   `gorm:"type:uuid" json:"application_id"`
}

func (EmailResponse) TableName() string { return "email_responses" }

type ProcessedEmail struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (ProcessedEmail) TableName() string { return "processed_emails" }

// MailboxState bookmarks the last Gmail history id seen for a user.
type MailboxState struct {
	UserID        string `gorm:"type:uuid;primaryKey"`
	UpdatedAt     time.Time
	LastHistoryID uint64
}

func (MailboxState) TableName() string { return "mailbox_states" }

// MailBatch is one mailbox sync. Skipped counts listed messages that could not
// be fetched; the bookmark must not move past them.
type MailBatch struct {
	Messages  []*gmail.Message
	HistoryID uint64
	Skipped   int
}
