package dtos

import "time"

type CreateReminderRequest struct {
	Title         string    `json:"title" binding:"required"`
	ReminderTime  time.Time `json:"reminder_time" binding:"required"`
	Note          *string   `json:"note"`
	ApplicationID *string   `json:"application_id" binding:"omitempty,uuid"`
}

// UpdateReminderRequest cannot change the status; use the complete endpoint.
type UpdateReminderRequest struct {
	Title        *string    `json:"title" binding:"omitnil,min=1"`
	ReminderTime *time.Time `json:"reminder_time"`
	Note         *string    `json:"note"`
}
