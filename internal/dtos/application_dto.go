package dtos

// Dates are calendar dates formatted as 2006-01-02.
const DateLayout = "2006-01-02"

type CreateApplicationRequest struct {
	JobTitle      string  `json:"job_title" binding:"required"`
	Company       string  `json:"company" binding:"required"`
	AppliedDate   string  `json:"applied_date" binding:"omitempty,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"omitempty,oneof=Applied Interview Rejected Offer"` // Defaults to "Applied" if empty
	Notes         *string `json:"notes"`
	ResumeID      *string `json:"resume_id"`
	CoverLetterID *string `json:"cover_letter_id"`
	FollowUpDate  *string `json:"follow_up_date" binding:"omitnil,date_or_empty"`
}

// UpdateApplicationRequest overwrites only the fields that are present.
type UpdateApplicationRequest struct {
	JobTitle      *string `json:"job_title" binding:"omitnil,min=1"`
	Company       *string `json:"company" binding:"omitnil,min=1"`
	AppliedDate   *string `json:"applied_date" binding:"omitnil,datetime=2006-01-02"`
	Status        *string `json:"status" binding:"omitnil,oneof=Applied Interview Rejected Offer"`
	Notes         *string `json:"notes"`
	ResumeID      *string `json:"resume_id"`
	CoverLetterID *string `json:"cover_letter_id"`
	FollowUpDate  *string `json:"follow_up_date" binding:"omitnil,date_or_empty"`
}

type ListApplicationsQuery struct {
	Status string `form:"status" json:"status" binding:"omitempty,oneof=Applied Interview Rejected Offer"`
}
