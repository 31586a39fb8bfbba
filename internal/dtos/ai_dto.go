package dtos

type ImproveForRoleRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
	Role       string `json:"role"` // Defaults to "Frontend Developer" if empty
}

type ImproveForJobRequest struct {
	ResumeText     string  `json:"resume_text" binding:"required"`
	JobDescription string  `json:"job_description" binding:"required"`
	Filename       string  `json:"filename" binding:"required"`
	ResumeID       *string `json:"resume_id"`
}

type ImprovementResponse struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
	VersionID string `json:"version_id,omitempty"`
}

type ExportRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content" binding:"required"`
}

type GenerateCoverLetterRequest struct {
	ResumeName     string `json:"resume_name" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	CompanyName    string `json:"company_name" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}
