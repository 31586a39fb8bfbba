package dtos

type CreateResumeVersionRequest struct {
	ResumeID         string  `json:"resume_id" binding:"required"`
	OriginalFilename string  `json:"original_filename" binding:"required"`
	JobDescription   *string `json:"job_description"`
	TweakedText      string  `json:"tweaked_text" binding:"required"`
}
