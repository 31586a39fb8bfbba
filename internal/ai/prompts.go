package ai

import "fmt"

const DefaultRole = "Frontend Developer"

// JobRoles are the target roles offered for role-based improvement.
var JobRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Data Analyst",
	"Product Manager",
	"UX Designer",
}

const (
	rolePrompt = "You are an expert resume builder. Rewrite and improve this resume for a job role: [%s]. Resume: [%s]"

	jobPrompt = "You are an expert resume builder. Rewrite and improve this resume so it matches the job description below. " +
		"Keep every fact from the original resume and do not invent experience. Job description: [%s]. Resume: [%s]"

	coverLetterPrompt = "You are an expert career writer. Write a professional cover letter for the job below " +
		"using only the experience in the resume. Job: [%s]. Resume: [%s]"
)

func RolePrompt(resumeText, role string) string {
	if role == "" {
		role = DefaultRole
	}
	return fmt.Sprintf(rolePrompt, role, resumeText)
}

func JobPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(jobPrompt, jobDescription, resumeText)
}

// JobDetails formats a job the way cover letter prompts embed it.
func JobDetails(jobTitle, companyName, jobDescription string) string {
	return fmt.Sprintf("Job Title: %s\nCompany: %s\n\n%s", jobTitle, companyName, jobDescription)
}

func CoverLetterPrompt(resumeText, jobTitle, companyName, jobDescription string) string {
	return fmt.Sprintf(coverLetterPrompt, JobDetails(jobTitle, companyName, jobDescription), resumeText)
}
