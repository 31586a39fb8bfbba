package services

import (
	"net/mail"
	"strings"

	"github.com/justsurfingit/resume-legend/internal/models"
)

// MatchApplication returns the first application whose company the email
// names in its subject, sender display name or sender domain.
func MatchApplication(subject, rawSender string, apps []models.Application) *models.Application {
	// "Stripe Recruiting <jobs@stripe.com>" -> name="stripe recruiting", addr="jobs@stripe.com"
	senderName, senderAddr := "", strings.ToLower(rawSender)
	if parsed, err := mail.ParseAddress(rawSender); err == nil {
		senderName = strings.ToLower(parsed.Name)
		senderAddr = strings.ToLower(parsed.Address)
	}
	domain := ""
	if parts := strings.Split(senderAddr, "@"); len(parts) == 2 {
		domain = parts[1]
	}
	subjectLower := strings.ToLower(subject)

	for i := range apps {
		company := strings.ToLower(strings.TrimSpace(apps[i].Company))
		// Very short names like "X" or "Go" match everything.
		if len(company) < 3 {
			continue
		}
		if strings.Contains(subjectLower, company) {
			return &apps[i]
		}
		if senderName != "" && strings.Contains(senderName, company) {
			return &apps[i]
		}
		if domain != "" && strings.Contains(domain, company) {
			return &apps[i]
		}
	}
	return nil
}
