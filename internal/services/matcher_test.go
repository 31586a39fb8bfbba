package services

import (
	"testing"

	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMatchApplication(t *testing.T) {
	apps := []models.Application{
		{ID: "go", Company: "Go"},
		{ID: "stripe", Company: "Stripe"},
		{ID: "acme", Company: "Acme Corp"},
	}

	testCases := []struct {
		name    string
		subject string
		sender  string
		wantID  string
	}{
		{name: "subject", subject: "Update on your application to Stripe", sender: "noreply@greenhouse.io", wantID: "stripe"},
		{name: "display name", subject: "Your application", sender: "Stripe Recruiting <jobs@greenhouse.io>", wantID: "stripe"},
		{name: "domain", subject: "Interview invite", sender: "Jane <jane@stripe.com>", wantID: "stripe"},
		{name: "unparseable sender", subject: "Hello", sender: "jobs@stripe.com (broken", wantID: "stripe"},
		{name: "short names skipped", subject: "Go to the next round", sender: "a@b.io"},
		{name: "multi word company", subject: "ACME CORP offer", sender: "hr@x.io", wantID: "acme"},
		{name: "no match", subject: "Newsletter", sender: "news@site.io"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchApplication(tc.subject, tc.sender, apps)
			if tc.wantID == "" {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tc.wantID, got.ID)
			}
		})
	}
}
