package export

import (
	"fmt"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// EmailDraft is a prefilled report message. Sending is left to the user's
// mail client.
type EmailDraft struct {
	Body    string `json:"body"`
	Subject string `json:"subject"`
}

// NewEmailDraft builds the report message for a session with the CSV
// export appended. The report date is the end time, else the start time,
// else now.
func NewEmailDraft(session domain.Session, cfg Config, now time.Time) EmailDraft {
	reportDate := now
	switch {
	case session.EndTime != nil && !session.EndTime.IsZero():
		reportDate = *session.EndTime
	case !session.StartTime.IsZero():
		reportDate = session.StartTime
	}

	body := fmt.Sprintf(
		"Installation report for %s (%s) completed on %s.\n\n"+
			"Total positions scanned: %d\nConfiguration: %s\n\n"+
			"Please find the scan data attached.",
		session.SiteName, session.SiteCode, FormatDate(reportDate, "PPP"),
		len(session.ScanResults), session.ConfigName,
	)

	return EmailDraft{
		Body:    body + "\n\n--- CSV Data ---\n" + RenderCSV(session, cfg),
		Subject: fmt.Sprintf("[%s] Installation Report - %s", session.SiteCode, FormatDate(now, "PPP")),
	}
}
