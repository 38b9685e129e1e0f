package helpers

import (
	"fmt"

	"github.com/oksasatya/go-directory-portal/pkg/mailer"
	mailtpl "github.com/oksasatya/go-directory-portal/pkg/mailer/templates"
)

// EnsureRecipientAndEmail copies the recipient into the template data when absent.
func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
}

// PrepareEmailJob renders a templated job into Subject, Text and HTML.
// Jobs without a template are returned unchanged.
func PrepareEmailJob(job *mailer.EmailJob, appName string) error {
	if job.Template == "" {
		return nil
	}
	EnsureRecipientAndEmail(job)
	if _, ok := job.Data["AppName"]; !ok {
		job.Data["AppName"] = appName
	}
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		return err
	}
	if job.Subject == "" {
		job.Subject = subject
	}
	job.Text, job.HTML = text, html
	return nil
}
