package mailer

import (
	"errors"

	"github.com/oksasatya/notes-api/pkg/mailer/templates"
)

// Render resolves the subject and bodies to send for the job
func (j EmailJob) Render() (subject, text, html string, err error) {
	if j.To == "" {
		return "", "", "", errors.New("email job without recipient")
	}
	if j.Template == "" {
		if j.Subject == "" || (j.Text == "" && j.HTML == "") {
			return "", "", "", errors.New("email job needs a template or subject with text/html")
		}
		return j.Subject, j.Text, j.HTML, nil
	}
	data := j.Data
	if data == nil {
		data = map[string]any{}
	}
	if v, ok := data["Email"]; !ok || v == "" {
		data["Email"] = j.To
	}
	return templates.Render(j.Template, data)
}
