package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// NotificationData holds the data for the intake notification sent to the firm
type NotificationData struct {
	FullName     string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
	ConsentAt    string // ISO-8601, captured when the email is built
	SiteURL      string
}

// ConfirmationData holds the already-localized lines of the receipt sent to the visitor
type ConfirmationData struct {
	Lang       string
	Heading    string
	Greeting   string
	Body       string
	Assistance string
	SignOff    string
	Team       string
	Footer     string
}

var funcs = template.FuncMap{
	"nl2br": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New Contact Form Submission</title></head>
<body>
    <h2>New Contact Form Submission</h2>
    <p><strong>Name:</strong> {{.FullName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Service Required:</strong> {{.ServiceLabel}}</p>
    <p><strong>Message:</strong></p>
    <p>{{nl2br .Message}}</p>
    <hr>
    <p><small>CASL Consent: Provided at {{.ConsentAt}}</small></p>
    <p><small>This email was sent from the contact form on {{.SiteURL}}</small></p>
</body>
</html>`

const confirmationTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="UTF-8"><title>{{.Heading}}</title></head>
<body>
    <h2>{{.Heading}}</h2>
    <p>{{.Greeting}}</p>
    <p>{{.Body}}</p>
    <p>{{.Assistance}}</p>
    <br>
    <p>{{.SignOff}}</p>
    <p>{{.Team}}</p>
    <hr>
    <p><small>{{.Footer}}</small></p>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Funcs(funcs).Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
)

// RenderNotification renders the HTML body of the intake notification
func RenderNotification(data NotificationData) (string, error) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}
	return body.String(), nil
}

// RenderConfirmation renders the HTML body of the visitor's receipt
func RenderConfirmation(data ConfirmationData) (string, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute confirmation template: %w", err)
	}
	return body.String(), nil
}
