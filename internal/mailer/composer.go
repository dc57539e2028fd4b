package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/learntrackhq/learntrack/internal/markdown"
)

//go:embed templates/*.md
var templatesFS embed.FS

// ReminderData feeds the reminder template.
type ReminderData struct {
	Name    string
	Streak  int
	AppName string
}

// Composer renders email from the embedded markdown templates. Subject
// lines live in each template's frontmatter. The body renders twice,
// markdown to HTML for rich clients and stripped markdown as the plain
// text alternative.
type Composer struct {
	appName string
	parser  *markdown.Parser
	tmpl    *template.Template
}

func NewComposer(appName string) (*Composer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &Composer{
		appName: appName,
		parser:  markdown.NewParser(),
		tmpl:    tmpl,
	}, nil
}

// Reminder composes the daily reminder for one user. The recipient
// address is left for the caller to fill in.
func (c *Composer) Reminder(name string, streak int) (Message, error) {
	data := ReminderData{
		Name:    name,
		Streak:  streak,
		AppName: c.appName,
	}

	var buf bytes.Buffer
	err := c.tmpl.ExecuteTemplate(&buf, "reminder.md", data)
	if err != nil {
		return Message{}, fmt.Errorf("failed to execute reminder template: %w", err)
	}

	rendered := buf.Bytes()
	html, meta, err := c.parser.ParseWithFrontmatter(rendered)
	if err != nil {
		return Message{}, fmt.Errorf("failed to render reminder markdown: %w", err)
	}

	subject, _ := meta["subject"].(string)
	if subject == "" {
		subject = fmt.Sprintf("Time to log your learning on %s", c.appName)
	}

	return Message{
		ToName:  name,
		Subject: subject,
		HTML:    string(html),
		Text:    string(markdown.StripFrontmatter(rendered)),
	}, nil
}
