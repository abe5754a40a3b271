package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"tripforge/internal/config"
)

type IMailService interface {
	// SendReviewDecision notifies the itinerary owner by email after an
	// admin approves or rejects their plan.
	SendReviewDecision(to, ownerName, itineraryTitle string, approved bool) error
}

type smtpMailService struct {
	cfg     config.MailConfig
	appName string
	baseURL string
	htmlTpl *template.Template
	textTpl *template.Template
}

// NewMailService returns an SMTP-backed mailer, or a no-op one when no
// SMTP host is configured.
func NewMailService(cfg *config.Config) IMailService {
	if cfg.Mail.Host == "" {
		return &noopMailService{}
	}
	return &smtpMailService{
		cfg:     cfg.Mail,
		appName: cfg.App.Name,
		baseURL: cfg.App.BaseURL,
		htmlTpl: template.Must(template.New("decisionHTML").Parse(decisionHTMLTemplate)),
		textTpl: template.Must(template.New("decisionText").Parse(decisionTextTemplate)),
	}
}

type decisionEmailData struct {
	Title     string
	OwnerName string
	Body      string
	LinkURL   string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendReviewDecision(to, ownerName, itineraryTitle string, approved bool) error {
	subject := "Your itinerary was approved"
	body := fmt.Sprintf("Great news! Your itinerary %q has been approved by our review team.", itineraryTitle)
	if !approved {
		subject = "Your itinerary needs changes"
		body = fmt.Sprintf("Your itinerary %q was not approved. Please review the admin feedback and resubmit.", itineraryTitle)
	}

	data := decisionEmailData{
		Title:     subject,
		OwnerName: ownerName,
		Body:      body,
		LinkURL:   strings.TrimRight(s.baseURL, "/") + "/itineraries",
		AppName:   s.appName,
		Year:      time.Now().Year(),
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := s.htmlTpl.Execute(&htmlBuf, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&textBuf, data); err != nil {
		return err
	}

	return s.send(to, subject, htmlBuf.String(), textBuf.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		return s.deliver(conn, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}
	return s.submit(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(conn net.Conn, auth smtp.Auth, to string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	return s.submit(c, auth, to, msg)
}

func (s *smtpMailService) submit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

type noopMailService struct{}

func (n *noopMailService) SendReviewDecision(string, string, string, bool) error {
	return nil
}

const decisionHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:24px;background:#f1f5f9;font-family:-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;">
    <h1 style="margin:0 0 16px;font-size:24px;color:#0f172a;">{{.Title}}</h1>
    <p style="color:#334155;line-height:1.7;">Hi {{.OwnerName}},</p>
    <p style="color:#334155;line-height:1.7;">{{.Body}}</p>
    <p style="margin:28px 0;">
      <a href="{{.LinkURL}}" style="display:inline-block;padding:14px 28px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:8px;font-weight:600;">View your itineraries</a>
    </p>
    <p style="color:#94a3b8;font-size:13px;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const decisionTextTemplate = `{{.Title}}

Hi {{.OwnerName}},

{{.Body}}

View your itineraries: {{.LinkURL}}

- The {{.AppName}} team`
