package utils

import (
	"crypto/tls"
	"fmt"

	"BE-Cafe-Corner/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails over SMTP. Connection details come
// from the config so tests can swap the whole thing for a mock.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	base string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTP.Host,
		port: cfg.SMTP.Port,
		user: cfg.SMTP.User,
		pass: cfg.SMTP.Pass,
		from: cfg.SMTP.From,
		base: cfg.Server.BaseURL,
	}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(msg)
}

func (m *Mailer) SendReservationStatus(toEmail, name, code, date, timeStr, status string) error {
	subject := fmt.Sprintf("Your reservation %s has been %s", code, status)
	htmlBody := fmt.Sprintf(`
    <h1>Reservation %s</h1>
    <p>Hi %s,</p>
    <p>Your reservation <b>%s</b> for %s at %s has been <b>%s</b>.</p>
    <p>See you soon!</p>
    `, status, name, code, date, timeStr, status)
	return m.send(toEmail, subject, htmlBody)
}

func (m *Mailer) SendPasswordReset(toEmail, resetToken string) error {
	resetLink := fmt.Sprintf("%s/password/reset/%s", m.base, resetToken)
	htmlBody := fmt.Sprintf(`
    <h1>Reset Password Request</h1>
    <p>Click the link below to reset your password:</p>
    <p><a href="%s">%s</a></p>
    <br>
    <p>This link will expire in 15 minutes.</p>
    `, resetLink, resetLink)
	return m.send(toEmail, "Reset Password Request", htmlBody)
}

// SendContactNotification forwards a contact-form message to the cafe inbox.
func (m *Mailer) SendContactNotification(name, email, subject, body string) error {
	htmlBody := fmt.Sprintf(`
    <h1>New contact message</h1>
    <p><b>From:</b> %s (%s)</p>
    <p><b>Subject:</b> %s</p>
    <p>%s</p>
    `, name, email, subject, body)
	return m.send(m.from, "Contact form: "+subject, htmlBody)
}
