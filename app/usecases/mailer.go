package usecases

// Mailer is the outgoing email contract the usecases depend on. The SMTP
// implementation lives in app/utils.
type Mailer interface {
	SendReservationStatus(toEmail, name, code, date, timeStr, status string) error
	SendPasswordReset(toEmail, resetToken string) error
	SendContactNotification(name, email, subject, body string) error
}
