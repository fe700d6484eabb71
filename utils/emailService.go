package utils

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lms/config"
)

// SendEmail delivers one HTML email through Sendgrid. A missing API key turns
// this into a logged no-op so local setups work without credentials.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
	}
	return nil
}

// SendWelcomeEmail greets a freshly signed-up user.
func SendWelcomeEmail(name, email string) {
	body := `
	<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Welcome, ` + name + `!</h2>
		<p>Your account has been created. Teachers can start building courses and
		resources right away; students can browse everything that has been published.</p>
		<p>Happy learning!</p>
	</div>`

	if err := SendEmail(name, email, "Welcome to LMS", body); err != nil {
		log.Printf("Welcome email to %s failed: %v", email, err)
	}
}
