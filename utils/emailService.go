package utils

import (
	"eduflex/config"
	"eduflex/models"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gorm.io/gorm"
)

// SendEmail sends an HTML email through sendgrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		return fmt.Errorf("sendgrid api key not configured")
	}

	from := mail.NewEmail("EduFlex", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C6BC0; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EduFlex</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because you have an EduFlex account.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentEmail confirms a new enrollment to the student
func SendEnrollmentEmail(toEmail, toName, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">Head to your dashboard to start learning right away.</div>
		<p>Happy learning!</p>`, toName, courseTitle)

	return SendEmail(toEmail, toName, "Enrollment confirmed: "+courseTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendCertificateIssuedEmail notifies a student their certificate was issued
func SendCertificateIssuedEmail(db *gorm.DB, userID uint, certificateNumber string) error {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return err
	}

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! Your course completion certificate has been issued.</p>
		<div class="info-box">Certificate number: <strong>%s</strong></div>`, user.Name, certificateNumber)

	return SendEmail(user.Email, user.Name, "Your certificate is ready!", getEmailTemplate("Certificate Issued", body))
}

// SendProgressReminderEmail nudges a student with an unfinished course
func SendProgressReminderEmail(toEmail, toName, courseTitle string, percent float64) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are %.0f%% of the way through <strong>%s</strong>.</p>
		<div class="info-box">Pick up where you left off and keep the momentum going.</div>`, toName, percent, courseTitle)

	return SendEmail(toEmail, toName, "Keep going with "+courseTitle, getEmailTemplate("Continue Learning", body))
}
