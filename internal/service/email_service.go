package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends notification emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service whose sends are silent no-ops.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail sends a welcome email to a new teacher account
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): welcome to %s", toEmail)
		return nil
	}

	subject := "Welcome to SportClash!"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #2e7d32;">Welcome to SportClash!</h1>
		<p>Hi %s,</p>
		<p>Your account is ready. Here's how to get started:</p>
		<ul>
			<li>Create a class and enroll your students</li>
			<li>Schedule sessions and take attendance</li>
			<li>Record scores and watch achievements unlock</li>
		</ul>
		<p><a href="%s" style="color: #2e7d32;">Open SportClash</a></p>
		<p style="font-size: 12px; color: #666;">This is an automated email. Please do not reply.</p>
	</div>
</body>
</html>
`, toName, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Your SportClash account is ready.

- Create a class and enroll your students
- Schedule sessions and take attendance
- Record scores and watch achievements unlock

Open SportClash: %s

---
This is an automated email. Please do not reply.
`, toName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendUnlockEmail notifies a student that new achievements or medals were
// earned after a recorded session
func (s *EmailService) SendUnlockEmail(ctx context.Context, toEmail, toName string, achievements, medals []string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): unlocks to %s", toEmail)
		return nil
	}
	if len(achievements) == 0 && len(medals) == 0 {
		return nil
	}

	var lines []string
	for _, code := range achievements {
		lines = append(lines, fmt.Sprintf("Achievement unlocked: %s", code))
	}
	for _, code := range medals {
		lines = append(lines, fmt.Sprintf("Medal earned: %s", code))
	}

	subject := "You earned new rewards in SportClash!"
	htmlItems := ""
	for _, line := range lines {
		htmlItems += fmt.Sprintf("<li>%s</li>\n", line)
	}
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #2e7d32;">New rewards!</h1>
		<p>Hi %s,</p>
		<p>Your latest session earned you:</p>
		<ul>
%s		</ul>
		<p><a href="%s" style="color: #2e7d32;">See your collection</a></p>
		<p style="font-size: 12px; color: #666;">This is an automated email. Please do not reply.</p>
	</div>
</body>
</html>
`, toName, htmlItems, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

Your latest session earned you:

%s

See your collection: %s

---
This is an automated email. Please do not reply.
`, toName, strings.Join(lines, "\n"), s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
