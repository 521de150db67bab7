package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends transactional email through SES. Constructed once in main
// and handed to the services that need it.
type Mailer struct {
	client *ses.Client
	sender string
}

func NewMailer(ctx context.Context) (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		sender: os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *Mailer) sendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	_, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendEmergencyEmail notifies one emergency contact on behalf of the mother.
func (m *Mailer) SendEmergencyEmail(ctx context.Context, to, recipientName, motherName, customMessage string) error {
	subject := "PEMBERITAHUAN DARURAT - PantauSiKecil"
	body := fmt.Sprintf(
		"Halo %s,\n\n"+
			"Kami mengirimkan pesan darurat ini atas nama %s yang menggunakan aplikasi PantauSiKecil.\n\n"+
			"%s mungkin sedang dalam keadaan darurat dan membutuhkan bantuan segera.\n",
		recipientName, motherName, motherName,
	)
	if customMessage != "" {
		body += fmt.Sprintf("\nPesan tambahan: \"%s\"\n", customMessage)
	}
	body += "\nSegera hubungi yang bersangkutan atau layanan darurat bila diperlukan."
	return m.sendEmail(ctx, to, subject, body)
}
