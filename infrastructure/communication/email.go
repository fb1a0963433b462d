package communication

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Email struct {
	From        string
	To          []string
	Subject     string
	Text        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// RawEmailAPI is the part of the SES client the mailer uses.
type RawEmailAPI interface {
	SendRawEmail(ctx context.Context, in *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

type SESMailer struct {
	client RawEmailAPI
}

func NewSESMailer(client RawEmailAPI) *SESMailer {
	return &SESMailer{client: client}
}

func ConnectSES(ctx context.Context) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESMailer(ses.NewFromConfig(cfg)), nil
}

func (m *SESMailer) Send(ctx context.Context, email Email) error {
	raw, err := BuildRawEmail(email)
	if err != nil {
		return err
	}
	res, err := m.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage: &types.RawMessage{Data: raw.Bytes()},
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if res != nil && res.MessageId != nil {
		fmt.Printf("[INFO] sent email %s\n", *res.MessageId)
	}
	return nil
}

// BuildRawEmail renders a multipart/mixed message with a quoted-printable
// text body and base64 attachments wrapped at 76 columns.
func BuildRawEmail(email Email) (*bytes.Buffer, error) {
	if email.From == "" || len(email.To) == 0 {
		return nil, errors.New("email needs a sender and at least one recipient")
	}

	var raw bytes.Buffer
	writer := multipart.NewWriter(&raw)

	fmt.Fprintf(&raw, "From: %s\r\n", email.From)
	fmt.Fprintf(&raw, "To: %s\r\n", strings.Join(email.To, ", "))
	fmt.Fprintf(&raw, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", email.Subject))
	raw.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&raw, "Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", writer.Boundary())

	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/plain; charset=UTF-8"},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return nil, err
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(email.Text)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	for _, att := range email.Attachments {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", fmt.Sprintf("%s; name=\"%s\"", att.ContentType, att.Filename))
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", att.Filename))
		h.Set("Content-Transfer-Encoding", "base64")

		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, err
		}
		b := make([]byte, base64.StdEncoding.EncodedLen(len(att.Content)))
		base64.StdEncoding.Encode(b, att.Content)
		for i := 0; i < len(b); i += 76 {
			end := min(i+76, len(b))
			part.Write(b[i:end])
			part.Write([]byte("\r\n"))
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return &raw, nil
}
