package impl

import (
	"bytes"
	"html/template"

	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
)

const (
	contractMailSubject       = "Your FitSAGA Membership Contract"
	signedContractMailSubject = "Your Signed FitSAGA Membership Contract"

	contractAttachmentName       = "FitSAGA_Contract.pdf"
	signedContractAttachmentName = "FitSAGA_Signed_Contract.pdf"
)

var contractMailTemplate = template.Must(template.New("contract").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #4f46e5;">FitSAGA Membership Contract</h1>
  <p>Hello {{.ClientName}},</p>
  <p>Your FitSAGA membership contract is ready for your review and signature.</p>
  <p>Please click the button below to view and sign your contract:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.SigningURL}}" style="background-color: #4f46e5; color: white; padding: 12px 20px; text-decoration: none; border-radius: 4px; font-weight: bold;">View and Sign Contract</a>
  </div>
  <p>If you have any questions, please contact our support team.</p>
  <p>Thank you for choosing FitSAGA!</p>
</div>`))

var signedContractMailTemplate = template.Must(template.New("signed").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #4f46e5;">FitSAGA Membership Contract - Signed</h1>
  <p>Hello {{.ClientName}},</p>
  <p>Thank you for signing your FitSAGA membership contract.</p>
  <p>Attached is a copy of your signed contract for your records.</p>
  <p>We look forward to helping you achieve your fitness goals!</p>
  <p>The FitSAGA Team</p>
</div>`))

type contractMailData struct {
	ClientName string
	SigningURL string
}

func contractEmail(to string, data contractMailData, pdf []byte) (*service.EmailMessage, error) {
	html, err := renderMail(contractMailTemplate, data)
	if err != nil {
		return nil, err
	}

	return &service.EmailMessage{
		To:      to,
		Subject: contractMailSubject,
		HTML:    html,
		Text: "Hello " + data.ClientName + ",\n\nYour FitSAGA membership contract is ready. " +
			"Open the link below to view and sign it:\n" + data.SigningURL + "\n",
		Attachments: []service.Attachment{{
			Filename:    contractAttachmentName,
			ContentType: pdfContentType,
			Data:        pdf,
		}},
	}, nil
}

func signedContractEmail(to, clientName string, pdf []byte) (*service.EmailMessage, error) {
	html, err := renderMail(signedContractMailTemplate, contractMailData{ClientName: clientName})
	if err != nil {
		return nil, err
	}

	return &service.EmailMessage{
		To:      to,
		Subject: signedContractMailSubject,
		HTML:    html,
		Text:    "Hello " + clientName + ",\n\nThank you for signing your FitSAGA membership contract. A copy is attached.\n",
		Attachments: []service.Attachment{{
			Filename:    signedContractAttachmentName,
			ContentType: pdfContentType,
			Data:        pdf,
		}},
	}, nil
}

func renderMail(tmpl *template.Template, data contractMailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render email")
	}

	return buf.String(), nil
}
