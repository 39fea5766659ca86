package report

import (
	"MS_Service_Health_Monitor/internal/config"
	"MS_Service_Health_Monitor/internal/model"
	"MS_Service_Health_Monitor/pkg/mail"
	"bytes"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

const subjectTimeLayout = "2006-01-02 15:04"

type Dispatcher interface {
	Dispatch(customer config.Customer, report model.CustomerReport) error
}

type mailDispatcher struct {
	sender    mail.Sender
	subject   string
	signature string
	logger    *zap.Logger
}

// Dispatch sends one customer report: HTML body with greeting and signature,
// chart images embedded inline under their Content-IDs, and the spreadsheet
// summary attached. An unreadable chart artifact or a failed workbook build
// degrades the mail rather than failing it.
func (d *mailDispatcher) Dispatch(customer config.Customer, report model.CustomerReport) error {
	var inline []mail.Attachment
	for _, service := range report.Services {
		if service.ChartPath == "" {
			continue
		}
		content, err := os.ReadFile(service.ChartPath)
		if err != nil {
			d.logger.Warn("cannot read chart artifact, sending without it",
				zap.String("customer", customer.Name),
				zap.String("path", service.ChartPath),
				zap.Error(err))
			continue
		}
		inline = append(inline, mail.Attachment{
			Name:    contentID(service.ChartPath),
			Content: bytes.NewReader(content),
		})
	}

	var attachments []mail.Attachment
	workbook, err := buildSummaryWorkbook(report)
	if err != nil {
		d.logger.Warn("cannot build summary workbook, sending without it",
			zap.String("customer", customer.Name),
			zap.Error(err))
	} else {
		attachments = append(attachments, mail.Attachment{
			Name:    "health-summary.xlsx",
			Content: workbook,
		})
	}

	var cc []string
	if customer.MailCc != "" {
		cc = []string{customer.MailCc}
	}
	subject := fmt.Sprintf("[%s] %s - %s", customer.Name, d.subject, time.Now().Format(subjectTimeLayout))
	body := "Hello, <br /><br />" + report.HTMLBody + d.signature

	if err = d.sender.SendMail([]string{customer.MailTo}, cc, subject, body, "", attachments, inline); err != nil {
		return fmt.Errorf("Dispatcher.Dispatch: %w", err)
	}
	return nil
}

func NewMailDispatcher(sender mail.Sender, subject string, signature string, logger *zap.Logger) Dispatcher {
	return &mailDispatcher{
		sender:    sender,
		subject:   subject,
		signature: signature,
		logger:    logger,
	}
}
