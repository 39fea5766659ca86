package report

import (
	"MS_Service_Health_Monitor/internal/config"
	mockmail "MS_Service_Health_Monitor/internal/mocks/mail"
	"MS_Service_Health_Monitor/internal/model"
	"MS_Service_Health_Monitor/pkg/mail"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var dispatchCustomer = config.Customer{
	Name:   "customer1",
	MailTo: "recipient@domain.com",
	MailCc: "ops@domain.com",
}

func chartArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "2025-06-02_08-00-00_Intune.png")
	require.NoError(t, os.WriteFile(path, []byte("png bytes"), 0o644))
	return path
}

func testReport(chartPath string) model.CustomerReport {
	return model.CustomerReport{
		Customer: "customer1",
		Services: []model.ServiceReport{
			{
				Service:   "Intune",
				Summary:   model.HealthSummary{OverallHealthyPercent: 66.67},
				ChartPath: chartPath,
			},
		},
		HTMLBody: "<table></table>",
	}
}

func TestDispatch(t *testing.T) {
	t.Run("sends report with inline chart and workbook attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mockmail.NewMockSender(ctrl)
		path := chartArtifact(t)

		sender.EXPECT().
			SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(to, cc []string, subject, htmlBody, textBody string, attachments, inline []mail.Attachment) error {
				assert.Equal(t, []string{"recipient@domain.com"}, to)
				assert.Equal(t, []string{"ops@domain.com"}, cc)
				assert.Contains(t, subject, "[customer1] MS Service health report - ")
				assert.Contains(t, htmlBody, "Hello, <br /><br />")
				assert.Contains(t, htmlBody, "automated message")
				require.Len(t, attachments, 1)
				assert.Equal(t, "health-summary.xlsx", attachments[0].Name)
				require.Len(t, inline, 1)
				assert.Equal(t, "2025-06-02_08-00-00_Intune.png", inline[0].Name)
				return nil
			})

		d := NewMailDispatcher(sender, "MS Service health report",
			`<hr><p>automated message</p>`, zap.NewNop())
		err := d.Dispatch(dispatchCustomer, testReport(path))
		assert.NoError(t, err)
	})

	t.Run("unreadable chart artifact degrades to no inline image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mockmail.NewMockSender(ctrl)

		sender.EXPECT().
			SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(to, cc []string, subject, htmlBody, textBody string, attachments, inline []mail.Attachment) error {
				assert.Empty(t, inline)
				return nil
			})

		d := NewMailDispatcher(sender, "subject", "", zap.NewNop())
		err := d.Dispatch(dispatchCustomer, testReport("/nonexistent/chart.png"))
		assert.NoError(t, err)
	})

	t.Run("no cc header when cc unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mockmail.NewMockSender(ctrl)

		sender.EXPECT().
			SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(to, cc []string, subject, htmlBody, textBody string, attachments, inline []mail.Attachment) error {
				assert.Nil(t, cc)
				return nil
			})

		customer := dispatchCustomer
		customer.MailCc = ""
		d := NewMailDispatcher(sender, "subject", "", zap.NewNop())
		err := d.Dispatch(customer, testReport(""))
		assert.NoError(t, err)
	})

	t.Run("sender failure surfaces as error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mockmail.NewMockSender(ctrl)

		sender.EXPECT().
			SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cannot connect with SMTP"))

		d := NewMailDispatcher(sender, "subject", "", zap.NewNop())
		err := d.Dispatch(dispatchCustomer, testReport(""))
		assert.Error(t, err)
	})
}
