package report

import (
	"MS_Service_Health_Monitor/internal/model"
	"fmt"
	"path/filepath"
	"strings"
)

const fontStyle = "font-family: 'Courier New', monospace; font-size: 14;"

// Display banding thresholds for the health cell background. These encode
// presentation policy and are intentionally independent of the severity OK
// threshold used for classification.
const (
	bandGood = 97.0
	bandWarn = 95.0
)

// contentID derives the inline-attachment Content-ID for a chart artifact.
// The same value is used in the HTML body and on the attached image so mail
// clients resolve the reference.
func contentID(path string) string {
	return strings.ReplaceAll(filepath.Base(path), " ", "_")
}

func openTable() string {
	return fmt.Sprintf(`<table style="width: 800px; border-collapse: collapse; border-spacing: 0cm; %s" cellpadding="5"><tbody>`, fontStyle)
}

func closeTable() string {
	return "</tbody></table>"
}

func sectionTitleRow(title string) string {
	return fmt.Sprintf(`<tr><td style="text-align: left; height: 24px; border-bottom: 2px solid black; font-size: 18; color:#003780;"><strong>%s</strong></td></tr>`, title)
}

func healthRow(percent float64) string {
	var background string
	switch {
	case percent >= bandGood:
		background = "#d9ffd9"
	case percent >= bandWarn:
		background = "#fff8d9"
	default:
		background = "#ffd9d9"
	}
	style := fmt.Sprintf("text-align: left; height: 24px; background-color: %s; border-bottom: 2px solid black; font-size: 18; color:#2b0000;", background)
	return fmt.Sprintf(`<tr><td style="%s"><strong>%.2f%%</strong></td></tr>`, style, percent)
}

func imageRow(cid string) string {
	return fmt.Sprintf(`<tr><td style="width: 800px; text-align: center;"><img src="cid:%s"></td></tr>`, cid)
}

func stateRow(text string) string {
	return fmt.Sprintf(`<tr><td style="text-align: left;">%s</td></tr>`, text)
}

// buildHTMLBody renders the per-customer report table: one section per
// service with the overall health cell, the inline chart when available and
// the per-status occurrence list.
func buildHTMLBody(report model.CustomerReport) string {
	var b strings.Builder
	b.WriteString(openTable())
	for _, service := range report.Services {
		b.WriteString(openTable())
		b.WriteString(sectionTitleRow(fmt.Sprintf("&#9881; %s", service.Service)))
		b.WriteString(healthRow(service.Summary.OverallHealthyPercent))
		if service.ChartPath != "" {
			b.WriteString(imageRow(contentID(service.ChartPath)))
		}
		if len(service.Summary.Distribution) > 0 {
			b.WriteString(stateRow("<strong>Service health states occurrence:</strong>"))
			for _, share := range service.Summary.Distribution {
				status := share.Status
				if status == "" {
					status = "(no status)"
				}
				b.WriteString(stateRow(fmt.Sprintf("%s: %.2f%%", status, share.Percent)))
			}
		}
		b.WriteString(closeTable())
		b.WriteString("</br>")
	}
	b.WriteString(closeTable())
	return b.String()
}
