package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/HarshanaWAJ/GymApp/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type purchaseRow struct {
	Index      int
	CardHolder string
	CardNumber string
	ExpDate    string
	Date       string
	Amount     string
}

type purchaseReportData struct {
	MonthLabel string
	Generated  string
	Rows       []purchaseRow
	Total      string
}

// GeneratePurchaseReportPDF renders the current-month purchase report for a
// member as a PDF. Only payments created in now's calendar month are listed.
func GeneratePurchaseReportPDF(payments []models.Payment, now time.Time) ([]byte, error) {
	monthKey := now.Format("2006-01")

	data := purchaseReportData{
		MonthLabel: now.Format("January 2006"),
		Generated:  now.Format("January 2, 2006"),
	}

	var total float64
	for _, p := range payments {
		if p.CreatedAt.Format("2006-01") != monthKey {
			continue
		}
		total += p.Amount
		data.Rows = append(data.Rows, purchaseRow{
			Index:      len(data.Rows) + 1,
			CardHolder: p.CardHolder,
			CardNumber: p.CardNumber,
			ExpDate:    p.ExpDate,
			Date:       p.CreatedAt.Format("Jan 2, 2006"),
			Amount:     fmt.Sprintf("$%.2f", p.Amount),
		})
	}
	data.Total = fmt.Sprintf("$%.2f", total)

	htmlContent, err := renderPurchaseReportHTML(data)
	if err != nil {
		return nil, err
	}

	return generatePDFFromHTML(htmlContent)
}

func renderPurchaseReportHTML(data purchaseReportData) (string, error) {
	tmpl, err := template.ParseFiles("templates/report.html")
	if err != nil {
		return "", err
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
