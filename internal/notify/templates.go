package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
)

const emailFrame = `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #faf7f2;">
  <div style="background-color: white; border-radius: 8px; padding: 24px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
    <h2 style="margin: 0 0 16px 0; color: #3b2f2f;">%s</h2>
    %s
    <hr style="margin-top: 32px; border: none; border-top: 1px solid #eee;">
    <p style="color: #999; font-size: 12px; margin-top: 16px;">
      ChefWeb Private Dining<br>
      <span style="color: #ccc;">Sent at %s</span>
    </p>
  </div>
</body>
</html>`

func row(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="margin: 8px 0;"><strong>%s:</strong> %s</p>`, label, html.EscapeString(value))
}

func bookingEmailHTML(b *model.Booking, title, intro, siteURL string) string {
	packageName := b.Package
	if pkg, ok := pricing.LookupPackage(b.Package); ok {
		packageName = pkg.Name
	}

	guests := fmt.Sprintf("%d adults", b.NumAdults)
	if b.NumChildren > 0 {
		guests += fmt.Sprintf(", %d children", b.NumChildren)
	}

	var details strings.Builder
	details.WriteString(row("Booking", b.ID))
	details.WriteString(row("Date", b.EventDate+" at "+b.EventTime))
	details.WriteString(row("Location", b.City+", "+b.ServiceState))
	details.WriteString(row("Package", packageName))
	details.WriteString(row("Guests", guests))
	if len(b.Addons) > 0 {
		details.WriteString(row("Add-ons", strings.Join(b.Addons, ", ")))
	}
	details.WriteString(row("Total", pricing.FormatUSD(pricing.FromCents(b.TotalCents))))
	if b.TravelFeeStatus == pricing.TravelFeeTBD {
		details.WriteString(row("Travel fee", "to be confirmed"))
	}

	body := fmt.Sprintf(`
    <p style="margin: 16px 0;">Hi %s,</p>
    <p style="margin: 16px 0;">%s</p>
    <div style="background: #f8f9fa; padding: 16px; border-radius: 8px; margin: 16px 0; border-left: 4px solid #c0392b;">%s</div>
    <a href="%s/booking/%s" style="display: inline-block; background: #c0392b; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 16px; font-weight: 500;">View booking</a>`,
		html.EscapeString(b.ContactName),
		html.EscapeString(intro),
		details.String(),
		html.EscapeString(siteURL),
		html.EscapeString(b.ID),
	)

	return fmt.Sprintf(emailFrame, html.EscapeString(title), body, time.Now().Format("Jan 2, 2006 3:04 PM"))
}

func inquiryEmailHTML(inq *model.Inquiry, siteURL string) string {
	var details strings.Builder
	details.WriteString(row("From", inq.Name))
	details.WriteString(row("Email", inq.Email))
	details.WriteString(row("Phone", inq.Phone))
	details.WriteString(row("Subject", inq.Subject))

	body := fmt.Sprintf(`
    <div style="background: #f8f9fa; padding: 16px; border-radius: 8px; margin: 16px 0;">%s</div>
    <p style="margin: 16px 0; white-space: pre-wrap;">%s</p>
    <a href="%s/admin" style="display: inline-block; background: #3b2f2f; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Open dashboard</a>`,
		details.String(),
		html.EscapeString(inq.Message),
		html.EscapeString(siteURL),
	)

	return fmt.Sprintf(emailFrame, "New inquiry", body, time.Now().Format("Jan 2, 2006 3:04 PM"))
}
