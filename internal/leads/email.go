package leads

import (
	"fmt"
	"html"
	"strings"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
)

// leadEmailBody renders the notification email. Kept as plain string
// building; the template is small enough that html/template buys nothing.
func leadEmailBody(lead *models.Lead) string {
	esc := html.EscapeString

	var b strings.Builder
	b.WriteString("<h2>New event inquiry</h2>")
	b.WriteString("<table cellpadding=\"4\">")
	row := func(label, value string) {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", esc(label), esc(value))
	}

	row("Name", lead.FirstName+" "+lead.LastName)
	row("Email", lead.Email)
	row("Phone", lead.Phone)
	row("Event date", lead.EventDate.Format("2006-01-02"))
	row("Event time", lead.EventTime)
	row("Address", fmt.Sprintf("%s, %s, %s %s", lead.Address.Street, lead.Address.City, lead.Address.State, lead.Address.Zip))
	row("Guests", fmt.Sprintf("%d", lead.Guests))
	if lead.Notes != "" {
		row("Notes", lead.Notes)
	}
	b.WriteString("</table>")

	if len(lead.Items) > 0 {
		b.WriteString("<h3>Requested items</h3><ul>")
		for _, item := range lead.Items {
			fmt.Fprintf(&b, "<li>%s x%d</li>", esc(item.ItemID.String()), item.Qty)
		}
		b.WriteString("</ul>")
	}

	return b.String()
}
