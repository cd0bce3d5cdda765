package mailsmodels

import (
	"fmt"

	"tailorpro-backend/models"
	"tailorpro-backend/utils"
)

func EventReminder(email string, event models.CalendarEvent) {
	subject := fmt.Sprintf("Subject: Reminder: %s Tomorrow \r\n", event.Title)
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	extraRows := ""
	if event.Description != "" {
		extraRows += fmt.Sprintf(`<tr><td style="text-align:center; padding-bottom: 10px;">Description: %s</td></tr>`, event.Description)
	}
	if event.ClientName != "" {
		extraRows += fmt.Sprintf(`<tr><td style="text-align:center; padding-bottom: 10px;">Client: %s</td></tr>`, event.ClientName)
	}

	body := fmt.Sprintf(`
	<div style="background-color: #10b981; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Event Reminder</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 10px;">You have an event scheduled for tomorrow:</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 10px;"><strong>%s</strong></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 10px;">Date: %s</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 10px;">Type: %s</td>
				</tr>
				%s
			</tbody>
		</table>
	</div>
`, event.Title, event.StartDate.Format("02 Jan 2006"), event.Type, extraRows)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
