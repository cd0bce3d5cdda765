package mailsmodels

import (
	"fmt"

	"tailorpro-backend/utils"
)

func FeedbackResponse(email string, subject string, original string, response string) {
	mailSubject := fmt.Sprintf("Subject: Response to your feedback: %s \r\n", subject)
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #10b981; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Feedback Response</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your feedback: <strong>%s</strong></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">%s</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;"><strong>Our response:</strong></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">%s</td>
				</tr>
			</tbody>
		</table>
	</div>
`, subject, original, response)

	message := []byte(mailSubject + mime + body)

	utils.SendMail(email, message)
}
