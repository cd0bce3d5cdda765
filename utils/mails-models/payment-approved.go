package mailsmodels

import (
	"fmt"
	"time"

	"tailorpro-backend/utils"
)

func PaymentApproved(email string, amount int, periodEnd time.Time) {
	subject := "Subject: Payment Approved - Subscription Active \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #10b981; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Payment Approved!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your payment of &#8358;%d has been approved.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your subscription is now active until: <strong>%s</strong></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your next payment will be due on: <strong>%s</strong></td>
				</tr>
			</tbody>
		</table>
	</div>
`, amount, periodEnd.Format("02 Jan 2006"), periodEnd.Format("02 Jan 2006"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
