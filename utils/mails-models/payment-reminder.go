package mailsmodels

import (
	"fmt"
	"os"
	"time"

	"tailorpro-backend/utils"
)

func PaymentReminder(email string, daysUntilDue int, dueDate time.Time) {
	subject := "Subject: Payment Due Soon - Reminder \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #f59e0b; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Payment Due in %d Days</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your subscription payment of &#8358;1500 is due on %s.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Please make your payment to avoid service interruption.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/payment" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Make Payment</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, daysUntilDue, dueDate.Format("02 Jan 2006"), os.Getenv("FRONTEND_URL"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
