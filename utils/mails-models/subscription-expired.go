package mailsmodels

import (
	"fmt"
	"os"

	"tailorpro-backend/utils"
)

func SubscriptionExpired(email string) {
	subject := "Subject: Your Subscription Has Expired \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #ef4444; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Subscription Expired</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your subscription period has ended.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Please make a payment to reactivate your account.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/payment" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Make Payment</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, os.Getenv("FRONTEND_URL"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
