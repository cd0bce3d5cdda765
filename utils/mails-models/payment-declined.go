package mailsmodels

import (
	"fmt"
	"os"

	"tailorpro-backend/utils"
)

func PaymentDeclined(email string, amount int, reason string) {
	subject := "Subject: Payment Declined - Action Required \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	reasonRow := ""
	if reason != "" {
		reasonRow = fmt.Sprintf(`<tr><td style="text-align:center; padding-bottom: 30px;"><strong>Reason:</strong> %s</td></tr>`, reason)
	}

	body := fmt.Sprintf(`
	<div style="background-color: #ef4444; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Payment Declined</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your payment of &#8358;%d has been declined.</td>
				</tr>
				%s
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Please upload a valid payment receipt to continue using the service.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/payment" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Upload New Payment</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, amount, reasonRow, os.Getenv("FRONTEND_URL"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
