package mailsmodels

import (
	"fmt"
	"os"

	"tailorpro-backend/utils"
)

func TrialExpired(email string) {
	subject := "Subject: Your Free Trial Has Expired \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #f59e0b; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Your Free Trial Has Ended</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your free trial period has ended.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">To continue using our services, please subscribe with &#8358;1500/month.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/payment" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Subscribe Now</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, os.Getenv("FRONTEND_URL"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
