package mailsmodels

import (
	"fmt"
	"os"

	"tailorpro-backend/utils"
)

func welcomeMessage(firstName string, verificationToken string, trialDays int) []byte {
	subject := "Subject: Welcome to TailorPro \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #10b981; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Welcome %s!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Thank you for signing up. You have a %d-day free trial period.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">After your trial ends, a monthly subscription of &#8358;1500 will apply.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/verify-email?token=%s" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Verify my email</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, firstName, trialDays, os.Getenv("FRONTEND_URL"), verificationToken)

	return []byte(subject + mime + body)
}

func Welcome(email string, firstName string, verificationToken string, trialDays int) {
	utils.SendMail(email, welcomeMessage(firstName, verificationToken, trialDays))
}
