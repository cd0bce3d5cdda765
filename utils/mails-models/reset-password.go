package mailsmodels

import (
	"fmt"
	"os"

	"tailorpro-backend/utils"
)

func ResetPassword(email string, resetToken string) {
	subject := "Subject: Password Reset Request \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #10b981; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Password Reset</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">You requested a password reset. The link below is valid for 10 minutes.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s/reset-password?token=%s" style="padding: 10px 20px; background: #10b981; color: white; text-decoration: none; border-radius: 5px;">Reset my password</a>
					</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">If you did not request a reset, you can ignore this email.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, os.Getenv("FRONTEND_URL"), resetToken)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
