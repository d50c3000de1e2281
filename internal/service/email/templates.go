package email

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <div style="background: #f59e0b; color: white; padding: 24px; text-align: center;">
        <h1 style="margin: 0;">Welcome to SolarTech</h1>
    </div>
    <div style="padding: 24px; border: 1px solid #e5e7eb; border-top: none;">
        <p>Hello {{.UserName}},</p>
        <p>Your account <strong>{{.Email}}</strong> is ready. From the dashboard you can
        track your projects through the sales pipeline, follow daily production of your
        installed systems and keep an eye on operational alerts.</p>
        <p>The SolarTech team</p>
    </div>
</body>
</html>
`

const alertNotificationTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <div style="background: #dc2626; color: white; padding: 24px; text-align: center;">
        <h1 style="margin: 0;">Operational Alert</h1>
    </div>
    <div style="padding: 24px; border: 1px solid #e5e7eb; border-top: none;">
        <p><strong>Project:</strong> {{.ProjectTitle}}</p>
        {{if .ClientName}}<p><strong>Client:</strong> {{.ClientName}}</p>{{end}}
        <p><strong>Type:</strong> {{.AlertType}}</p>
        <p><strong>Severity:</strong> {{.Severity}}</p>
        <p><strong>Raised at:</strong> {{.CreatedAt}}</p>
        <div style="background: #fef2f2; padding: 16px; margin-top: 16px;">
            {{.Message}}
        </div>
    </div>
</body>
</html>
`

const projectApprovedTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <div style="background: #16a34a; color: white; padding: 24px; text-align: center;">
        <h1 style="margin: 0;">Project Approved</h1>
    </div>
    <div style="padding: 24px; border: 1px solid #e5e7eb; border-top: none;">
        <p>Hello {{.ClientName}},</p>
        <p>Your project <strong>{{.ProjectTitle}}</strong> was approved. Our team will
        contact you shortly to schedule the installation.</p>
        {{if .DepositBRL}}<p>A deposit of <strong>R$ {{.DepositBRL}}</strong> will be
        requested to confirm the schedule.</p>{{end}}
        <p>The SolarTech team</p>
    </div>
</body>
</html>
`
