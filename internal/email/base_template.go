package email

import (
	"bytes"
	"html/template"
	"time"
)

// BaseEmailData contains data for the base email wrapper
type BaseEmailData struct {
	Content template.HTML
	Subject string
	Year    int
}

// baseEmailTemplate is the reusable wrapper for all storefront emails
const baseEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: Georgia, 'Times New Roman', serif;
            line-height: 1.6;
            color: #2b2b2b;
            margin: 0;
            padding: 0;
            background-color: #faf8f5;
        }
        .email-wrapper {
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
        }
        .header {
            background-color: #1f1b18;
            padding: 28px 30px;
            text-align: center;
        }
        .brand-name {
            font-size: 24px;
            letter-spacing: 4px;
            text-transform: uppercase;
            color: #d9b878;
            margin: 0;
        }
        .brand-tagline {
            font-size: 12px;
            color: #b8ada0;
            margin: 6px 0 0;
            letter-spacing: 1px;
        }
        .content {
            padding: 30px;
        }
        .item-row {
            border-bottom: 1px solid #eee5d8;
            padding: 12px 0;
        }
        .item-row img {
            width: 64px;
            height: 64px;
            object-fit: cover;
            border-radius: 4px;
            vertical-align: middle;
            margin-right: 12px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            padding-top: 16px;
            text-align: right;
        }
        .button {
            display: inline-block;
            background-color: #1f1b18;
            color: #d9b878 !important;
            text-decoration: none;
            padding: 12px 28px;
            border-radius: 2px;
            letter-spacing: 1px;
            margin: 20px 0;
        }
        .related {
            display: inline-block;
            width: 30%;
            text-align: center;
            vertical-align: top;
            padding: 8px 1%;
        }
        .related img {
            width: 100%;
            max-width: 140px;
            border-radius: 4px;
        }
        .footer {
            background-color: #1f1b18;
            color: #b8ada0;
            text-align: center;
            font-size: 12px;
            padding: 20px 30px;
        }
    </style>
</head>
<body>
    <div class="email-wrapper">
        <div class="header">
            <p class="brand-name">Aveline</p>
            <p class="brand-tagline">Fine Jewellery, Made to Last</p>
        </div>
        <div class="content">
            {{.Content}}
        </div>
        <div class="footer">
            <p>&copy; {{.Year}} Aveline Jewellery. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`

// WrapEmailContent wraps a rendered content section in the base template.
func WrapEmailContent(content, subject string) (string, error) {
	tmpl := template.Must(template.New("base").Parse(baseEmailTemplate))

	var out bytes.Buffer
	err := tmpl.Execute(&out, BaseEmailData{
		Content: template.HTML(content), //nolint:gosec // content is rendered by our own templates
		Subject: subject,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return "", err
	}

	return out.String(), nil
}
