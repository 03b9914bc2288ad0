package classification

import "fmt"

// Reply templates per category. Each has a single interpolation point for
// the original query. Categories without a template get the generic
// acknowledgment.
var responseTemplates = map[string]string{
	"account_access":  "I understand you're having an account access issue: '%s'. To reset your password, please go to the login page and click 'Forgot Password'. If you're locked out, please contact our support team.",
	"billing":         "This appears to be a billing-related query: '%s'. For billing issues, you can update your payment method in Account Settings or contact our billing department at billing@example.com.",
	"bug_report":      "Thanks for reporting this bug: '%s'. Our development team will investigate this issue. Please provide any additional details that might help us reproduce the problem.",
	"feature_request": "Thank you for your feature request: '%s'. We appreciate your feedback and will consider it for future development.",
	"data":            "I see you're asking about data: '%s'. You can export your data from Account Settings > Privacy > Data Export. For data deletion requests, please contact privacy@example.com.",
	"general_inquiry": "Thank you for your inquiry: '%s'. This is an automated response. A human agent will review your ticket and respond shortly.",
}

const genericTemplate = "Thank you for your query: '%s'. This is an automated response. A human agent will review your ticket and respond shortly."

// Respond renders the templated reply for a classified query. Pure
// transform; the classification travels alongside for the caller to
// surface.
func Respond(query, category string) string {
	template, ok := responseTemplates[category]
	if !ok {
		template = genericTemplate
	}
	return fmt.Sprintf(template, query)
}
