package extractor

import "github.com/yongxin12/Macrohard/internal/domain"

// MockData returns canned extraction output for demo mode and for fallback
// when live analysis fails. Unknown document types get the generic payload.
func MockData(docType domain.DocumentType) map[string]interface{} {
	switch docType {
	case domain.DocTypeI9:
		return map[string]interface{}{
			"employee_name":      "John Doe",
			"address":            "123 Main St, Anytown, USA 12345",
			"ssn":                "XXX-XX-1234",
			"date_of_birth":      "01/01/1980",
			"citizenship_status": "U.S. Citizen",
			"document_title":     "U.S. Passport",
			"document_number":    "123456789",
			"expiration_date":    "01/01/2030",
		}
	case domain.DocTypeScheduleA:
		return map[string]interface{}{
			"applicant_name":           "Jane Smith",
			"disability_type":          "Hearing impairment",
			"job_title":                "Administrative Assistant",
			"reasonable_accommodation": "Sign language interpreter for meetings",
			"certifying_official":      "Dr. Robert Johnson",
			"certification_date":       "01/15/2023",
		}
	case domain.DocTypeTax1040:
		return map[string]interface{}{
			"tax_year":              "2022",
			"taxpayer_name":         "John Doe",
			"filing_status":         "Single",
			"total_income":          "45000",
			"adjusted_gross_income": "42500",
			"deductions":            "12950",
			"taxable_income":        "29550",
			"tax":                   "3300",
			"refund":                "1200",
		}
	case domain.DocTypeJobApplication:
		return map[string]interface{}{
			"applicant_name":    "Jane Smith",
			"position":          "Cashier",
			"phone_number":      "(555) 123-4567",
			"email":             "jane.smith@example.com",
			"education":         "High School Diploma",
			"previous_employer": "ABC Store",
			"work_experience":   "2 years retail",
			"references":        "John Doe, (555) 987-6543",
			"availability":      "Weekdays and weekends",
		}
	default:
		return map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"page_number": 1,
					"text":        "This is a sample document with some generic content.\nIt contains multiple lines of text that could be extracted.\nThis is for demonstration purposes only.",
				},
			},
			"key_value_pairs": map[string]interface{}{
				"name":             "Sample Document",
				"date":             "01/01/2023",
				"reference_number": "REF-12345",
			},
		}
	}
}
