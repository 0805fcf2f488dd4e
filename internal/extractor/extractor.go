// Package extractor turns raw document-analysis results into the structured
// field data stored on a processed document. Each document type has its own
// extraction rules; unknown types fall back to generic text extraction.
package extractor

import (
	"regexp"
	"strings"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// i9Patterns are the labeled fields an I-9 Employment Eligibility
// Verification form carries, matched against the document's full text. Each
// pattern allows up to 50 characters of layout noise between the label and
// the value.
var i9Patterns = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"last_name", regexp.MustCompile(`Last Name.{0,50}?([A-Za-z\- ]+)`)},
	{"first_name", regexp.MustCompile(`First Name.{0,50}?([A-Za-z\- ]+)`)},
	{"middle_initial", regexp.MustCompile(`Middle Initial.{0,50}?([A-Za-z])`)},
	{"address", regexp.MustCompile(`Address.{0,50}?([A-Za-z0-9\- ,\.]+)`)},
	{"apt_number", regexp.MustCompile(`Apt\. Number.{0,50}?([A-Za-z0-9\- ]+)`)},
	{"city", regexp.MustCompile(`City.{0,50}?([A-Za-z\- ]+)`)},
	{"state", regexp.MustCompile(`State.{0,50}?([A-Z]{2})`)},
	{"zip_code", regexp.MustCompile(`ZIP Code.{0,50}?(\d{5})`)},
	{"ssn", regexp.MustCompile(`Social Security Number.{0,50}?(\d{3}-\d{2}-\d{4})`)},
	{"email", regexp.MustCompile(`E-mail Address.{0,50}?([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)},
	{"phone", regexp.MustCompile(`Telephone Number.{0,50}?(\(\d{3}\) \d{3}-\d{4}|\d{3}-\d{3}-\d{4})`)},
}

// Extract runs the extraction rules for the given document type over an
// analysis result. Unknown document types are treated as generic.
func Extract(docType domain.DocumentType, result *domain.AnalyzeResult) map[string]interface{} {
	switch docType {
	case domain.DocTypeI9:
		return extractI9(result)
	case domain.DocTypeScheduleA, domain.DocTypeTax1040, domain.DocTypeJobApplication:
		return extractKeyValues(result)
	default:
		return extractGeneric(result)
	}
}

// extractI9 pulls the labeled I-9 fields out of the full text, then folds in
// any key-value pairs and tables the analyzer recognized. A key-value pair
// whose normalized key collides with a regex field overwrites it.
func extractI9(result *domain.AnalyzeResult) map[string]interface{} {
	fields := map[string]string{}
	detected := 0

	text := result.Text()
	for _, fp := range i9Patterns {
		if m := fp.Pattern.FindStringSubmatch(text); m != nil {
			fields[fp.Name] = strings.TrimSpace(m[1])
			detected++
		}
	}

	for _, kv := range result.KeyValuePairs {
		key := normalizeKey(kv.Key)
		value := strings.TrimSpace(kv.Value)
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
		detected++
	}

	var tables [][]domain.TableCell
	for _, table := range result.Tables {
		tables = append(tables, table.Cells)
	}

	return map[string]interface{}{
		"document_type":   "I-9 Form",
		"fields":          fields,
		"fields_detected": detected,
		"tables":          tables,
	}
}

// extractKeyValues flattens the analyzer's key-value pairs into a map with
// normalized keys. Used for Schedule A forms, 1040 tax forms and job
// applications, which have no dedicated field patterns.
func extractKeyValues(result *domain.AnalyzeResult) map[string]interface{} {
	out := map[string]interface{}{}
	for _, kv := range result.KeyValuePairs {
		key := normalizeKey(kv.Key)
		value := strings.TrimSpace(kv.Value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// extractGeneric returns the per-page text plus any key-value pairs.
func extractGeneric(result *domain.AnalyzeResult) map[string]interface{} {
	var content []map[string]interface{}
	for _, page := range result.Pages {
		content = append(content, map[string]interface{}{
			"page_number": page.PageNumber,
			"text":        strings.Join(page.Lines, "\n") + "\n",
		})
	}

	pairs := map[string]interface{}{}
	for _, kv := range result.KeyValuePairs {
		key := normalizeKey(kv.Key)
		value := strings.TrimSpace(kv.Value)
		if key == "" || value == "" {
			continue
		}
		pairs[key] = value
	}

	return map[string]interface{}{
		"content":         content,
		"key_value_pairs": pairs,
	}
}

// normalizeKey lowercases a recognized field label and replaces spaces with
// underscores, so "Last Name" and "last name" land on the same key.
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "_"))
}
