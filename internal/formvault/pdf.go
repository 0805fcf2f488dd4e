package formvault

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// i9FieldNames maps stored JSON keys to the AcroForm field names of the
// I-9 template. immigration_status is handled separately: the template
// models it as the CB_1..CB_4 checkbox group.
var i9FieldNames = map[string]string{
	"last_name":                      "Last Name (Family Name)",
	"first_name":                     "First Name Given Name",
	"middle_initial":                 "Employee Middle Initial (if any)",
	"other_last_names_used":          "Employee Other Last Names Used (if any)",
	"ssn":                            "US Social Security Number",
	"date_of_birth":                  "Date of Birth mmddyyyy",
	"address_street_number_and_name": "Address Street Number and Name",
	"apt_number":                     "Apt Number (if any)",
	"city":                           "City or Town",
	"state":                          "State",
	"zip":                            "ZIP Code",
	"email":                          "Employees E-mail Address",
	"phone":                          "Telephone Number",
	"PR_number":                      "3 A lawful permanent resident Enter USCIS or ANumber",
	"exp_date":                       "Exp Date mmddyyyy",
	"A_number":                       "USCIS ANumber",
	"I_94":                           "Form I94 Admission Number",
	"passport_number_country":        "Foreign Passport Number and Country of IssuanceRow1",
}

// i9StatusCheckboxes is the immigration status checkbox group: CB_1 citizen,
// CB_2 noncitizen national, CB_3 lawful permanent resident, CB_4 alien
// authorized to work.
var i9StatusCheckboxes = []string{"CB_1", "CB_2", "CB_3", "CB_4"}

var sf256FieldNames = map[string]string{
	"name":          "Name Last First Middle Initial",
	"date_of_birth": "Date of Birth MMYYYY",
	"ssn":           "Social Security Number",
	"code":          "Code",
}

var templateFiles = map[domain.FormType]string{
	domain.FormTypeI9:    "i-9_template.pdf",
	domain.FormTypeSF256: "sf256.pdf",
}

// Filler fills PDF form templates with stored form values.
type Filler struct {
	templateDir string
	conf        *model.Configuration
}

// NewFiller creates a Filler reading templates from templateDir.
func NewFiller(templateDir string) *Filler {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Filler{templateDir: templateDir, conf: conf}
}

// pdfcpu form-fill JSON payload.
type fillField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fillCheckbox struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type fillForm struct {
	TextFields []fillField    `json:"textfield,omitempty"`
	Checkboxes []fillCheckbox `json:"checkbox,omitempty"`
}

type fillPayload struct {
	Forms []fillForm `json:"forms"`
}

// Fill renders the template for formType with the given values and returns
// the filled PDF.
func (f *Filler) Fill(formType domain.FormType, values map[string]string) ([]byte, error) {
	name, ok := templateFiles[formType]
	if !ok {
		return nil, domain.ErrUnsupportedFormType
	}

	var form fillForm
	switch formType {
	case domain.FormTypeI9:
		form = buildI9Form(values)
	case domain.FormTypeSF256:
		form = buildForm(sf256FieldNames, values)
	}

	payload, err := json.Marshal(fillPayload{Forms: []fillForm{form}})
	if err != nil {
		return nil, fmt.Errorf("marshaling fill payload: %w", err)
	}

	template, err := os.Open(filepath.Join(f.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", name, err)
	}
	defer template.Close()

	var out bytes.Buffer
	if err := api.FillForm(template, bytes.NewReader(payload), &out, f.conf); err != nil {
		return nil, fmt.Errorf("filling %s: %w", name, err)
	}
	return out.Bytes(), nil
}

// OutputName returns the download filename for a filled form.
func (f *Filler) OutputName(formType domain.FormType) string {
	name := templateFiles[formType]
	return strings.TrimSuffix(name, ".pdf") + "_filled.pdf"
}

func buildI9Form(values map[string]string) fillForm {
	form := buildForm(i9FieldNames, values)
	if status, ok := values["immigration_status"]; ok {
		for _, cb := range i9StatusCheckboxes {
			checked := strings.TrimPrefix(cb, "CB_") == status
			form.Checkboxes = append(form.Checkboxes, fillCheckbox{Name: cb, Value: checked})
		}
	}
	return form
}

func buildForm(fieldNames map[string]string, values map[string]string) fillForm {
	var form fillForm
	for key, fieldName := range fieldNames {
		if v, ok := values[key]; ok {
			form.TextFields = append(form.TextFields, fillField{Name: fieldName, Value: v})
		}
	}
	return form
}
