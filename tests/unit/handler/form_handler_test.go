package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/handler"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/mocks"
)

func TestFormHandler_InformationInsert_Created(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	mockForms.On("InformationInsert", mock.Anything, mock.MatchedBy(func(in service.FormInsertInput) bool {
		return in.SSN == "123-45-6789" && in.FormType == domain.FormTypeI9
	})).Return(true, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"ssn":       "123-45-6789",
		"form_type": "I-9",
		"form_info": map[string]string{"first_name": "John", "last_name": "Doe"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/forms/information-insert", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.InformationInsert(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "I-9 Form Saved successfully.", data["message"])
}

func TestFormHandler_InformationInsert_Updated(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	mockForms.On("InformationInsert", mock.Anything, mock.AnythingOfType("service.FormInsertInput")).
		Return(false, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"ssn":       "123-45-6789",
		"form_type": "self_identification_of_disability",
		"form_info": map[string]string{"name": "Doe John"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/forms/information-insert", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.InformationInsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFormHandler_InformationInsert_UnsupportedType(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	mockForms.On("InformationInsert", mock.Anything, mock.AnythingOfType("service.FormInsertInput")).
		Return(false, domain.ErrUnsupportedFormType)

	body, _ := json.Marshal(map[string]interface{}{
		"ssn":       "123-45-6789",
		"form_type": "W-2",
		"form_info": map[string]string{"wages": "50000"},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/forms/information-insert", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.InformationInsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FORM_TYPE", resp.Error.Code)
}

func TestFormHandler_ContentConfirmation_Success(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	info := map[string]string{"first_name": "John", "last_name": "Doe"}
	mockForms.On("ContentConfirmation", mock.Anything, "123-45-6789", domain.FormTypeI9).
		Return(info, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/forms/content-confirmation?ssn=123-45-6789&form_type=I-9", nil)

	h.ContentConfirmation(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "I-9", data["form_type"])
	formInfo := data["form_info"].(map[string]interface{})
	assert.Equal(t, "John", formInfo["first_name"])
}

func TestFormHandler_ContentConfirmation_NotFound(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	mockForms.On("ContentConfirmation", mock.Anything, "999-99-9999", domain.FormTypeI9).
		Return(nil, domain.ErrFormNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/forms/content-confirmation?ssn=999-99-9999&form_type=I-9", nil)

	h.ContentConfirmation(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FORM_NOT_FOUND", resp.Error.Code)
}

func TestFormHandler_DocumentFill_ReturnsPDF(t *testing.T) {
	mockForms := new(mocks.MockFormService)
	h := handler.NewFormHandler(mockForms)

	pdf := []byte("%PDF-1.7 filled")
	mockForms.On("DocumentFill", mock.Anything, "123-45-6789", domain.FormTypeI9).
		Return(pdf, "i-9_template_filled.pdf", nil)

	body, _ := json.Marshal(map[string]string{
		"ssn":       "123-45-6789",
		"form_type": "I-9",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/forms/document-fill", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.DocumentFill(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "i-9_template_filled.pdf")
	assert.Equal(t, pdf, w.Body.Bytes())
}
