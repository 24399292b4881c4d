package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "43BDL4550D/00", FormatModelID(" 43bdl 4550d/00 "))
	assert.Equal(t, "FZ4A2434035142", FormatSerialNumber("fz4a 2434035142"))
	assert.Equal(t, "153030", FormatAssetTag("AT-153 030"))
	assert.Equal(t, "L1234", FormatSiteCode(" l1234"))
}

func TestValidateModelID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"43BDL4550D/00", ""},
		{"43bdl4550d/00", ""},
		{"55BDL3050Q", ""},
		{"", "Model ID is required"},
		{"   ", "Model ID is required"},
		{"43BDL4550D/0", "Invalid format (e.g., 43BDL3650Q/00)"},
		{"4BDL4550D/00", "Invalid format (e.g., 43BDL3650Q/00)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateModelID(tt.input))
		})
	}
}

func TestValidateModelID_AfterFormatting(t *testing.T) {
	assert.Empty(t, ValidateModelID(FormatModelID("43bdl4550d/00")))
}

func TestValidateSerialNumber(t *testing.T) {
	assert.Empty(t, ValidateSerialNumber("FZ4A2434035142"))
	assert.Empty(t, ValidateSerialNumber("au0a1234567890"))
	assert.Equal(t, "Serial Number is required", ValidateSerialNumber(""))
	assert.Equal(t, "Invalid format (e.g., FZ4A2434035142)", ValidateSerialNumber("FZ4A243403514"))
	assert.Equal(t, "Invalid format (e.g., FZ4A2434035142)", ValidateSerialNumber("FZ4A24340351AB"))
}

func TestValidateAssetTag(t *testing.T) {
	assert.Empty(t, ValidateAssetTag("153030"))
	assert.Equal(t, "Must be 6 digits", ValidateAssetTag("15303"))
	assert.Equal(t, "Must be 6 digits", ValidateAssetTag("1530301"))
	assert.Equal(t, "Asset Tag is required", ValidateAssetTag(""))
}

func TestValidateSiteCode(t *testing.T) {
	assert.Empty(t, ValidateSiteCode("C1234"))
	assert.Empty(t, ValidateSiteCode("c1234"))
	assert.Equal(t, "Invalid format (e.g., L1234)", ValidateSiteCode("CC123"))
	assert.Equal(t, "Site code is required", ValidateSiteCode(""))
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, ValidateEmail("engineer@example.com"))
	assert.Equal(t, "Invalid email format", ValidateEmail("engineer@example"))
	assert.Equal(t, "Email is required", ValidateEmail(" "))
}

func TestValidateAllFields(t *testing.T) {
	result := ValidateAllFields(map[string]string{
		FieldModelID:      "43BDL4550D/00",
		FieldSerialNumber: "FZ4A2434035142",
		FieldAssetTag:     "15303",
	}, EquipmentValidators)

	assert.False(t, result.IsValid)
	assert.Equal(t, map[string]string{FieldAssetTag: "Must be 6 digits"}, result.Errors)

	result = ValidateAllFields(map[string]string{
		"name":    "Coral Leeds",
		"code":    "C1234",
		"brand":   "Coral",
		"address": "1 High St",
	}, SiteValidators)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}
