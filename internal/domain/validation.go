package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// Field patterns for equipment and site identifiers
var (
	ModelIDPattern      = regexp.MustCompile(`^\d{2}[A-Z]{3}\d{4}[A-Z](/\d{2})?$`)
	SerialNumberPattern = regexp.MustCompile(`^[A-Z0-9]{4}\d{10}$`)
	AssetTagPattern     = regexp.MustCompile(`^\d{6}$`)
	SiteCodePattern     = regexp.MustCompile(`^[A-Z]\d{4}$`)
	EmailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validator returns "" when value is valid, else a message for the user
type Validator func(value string) string

// Field names used by the equipment validator set
const (
	FieldAssetTag     = "assetTag"
	FieldModelID      = "modelId"
	FieldSerialNumber = "serialNumber"
)

func stripSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// FormatModelID removes whitespace and uppercases
func FormatModelID(value string) string {
	return strings.ToUpper(stripSpaces(value))
}

// FormatSerialNumber removes whitespace and uppercases
func FormatSerialNumber(value string) string {
	return strings.ToUpper(stripSpaces(value))
}

// FormatSiteCode removes whitespace and uppercases
func FormatSiteCode(value string) string {
	return strings.ToUpper(stripSpaces(value))
}

// FormatAssetTag keeps only the digits
func FormatAssetTag(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// ValidateModelID checks a model id such as 43BDL4550D/00
func ValidateModelID(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Model ID is required"
	}
	if !ModelIDPattern.MatchString(FormatModelID(value)) {
		return "Invalid format (e.g., 43BDL3650Q/00)"
	}
	return ""
}

// ValidateSerialNumber checks a serial such as FZ4A2434035142
func ValidateSerialNumber(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Serial Number is required"
	}
	if !SerialNumberPattern.MatchString(FormatSerialNumber(value)) {
		return "Invalid format (e.g., FZ4A2434035142)"
	}
	return ""
}

// ValidateAssetTag checks a six digit asset tag
func ValidateAssetTag(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Asset Tag is required"
	}
	if !AssetTagPattern.MatchString(FormatAssetTag(value)) {
		return "Must be 6 digits"
	}
	return ""
}

// ValidateSiteCode checks a site code such as L1234
func ValidateSiteCode(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Site code is required"
	}
	if !SiteCodePattern.MatchString(FormatSiteCode(value)) {
		return "Invalid format (e.g., L1234)"
	}
	return ""
}

// ValidateEmail performs a loose address check
func ValidateEmail(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Email is required"
	}
	if !EmailPattern.MatchString(value) {
		return "Invalid email format"
	}
	return ""
}

// Required returns a validator that only rejects blank values
func Required(message string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// ValidationResult holds per-field messages
type ValidationResult struct {
	Errors  map[string]string
	IsValid bool
}

// ValidateAllFields applies each validator to the field of the same name
func ValidateAllFields(data map[string]string, validators map[string]Validator) ValidationResult {
	errs := make(map[string]string)
	for field, validate := range validators {
		if msg := validate(data[field]); msg != "" {
			errs[field] = msg
		}
	}
	return ValidationResult{Errors: errs, IsValid: len(errs) == 0}
}

// EquipmentValidators validates captured identifiers
var EquipmentValidators = map[string]Validator{
	FieldModelID:      ValidateModelID,
	FieldSerialNumber: ValidateSerialNumber,
	FieldAssetTag:     ValidateAssetTag,
}

// SiteValidators validates the editable site form
var SiteValidators = map[string]Validator{
	"name":    Required("Site name is required"),
	"code":    ValidateSiteCode,
	"brand":   Required("Brand is required"),
	"address": Required("Address is required"),
}
