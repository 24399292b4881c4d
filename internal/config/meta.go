package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		if value := generateExampleValue(field.Type, jsonName); value != nil {
			example[jsonName] = value
		}
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "onboarding_completed" || fieldName == "sound"
		case reflect.Int:
			switch fieldName {
			case "admin_session_hours":
				return DefaultAdminSessionHours
			case "list_retries":
				return DefaultListRetries
			case "list_retry_delay_ms":
				return DefaultListRetryDelayMs
			case "max_log_files":
				return DefaultMaxLogFiles
			}
			return 10
		}
		// admin_auth_expiry is written by login, not by hand
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "admin_password_hash":
			return nil
		case "export_dir":
			return "~/.fieldscan/exports"
		case "fallback_configuration":
			return "random"
		case "probe_url":
			return "https://example.com/ping"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return []string{"site_code", "position", "model_id", "serial_number", "asset_tag"}
		}
		if t.Elem() == reflect.TypeOf(User{}) {
			return []User{{Email: "engineer@example.com", Name: "Field Engineer", Role: "installer"}}
		}
	}

	return nil
}
