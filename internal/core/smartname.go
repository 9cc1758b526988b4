package core

import "strings"

// smartname.go synthesizes a display name for a data row from whatever
// mapped structured fields are present, for rows whose identity label is
// missing in the source sheet.

// UnknownDeviceName is the placeholder returned when no mapped field yields
// any usable identity.
const UnknownDeviceName = "Unknown Device"

// GenerateSmartName builds a human-readable identity string for one data row
// given fieldKey -> column mappings.
//
// Model plus serial is the canonical identity format for the domain's
// primary entity type and always wins: "{model} - {serial}". Otherwise the
// name is composed from model, manufacturer, product number (only when it
// differs from the model), type, and serial number (only when no model is
// present). When nothing composes, a lone asset tag yields "Asset {tag}",
// then any literal name field is used, then the fixed placeholder.
func GenerateSmartName(row []string, mappings map[string]int) string {
	values := make(map[string]string, len(mappings))
	for key, col := range mappings {
		if col < 0 || col >= len(row) {
			continue
		}
		if v := CleanCell(row[col]); v != "" {
			values[key] = v
		}
	}

	model := values[FieldModelID]
	serial := values[FieldSerialNumber]
	if model != "" && serial != "" {
		return model + " - " + serial
	}

	var parts []string
	if model != "" {
		parts = append(parts, model)
	}
	if v := values[FieldManufacturer]; v != "" {
		parts = append(parts, v)
	}
	if v := values[FieldProductNumber]; v != "" && v != model {
		parts = append(parts, v)
	}
	if v := values[FieldDeviceType]; v != "" {
		parts = append(parts, v)
	}
	if model == "" && serial != "" {
		parts = append(parts, serial)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	if tag := values[FieldAssetTag]; tag != "" {
		return "Asset " + tag
	}

	for _, key := range []string{FieldName, FieldDeviceName} {
		if v := values[key]; v != "" {
			return v
		}
	}

	return UnknownDeviceName
}
