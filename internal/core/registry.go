package core

import "regexp"

// registry.go defines the canonical field catalog.
//
// The catalog is a flat, ordered table of plain records rather than a type
// hierarchy: matching logic is ordinary data lookup over an immutable slice.
// Order matters — FindBestMatch breaks confidence ties by keeping the first
// field encountered in catalog order.

// Canonical field keys. Keys are stable across display-name changes; every
// other layer (persistence, sync, UI) refers to fields by key.
const (
	FieldName            = "name"
	FieldDeviceName      = "deviceName"
	FieldAssetTag        = "assetTag"
	FieldSerialNumber    = "serialNumber"
	FieldModelID         = "modelId"
	FieldManufacturer    = "manufacturer"
	FieldProductNumber   = "productNumber"
	FieldDeviceType      = "deviceType"
	FieldStatus          = "status"
	FieldLocation        = "location"
	FieldAssignedTo      = "assignedTo"
	FieldDepartment      = "department"
	FieldIPAddress       = "ipAddress"
	FieldMACAddress      = "macAddress"
	FieldOperatingSystem = "operatingSystem"
	FieldPurchaseDate    = "purchaseDate"
	FieldWarrantyEnd     = "warrantyEnd"
	FieldNotes           = "notes"
)

// catalog is the ordered canonical field table. Aliases are compared after
// normalization, so punctuation and casing variants need not be listed
// separately ("Serial-Number" and "serial number" are the same alias).
var catalog = []CanonicalField{
	{
		Key:         FieldName,
		DisplayName: "Name",
		Aliases:     []string{"name", "item name", "title", "label"},
		Category:    CategoryIdentification,
		Description: "Free-form display name for the row",
	},
	{
		Key:         FieldDeviceName,
		DisplayName: "Device Name",
		Aliases:     []string{"device name", "hostname", "computer name", "machine name", "host"},
		Category:    CategoryIdentification,
		Description: "Network or inventory name of the device",
	},
	{
		Key:         FieldAssetTag,
		DisplayName: "Asset Tag",
		Aliases:     []string{"asset tag", "asset number", "asset id", "asset", "tag number", "tag", "inventory number", "inventory tag"},
		Category:    CategoryIdentification,
		Description: "Company-issued identification tag (one letter, six digits)",
	},
	{
		Key:         FieldSerialNumber,
		DisplayName: "Serial Number",
		Aliases:     []string{"serial number", "serial no", "serial", "sn", "s n", "service tag", "serial num"},
		Category:    CategoryIdentification,
		Description: "Manufacturer serial number",
	},
	{
		Key:         FieldModelID,
		DisplayName: "Model",
		Aliases:     []string{"model", "model id", "model number", "model name", "device model"},
		Category:    CategoryIdentification,
		Description: "Manufacturer model identifier",
	},
	{
		Key:         FieldManufacturer,
		DisplayName: "Manufacturer",
		Aliases:     []string{"manufacturer", "make", "vendor", "brand", "oem"},
		Category:    CategoryIdentification,
		Description: "Device manufacturer or brand",
	},
	{
		Key:         FieldProductNumber,
		DisplayName: "Product Number",
		Aliases:     []string{"product number", "product no", "product id", "part number", "part no", "pn", "sku"},
		Category:    CategoryIdentification,
		Description: "Manufacturer product or part number",
	},
	{
		Key:         FieldDeviceType,
		DisplayName: "Type",
		Aliases:     []string{"type", "device type", "category", "asset type", "equipment type", "class"},
		Category:    CategoryTechnical,
		Description: "Device category (laptop, monitor, dock, ...)",
	},
	{
		Key:         FieldStatus,
		DisplayName: "Status",
		Aliases:     []string{"status", "state", "condition", "lifecycle", "deployment status"},
		Category:    CategoryStatus,
		Description: "Lifecycle state of the asset",
	},
	{
		Key:         FieldLocation,
		DisplayName: "Location",
		Aliases:     []string{"location", "site", "office", "building", "room", "desk", "place"},
		Category:    CategoryLocation,
		Description: "Physical location of the asset",
	},
	{
		Key:         FieldAssignedTo,
		DisplayName: "Assigned To",
		Aliases:     []string{"assigned to", "assignee", "owner", "user", "employee", "checked out to", "holder"},
		Category:    CategoryTracking,
		Description: "Person the asset is assigned to",
	},
	{
		Key:         FieldDepartment,
		DisplayName: "Department",
		Aliases:     []string{"department", "dept", "team", "cost center", "division"},
		Category:    CategoryTracking,
		Description: "Owning department or cost center",
	},
	{
		Key:         FieldIPAddress,
		DisplayName: "IP Address",
		Aliases:     []string{"ip address", "ip", "ipv4", "ip addr"},
		Category:    CategoryTechnical,
		Description: "Last known IP address",
	},
	{
		Key:         FieldMACAddress,
		DisplayName: "MAC Address",
		Aliases:     []string{"mac address", "mac", "hardware address", "physical address"},
		Category:    CategoryTechnical,
		Description: "Network hardware address",
	},
	{
		Key:         FieldOperatingSystem,
		DisplayName: "Operating System",
		Aliases:     []string{"operating system", "os", "os version", "platform"},
		Category:    CategoryTechnical,
		Description: "Installed operating system",
	},
	{
		Key:         FieldPurchaseDate,
		DisplayName: "Purchase Date",
		Aliases:     []string{"purchase date", "purchased", "date purchased", "acquisition date", "bought"},
		Category:    CategoryAdmin,
		Description: "Date the asset was acquired",
	},
	{
		Key:         FieldWarrantyEnd,
		DisplayName: "Warranty End",
		Aliases:     []string{"warranty end", "warranty expiration", "warranty expiry", "warranty until", "warranty"},
		Category:    CategoryAdmin,
		Description: "Warranty expiration date",
	},
	{
		Key:         FieldNotes,
		DisplayName: "Notes",
		Aliases:     []string{"notes", "comments", "remarks", "description", "memo"},
		Category:    CategoryAdmin,
		Description: "Free-form notes",
	},
}

// validators hold the strict value-format rules. These exact patterns are
// load-bearing: persisted mapping behavior depends on them, so any change
// here invalidates previously detected sheets.
var validators = map[string]*regexp.Regexp{
	FieldAssetTag:      regexp.MustCompile(`^[A-Za-z]\d{6}$`),
	FieldSerialNumber:  regexp.MustCompile(`^[A-Za-z0-9-]{5,}$`),
	FieldProductNumber: regexp.MustCompile(`^[A-Za-z0-9-]{3,}$`),
}

// strongFields lists fields whose validators are strict enough to corroborate
// header detection via data look-ahead. productNumber keeps its validator for
// value checking but is excluded: three alphanumerics match too much prose.
var strongFields = map[string]bool{
	FieldAssetTag:     true,
	FieldSerialNumber: true,
}

// fieldsByKey is derived from catalog for O(1) key lookup.
var fieldsByKey = func() map[string]CanonicalField {
	byKey := make(map[string]CanonicalField, len(catalog))
	for _, f := range catalog {
		if _, dup := byKey[f.Key]; dup {
			panic("duplicate canonical field key: " + f.Key)
		}
		byKey[f.Key] = f
	}
	return byKey
}()

// Fields returns the full catalog in registry order.
// The returned slice is a copy; callers may not mutate catalog entries.
func Fields() []CanonicalField {
	out := make([]CanonicalField, len(catalog))
	copy(out, catalog)
	return out
}

// FieldByKey returns the catalog entry for a key.
func FieldByKey(key string) (CanonicalField, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// IsStrongField reports whether a field participates in validated look-ahead
// during header detection. A field is strong iff it is in the strong set and
// has a registered validator; the set and the validator table are kept in
// sync by tests.
func IsStrongField(key string) bool {
	_, hasValidator := validators[key]
	return strongFields[key] && hasValidator
}

// ValidateValue reports whether a cell value satisfies the strict format rule
// for a field. Fields without a validator accept nothing here: validation is
// only meaningful for strict-format fields.
func ValidateValue(key, value string) bool {
	re, ok := validators[key]
	if !ok {
		return false
	}
	return re.MatchString(value)
}
