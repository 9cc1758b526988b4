// Package core provides the field-identity resolution engine for spreadsheet
// imports.
//
// This package is the heart of sheetsense, containing all domain logic
// independent of any transport or storage layer. It can be used by web
// handlers, CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Canonical Fields: A static catalog of stable field identities
//     (asset tag, serial number, model, ...) with their accepted aliases
//     and, for strict-format fields, value validators.
//   - Matching: Tiered resolution of a raw header string to a canonical
//     field (exact display name, exact alias, fuzzy alias).
//   - Header Detection: Scoring of candidate rows in a bounded scan window,
//     corroborated by looking ahead at actual data values.
//   - Auto-Mapping: Assignment of requested field keys to columns, with
//     unmatched and ambiguous outcomes surfaced rather than guessed.
//   - Smart Names: Synthesis of a display name for a data row from whatever
//     mapped fields are present.
//
// # Purity
//
// Every operation in this package is a synchronous pure function over its
// inputs. Nothing is cached internally, nothing blocks, and no operation
// returns an error: degenerate input (empty grids, unknown keys, all-empty
// cells) produces documented default values instead. Concurrent calls over
// the same or different grids are always safe.
//
// # Typical flow
//
//	grid, _ := core.ParseGrid(csvBytes)
//	header := core.DetectHeaderRow(grid, core.DetectOptions{})
//	result := core.AutoMapFields(keys, grid[header], 0, core.DefaultMapConfidence)
//	name := core.GenerateSmartName(dataRow, result.MappedColumns())
//
// Callers that process a sheet repeatedly can carry a [SheetCache] between
// [ResolveSheet] calls; the cache is owned entirely by the caller and must
// be discarded whenever the source grid or requested fields change.
package core
