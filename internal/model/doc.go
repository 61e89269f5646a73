// Package model defines the poe.ninja overview payloads as typed records.
//
// Conventions:
//   - Optional wire fields are pointers (or nil slices); nil means the service
//     did not report a value. Nothing in this package substitutes defaults.
//   - Values are in chaos orbs unless the field name says otherwise.
//   - Records are read-only once decoded.
package model
