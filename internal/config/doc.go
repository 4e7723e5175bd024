// Package config defines the YAML generator configuration: schema and
// document locations, output layout, plugin capability declarations, document
// representation mode and naming conventions.
package config
