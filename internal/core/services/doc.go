// Package services implements the driving port interfaces.
//
// JoltageService opens inputs through the driven SourceFactory and runs
// the bank pipeline from internal/joltage; SettingsService maps
// AppSettings onto ConfigStore keys. Neither depends on a concrete adapter.
package services
