// Package file stores joltage settings in a TOML file, by default
// ~/.joltage/config.toml. ConfigStore implements driven.ConfigStore.
package file
