//go:build mage

// Package main provides build targets for the quwatro project using Mage.
//
// Usage:
//
//	mage build          Compile quwatro binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Write coverage.out and print per-function coverage
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install quwatro to GOPATH/bin
//	mage stats          Print Go LOC per package
package main

// Default target to run when none is specified.
var Default = Build

// Check runs vet, lint and the full test suite, stopping at the first
// failure.
func Check() error {
	for _, step := range []func() error{Vet, Lint, Test{}.All} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
