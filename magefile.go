//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary.
var Default = Build

// Build builds the stylet binary with version metadata.
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/styletkit/stylet/internal/version.Version=%s "+
			"-X github.com/styletkit/stylet/internal/version.CommitHash=%s "+
			"-X github.com/styletkit/stylet/internal/version.BuildDate=%s",
		version, commit, time.Now().UTC().Format(time.RFC3339))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/stylet", "./cmd/stylet")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet then tests.
func QA() error {
	mg.Deps(Vet)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
