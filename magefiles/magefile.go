//go:build mage

// Package main contains Mage build targets for paperfetch developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "paperfetch"
	cmdPkg  = "./cmd/paperfetch"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, binName), cmdPkg)
}

// Test runs all package tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All vets, tests, and builds.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binDir)
}
