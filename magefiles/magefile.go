//go:build mage

// Package main contains Mage build targets for file-converter.
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
	binName = "file-converter"
	mainPkg = "."
	appIcon = "internal/ui/assets/file-converter.png"
)

// version is stamped into main.version; override with VERSION=X.Y.Z.
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

func ldflags() string {
	return fmt.Sprintf("-X main.version=%s", version())
}

// Build compiles the desktop binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, mainPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Package builds a native bundle with the fyne tool.
func Package() error {
	mg.Deps(Check)
	return sh.RunV("fyne", "package",
		"--name", "File Converter",
		"--app-id", "com.ytget.file-converter",
		"--app-version", version(),
		"--icon", appIcon,
		"--src", mainPkg,
	)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
