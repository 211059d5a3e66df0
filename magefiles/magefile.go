//go:build mage

// Package main provides build targets for gophdiary using Mage.
//
// Usage:
//
//	mage build     Compile the gophdiary binary to bin/ with build info
//	mage test      Run all tests
//	mage cover     Run tests with a coverage profile
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install gophdiary to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "gophdiary"
	binaryDir  = "bin"
	cmdDir     = "./cmd/gophdiary"
	buildPkg   = "github.com/dmitrijs2005/gophdiary/internal/buildinfo"
	coverFile  = "coverage.out"
)

// ldflags stamps version, date and commit into internal/buildinfo.
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil {
			version = out
		} else {
			version = "dev"
		}
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "N/A"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	flags := []string{
		fmt.Sprintf("-X %s.Version=%s", buildPkg, version),
		fmt.Sprintf("-X %s.Date=%s", buildPkg, date),
		fmt.Sprintf("-X %s.Commit=%s", buildPkg, commit),
	}
	return strings.Join(flags, " ")
}

// Build compiles the gophdiary binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests and writes coverage.out.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := sh.Rm(coverFile); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
