//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build compiles the excel-translate binary.
func Build() error {
	fmt.Println("Building excel-translate...")
	return sh.RunV("go", "build", "-o", "excel-translate", "./cmd/excel-translate")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "./cmd/excel-translate")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("excel-translate")
}
