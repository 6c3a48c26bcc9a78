//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

// Build compiles every executable.
func Build() error {
	mg.Deps(BuildValidation)
	fmt.Println("Compilation finished")
	return nil
}

func BuildValidation() error {
	fmt.Println("Building validation executable...")
	return goCmd("build", "-o", "./bin/validation", "./validation")
}

// Test runs the unit tests. HDF5 is linked through cgo, so the tests need
// the same flags as the build.
func Test() error {
	fmt.Println("Running tests...")
	return goCmd("test", "./...")
}

func goCmd(args ...string) error {
	ldflags := os.Getenv("CGO_LDFLAGS")
	cflags := os.Getenv("CGO_CFLAGS")
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", ldflags),
		fmt.Sprintf("CGO_CFLAGS=%s", cflags))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
