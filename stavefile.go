//go:build stave

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
	"c": Clean,
}

// All runs the complete build pipeline: lint, test, and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles the textsim-eval binary with version information.
func Build() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/textsim-eval", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("textsim-eval is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/textsim-eval", "./cmd/textsim-eval")
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// TestShort runs tests in short mode (skips long-running tests).
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-short", "-race", "./...")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	artifacts := []string{
		"bin/",
		"textsim-eval",
		"LSTM-temperature-vs-chrF.png",
		"LSTM-temperature-vs-wordF.png",
	}
	for _, a := range artifacts {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binaries to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	dst := bin + "/textsim-eval"
	if runtime.GOOS == "windows" {
		dst += ".exe"
	}
	if err := sh.Copy(dst, "bin/textsim-eval"); err != nil {
		return fmt.Errorf("installing textsim-eval: %w", err)
	}
	if st.Verbose() {
		fmt.Printf("Installed textsim-eval to %s\n", dst)
	}
	return nil
}

// Eval namespace for evaluation targets.
type Eval st.Namespace

// evalArgs points the evaluator at TEXTSIM_DATA when set. The default layout
// expects to run from the evaluation directory next to data/, GPT-2/ and LSTM/.
func evalArgs(args ...string) []string {
	root := os.Getenv("TEXTSIM_DATA")
	if root == "" {
		return args
	}
	join := func(p string) string { return filepath.Join(root, p) }
	return append(args,
		"--sweep-reference", join("data/preprocessed_trump_test_data_filtered_for_LSTM"),
		"--sweep-template", join("LSTM/test-outputs/trump-for-different-temperatures/output-{setting}.txt"),
		"--domain", "Trump="+join("data/preprocessed_trump_test_data_filtered_for_LSTM")+","+join("GPT-2/trump_output")+","+join("LSTM/test-outputs/LSTM_trump_test_output"),
		"--domain", "News="+join("data/test_news_data_filtered_for_LSTM")+","+join("GPT-2/news_output")+","+join("LSTM/test-outputs/LSTM_news_test_output"),
	)
}

// Run runs the full evaluation: sweep charts, then both domain comparisons.
func (Eval) Run() error {
	st.Deps(Build)
	return sh.RunV("./bin/textsim-eval", evalArgs()...)
}

// Sweep runs only the temperature sweep and writes the charts.
func (Eval) Sweep() error {
	st.Deps(Build)
	return sh.RunV("./bin/textsim-eval", evalArgs("sweep")...)
}

// Compare runs only the domain comparisons.
func (Eval) Compare() error {
	st.Deps(Build)
	return sh.RunV("./bin/textsim-eval", evalArgs("compare")...)
}

// CI runs the full CI pipeline (lint, test, build).
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}

// Check runs quick validation (vet, lint, short tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage generates a coverage report.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

