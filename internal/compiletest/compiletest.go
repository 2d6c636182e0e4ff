// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package compiletest verifies the gating contract of the flagged types: the
// only assertion possible about an illegal instantiation is that it does not
// type-check. Scenarios are txtar archives containing Go sources that use the
// public API; each is materialized as a throwaway module and type-checked,
// and the resulting diagnostics are matched against the archive's
// expectations.
package compiletest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rogpeppe/go-internal/txtar"
	"golang.org/x/tools/go/packages"
)

const modulePath = "gopkg.microglot.org/flagged.go"

// Diagnostic is a single type-checker complaint.
type Diagnostic struct {
	Pos     string
	Message string
}

func (self Diagnostic) String() string {
	return fmt.Sprintf("%s -- %s", self.Pos, self.Message)
}

// Scenario is one compilation case. Wants lists substrings that must each
// match at least one diagnostic; an empty Wants means the scenario must
// compile cleanly.
type Scenario struct {
	Name  string
	Wants []string
	files []txtar.File
}

// Load reads a scenario from a txtar archive. Lines in the archive comment of
// the form "want: <substring>" become expectations; the archive files must be
// Go sources only, because Check generates the module definition itself.
func Load(path string) (*Scenario, error) {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	scenario := &Scenario{
		Name:  strings.TrimSuffix(filepath.Base(path), ".txtar"),
		files: archive.Files,
	}
	for _, line := range strings.Split(string(archive.Comment), "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "want:")
		if ok {
			scenario.Wants = append(scenario.Wants, strings.TrimSpace(rest))
		}
	}
	if len(scenario.files) == 0 {
		return nil, fmt.Errorf("scenario %s has no source files", scenario.Name)
	}
	return scenario, nil
}

// Check writes the scenario into dir as a module that depends on the locally
// checked-out flagged.go and type-checks it, returning every diagnostic the
// loader reports.
func (self *Scenario) Check(dir string) ([]Diagnostic, error) {
	root, err := repositoryRoot()
	if err != nil {
		return nil, err
	}
	gomod := fmt.Sprintf(
		"module compiletest.invalid/%s\n\ngo 1.21\n\nrequire %s v0.0.0\n\nreplace %s => %s\n",
		self.Name, modulePath, modulePath, root,
	)
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		return nil, fmt.Errorf("writing go.mod: %w", err)
	}
	for _, file := range self.files {
		name := filepath.Join(dir, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			return nil, fmt.Errorf("materializing %s: %w", file.Name, err)
		}
		if err := os.WriteFile(name, file.Data, 0o644); err != nil {
			return nil, fmt.Errorf("materializing %s: %w", file.Name, err)
		}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: dir,
		Env: append(os.Environ(), "GOFLAGS=-mod=mod", "GOWORK=off"),
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", self.Name, err)
	}
	var diagnostics []Diagnostic
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			diagnostics = append(diagnostics, Diagnostic{Pos: e.Pos, Message: e.Msg})
		}
	})
	return diagnostics, nil
}

// Verify matches diagnostics against the scenario's expectations.
func (self *Scenario) Verify(diagnostics []Diagnostic) error {
	if len(self.Wants) == 0 {
		if len(diagnostics) != 0 {
			return fmt.Errorf("scenario %s must compile cleanly, got %v", self.Name, diagnostics)
		}
		return nil
	}
	if len(diagnostics) == 0 {
		return fmt.Errorf("scenario %s compiled cleanly, expected type errors", self.Name)
	}
	for _, want := range self.Wants {
		matched := false
		for _, diagnostic := range diagnostics {
			if strings.Contains(diagnostic.Message, want) {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("scenario %s: no diagnostic matching %q in %v", self.Name, want, diagnostics)
		}
	}
	return nil
}

func repositoryRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("locating repository root")
	}
	return filepath.Abs(filepath.Join(filepath.Dir(file), "..", ".."))
}
