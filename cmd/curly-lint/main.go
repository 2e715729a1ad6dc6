package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/templatekit/go-curly/pkg/manifest"
)

func main() {
	manifestPath := flag.String("manifest", "curly.yaml", "presenter manifest path")
	presenterName := flag.String("presenter", "", "presenter to lint against (prompted when the manifest declares several)")
	flag.Parse()

	man, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	decl, err := selectPresenter(man, *presenterName)
	if err != nil {
		log.Fatalf("Failed to select presenter: %v", err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths, err = expandGlobs(man.Templates)
		if err != nil {
			log.Fatalf("Failed to expand manifest template globs: %v", err)
		}
	}
	if len(paths) == 0 {
		log.Fatal("No template files to lint; pass paths or declare templates in the manifest")
	}

	failed := false
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}
		for _, name := range decl.Lint(string(data)) {
			failed = true
			fmt.Printf("%s: unknown reference {{%s}} for presenter %s\n", path, name, decl.Name)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func selectPresenter(man *manifest.Manifest, name string) (manifest.Presenter, error) {
	if name != "" {
		decl, ok := man.Find(name)
		if !ok {
			return manifest.Presenter{}, fmt.Errorf("presenter %q not declared in manifest", name)
		}
		return decl, nil
	}

	switch len(man.Presenters) {
	case 0:
		return manifest.Presenter{}, fmt.Errorf("manifest declares no presenters")
	case 1:
		return man.Presenters[0], nil
	}

	names := make([]string, 0, len(man.Presenters))
	for _, p := range man.Presenters {
		names = append(names, p.Name)
	}
	var picked string
	prompt := &survey.Select{
		Message: "Presenter to lint against:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return manifest.Presenter{}, err
	}
	decl, _ := man.Find(picked)
	return decl, nil
}

func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}
