package cmd

import (
	"os"
	"path/filepath"

	"github.com/seasonhq/scorecard/cmd/scoremerge/app"
	"github.com/seasonhq/scorecard/internal/registry"
	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/errors"
	"github.com/seasonhq/scorecard/pkg/labels"
	"github.com/seasonhq/scorecard/pkg/logging"
	"github.com/seasonhq/scorecard/pkg/merge"
)

// loadSources reads the scorecard files named on the command line. The
// source name shown in conflict reports is the file's base name, and the
// argument order is the upload order the merge tie-breaks on.
func loadSources(paths []string) ([]merge.Source, error) {
	sources := make([]merge.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		doc, err := document.Decode(data)
		if err != nil {
			return nil, err
		}
		sources = append(sources, merge.Source{
			Name:     filepath.Base(path),
			Document: doc,
		})
	}
	return sources, nil
}

// runMerge loads sources, builds the merger from config, and merges.
func runMerge(config *app.Config, paths []string) (*merge.Result, error) {
	policy, err := merge.ParsePolicy(config.Policy)
	if err != nil {
		return nil, err
	}
	sources, err := loadSources(paths)
	if err != nil {
		return nil, err
	}
	merger, err := merge.New(merge.WithPolicy(policy))
	if err != nil {
		return nil, err
	}
	return merger.Merge(sources), nil
}

// loadRegistry loads the optional question-configuration CSV. A missing
// flag means no registry; conflict labels then degrade to derived text.
func loadRegistry(config *app.Config) labels.Registry {
	if config.Questions == "" {
		return nil
	}
	questions, err := registry.LoadFile(config.Questions)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("path", config.Questions).
			Msg("could not load question registry; using derived labels")
		return nil
	}
	return questions
}

// writeDocument serializes the document in the configured format, to the
// output file or stdout.
func writeDocument(doc *document.Mapping, format, output string) error {
	data, err := document.Encode(doc, document.Format(format))
	if err != nil {
		return err
	}
	if output == "" || output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.WrapIO("write", output, err)
	}
	return nil
}
