package linker

import (
	"fmt"

	"go.uber.org/zap"

	"fragment-linker/internal/config"
	"fragment-linker/internal/diagnostic"
	"fragment-linker/internal/emit"
	"fragment-linker/internal/naming"
	"fragment-linker/internal/plan"
	"fragment-linker/internal/registry"
	"fragment-linker/internal/schema"
	"fragment-linker/internal/source"
	"fragment-linker/internal/usage"
)

// Linker wires the pipeline components for one configuration.
type Linker struct {
	cfg *config.Config
	log *zap.Logger
}

// New creates a Linker. A nil logger disables logging.
func New(cfg *config.Config, log *zap.Logger) *Linker {
	if log == nil {
		log = zap.NewNop()
	}

	return &Linker{cfg: cfg, log: log}
}

// Result is the outcome of one full run.
type Result struct {
	// Registry is the fragment registry the run was planned against.
	Registry *registry.Registry
	// Files are the rendered per-document manifests.
	Files []emit.GeneratedFile
	// Diagnostics collects findings from the run (dangling spreads).
	Diagnostics diagnostic.Diagnostics
}

// Run executes the pipeline: schema, documents, registry, then one planning
// pass per document. Registry build failures abort the run with no partial
// output.
func (l *Linker) Run() (*Result, error) {
	s, err := schema.LoadFile(l.cfg.Schema)
	if err != nil {
		return nil, err
	}

	documents, err := source.LoadGlobs(l.cfg.Documents)
	if err != nil {
		return nil, err
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents matched %v", l.cfg.Documents)
	}

	l.log.Debug("documents loaded", zap.Int("count", len(documents)))

	paths := source.FilePaths{Extension: l.cfg.GeneratedExtension}

	builder := registry.NewBuilder(s, naming.New(l.cfg.Naming), paths, l.cfg.EmitsDocumentValue())

	reg, err := builder.Build(documents)
	if err != nil {
		return nil, fmt.Errorf("failed to build fragment registry: %w", err)
	}

	l.log.Info("fragment registry built", zap.Int("fragments", reg.Len()))

	result := &Result{Registry: reg}

	planner := plan.NewPlanner(reg, &emit.StatementGenerator{})

	for _, doc := range documents {
		outputPath := paths.Generate(doc.Location)

		depths := usage.Resolve(doc.AST, reg)
		planned := planner.Plan(outputPath, depths)

		result.Diagnostics.Merge(CheckDanglingSpreads(doc, reg, l.cfg.Strict))

		manifest := &emit.Manifest{
			Source:     doc.Location,
			OutputPath: outputPath,
			Imports:    planned.FragmentImportStatements,
		}

		for _, ef := range planned.ExternalFragments {
			manifest.Fragments = append(manifest.Fragments, emit.FragmentRef{
				Name:   ef.Name,
				OnType: ef.OnType,
				Depth:  ef.Depth,
			})
		}

		result.Files = append(result.Files, emit.GeneratedFile{
			Filename: outputPath,
			Content:  manifest.Render(),
		})

		l.log.Debug("planned output file",
			zap.String("file", outputPath),
			zap.Int("externalFragments", len(planned.ExternalFragments)),
			zap.Int("imports", len(planned.FragmentImportStatements)))
	}

	for _, w := range result.Diagnostics.Warnings {
		l.log.Warn(w.Message, zap.String("document", w.Document), zap.String("fragment", w.Fragment))
	}

	if result.Diagnostics.HasErrors() {
		for _, e := range result.Diagnostics.Errors {
			l.log.Error(e.Message, zap.String("document", e.Document), zap.String("fragment", e.Fragment))
		}

		return nil, result.Diagnostics.Error()
	}

	return result, nil
}

// Write writes the run's files under the configured base output directory.
func (l *Linker) Write(result *Result) error {
	return emit.WriteFiles(result.Files, l.cfg.BaseOutputDir)
}
