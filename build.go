package main

import (
	"fmt"
	"slices"

	"github.com/bobycv06fpm/news-credibility/dataset"
	"github.com/bobycv06fpm/news-credibility/manager"
	"github.com/bobycv06fpm/news-credibility/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newManager(storagePath string) (*manager.Manager, error) {
	return manager.New(manager.ManagerConfig{
		PathToStorage:   storagePath,
		CacheMaxBytes:   cfg.Storage.CacheMaxBytes,
		ReproducibleIds: cfg.Ids.Reproducible,
		IdSeed:          cfg.Ids.Seed,
		Threads:         cfg.Storage.Threads,
	}, logger)
}

func runBuild(cmd *cobra.Command, args []string) error {

	if len(weights) > 0 {
		cfg.Split.Weights = weights
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if sqlitePath != "" {
		cfg.Output.SQLite = sqlitePath
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	storagePath := cfg.Storage.Path
	if cfg.Output.Dir != "" {
		storagePath = cfg.Output.Dir
	}

	m, err := newManager(storagePath)
	if err != nil {
		return err
	}

	loader := dataset.NewLoader(m, dataset.Options{
		Paths: dataset.Paths{
			Unreliable: cfg.Datasets.Unreliable,
			Credible:   cfg.Datasets.Credible,
			Validation: cfg.Datasets.Validation,
			Leak:       cfg.Datasets.Leak,
		},
		CredibleLimit:      cfg.Datasets.CredibleLimit,
		UnreliableCategory: cfg.Datasets.UnreliableCategory,
		Seed:               &cfg.Split.Seed,
		Partitions:         cfg.Output.Partitions,
	})

	ctx := cmd.Context()

	result, buildErr := loader.Build(ctx, cfg.Split.Weights)
	if buildErr != nil {
		return buildErr
	}

	named := result.Named()
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		stats := named[name].Stats()
		color.Green("%-15s rows=%-8d partitions=%-3d credible=%.3f", name, stats.Rows, stats.Partitions, stats.LabelFraction(1.0))
	}

	for _, warning := range result.Warnings {
		color.Yellow("warning: %s", warning)
	}

	if cfg.Output.Dir != "" {
		written, storeErr := m.Store(names...)
		if storeErr != nil {
			return storeErr
		}
		color.Green("stored %d tables under %s", len(written), storagePath)
	}

	if cfg.Output.SQLite != "" {
		sink, openErr := store.OpenSQLite(cfg.Output.SQLite, logger)
		if openErr != nil {
			return openErr
		}
		defer sink.Close()

		for _, name := range names {
			if err := sink.WriteTable(ctx, name, named[name]); err != nil {
				return fmt.Errorf("sqlite export failed: %w", err)
			}
		}
		color.Green("exported %d tables into %s", len(names), cfg.Output.SQLite)
	}

	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {

	m, err := newManager(cfg.Storage.Path)
	if err != nil {
		return err
	}

	src, loadErr := m.Sources.Load(cmd.Context(), args[0])
	if loadErr != nil {
		return loadErr
	}

	color.Cyan("%s: %d records", src.Path, src.Count())
	fmt.Print(src.Schema.String())

	return nil
}
