package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/engine"
	"github.com/abhisek/adaptiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptiq",
	Short: "Client-side adaptive learning engine",
	Long: "Adaptiq models a learner from behavioral events and produces " +
		"personalized lesson recommendations, quiz evaluation, and progress analytics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIQ_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides ADAPTIQ_USER env var, default \"default\")")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a content catalog JSON file (default: bundled catalog)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner id from --user, ADAPTIQ_USER, or the
// shared default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("ADAPTIQ_USER"); u != "" {
		return u
	}
	return "default"
}

// loadRegistry builds the content registry from --catalog or the
// bundled catalog.
func loadRegistry(cmd *cobra.Command) (*catalog.Registry, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		c, err := catalog.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("load bundled catalog: %w", err)
		}
		return catalog.BuildRegistry(c), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := catalog.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.BuildRegistry(c), nil
}

// openEngine opens the store, builds the registry, and initializes the
// engine for the resolved user. The returned cleanup closes the store.
func openEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	events, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("init event repo: %w", err)
	}
	reg, err := loadRegistry(cmd)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	eng := engine.New(reg, engine.WithRepos(events, st.SnapshotRepo()))
	if err := eng.Initialize(cmd.Context(), resolveUser(cmd)); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("initialize engine: %w", err)
	}
	return eng, func() { st.Close() }, nil
}
