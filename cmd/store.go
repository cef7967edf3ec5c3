package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/typomatch/internal/docstore"
	"github.com/huangsam/typomatch/schema"
	"github.com/spf13/cobra"
)

// storeCmd manages the document store.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the score, weight and status documents",
	Long: `Manage the documents holding comfort scores, weights and statuses.

Documents live in the configured --backend. The file backend keeps one JSON file
per document; SQL backends keep one row per document.`,
}

// storeInitCmd seeds the default documents.
var storeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default documents that are missing",
	Long: `Write the default score document of every registered typology, plus the
weight and status documents. Existing documents are left untouched.

Examples:
  typomatch store init
  typomatch store init --backend sqlite --db-connect ./typomatch.db`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		written, err := docstore.Seed(store, scoreSources(registry)...)
		if err != nil {
			fatal("Failed to seed documents", err)
		}
		if len(written) == 0 {
			cmd.Println("All documents already exist")
			return
		}
		for _, name := range written {
			cmd.Printf("Seeded %s\n", name)
		}
	},
}

// storeStatusCmd shows backend details.
var storeStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show document store status",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.GetStatus()
		if err != nil {
			fatal("Failed to get store status", err)
		}
		docstore.PrintStoreStatus(os.Stdout, status)
	},
}

// storeClearCmd deletes every document.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every document in the store",
	Long: `Delete every document in the configured backend. Run 'typomatch store init'
afterwards to restore the defaults.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		n, err := docstore.Clear(store)
		if err != nil {
			fatal("Failed to clear store", err)
		}
		cmd.Printf("Deleted %d documents\n", n)
	},
}

// storeMigrateCmd runs the SQL schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the document table of a SQL backend",
	Long: `Apply or roll back the document table migrations of a SQL backend.

Examples:
  typomatch store migrate --backend postgresql --db-connect "postgres://u:p@localhost:5432/typomatch"
  typomatch store migrate --backend sqlite --db-connect ./typomatch.db --target-version 0`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The store is not opened here; NewSQLStore would create the table itself.
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		if cfg.Backend == schema.FileBackend || cfg.Backend == schema.MemoryBackend {
			fatal("Nothing to migrate", fmt.Errorf("%w: backend %s has no schema", schema.ErrInvalidInput, cfg.Backend))
		}
		target, _ := cmd.Flags().GetInt("target-version")
		result, err := docstore.Migrate(cfg.Backend, cfg.StoreLocation(), target)
		if err != nil {
			fatal("Migration failed", err)
		}
		cmd.Println(result.String())
	},
}
