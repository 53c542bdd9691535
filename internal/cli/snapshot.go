// filepath: internal/cli/snapshot.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipehub/internal/logging"
	"recipehub/internal/repository"
	"recipehub/internal/services"
)

// snapshotCmd groups the offline snapshot operations. They run against the
// configured database without starting the HTTP server.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Snapshot tools",
	Long:  `Export the store to the snapshot document or restore it from one, without starting the server.`,
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole store to the snapshot document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnapshotService(func(svc services.SnapshotService) error {
			path, err := svc.ExportToFile()
			if err != nil {
				return err
			}
			logging.Log.Infof("Store exported to %s", path)
			return nil
		})
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the store with the snapshot document's contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnapshotService(func(svc services.SnapshotService) error {
			return svc.Import()
		})
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
}

func withSnapshotService(fn func(services.SnapshotService) error) error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}

	return fn(services.NewSnapshotService(repo, cfg))
}
