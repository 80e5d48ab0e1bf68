// Snapshot commands manage point-in-time copies of figure state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/pkg/types"
)

var snapshotLabel string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save, list, restore, and delete figure snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <figure>",
	Short: "Save the figure's current grid and style as a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		snapshots, err := backend.GetTable(types.TableSnapshots)
		if err != nil {
			return err
		}

		snap := fig.Snapshot(snapshotLabel)
		id, err := snapshots.Set("", snap)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(snap)
		}
		fmt.Printf("Saved snapshot of %q: %s\n", fig.Name, id)
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <figure>",
	Short: "List snapshots of a figure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		snapshots, err := backend.GetTable(types.TableSnapshots)
		if err != nil {
			return err
		}

		results, err := snapshots.Fetch(types.Filter{"figure_id": fig.FigureID})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(results)
		}

		if len(results) == 0 {
			fmt.Printf("No snapshots of %q\n", fig.Name)
			return nil
		}
		for _, r := range results {
			snap, ok := r.(*types.Snapshot)
			if !ok {
				continue
			}
			label := snap.Label
			if label == "" {
				label = "(no label)"
			}
			fmt.Printf("%s  %dx%d  %s  %s\n",
				snap.SnapshotID, snap.Grid.Rows, snap.Grid.Cols,
				snap.CreatedAt.Format("2006-01-02 15:04"), label)
		}
		return nil
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <figure> <snapshot-id>",
	Short: "Restore a figure from one of its snapshots",
	Long: `Snapshot restore replaces the figure's grid and style with the
snapshot's state. The snapshot must belong to the figure. The snapshot itself
is kept.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		snapshots, err := backend.GetTable(types.TableSnapshots)
		if err != nil {
			return err
		}

		raw, err := snapshots.Get(args[1])
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", args[1], err)
		}
		snap, ok := raw.(*types.Snapshot)
		if !ok {
			return types.ErrInvalidData
		}

		if err := fig.Restore(snap); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Restored %q from snapshot %s\n", fig.Name, snap.SnapshotID)
		return nil
	},
}

var snapshotRmCmd = &cobra.Command{
	Use:   "rm <snapshot-id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		snapshots, err := backend.GetTable(types.TableSnapshots)
		if err != nil {
			return err
		}

		if err := snapshots.Delete(args[0]); err != nil {
			return fmt.Errorf("snapshot %s: %w", args[0], err)
		}

		fmt.Println("Deleted snapshot", args[0])
		return nil
	},
}

func init() {
	snapshotSaveCmd.Flags().StringVar(&snapshotLabel, "label", "", "optional snapshot label")

	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotRestoreCmd)
	snapshotCmd.AddCommand(snapshotRmCmd)
}
