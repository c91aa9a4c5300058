package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/coalition/internal/calculator"
	"github.com/mmynk/coalition/internal/config"
	"github.com/mmynk/coalition/internal/report"
	"github.com/mmynk/coalition/internal/simulator"
	"github.com/mmynk/coalition/internal/storage"
	"github.com/mmynk/coalition/pkg/api"
)

// copyToClipboard is a package-level variable to allow mocking in tests.
var copyToClipboard = report.Copy

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func (c *cli) partiesCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "parties",
		Short: "List the parties in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			parties := sim.Filter(filter)
			if len(parties) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No parties match %q\n", filter)
				return nil
			}

			t := newTable("ID", "Party", "Abbr", "Seats", "Selected")
			for _, p := range parties {
				mark := ""
				if sim.IsSelected(p.ID) {
					mark = "✓"
				}
				t.Row(strconv.Itoa(p.ID), p.Name, p.Abbr, strconv.Itoa(p.Seats), mark)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only parties whose name or abbreviation contains this")
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved selection and whether it reaches majority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			printStatus(cmd.OutOrStdout(), sim)
			return nil
		},
	}
}

func printStatus(w io.Writer, sim *simulator.Simulator) {
	ids := sim.Selection()
	label := "none"
	if len(ids) > 0 {
		label = sim.Label(ids)
	}
	st := sim.Status()

	fmt.Fprintf(w, "Selected: %s\n", label)
	fmt.Fprintf(w, "Seats:    %d / %d\n", st.Seats, st.Majority)
	switch st.State {
	case calculator.StateEmpty:
		fmt.Fprintln(w, "Status:   No parties selected")
	case calculator.StateMajority:
		fmt.Fprintln(w, "Status:   ✅ Majority reached")
	default:
		fmt.Fprintf(w, "Status:   ❌ Need %d more seats\n", st.Needed)
	}
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid party id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *cli) selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Change the saved selection",
	}

	// Every id is checked before any is applied.
	each := func(fn func(*simulator.Simulator, *cobra.Command, int) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			for _, id := range ids {
				if !sim.Catalog().Contains(id) {
					return fmt.Errorf("%w: %d", simulator.ErrUnknownParty, id)
				}
			}
			for _, id := range ids {
				if err := fn(sim, cmd, id); err != nil {
					return err
				}
			}
			printStatus(cmd.OutOrStdout(), sim)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>...",
			Short: "Add parties to the selection",
			Args:  cobra.MinimumNArgs(1),
			RunE: each(func(sim *simulator.Simulator, cmd *cobra.Command, id int) error {
				return sim.Select(cmd.Context(), id)
			}),
		},
		&cobra.Command{
			Use:   "remove <id>...",
			Short: "Remove parties from the selection",
			Args:  cobra.MinimumNArgs(1),
			RunE: each(func(sim *simulator.Simulator, cmd *cobra.Command, id int) error {
				return sim.Deselect(cmd.Context(), id)
			}),
		},
		&cobra.Command{
			Use:   "toggle <id>...",
			Short: "Flip parties in or out of the selection",
			Args:  cobra.MinimumNArgs(1),
			RunE: each(func(sim *simulator.Simulator, cmd *cobra.Command, id int) error {
				_, err := sim.Toggle(cmd.Context(), id)
				return err
			}),
		},
		&cobra.Command{
			Use:   "apply <id>...",
			Short: "Replace the selection with exactly these parties",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				sim, closeStore, err := c.openSimulator(cmd.Context())
				if err != nil {
					return err
				}
				defer closeStore()

				if err := sim.Apply(cmd.Context(), ids); err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), sim)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the selection",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				sim, closeStore, err := c.openSimulator(cmd.Context())
				if err != nil {
					return err
				}
				defer closeStore()

				if err := sim.Reset(cmd.Context()); err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), sim)
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) findCmd() *cobra.Command {
	var (
		threshold int
		maxSize   int
		limit     int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "List party combinations that reach a seat threshold",
		Long: `List every combination of at most --max-size parties whose seats reach
--threshold (default: the majority mark), fewest seats first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxSize > config.MaxSearchSize {
				return fmt.Errorf("--max-size must be at most %d", config.MaxSearchSize)
			}
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			found := sim.Combinations(threshold, maxSize)
			if limit > 0 && len(found) > limit {
				found = found[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				combos := make([]api.Combination, len(found))
				for i, f := range found {
					combos[i] = api.Combination{PartyIDs: f.PartyIDs, Seats: f.Seats, Label: sim.Label(f.PartyIDs)}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(combos)
			}

			if len(found) == 0 {
				fmt.Fprintln(out, "No combination reaches the threshold")
				return nil
			}
			t := newTable("#", "Coalition", "Seats", "Parties")
			for i, f := range found {
				t.Row(strconv.Itoa(i+1), sim.Label(f.PartyIDs), strconv.Itoa(f.Seats), strconv.Itoa(f.Size()))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Seats required (default: majority)")
	cmd.Flags().IntVarP(&maxSize, "max-size", "m", 0, "Largest combination considered (default: search.max_size)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many (0: all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var noClipboard bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the analysis of the saved selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			rep, err := sim.Export(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !noClipboard {
				if err := copyToClipboard(rep.Text); err == nil {
					fmt.Fprintf(out, "Analysis copied to clipboard (report %s)\n", rep.ID)
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard unavailable, printing the analysis instead")
			}
			fmt.Fprintln(out, rep.Text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Print the analysis instead of copying it")
	return cmd
}

func (c *cli) reportsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List exported analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			reports, err := sim.Reports(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reports exported yet")
				return nil
			}

			t := newTable("ID", "Created", "Coalition", "Seats", "Status")
			for _, r := range reports {
				label := "none"
				if len(r.PartyIDs) > 0 {
					label = sim.Label(r.PartyIDs)
				}
				state := "minority"
				if r.HasMajority {
					state = "majority"
				}
				created := time.Unix(r.CreatedAt, 0).Format(time.DateTime)
				t.Row(r.ID, created, label, fmt.Sprintf("%d / %d", r.Seats, r.Majority), state)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Show at most this many")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print one exported analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, closeStore, err := c.openSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			rep, err := sim.Report(cmd.Context(), args[0])
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("report %s not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.Text)
			return nil
		},
	})
	return cmd
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
