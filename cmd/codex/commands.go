package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/describe"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/records"
)

var levels []int

var powerCmd = &cobra.Command{
	Use:   "power <id|name>",
	Short: "Render a power description",
	Args:  cobra.ExactArgs(1),
	RunE: withService(records.KindPower, func(ctx context.Context, cmd *cobra.Command, svc describe.Service, id int64) error {
		out, err := svc.DescribePower(ctx, &describe.DescribePowerInput{PowerID: id})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%d)\n", out.Name, out.Power.ID)
		fmt.Fprintln(w, out.Description)
		printFaults(cmd.ErrOrStderr(), out.Faults)
		return nil
	}),
}

var talentCmd = &cobra.Command{
	Use:   "talent <id|name>",
	Short: "Render the rank descriptions of a talent",
	Args:  cobra.ExactArgs(1),
	RunE: withService(records.KindTalent, func(ctx context.Context, cmd *cobra.Command, svc describe.Service, id int64) error {
		out, err := svc.DescribeTalent(ctx, &describe.DescribeTalentInput{TalentID: id})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%d)\n", out.Name, out.Talent.ID)
		for _, rank := range out.Ranks {
			fmt.Fprintf(w, "Rank %d: %s\n", rank.Rank, rank.Text)
			printFaults(cmd.ErrOrStderr(), rank.Faults)
		}
		return nil
	}),
}

var unitCmd = &cobra.Command{
	Use:   "unit <id|name>",
	Short: "Evaluate unit stats at one or more levels",
	Args:  cobra.ExactArgs(1),
	RunE: withService(records.KindUnit, func(ctx context.Context, cmd *cobra.Command, svc describe.Service, id int64) error {
		out, err := svc.EvaluateUnitStats(ctx, &describe.EvaluateUnitStatsInput{UnitID: id, Levels: levels})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%d)\n", out.Name, out.Unit.ID)
		for _, level := range out.Levels {
			fmt.Fprintf(w, "Level %d\n", level.Level)
			for _, stat := range level.Stats {
				fmt.Fprintf(w, "  %s: %d\n", stat.Stat, stat.Value)
			}
		}
		if len(out.Modifiers) > 0 {
			fmt.Fprintln(w, "Modifiers")
			for _, line := range out.Modifiers {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
		return nil
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search <power|talent|unit> <fragment>",
	Short: "List records whose name contains a fragment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := records.Kind(args[0])
		ctx := cmd.Context()

		svc, cleanup, err := newService(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		out, err := svc.SearchNames(ctx, &describe.SearchNamesInput{Kind: kind, Fragment: args[1]})
		if err != nil {
			return err
		}
		if len(out.Matches) == 0 {
			return errors.NotFoundf("no %s name contains %q", kind, args[1])
		}

		w := cmd.OutOrStdout()
		for _, m := range out.Matches {
			fmt.Fprintf(w, "%d %s\n", m.ID, m.Name)
		}
		return nil
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <name>",
	Short: "Print the locale table key for a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), locale.Hash(args[0]))
		return nil
	},
}

func init() {
	unitCmd.Flags().IntSliceVar(&levels, "level", []int{1}, "unit level to evaluate (repeatable)")
}

type describeFunc func(ctx context.Context, cmd *cobra.Command, svc describe.Service, id int64) error

// withService builds the service, resolves the argument to record ids and
// runs fn once per id
func withService(kind records.Kind, fn describeFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, cleanup, err := newService(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		ids, err := resolveIDs(ctx, cmd.ErrOrStderr(), svc, kind, args[0])
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := fn(ctx, cmd, svc, id); err != nil {
				return err
			}
		}
		return nil
	}
}

// resolveIDs treats a numeric argument as an id and anything else as a name,
// falling back to the closest name and saying so on w
func resolveIDs(ctx context.Context, w io.Writer, svc describe.Service, kind records.Kind, arg string) ([]int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return []int64{id}, nil
	}

	out, err := svc.FindIDs(ctx, &describe.FindIDsInput{Kind: kind, Name: arg, Closest: true})
	if err != nil {
		return nil, err
	}
	if len(out.IDs) == 0 {
		return nil, errors.NotFoundf("no %s named %q", kind, arg)
	}
	if out.Name != "" && out.Name != arg {
		fmt.Fprintf(w, "no %s named %q, showing %q\n", kind, arg, out.Name)
	}
	return out.IDs, nil
}

func printFaults(w io.Writer, faults []error) {
	for _, fault := range faults {
		fmt.Fprintf(w, "warning: %v\n", fault)
	}
}
