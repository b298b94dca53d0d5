package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/khushi2704rj-sephora/GameForge/internal/charts"
	"github.com/khushi2704rj-sephora/GameForge/internal/client"
	"github.com/khushi2704rj-sephora/GameForge/internal/config"
	"github.com/khushi2704rj-sephora/GameForge/internal/form"
	"github.com/khushi2704rj-sephora/GameForge/internal/format"
	"github.com/khushi2704rj-sephora/GameForge/internal/theory"
	"github.com/khushi2704rj-sephora/GameForge/internal/tui"
)

var (
	configFile string
	serverURL  string
	verbose    bool
	setFlags   []string
	jsonOut    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gameforge",
		Short: "game theory simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			return tui.Run(newClient(settings), charts.Default(), settings)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", defaultConfigPath(), "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "simulation service URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available games",
		RunE:  listGames,
	}

	showCmd := &cobra.Command{
		Use:   "show [game_id]",
		Short: "show a game's description and parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  showGame,
	}

	runCmd := &cobra.Command{
		Use:   "run [game_id]",
		Short: "run a simulation and plot the results",
		Args:  cobra.ExactArgs(1),
		RunE:  runGame,
	}
	runCmd.Flags().StringArrayVar(&setFlags, "set", nil, "override a parameter (name=value, repeatable)")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw result as JSON")

	theoryCmd := &cobra.Command{
		Use:   "theory [game_id]",
		Short: "show a game's theory card",
		Args:  cobra.ExactArgs(1),
		RunE:  showTheory,
	}

	rootCmd.AddCommand(listCmd, showCmd, runCmd, theoryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gameforge.yaml"
	}
	return home + "/.gameforge.yaml"
}

func loadSettings() *config.Settings {
	settings := config.LoadOrDefault(configFile)
	if serverURL != "" {
		settings.ServerURL = serverURL
	}
	if verbose || settings.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return settings
}

func newClient(settings *config.Settings) *client.Client {
	return client.New(settings.ServerURL, settings.Timeout())
}

func listGames(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	games, err := newClient(settings).ListGames(context.Background())
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Println("no games available")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTIER\tSTATUS\tTAGS")
	for _, g := range games {
		status := "available"
		if !g.Available {
			status = "coming soon"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			g.ID, g.Name, g.Category, g.Tier, status, strings.Join(g.Tags, ","))
	}
	return w.Flush()
}

func showGame(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	game, err := newClient(settings).GetGame(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, tier %d)\n\n", game.Name, game.Category, game.Tier)
	fmt.Println(game.LongDescription)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAMETER\tTYPE\tDEFAULT\tRANGE\tDESCRIPTION")
	for _, p := range game.Parameters {
		rng := ""
		if p.Min != nil && p.Max != nil {
			rng = fmt.Sprintf("%g–%g", *p.Min, *p.Max)
		} else if len(p.Options) > 0 {
			rng = strings.Join(p.Options, "|")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Kind, p.DefaultValue().String(), rng, p.Description)
	}
	return w.Flush()
}

func runGame(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	cl := newClient(settings)
	ctx := context.Background()

	game, err := cl.GetGame(ctx, args[0])
	if err != nil {
		return err
	}
	if err := game.Validate(); err != nil {
		return err
	}

	cfg := form.Initialize(game.Parameters)
	for _, pair := range setFlags {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("bad --set value %q, want name=value", pair)
		}
		cfg, err = form.Update(cfg, game.Parameters, name, raw)
		if err != nil {
			return err
		}
	}

	res, err := cl.Run(ctx, game.ID, cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, c := range charts.Default().Resolve(res.GameID)(res) {
		fmt.Println(charts.Render(c, settings.ChartWidth, settings.ChartHeight))
		fmt.Println()
	}

	if len(res.Summary) > 0 {
		keys := make([]string, 0, len(res.Summary))
		for k := range res.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", format.PrettyKey(k), format.Format(k, res.Summary[k]))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	for _, eq := range res.Equilibria {
		fmt.Printf("\n%s", eq.Name)
		if len(eq.Strategies) > 0 {
			fmt.Printf(" (%s)", strings.Join(eq.Strategies, ", "))
		}
		fmt.Println()
		if eq.Description != "" {
			fmt.Printf("  %s\n", eq.Description)
		}
	}
	fmt.Printf("\ncomputed in %.1fms by %s\n", res.Metadata.ComputeTimeMs, res.Metadata.Engine)
	return nil
}

func showTheory(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	game, err := newClient(settings).GetGame(context.Background(), args[0])
	if err != nil {
		return err
	}
	if game.TheoryCard == "" {
		fmt.Println("no theory notes for this game")
		return nil
	}
	fmt.Println(theory.Render(game.TheoryCard))
	return nil
}
