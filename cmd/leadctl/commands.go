package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/infra/database"
	"github.com/xavierca1/leadflow/internal/usecase"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import leads from a CSV/XLSX file or bulk text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		text, _ := cmd.Flags().GetString("text")
		if len(args) == 0 && text == "" {
			return fmt.Errorf("a file or --text is required")
		}

		st, snapshots, err := openState(ctx)
		if err != nil {
			return err
		}
		defer snapshots.Close()

		input := usecase.ImportLeadsInput{Text: text}
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			input.Filename = filepath.Base(args[0])
			input.File = f
		}

		out, err := usecase.NewImportLeadsUseCase(st, logger).Execute(ctx, input)
		if err != nil {
			return err
		}
		if err := snapshots.Save(ctx, st.Snapshot()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d leads\n", out.Imported)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, snapshots, err := openState(cmd.Context())
		if err != nil {
			return err
		}
		defer snapshots.Close()

		s := st.Stats()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "total leads\t%d\n", s.TotalLeads)
		fmt.Fprintf(w, "today\t%d\t(%+.1f%% vs yesterday: %d)\n", s.TodayLeads, s.TodayChangePct, s.YesterdayLeads)
		fmt.Fprintf(w, "messages today\t%d\n", s.TodayMessages)
		fmt.Fprintf(w, "clients\t%d\t(%.1f%% conversion)\n", s.ClientCount, s.ConversionRate)
		for _, p := range entity.Platforms {
			fmt.Fprintf(w, "%s\t%d\t(%.1f%%)\n", p, s.PlatformCount(p), s.PlatformShare[p])
		}
		return w.Flush()
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print the per-day analytics log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, snapshots, err := openState(cmd.Context())
		if err != nil {
			return err
		}
		defer snapshots.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tLEADS\tMESSAGES")
		for _, d := range st.DailyAnalytics() {
			fmt.Fprintf(w, "%s\t%d\t%d\n", d.Date, d.LeadsCollected, d.MessagesSent)
		}
		return w.Flush()
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List message profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, snapshots, err := openState(cmd.Context())
		if err != nil {
			return err
		}
		defer snapshots.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTONE")
		for _, p := range st.ListMessageProfiles() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Tone)
		}
		return w.Flush()
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a message profile for a lead or client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, snapshots, err := openState(ctx)
		if err != nil {
			return err
		}
		defer snapshots.Close()

		profile, _ := cmd.Flags().GetString("profile")
		leadID, _ := cmd.Flags().GetString("lead")
		clientID, _ := cmd.Flags().GetString("client")
		highlight, _ := cmd.Flags().GetString("highlight")

		// profiles are addressed by name as well, the seeded ids change per run
		for _, p := range st.ListMessageProfiles() {
			if strings.EqualFold(p.Name, profile) {
				profile = p.ID
				break
			}
		}

		out, err := usecase.NewGenerateMessageUseCase(st, st, st, logger).Execute(ctx, usecase.GenerateMessageInput{
			ProfileID: profile,
			LeadID:    leadID,
			ClientID:  clientID,
			Highlight: highlight,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Message)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the remote mirror tables in DATABASE_URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.CreateTables(cmd.Context(), db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
		return nil
	},
}
