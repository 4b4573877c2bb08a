package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin commands",
	}

	cmd.AddCommand(newAdminWordCmd())
	cmd.AddCommand(newAdminReportCmd())

	return cmd
}

func newAdminWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Word pool management",
	}

	cmd.AddCommand(newAdminWordAddCmd())
	cmd.AddCommand(newAdminWordListCmd())
	cmd.AddCommand(newAdminWordSetActiveCmd())

	return cmd
}

func newAdminWordAddCmd() *cobra.Command {
	var inactive bool

	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active := !inactive
			req := map[string]any{
				"text":   args[0],
				"active": active,
			}
			var result Word

			if err := client.Post("/api/v1/admin/words", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&inactive, "inactive", false, "Add the word as inactive")

	return cmd
}

func newAdminWordListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List words in the pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/admin/words"
			if activeOnly {
				path += "?active=true"
			}

			var result []Word

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only list active words")

	return cmd
}

func newAdminWordSetActiveCmd() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "set-active <word-id>",
		Short: "Activate or deactivate a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"active": active}
			var result Word

			if err := client.Patch(fmt.Sprintf("/api/v1/admin/words/%s", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "Whether the word is active")

	return cmd
}

func newAdminReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting commands",
	}

	cmd.AddCommand(newAdminReportDailyCmd())
	cmd.AddCommand(newAdminReportAccountCmd())

	return cmd
}

func newAdminReportDailyCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily activity report",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/admin/reports/daily"
			if date != "" {
				path += "?date=" + date
			}

			var result DailyReport

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func newAdminReportAccountCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "account <account-id>",
		Short: "Show per-account activity over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/reports/accounts/%s?from=%s&to=%s", args[0], from, to)

			var result AccountReport

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
