package cli

import (
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/views"
)

func printMenu(out io.Writer, items []domain.MenuItem) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tFEATURED")
	for _, item := range items {
		featured := ""
		if item.Featured {
			featured = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\n", item.ID, item.Name, item.CategoryName(), item.Price, featured)
	}
	w.Flush()
}

func printHours(out io.Writer, days []domain.RestaurantHours) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range days {
		if d.Closed {
			fmt.Fprintf(w, "%s\tClosed\n", d.DayOfWeek)
			continue
		}
		fmt.Fprintf(w, "%s\t%s - %s\n", d.DayOfWeek, d.OpenTime, d.CloseTime)
	}
	w.Flush()
}

func newPublicCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "public",
		Short: "Read the public site",
	}

	var category, search string
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewMenuView(a.client())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if category != "" && !hasCategory(view.CategoryNames(), category) {
				return fmt.Errorf("unknown category %q (choose from %s)", category, strings.Join(view.CategoryNames(), ", "))
			}
			printMenu(cmd.OutOrStdout(), view.Display(category, search))
			return nil
		},
	}
	menuCmd.Flags().StringVar(&category, "category", "", "only this category")
	menuCmd.Flags().StringVar(&search, "search", "", "match name, description or category")

	hoursCmd := &cobra.Command{
		Use:   "hours",
		Short: "Show opening hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.client().PublicHours(cmd.Context())
			if err != nil {
				log.Printf("ERROR: %s: %v", views.MsgHoursLoad, err)
				return views.MsgHoursLoad
			}
			printHours(cmd.OutOrStdout(), days)
			return nil
		},
	}

	homeCmd := &cobra.Command{
		Use:   "home",
		Short: "Show the home page: hero image, featured items and hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := views.NewHomeView(a.client())
			err := home.Load(cmd.Context())
			out := cmd.OutOrStdout()
			if home.Settings != nil && home.Settings.HeroImageURL != nil {
				fmt.Fprintf(out, "Hero image: %s\n\n", *home.Settings.HeroImageURL)
			}
			if len(home.Featured) > 0 {
				fmt.Fprintln(out, "Featured")
				printMenu(out, home.Featured)
				fmt.Fprintln(out)
			}
			if len(home.Hours) > 0 {
				fmt.Fprintln(out, "Hours")
				printHours(out, home.Hours)
			}
			return err
		},
	}

	cmd.AddCommand(menuCmd, hoursCmd, homeCmd)
	return cmd
}

func hasCategory(names []string, category string) bool {
	for _, name := range names {
		if strings.EqualFold(name, category) {
			return true
		}
	}
	return false
}

func newContactCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Get in touch with the restaurant",
	}

	var name, email, message string
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to the restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := views.NewContactForm(a.client())
			form.Name, form.Email, form.Message = name, email, message
			if err := form.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Thanks! Your message has been sent.")
			return nil
		},
	}
	sendCmd.Flags().StringVar(&name, "name", "", "your name")
	sendCmd.Flags().StringVar(&email, "email", "", "your email address")
	sendCmd.Flags().StringVar(&message, "message", "", "the message")

	cmd.AddCommand(sendCmd)
	return cmd
}
