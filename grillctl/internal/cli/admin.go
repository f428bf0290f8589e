package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mikes-grill/grillctl/internal/domain"
	"mikes-grill/grillctl/internal/session"
	"mikes-grill/grillctl/internal/views"
)

func idArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// requireLogin stops admin commands before any request when no session is stored.
func requireLogin(a *app) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, err := session.Guard(a.store())
		return err
	}
}

func newMenuCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage menu items",
	}

	var category, search string
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List menu items",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := views.NewMenuManager(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Load(cmd.Context()); err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), manager.Filtered(search, category))
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "only this category")
	listCmd.Flags().StringVar(&search, "search", "", "match name, description or category")

	form := views.MenuForm{}
	addFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&form.Name, "name", "", "item name")
		c.Flags().StringVar(&form.Description, "description", "", "item description")
		c.Flags().Float64Var(&form.Price, "price", 0, "price")
		c.Flags().StringVar(&form.ImageURL, "image-url", "", "image url")
		c.Flags().IntVar(&form.CategoryID, "category-id", 0, "category id")
		c.Flags().BoolVar(&form.Featured, "featured", false, "show on the home page")
	}

	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a menu item",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := views.NewMenuManager(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Load(cmd.Context()); err != nil {
				return err
			}
			manager.Form = form
			manager.Form.ID = 0
			if err := manager.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Menu item added.")
			return nil
		},
	}
	addFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:     "update ID",
		Short:   "Change a menu item; unset flags keep their value",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			manager := views.NewMenuManager(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Load(cmd.Context()); err != nil {
				return err
			}
			if !manager.Edit(id) {
				return fmt.Errorf("no menu item %d", id)
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				manager.Form.Name = form.Name
			}
			if flags.Changed("description") {
				manager.Form.Description = form.Description
			}
			if flags.Changed("price") {
				manager.Form.Price = form.Price
			}
			if flags.Changed("image-url") {
				manager.Form.ImageURL = form.ImageURL
			}
			if flags.Changed("category-id") {
				manager.Form.CategoryID = form.CategoryID
			}
			if flags.Changed("featured") {
				manager.Form.Featured = form.Featured
			}
			if err := manager.Submit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Menu item updated.")
			return nil
		},
	}
	addFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:     "delete ID",
		Short:   "Delete a menu item",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			manager := views.NewMenuManager(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Menu item deleted.")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
	return cmd
}

func newCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage menu categories",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List categories in display order",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := views.NewCategoryEditor(a.client())
			if err := editor.Load(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tORDER")
			for _, c := range editor.Categories {
				order := ""
				if c.SortOrder != nil {
					order = strconv.Itoa(*c.SortOrder)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, order)
			}
			return w.Flush()
		},
	}

	addCmd := &cobra.Command{
		Use:     "add NAME",
		Short:   "Add a category at the end",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := views.NewCategoryEditor(a.client()).Add(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category added.")
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:     "rename ID NAME",
		Short:   "Rename a category",
		Args:    cobra.ExactArgs(2),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			if err := views.NewCategoryEditor(a.client()).Rename(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category renamed.")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, renameCmd)
	return cmd
}

func newHoursCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Manage opening hours",
	}

	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Show the stored hours",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := views.NewHoursEditor(a.client())
			if err := editor.Load(cmd.Context()); err != nil {
				return err
			}
			printHours(cmd.OutOrStdout(), editor.Days)
			return nil
		},
	}

	// edit loads every day, applies change to the named one and saves them all.
	edit := func(cmd *cobra.Command, day string, change func(e *views.HoursEditor, id int) error) error {
		editor := views.NewHoursEditor(a.client())
		if err := editor.Load(cmd.Context()); err != nil {
			return err
		}
		id, ok := editor.DayID(day)
		if !ok {
			return views.MsgUnknownDay
		}
		if err := change(editor, id); err != nil {
			return err
		}
		if err := editor.Save(cmd.Context()); err != nil {
			return err
		}
		printHours(cmd.OutOrStdout(), editor.Days)
		return nil
	}

	setCmd := &cobra.Command{
		Use:     "set DAY OPEN CLOSE",
		Short:   "Open a day with the given times",
		Args:    cobra.ExactArgs(3),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, args[0], func(e *views.HoursEditor, id int) error {
				if err := e.SetClosed(id, false); err != nil {
					return err
				}
				if err := e.SetOpen(id, args[1]); err != nil {
					return err
				}
				return e.SetClose(id, args[2])
			})
		},
	}

	closeCmd := &cobra.Command{
		Use:     "close DAY",
		Short:   "Mark a day closed",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, args[0], func(e *views.HoursEditor, id int) error {
				return e.SetClosed(id, true)
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:     "toggle DAY",
		Short:   "Flip a day between closed and open, clearing its times",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, args[0], func(e *views.HoursEditor, id int) error {
				return e.ToggleClosed(id)
			})
		},
	}

	saveCmd := &cobra.Command{
		Use:     "save FILE",
		Short:   "Replace all hours from a JSON file",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			editor := views.NewHoursEditor(a.client())
			if err := json.Unmarshal(data, &editor.Days); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			if err := editor.Save(cmd.Context()); err != nil {
				return err
			}
			printHours(cmd.OutOrStdout(), editor.Days)
			return nil
		},
	}

	cmd.AddCommand(showCmd, setCmd, closeCmd, toggleCmd, saveCmd)
	return cmd
}

func newHeroCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Manage the home page hero image",
	}

	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Show the current hero image",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := views.NewHeroImageEditor(a.client())
			if err := editor.Load(cmd.Context()); err != nil {
				return err
			}
			printHero(cmd, editor.Settings)
			return nil
		},
	}

	setURLCmd := &cobra.Command{
		Use:     "set-url [URL]",
		Short:   "Point the hero image at a URL; no URL removes it",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			editor := views.NewHeroImageEditor(a.client())
			if err := editor.SetURL(cmd.Context(), url); err != nil {
				return err
			}
			printHero(cmd, editor.Settings)
			return nil
		},
	}

	uploadCmd := &cobra.Command{
		Use:     "upload FILE",
		Short:   "Upload an image file as the hero image",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := views.NewHeroImageEditor(a.client())
			defer editor.Close()
			if err := editor.Choose(args[0]); err != nil {
				return err
			}
			if err := editor.Upload(cmd.Context()); err != nil {
				return err
			}
			printHero(cmd, editor.Settings)
			return nil
		},
	}

	cmd.AddCommand(showCmd, setURLCmd, uploadCmd)
	return cmd
}

func printHero(cmd *cobra.Command, settings *domain.SiteSettings) {
	if settings == nil || settings.HeroImageURL == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No hero image set.")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Hero image: %s\n", *settings.HeroImageURL)
}

func newContactsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Read the contact inbox",
	}

	var search string
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List messages, newest first",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox := views.NewContactInbox(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := inbox.Load(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECEIVED\tNAME\tEMAIL\tMESSAGE")
			for _, m := range inbox.Filtered(search) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Email, m.Message)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&search, "search", "", "match name, email or message")

	deleteCmd := &cobra.Command{
		Use:     "delete ID",
		Short:   "Delete a message",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			inbox := views.NewContactInbox(a.client(), a.confirmer(cmd.OutOrStdout()))
			if err := inbox.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Message deleted.")
			return nil
		},
	}

	summaryCmd := &cobra.Command{
		Use:     "summary",
		Short:   "Show unread and today's message counts",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox := views.NewContactInbox(a.client(), a.confirmer(cmd.OutOrStdout()))
			summary, err := inbox.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unread: %d\nToday: %d\n", summary.Unread, summary.Today)
			return nil
		},
	}

	cmd.AddCommand(listCmd, deleteCmd, summaryCmd)
	return cmd
}

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage admin accounts",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List admin accounts",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := views.NewUserManager(a.client(), a.store(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Load(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME")
			for _, u := range manager.Users {
				fmt.Fprintf(w, "%d\t%s\n", u.ID, u.Username)
			}
			return w.Flush()
		},
	}

	var username, password string
	addCmd := &cobra.Command{
		Use:     "add",
		Short:   "Create an admin account",
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if username == "" {
				username = a.readLine(out, "Username: ")
			}
			if password == "" {
				password = a.readLine(out, "Password: ")
			}
			manager := views.NewUserManager(a.client(), a.store(), a.confirmer(out))
			if err := manager.Create(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s.\n", username)
			return nil
		},
	}
	addCmd.Flags().StringVar(&username, "username", "", "new username")
	addCmd.Flags().StringVar(&password, "password", "", "new password, at least 8 characters")

	deleteCmd := &cobra.Command{
		Use:     "delete ID",
		Short:   "Delete an admin account",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireLogin(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			manager := views.NewUserManager(a.client(), a.store(), a.confirmer(cmd.OutOrStdout()))
			if err := manager.Load(cmd.Context()); err != nil {
				return err
			}
			if err := manager.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User deleted.")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}
