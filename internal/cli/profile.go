package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s %s <%s>\n", tr("profile"), user.FirstName, user.LastName, user.Email)
		prefs := user.Preferences
		if prefs == nil {
			// The profile payload may omit preferences; ask for them directly.
			prefs, err = client.GetPreferences(cmd.Context())
			if err != nil {
				return err
			}
		}
		langName := "English"
		if prefs.IsVietnamese {
			langName = "Tiếng Việt"
		}
		fmt.Printf("%s: %s\n", tr("language"), langName)
		fmt.Printf("%s: %v\n", tr("use_rag"), prefs.UseRAG)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		req := api.UpdateProfileRequest{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
		prefs := api.Preferences{}
		if user.Preferences != nil {
			prefs = *user.Preferences
		}

		if cmd.Flags().Changed("first-name") {
			req.FirstName, _ = cmd.Flags().GetString("first-name")
		}
		if cmd.Flags().Changed("last-name") {
			req.LastName, _ = cmd.Flags().GetString("last-name")
		}
		if cmd.Flags().Changed("language") {
			langFlag, _ := cmd.Flags().GetString("language")
			prefs.IsVietnamese = langFlag == "vi"
		}
		if cmd.Flags().Changed("rag") {
			prefs.UseRAG, _ = cmd.Flags().GetBool("rag")
		}
		req.Preferences = &prefs

		if err := client.UpdateProfile(cmd.Context(), req); err != nil {
			return err
		}
		// Refresh the cache so the next command sees the new preferences.
		if _, err := session.FetchProfile(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(tr("settings"), "✓")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("first-name", "", "first name")
	profileSetCmd.Flags().String("last-name", "", "last name")
	profileSetCmd.Flags().String("language", "", "assistant language: en or vi")
	profileSetCmd.Flags().Bool("rag", false, "use the medical knowledge base")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
