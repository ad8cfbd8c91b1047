package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"conv"},
	Short:   "Manage conversation threads",
}

var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		conversations, err := client.ListConversations(cmd.Context())
		if err != nil {
			return err
		}
		if len(conversations) == 0 {
			fmt.Println(tr("no_conversations"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE")
		for _, c := range conversations {
			title := c.Title
			if title == "" {
				title = tr("untitled")
			}
			fmt.Fprintf(w, "%s\t%s\n", c.ID, title)
		}
		return w.Flush()
	},
}

var conversationsNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a conversation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := tr("new_chat")
		if len(args) == 1 {
			title = args[0]
		}
		conversation, err := client.CreateConversation(cmd.Context(), title)
		if err != nil {
			return err
		}
		fmt.Println(conversation.ID)
		return nil
	},
}

var conversationsRenameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Rename a conversation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.RenameConversation(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println(tr("renamed"))
		return nil
	},
}

var conversationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a conversation and its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.DeleteConversation(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(tr("deleted"))
		return nil
	},
}

func init() {
	conversationsCmd.AddCommand(conversationsListCmd)
	conversationsCmd.AddCommand(conversationsNewCmd)
	conversationsCmd.AddCommand(conversationsRenameCmd)
	conversationsCmd.AddCommand(conversationsDeleteCmd)
}
