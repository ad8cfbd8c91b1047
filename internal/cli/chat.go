package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Crusty-Banana/medbot-client/internal/api"
	"github.com/Crusty-Banana/medbot-client/internal/transcript"
)

var chatCmd = &cobra.Command{
	Use:   "chat <conversation-id>",
	Short: "Show a conversation's message history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		messages, err := client.ListMessages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(renderMessages(messages))
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <conversation-id> <text>",
	Short: "Append a text message to a conversation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := client.CreateMessage(cmd.Context(), args[0], api.CreateMessageRequest{
			Role:        string(transcript.RoleUser),
			Content:     args[1],
			MessageType: api.MessageTypeText,
		})
		if err != nil {
			return err
		}
		fmt.Println(tr("send_message"), "✓")
		return nil
	},
}

