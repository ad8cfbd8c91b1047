package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Crusty-Banana/medbot-client/internal/api"
	"github.com/Crusty-Banana/medbot-client/internal/observability"
	"github.com/Crusty-Banana/medbot-client/internal/transcript"
	"github.com/Crusty-Banana/medbot-client/internal/voice"
	"github.com/Crusty-Banana/medbot-client/internal/voice/mock"
	"github.com/Crusty-Banana/medbot-client/internal/voice/ws"
)

var voiceCmd = &cobra.Command{
	Use:   "voice [conversation-id|new]",
	Short: "Start a realtime voice session",
	Long: `Start a realtime voice session with the assistant.

Pass a conversation id to continue an existing conversation, or "new"
(the default) to create a fresh one. The live transcript renders in the
terminal while finalized turns are saved to the conversation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVoice,
}

func runVoice(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	useMock, _ := cmd.Flags().GetBool("mock")

	conversationID := transcript.ConversationUnsaved
	if len(args) == 1 {
		conversationID = args[0]
	}
	if conversationID == transcript.ConversationUnsaved && !useMock {
		conversation, err := client.CreateConversation(ctx, tr("new_chat"))
		if err != nil {
			return err
		}
		conversationID = conversation.ID
		fmt.Fprintln(os.Stderr, conversationID)
	}
	if conversationID == transcript.ConversationUnsaved {
		fmt.Fprintln(os.Stderr, styles.Help.Render(tr("session_unsaved")))
	}

	if addr := application.Cfg.Observability.MetricsAddr; addr != "" {
		srv := observability.NewServer(addr)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	feed, err := buildFeed(ctx, conversationID, useMock)
	if err != nil {
		return err
	}

	writer := voice.MessageWriter{Client: client}
	s := voice.NewSession(conversationID, feed, writer, application.Logger)

	fmt.Fprintln(os.Stderr, styles.Help.Render(tr("voice_connecting")))
	if err := s.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, styles.Help.Render(tr("voice_listening")))
	fmt.Fprintln(os.Stderr, styles.Help.Render(tr("press_ctrl_c")))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	renderLoop(s, interrupt)

	if err := s.Close(); err != nil {
		application.Logger.Warn().Err(err).Msg("Feed close failed")
	}
	fmt.Println(styles.Help.Render(tr("voice_ended")))
	return nil
}

// buildFeed picks the transcription source: the realtime backend, or the
// scripted feed for offline use.
func buildFeed(ctx context.Context, conversationID string, useMock bool) (voice.Feed, error) {
	if useMock {
		return mock.New(nil), nil
	}

	voiceSession, err := client.CreateVoiceSession(ctx, api.CreateVoiceSessionRequest{
		ConversationID: conversationID,
	})
	if err != nil {
		return nil, err
	}
	url, token := voiceSession.Credentials(application.Cfg.Realtime.URL)
	if url == "" {
		return nil, fmt.Errorf("no realtime URL: backend returned none and realtime.url is not configured")
	}
	return ws.New(url, token, application.Logger), nil
}

// renderLoop redraws the merged transcript until the session ends or the
// user interrupts. Only the changed tail is reprinted, so the transcript
// scrolls naturally.
func renderLoop(s *voice.Session, interrupt <-chan os.Signal) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var printed string
	draw := func() {
		current := renderTranscript(s.Transcript())
		if current == printed {
			return
		}
		if strings.HasPrefix(current, printed) {
			fmt.Print(current[len(printed):])
		} else {
			// A partial was revised in place; redraw everything.
			fmt.Print("\033[2J\033[H" + current)
		}
		printed = current
	}

	for {
		select {
		case <-ticker.C:
			draw()
		case <-s.Done():
			draw()
			return
		case <-interrupt:
			return
		}
	}
}

func init() {
	voiceCmd.Flags().Bool("mock", false, "play a scripted session instead of connecting")
}
