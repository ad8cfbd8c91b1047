// Package main is the medbot terminal client.
//
// Usage:
//
//	medbot <command> [args]
//
// Commands:
//
//	login, register, logout - account access
//	profile                 - view and edit the user profile
//	conversations           - manage conversation threads
//	chat, send              - read history and send text messages
//	voice                   - start a realtime voice session
package main

import (
	"fmt"
	"os"

	"github.com/Crusty-Banana/medbot-client/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
