package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/claude/liftcoach/internal/chat"
	"github.com/claude/liftcoach/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	session := flag.String("session", "default", "chat session name to resume")
	noHistory := flag.Bool("no-history", false, "don't persist the conversation")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftcoach-chat", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	apiKey := cfg.OpenAI.APIKey
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		apiKey = v
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: OpenAI API key required (config openai.api_key or OPENAI_API_KEY)")
		os.Exit(1)
	}

	var history *chat.HistoryDB
	if !*noHistory {
		dir := cfg.Chat.HistoryDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Error("failed to get home directory", "error", err)
				os.Exit(1)
			}
			dir = filepath.Join(home, ".liftcoach-chat")
		}
		history, err = chat.OpenHistoryDB(dir)
		if err != nil {
			log.Error("failed to open history database", "error", err)
			os.Exit(1)
		}
		defer history.Close()
	}

	client := chat.NewClient(apiKey, cfg.OpenAI.Model, log)
	loop := chat.NewLoop(client, history, *session, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Error("chat loop failed", "error", err)
		os.Exit(1)
	}
}
