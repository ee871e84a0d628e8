// Command board runs the customer-facing status board in a terminal. It
// polls the API and redraws the board, calling out orders the moment
// they come up ready.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"smoothbux-be/internal/board"
	"smoothbux-be/internal/client"
	"smoothbux-be/internal/config"
	"smoothbux-be/internal/logger"
)

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "base URL of the API server")
	flag.Parse()

	cfg := config.LoadClientConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	api := client.New(*baseURL)

	poller := board.NewPoller(api.GetOrders, cfg.BoardPollInterval)
	poller.OnReady = func(events []board.Event) {
		for _, e := range events {
			fmt.Printf("\n🔔 %s — your smoothie is %s\n", e.Order.CustomerName, board.Label(e.Order.Status))
		}
	}
	poller.OnUpdate = render

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller.Run(ctx)
}

func render(entries []board.Entry) {
	var b strings.Builder
	b.WriteString("\n=== Order Status ===\n")
	if len(entries) == 0 {
		b.WriteString("(no orders yet)\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "%-20s %s\n", e.Order.CustomerName, e.Presentation.Label)
	}
	fmt.Print(b.String())
}
