// Command counter is the staff-side fulfillment tool. It shows the
// queue of actionable orders and applies the start/finish/collect/cancel
// actions. The queue is re-fetched right after every action, and "watch"
// keeps re-pulling it on the configured interval.
//
//	counter -username barista -password ... queue
//	counter -username barista -password ... watch
//	counter -username barista -password ... start <order-id>
//	counter -username barista -password ... finish <order-id>
//	counter -username barista -password ... collect <order-id>
//	counter -username barista -password ... cancel <order-id>
//	counter -username barista -password ... stats
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smoothbux-be/internal/client"
	"smoothbux-be/internal/config"
	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/order"
)

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "base URL of the API server")
	username := flag.String("username", "", "staff username")
	password := flag.String("password", "", "staff password")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadClientConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx := context.Background()

	var opts []client.Option
	if token := os.Getenv("STAFF_TOKEN"); token != "" {
		opts = append(opts, client.WithToken(token))
	}
	api := client.New(*baseURL, opts...)

	if os.Getenv("STAFF_TOKEN") == "" {
		if *username == "" || *password == "" {
			log.Fatal("set STAFF_TOKEN or pass -username and -password")
		}
		if _, err := api.Login(ctx, *username, *password); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "queue":
		showQueue(ctx, api)
	case "watch":
		watch(api, cfg.QueuePollInterval)
	case "start", "finish", "collect":
		apply(ctx, api, cmd, args)
	case "cancel":
		cancelOrder(ctx, api, args)
	case "stats":
		showStats(ctx, api)
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

func showQueue(ctx context.Context, api *client.Client) {
	entries, err := api.GetQueue(ctx)
	if err != nil {
		log.Fatalf("failed to fetch queue: %v", err)
	}
	renderQueue(entries)
}

func renderQueue(entries []*order.QueueEntry) {
	if len(entries) == 0 {
		fmt.Println("Queue is empty. ☀️")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %-15s %-10s", e.Order.ID, e.Order.CustomerName, e.Order.Status)
		for _, item := range e.Order.Items {
			fmt.Printf(" [%s]", item.MenuItem.Name)
		}
		fmt.Printf("  actions: %v\n", e.Actions)
	}
}

// watch re-pulls the queue on the staff interval until interrupted.
func watch(api *client.Client, interval time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		entries, err := api.GetQueue(ctx)
		if err != nil {
			log.Printf("queue fetch failed, keeping last view: %v", err)
		} else {
			fmt.Printf("\n=== Fulfillment Queue (%s) ===\n", time.Now().Format("15:04:05"))
			renderQueue(entries)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// targets maps an action to the status it writes.
var targets = map[string]order.OrderStatus{
	"start":   order.StatusBlending,
	"finish":  order.StatusReady,
	"collect": order.StatusCompleted,
}

func apply(ctx context.Context, api *client.Client, action string, args []string) {
	if len(args) != 1 {
		log.Fatalf("%s needs an order id", action)
	}

	o, err := api.UpdateOrderStatus(ctx, args[0], targets[action])
	if err != nil {
		log.Fatalf("%s failed: %v", action, err)
	}
	fmt.Printf("%s is now %s.\n", o.CustomerName, o.Status)

	showQueue(ctx, api)
}

func cancelOrder(ctx context.Context, api *client.Client, args []string) {
	if len(args) != 1 {
		log.Fatal("cancel needs an order id")
	}

	if err := api.DeleteOrder(ctx, args[0]); err != nil {
		log.Fatalf("cancel failed: %v", err)
	}
	fmt.Println("Order cancelled.")

	showQueue(ctx, api)
}

func showStats(ctx context.Context, api *client.Client) {
	s, err := api.GetStats(ctx)
	if err != nil {
		log.Fatalf("failed to fetch stats: %v", err)
	}
	fmt.Printf("Today: %d total — %d pending, %d blending, %d ready, %d picked up\n",
		s.Total, s.Pending, s.Blending, s.Ready, s.Completed)
}
