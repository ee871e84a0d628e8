// Command kiosk is the customer-side ordering tool. The cart lives in a
// local file between invocations and only reaches the server on submit.
//
//	kiosk menu
//	kiosk add "Berry Blast" [-size large] [-boosts chia,ginger]
//	kiosk remove 1
//	kiosk show
//	kiosk submit -name "Dad"
//	kiosk clear
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"smoothbux-be/internal/cart"
	"smoothbux-be/internal/client"
	"smoothbux-be/internal/order"
)

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "base URL of the API server")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store := cart.NewFileStore(cartPath())
	c := cart.New()
	if err := c.Restore(store); err != nil {
		log.Fatalf("failed to load saved cart: %v", err)
	}

	api := client.New(*baseURL)
	ctx := context.Background()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "menu":
		showMenu(ctx, api)
	case "add":
		add(ctx, api, c, args)
	case "remove":
		remove(c, args)
	case "show":
		show(c)
	case "submit":
		submit(ctx, api, c, args)
	case "clear":
		c.Clear()
		fmt.Println("Cart cleared.")
	default:
		log.Fatalf("unknown command: %s", cmd)
	}

	if err := c.Persist(store); err != nil {
		log.Fatalf("failed to save cart: %v", err)
	}
}

func cartPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "smoothbux", "cart.json")
}

func showMenu(ctx context.Context, api *client.Client) {
	items, err := api.GetMenu(ctx)
	if err != nil {
		log.Fatalf("failed to fetch menu: %v", err)
	}
	for _, item := range items {
		marker := " "
		if !item.IsAvailable {
			marker = "✗"
		}
		fmt.Printf("%s %-20s %s\n", marker, item.Name, item.Description)
	}
}

func add(ctx context.Context, api *client.Client, c *cart.Cart, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	size := fs.String("size", "", "smoothie size")
	juice := fs.String("juice", "", "juice base")
	boosts := fs.String("boosts", "", "comma-separated boosts")
	notes := fs.String("notes", "", "free-form notes for the counter")

	var name string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	fs.Parse(args)
	if name == "" {
		log.Fatal("add needs a menu item name")
	}

	items, err := api.GetMenu(ctx)
	if err != nil {
		log.Fatalf("failed to fetch menu: %v", err)
	}

	for _, item := range items {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		if !item.IsAvailable {
			log.Fatalf("%s is not available right now", item.Name)
		}

		custom := order.Customizations{Size: *size, Juice: *juice, Notes: *notes}
		if *boosts != "" {
			custom.Boosts = strings.Split(*boosts, ",")
		}
		c.Add(order.NewOrderItem{MenuItemID: item.ID, Name: item.Name, Customizations: custom})
		fmt.Printf("Added %s. Cart has %d item(s).\n", item.Name, c.Len())
		return
	}
	log.Fatalf("no menu item named %q", name)
}

func remove(c *cart.Cart, args []string) {
	if len(args) != 1 {
		log.Fatal("remove needs the item number shown by 'show'")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("not a number: %s", args[0])
	}
	if err := c.Remove(n - 1); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Removed item %d. Cart has %d item(s).\n", n, c.Len())
}

func show(c *cart.Cart) {
	items := c.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for i, item := range items {
		fmt.Printf("%d. %s", i+1, item.Name)
		if !item.Customizations.IsZero() {
			fmt.Printf(" (%s)", describe(item.Customizations))
		}
		fmt.Println()
	}
}

func describe(c order.Customizations) string {
	var parts []string
	if c.Size != "" {
		parts = append(parts, c.Size)
	}
	if c.Juice != "" {
		parts = append(parts, c.Juice)
	}
	parts = append(parts, c.Boosts...)
	if c.Notes != "" {
		parts = append(parts, c.Notes)
	}
	return strings.Join(parts, ", ")
}

func submit(ctx context.Context, api *client.Client, c *cart.Cart, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	name := fs.String("name", "", "name to call out when the order is ready")
	fs.Parse(args)

	o, err := c.Submit(ctx, api, *name)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Order in! We'll call %q when it's ready. (order %s)\n", o.CustomerName, o.ID)
}
