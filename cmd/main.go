package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/rocpay1889/baba-shoping/docs"
)

// @title BABA Shopping API
// @version 1.0
// @description Single-session storefront: catalog, cart, checkout, mock UPI payment and order tracking.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
