package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pomodoro/solanum/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Serve(ctx, ""); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
