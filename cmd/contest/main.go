package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"icpc-contest/internal/di"
)

func main() {
	application, err := di.InitializeApp(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := application.Run(ctx); err != nil {
		log.Fatalf("application runtime error: %v", err)
	}
}
