package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/foodmap-backend/internal/app"
)

func main() {
	ctx := context.Background()

	application, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		application.Log.Error("Server stopped with error", "error", err)
		application.Close()
		os.Exit(1)
	}
}
