package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/foodmap-backend/internal/app"
	"github.com/yungbote/foodmap-backend/internal/services"
)

func main() {
	var file string
	var dryRun bool
	flag.StringVar(&file, "file", os.Getenv("SEED_FILE"), "YAML seed file (default: embedded sample)")
	flag.BoolVar(&dryRun, "dry-run", false, "validate the seed file without writing")
	flag.Parse()

	seed, err := services.LoadSeed(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if dryRun {
		invalid := 0
		for i, in := range seed.FoodResources {
			if _, err := in.Normalize(); err != nil {
				invalid++
				fmt.Printf("foodResources[%d] (%s): %v\n", i, in.Name, err)
			}
		}
		fmt.Printf("%d food resources, %d invalid\n", len(seed.FoodResources), invalid)
		if invalid > 0 {
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	created, err := application.Services.Seeder.Run(ctx, seed)
	for _, view := range created {
		fmt.Printf("created %d %s\n", view.ID, view.Name)
	}
	if err != nil {
		application.Log.Error("Seed failed", "error", err)
		application.Close()
		os.Exit(1)
	}
}
