package main

import (
	"context"
	"fmt"
	"os"

	"example.com/workouts/internal/cli"
	"example.com/workouts/internal/config"
)

func main() {
	cmd := cli.NewRootCommand(config.Load())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: %v\n", err)
		os.Exit(1)
	}
}
