package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/quark/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed ComputedN and BatchedN helpers for quark",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of typed dependency arities to generate",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated helpers to",
				Value: "quark/computed_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for quark started !")
	defer func() {
		log.Printf("Codegen for quark finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	if genericParamCount == 0 {
		return fmt.Errorf("--%s must be at least 1", genericParamCountKey)
	}
	out := cmd.String(outputKey)
	pkg := filepath.Base(filepath.Dir(out))

	contents := templates.ComputedGen(pkg, int(genericParamCount))
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	return nil
}
