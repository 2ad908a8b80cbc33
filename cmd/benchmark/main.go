package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/quark/quark"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "pgo"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure quark propagation latency for plain, transactional and batched writes",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes measured per graph shape",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to default.pgo",
				Value: false,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(profileKey) {
		f, err := os.Create("default.pgo")
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	for _, m := range modes {
		benchmark(m, 10, false)
	}
	for _, m := range modes {
		benchmark(m, iters, true)
	}
	return nil
}

type mode struct {
	title string
	write func(sys *quark.System, src *quark.Atom[int], next int)
}

var modes = []mode{
	{
		title: "quark: plain set",
		write: func(sys *quark.System, src *quark.Atom[int], next int) {
			src.Set(next)
		},
	},
	{
		title: "quark: explicit transaction",
		write: func(sys *quark.System, src *quark.Atom[int], next int) {
			tx := quark.NewTransaction()
			src.SetTx(tx, next)
			tx.Commit()
		},
	},
	{
		title: "quark: batched",
		write: func(sys *quark.System, src *quark.Atom[int], next int) {
			if err := quark.Batch(sys, func() error {
				src.Set(next)
				return nil
			}); err != nil {
				log.Panic(err)
			}
		},
	},
}

func addOne(v int) int {
	return v + 1
}

func benchmark(m mode, iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle(m.title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sys := quark.NewSystem(quark.WithErrorHandler(func(from any, err error) {
				log.Panic(err)
			}))
			src := quark.NewAtom(sys, 1)
			for i := 0; i < w; i++ {
				var last quark.Observable[int] = src
				for j := 0; j < h; j++ {
					last = quark.Computed1(sys, last, addOne)
				}
				quark.Observe(last, func(int) error {
					return nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				m.write(sys, src, src.Get()+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
