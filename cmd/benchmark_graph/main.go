package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/quark/quark"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting quark graph benchmark, please wait...")
	defer log.Print("Finished quark graph benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:         "simple component",
			width:        10,
			nSources:     2,
			totalLayers:  5,
			readFraction: 0.2,
			batchSize:    1,
			iterations:   600000,
		},
		{
			name:         "batched component",
			width:        10,
			nSources:     2,
			totalLayers:  5,
			readFraction: 0.2,
			batchSize:    4,
			iterations:   150000,
		},
		{
			name:         "wide shallow",
			width:        1000,
			totalLayers:  3,
			nSources:     4,
			readFraction: 1,
			batchSize:    1,
			iterations:   7000,
		},
		{
			name:         "fan in",
			width:        100,
			totalLayers:  4,
			nSources:     3,
			readFraction: 1,
			batchSize:    1,
			iterations:   3000,
		},
		{
			name:         "deep",
			width:        5,
			totalLayers:  500,
			nSources:     1,
			readFraction: 1,
			batchSize:    1,
			iterations:   500,
		},
		{
			name:         "deep batched",
			width:        5,
			totalLayers:  500,
			nSources:     1,
			readFraction: 1,
			batchSize:    5,
			iterations:   100,
		},
	}

	type results struct {
		sum      int
		digest   uint64
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "nSources", "read%", "batch",
		"nTimes", "test", "time", "updateRate", "sum", "digest", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)
		counter := new(int64)

		runOnce := func() (int, uint64) {
			sys := quark.NewSystem()
			graph := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
				sys:         sys,
				counter:     counter,
				width:       cfg.width,
				totalLayers: cfg.totalLayers,
				nSources:    cfg.nSources,
			})
			*counter = 0
			return benchmarkRunGraph(&benchmarkRunGraphConfig{
				sys:          sys,
				graph:        graph,
				iteration:    cfg.iterations,
				readFraction: cfg.readFraction,
				batchSize:    cfg.batchSize,
			})
		}
		// run once to warm up
		_, wantDigest := runOnce()

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			start := time.Now()
			sum, digest := runOnce()
			duration := time.Since(start)
			if digest != wantDigest {
				log.Fatalf("%s: run %d produced digest %x, want %x", cfg.name, i, digest, wantDigest)
			}

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.digest = digest
				bestResult.count = *counter
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources))
			if cfg.batchSize > 1 {
				sb.WriteString(fmt.Sprintf(" batched by %d", cfg.batchSize))
			}
			if cfg.readFraction < 1 {
				sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.readFraction))
			}
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			"quark", // framework
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers), // size
			fmt.Sprint(cfg.nSources),                         // nSources
			fmt.Sprint(cfg.readFraction),                     // read%
			fmt.Sprint(cfg.batchSize),                        // batch
			humanize.Comma(cfg.iterations),                   // nTimes
			cfg.name,                                         // test
			fmt.Sprint(bestResult.duration),                  // time
			humanize.Comma(int64(updateRate)),                // updateRate
			humanize.Comma(int64(bestResult.sum)),            // sum
			strconv.FormatUint(bestResult.digest, 16),        // digest
			makeTitle(),                                      // title
		})
	}
	table.Render()
}

type benchmarkTestConfig struct {
	name         string  // friendly name for the test, should be unique
	width        int64   // width of dependency graph to construct
	totalLayers  int64   // depth of dependency graph to construct
	nSources     int64   // construct a graph with number of sources in each node
	readFraction float64 // fraction of [0, 1] elements in the last layer from which to read values in each test iteration
	batchSize    int64   // source writes grouped into one batched call
	iterations   int64   // number of test iterations
}

type benchmarkGraph struct {
	sources []*quark.Atom[int]
	layers  [][]*quark.Computed[int]
}

type benchmarkMakeGraphConfig struct {
	sys                          *quark.System
	counter                      *int64
	width, totalLayers, nSources int64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) *benchmarkGraph {
	sources := make([]*quark.Atom[int], cfg.width)
	prevRow := make([]quark.Dependency, cfg.width)
	for i := range sources {
		sources[i] = quark.NewAtom(cfg.sys, i)
		prevRow[i] = sources[i]
	}

	graph := &benchmarkGraph{sources: sources}
	for l := int64(0); l < cfg.totalLayers-1; l++ {
		row := makeBenchmarkRow(cfg, prevRow)
		graph.layers = append(graph.layers, row)
		prevRow = make([]quark.Dependency, len(row))
		for i, node := range row {
			prevRow[i] = node
		}
	}
	return graph
}

func makeBenchmarkRow(cfg *benchmarkMakeGraphConfig, sources []quark.Dependency) []*quark.Computed[int] {
	row := make([]*quark.Computed[int], len(sources))
	for myDex := range sources {
		mySources := make([]quark.Dependency, 0, cfg.nSources)
		for sourceDex := 0; sourceDex < int(cfg.nSources); sourceDex++ {
			mySources = append(mySources, sources[(myDex+sourceDex)%len(sources)])
		}

		row[myDex] = quark.NewComputed(cfg.sys, mySources, func(args []any) int {
			*cfg.counter++
			sum := 0
			for _, arg := range args {
				sum += arg.(int)
			}
			return sum
		})
	}
	return row
}

type benchmarkRunGraphConfig struct {
	sys          *quark.System
	graph        *benchmarkGraph
	iteration    int64
	readFraction float64
	batchSize    int64
}

// Execute the graph by writing batchSize sources per iteration and reading
// some or all of the leaves. Returns the sum of the leaf values and a digest
// of every value read.
func benchmarkRunGraph(cfg *benchmarkRunGraphConfig) (int, uint64) {
	random := rand.New(rand.NewSource(0))
	leaves := cfg.graph.layers[len(cfg.graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	digest := xxhash.New()
	var buf []byte
	for i := 0; i < int(cfg.iteration); i++ {
		err := quark.Batch(cfg.sys, func() error {
			for b := 0; b < int(cfg.batchSize); b++ {
				sourceDex := (i + b) % len(cfg.graph.sources)
				cfg.graph.sources[sourceDex].Set(i + sourceDex)
			}
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}

		for _, leaf := range readLeaves {
			buf = strconv.AppendInt(buf[:0], int64(leaf.Get()), 10)
			digest.Write(buf)
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Get()
	}
	return sum, digest.Sum64()
}

func benchmarkRemoveElems[T comparable](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
