package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bplustree"
	"bplustree/codec"
	"bplustree/internal/xorshift"
)

func main() {
	n := flag.Int("n", 100000, "number of entries")
	leafCap := flag.Int("leaf-cap", 32, "leaf node capacity")
	innerCap := flag.Int("inner-cap", 32, "inner node capacity")
	dataFile := flag.String("data-file", "", "if set, also benchmark Save/Load against this path")
	seed := flag.Uint64("seed", 123456789, "PRNG seed")
	flag.Parse()

	rng := xorshift.NewSeeded(*seed)
	keys := make([]int64, *n)
	for i := range keys {
		keys[i] = int64(rng.Uint64())
	}

	tr := bplustree.New[int64, int64](int64Less,
		bplustree.WithLeafCap(*leafCap),
		bplustree.WithInnerCap(*innerCap))

	timeIt("put", *n, func() {
		for _, k := range keys {
			tr.Put(k, k)
		}
	})

	timeIt("get", *n, func() {
		for _, k := range keys {
			if _, ok := tr.Get(k); !ok {
				fmt.Fprintf(os.Stderr, "missing key %d\n", k)
			}
		}
	})

	if *dataFile != "" {
		timeIt("save", *n, func() {
			if err := tr.Save(*dataFile, codec.Fixed[int64](), codec.Fixed[int64]()); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
				os.Exit(1)
			}
		})

		loaded := bplustree.New[int64, int64](int64Less,
			bplustree.WithLeafCap(*leafCap),
			bplustree.WithInnerCap(*innerCap))
		timeIt("load", *n, func() {
			if err := loaded.Load(*dataFile, codec.Fixed[int64](), codec.Fixed[int64]()); err != nil {
				fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
				os.Exit(1)
			}
		})
	}

	timeIt("erase", *n, func() {
		for _, k := range keys {
			tr.Erase(k)
		}
	})
}

func int64Less(a, b int64) bool { return a < b }

func timeIt(label string, n int, f func()) {
	start := time.Now()
	f()
	elapsed := time.Since(start)
	perOp := elapsed
	if n > 0 {
		perOp = elapsed / time.Duration(n)
	}
	fmt.Printf("%-8s %10d ops  %12s total  %12s/op\n", label, n, elapsed, perOp)
}
