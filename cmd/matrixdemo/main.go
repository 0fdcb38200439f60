// Package main demonstrates the lvtensor matrix core.
//
// Scenario:
//
//	Two 3×2 matrices of ones; the first is re-drawn from U[-1, 1).
//	The program prints a, b, c = a − b, d = a × bᵀ and e = c².
//
// Usage:
//
//	go run ./cmd/matrixdemo -seed 7 -rows 4 -cols 3
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/lvtensor/matrix"
)

// config holds the command-line parameters.
type config struct {
	seed       uint64
	rows, cols int
}

func main() {
	var cfg config
	flag.Uint64Var(&cfg.seed, "seed", 1, "seed for the uniform initialization")
	flag.IntVar(&cfg.rows, "rows", 3, "rows of the demo matrices")
	flag.IntVar(&cfg.cols, "cols", 2, "columns of the demo matrices")
	flag.Parse()

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run builds the demo matrices and writes their renderings to w.
func run(w io.Writer, cfg config) error {
	a, err := matrix.Ones(cfg.rows, cfg.cols)
	if err != nil {
		return fmt.Errorf("build a: %w", err)
	}
	b, err := matrix.Ones(cfg.rows, cfg.cols)
	if err != nil {
		return fmt.Errorf("build b: %w", err)
	}
	if err = a.InitUniform(rand.NewPCG(cfg.seed, cfg.seed), -1, 1); err != nil {
		return err
	}

	c, err := a.Sub(b)
	if err != nil {
		return err
	}
	bt, err := b.Transpose()
	if err != nil {
		return err
	}
	d, err := a.MatMul(bt)
	if err != nil {
		return err
	}
	e, err := c.Apply(func(x float32) float32 { return x * x })
	if err != nil {
		return err
	}

	for _, m := range []*matrix.Matrix{a, b, c, d, e} {
		if _, err = io.WriteString(w, m.String()); err != nil {
			return err
		}
	}

	return nil
}
