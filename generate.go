package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

const usageFmt = `Usage: %[1]s <width> <height> [seed]
       %[1]s serve
       %[1]s token <subject>
`

// newRenderer builds the PNG renderer from the configured cell size and pixel limit.
func newRenderer() *render.PNG {
	r := render.NewPNG(config.Envs.CellSize)
	if config.Envs.MaxImagePixels > 0 {
		r.MaxPixels = int64(config.Envs.MaxImagePixels)
	}
	return r
}

// runGenerate handles "<width> <height> [seed]": it writes the maze image to the
// configured output directory and returns the process exit status.
func runGenerate(prog string, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintf(stderr, usageFmt, prog)
		return 1
	}

	width, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "width must be an integer: %q\n", args[0])
		return 1
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "height must be an integer: %q\n", args[1])
		return 1
	}

	m, err := maze.New(width, height)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if len(args) == 3 {
		seed, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "seed must be a non-negative integer: %q\n", args[2])
			return 1
		}
		m.GenerateWithSeed(seed)
	} else {
		m.Generate(nil)
	}

	path, err := render.Save(newRenderer(), config.Envs.OutputDir, m)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "Saved maze to %s\n", path)
	return 0
}
