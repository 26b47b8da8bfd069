package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/zgsxwsdxg/simpletx/tfile"
	"github.com/zgsxwsdxg/simpletx/transform"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to transform file")
		point       = flag.String("point", "", "Point to map through the transform (comma-separated)")
		list        = flag.Bool("list", false, "Print the transform structure and exit")
		out         = flag.String("o", "", "Rewrite the loaded transform to this path")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: txinfo -file <transform.yaml> [-point x,y,z]")
		fmt.Fprintln(os.Stderr, "       txinfo -file <transform.yaml> -list")
		fmt.Fprintln(os.Stderr, "       txinfo -file <transform.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *point, *out, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, pointStr, outPath string, listOnly bool) error {
	tx, err := loadTransform(file)
	if err != nil {
		return err
	}

	fmt.Printf("Transform: %s\n", file)
	fmt.Printf("Kind: %s\n", tx.Kind())
	fmt.Printf("Dimension: %d\n", tx.Dimension())

	if listOnly {
		fmt.Printf("\n%s", tx.String())
		return nil
	}

	if pointStr != "" {
		pt, err := parsePoint(pointStr)
		if err != nil {
			return err
		}
		mapped, err := tx.TransformPoint(pt)
		if err != nil {
			return fmt.Errorf("transform point: %w", err)
		}
		fmt.Printf("%v -> %v\n", pt, mapped)
	}

	if outPath != "" {
		if err := tfile.Write(tx, outPath); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	}

	return nil
}

func loadTransform(file string) (*transform.Transform, error) {
	tx, err := tfile.Read(file, tfile.WithObserver(tfile.ObserverFunc(func(d tfile.Diagnostic) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.Message)
	})))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return tx, nil
}

func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	pt := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse point component %q: %w", p, err)
		}
		pt = append(pt, v)
	}
	return pt, nil
}
