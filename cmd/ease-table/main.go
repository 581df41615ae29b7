// Command ease-table prints sampled time/progress tables for cubic Bézier
// easing curves, in CSV form suitable for plotting.
//
// Usage:
//
//	ease-table -curve ease-in-out -samples 32
//	ease-table -curve 0.25,0.1,0.75,0.9 > curve.csv
//	ease-table -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	easing "github.com/rnavega/go-bezier-easing"
)

func main() {
	// Command-line flags
	var (
		curveSpec = flag.String("curve", "ease",
			"Easing curve: ease, ease-in, ease-out, ease-in-out, or x1,y1,x2,y2")
		samples = flag.Int("samples", defaultSamples, "Number of rows to print")
		demo    = flag.Bool("demo", false, "Print a comparison of the preset curves")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	curve, err := buildCurve(*curveSpec)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}
	if *samples < minSamples {
		log.Fatalf("Need at least %d samples, got %d", minSamples, *samples)
	}

	if err := printTable(curve, *samples); err != nil {
		log.Fatalf("Failed to sample curve: %v", err)
	}
}

// buildCurve resolves a preset name or explicit control values.
func buildCurve(spec string) (*easing.Curve, error) {
	switch strings.ToLower(spec) {
	case "ease":
		return easing.Ease(), nil
	case "ease-in":
		return easing.EaseIn(), nil
	case "ease-out":
		return easing.EaseOut(), nil
	case "ease-in-out":
		return easing.EaseInOut(), nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != bezierComponents {
		return nil, fmt.Errorf("%q is not a preset name or x1,y1,x2,y2", spec)
	}
	vals := make([]float64, bezierComponents)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return easing.NewUnit(vals[0], vals[1], vals[2], vals[3])
}

// printTable writes time,progress rows across the curve's domain.
func printTable(curve *easing.Curve, samples int) error {
	start, end := curve.Domain()
	step := (end - start) / float64(samples-1)

	fmt.Println("time,progress")
	for i := 0; i < samples; i++ {
		x := start + float64(i)*step
		p, err := curve.At(x)
		if err != nil {
			return err
		}
		fmt.Printf("%.6f,%.6f\n", x, p)
	}
	return nil
}

func runDemo() {
	fmt.Println("=== Easing Curve Comparison ===")
	fmt.Println()

	curves := []struct {
		name  string
		curve *easing.Curve
	}{
		{"ease", easing.Ease()},
		{"ease-in", easing.EaseIn()},
		{"ease-out", easing.EaseOut()},
		{"ease-in-out", easing.EaseInOut()},
	}

	// Header
	fmt.Printf("%-8s", "time")
	for _, c := range curves {
		fmt.Printf("%14s", c.name)
	}
	fmt.Println()

	step := 1.0 / float64(demoRows-1)
	for i := 0; i < demoRows; i++ {
		x := float64(i) * step
		fmt.Printf("%-8.2f", x)
		for _, c := range curves {
			p, err := c.curve.At(x)
			if err != nil {
				log.Fatalf("Failed to solve %s at %.2f: %v", c.name, x, err)
			}
			fmt.Printf("%14.6f", p)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Each column is the eased progress for one CSS preset; time runs")
	fmt.Println("over the unit interval. Pipe a single curve through the default")
	fmt.Println("mode for plottable CSV output.")
}
