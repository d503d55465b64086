// geomtrace prints the point sequence the geometry generator produces for a
// circle or arc, for eyeballing outlines without a display.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"linework/internal/geom"
)

func main() {
	radius := flag.Float64("radius", 100, "circle radius")
	sides := flag.Int("sides", 16, "number of sides approximating the circle")
	start := flag.Float64("start", 0, "arc start angle in radians")
	sweep := flag.Float64("sweep", 0, "arc sweep in radians; 0 traces the full circle")
	flag.Parse()

	gen := geom.NewGenerator()

	var (
		pts  []geom.Vec
		err  error
		kind string
	)
	if *sweep > 0 {
		kind = fmt.Sprintf("arc start=%.4f sweep=%.4f", *start, *sweep)
		pts, err = gen.Arc(*radius, *sides, *start, *sweep)
	} else {
		kind = "circle"
		pts, err = gen.Circle(*radius, *sides)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s radius=%g sides=%d points=%d\n", kind, *radius, *sides, len(pts))
	fmt.Println("idx\tx\ty\tangle")
	for i, p := range pts {
		fmt.Printf("%d\t%.4f\t%.4f\t%.4f\n", i, p.X, p.Y, math.Atan2(p.Y, p.X))
	}
}
