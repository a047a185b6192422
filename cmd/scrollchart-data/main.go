package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"git.sr.ht/~whereswaldon/scrollchart/backend"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
	"git.sr.ht/~whereswaldon/scrollchart/sensors"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: generate csv series data for scrollchart
Usage:

 %[1]s > file

OR

 %[1]s | scrollchart -data -

With -interval, a new point is appended every interval until interrupted, which
scrollchart picks up when watching the output file:

 %[1]s -output file -interval 1s & scrollchart -data file

With -source rapl, each point is the CPU energy in joules used during one interval.
Sadly, accessing RAPL requires root permissions:

 sudo %[1]s -source rapl -interval 1s -output file

`, os.Args[0])
	flag.PrintDefaults()
}

// generator produces points with consecutive X values and Y values read from a
// sensor.
type generator struct {
	sensor sensors.Sensor
	next   float64
}

func (g *generator) point() (chart.Point, error) {
	y, err := g.sensor.Read()
	if err != nil {
		return chart.Point{}, fmt.Errorf("failed reading %s: %w", g.sensor.Name(), err)
	}
	p := chart.Point{X: g.next, Y: y}
	g.next++
	return p, nil
}

func findSensor(source, name string, seed int64, maxY float64) (sensor sensors.Sensor, live bool, err error) {
	switch source {
	case "random":
		return sensors.NewRandom(seed, maxY), false, nil
	case "rapl":
		found, err := sensors.FindRAPL()
		if err != nil {
			return nil, false, fmt.Errorf("failed loading RAPL sensors: %w", err)
		}
		for _, s := range found {
			if name == "" || s.Name() == name {
				return s, true, nil
			}
		}
		return nil, false, fmt.Errorf("no RAPL sensor named %q among %d", name, len(found))
	default:
		return nil, false, fmt.Errorf("unknown source %q", source)
	}
}

func main() {
	flag.Usage = usage
	count := flag.Int("count", 30, "Number of points to generate before exiting or streaming")
	seed := flag.Int64("seed", 1, "Random seed")
	start := flag.Float64("start", 1, "X value of the first point")
	maxY := flag.Float64("max", 10, "Largest Y value of the random source")
	source := flag.String("source", "random", "Source of Y values: random or rapl")
	sensorName := flag.String("sensor", "", "Name of the RAPL domain to read; empty picks the first")
	interval := flag.Duration("interval", 0, "Interval between appending new points after the first count; zero exits. Live sources sample at this interval, default 1s")
	outputName := flag.String("output", "-", "Output file for CSV data")
	flag.Parse()
	if *count < 0 || *maxY <= 0 {
		log.Fatalf("count must not be negative and max must be positive")
	}

	sensor, live, err := findSensor(*source, *sensorName, *seed, *maxY)
	if err != nil {
		log.Fatal(err)
	}
	pace := *interval
	if live && pace <= 0 {
		pace = time.Second
	}
	log.Printf("sampling %s (%s)", sensor.Name(), sensor.Unit())

	var output io.WriteCloser
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			log.Fatalf("failed opening output file %q: %v", *outputName, err)
		}
		output = f
	}

	gen := &generator{sensor: sensor, next: *start}
	series := make(chart.Series, *count)
	for i := range series {
		if live {
			time.Sleep(pace)
		}
		if series[i], err = gen.point(); err != nil {
			log.Fatal(err)
		}
	}
	if err := backend.WriteSeries(output, series); err != nil {
		log.Fatalf("failed writing series: %v", err)
	}
	if *interval <= 0 {
		if err := output.Close(); err != nil {
			log.Printf("failed closing output: %v", err)
		}
		return
	}

	csvWriter := csv.NewWriter(output)
	ticker := time.NewTicker(pace)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer ticker.Stop()
	for {
		select {
		case <-sigChan:
			// We've gotten an interrupt; shut down.
			if err := output.Close(); err != nil {
				log.Printf("failed closing output: %v", err)
			}
			return
		case <-ticker.C:
			p, err := gen.point()
			if err != nil {
				log.Fatal(err)
			}
			record := []string{
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.FormatFloat(p.Y, 'f', -1, 64),
			}
			if err := csvWriter.Write(record); err != nil {
				log.Fatalf("failed writing point: %v", err)
			}
			csvWriter.Flush()
			if err := csvWriter.Error(); err != nil {
				log.Fatalf("failed writing point: %v", err)
			}
		}
	}
}
