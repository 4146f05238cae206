// Command geocheck is an offline QA utility for the gazetteer and the
// text geocoder. It geocodes text from the command line or stdin and
// reports match, confidence, and fence diagnostics, and it can sweep the
// whole gazetteer for entries that would never validate.
//
// Usage:
//
//	go run ./cmd/geocheck "crash on I-64 at Kingshighway"
//	echo "fire in Festus, Jefferson County" | go run ./cmd/geocheck
//	go run ./cmd/geocheck -sweep
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
)

func main() {
	sweep := flag.Bool("sweep", false, "validate every gazetteer entry against the fence")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fence := domain.NewFence(logger)

	if *sweep {
		os.Exit(sweepGazetteer(fence))
	}

	geocoder := domain.NewGeocoder(fence, logger)

	texts := flag.Args()
	if len(texts) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
	}
	if len(texts) == 0 {
		fmt.Fprintln(os.Stderr, "usage: geocheck [-sweep] <text> [<text>...]")
		os.Exit(2)
	}

	for _, text := range texts {
		result := geocoder.GeocodeText(text)
		if result == nil {
			fmt.Printf("%-60s -> no match\n", text)
			continue
		}
		fmt.Printf("%-60s -> %s (%s) at %.4f,%.4f  %.1f mi from center\n",
			text, result.MatchedLocationName, result.Confidence,
			result.Location.Lat, result.Location.Lon,
			fence.DistanceFromCenter(result.Location))
	}
}

// sweepGazetteer checks that every entry's coordinate validates under the
// rules the geocoder applies: subregion for the Illinois exception,
// primary fence for everything else. Returns a process exit code.
func sweepGazetteer(fence *domain.Fence) int {
	bad := 0
	for _, e := range domain.Gazetteer {
		var ok bool
		if e.County == domain.CountyStClair {
			ok = fence.IsWithinSubregion(e.Point)
		} else {
			ok = fence.IsValidLocation(e.Point, domain.DefaultMaxDistanceMiles)
		}
		if !ok {
			fmt.Printf("INVALID %-40s %s at %.4f,%.4f\n", e.Name, e.Type, e.Point.Lat, e.Point.Lon)
			bad++
		}
	}
	fmt.Printf("%d entries checked, %d invalid\n", len(domain.Gazetteer), bad)
	if bad > 0 {
		return 1
	}
	return 0
}
