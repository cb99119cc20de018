// Command taperinfo prints spectral properties of the analysis taper windows.
//
// Usage:
//
//	taperinfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	taperinfo hanning
//	taperinfo -halflen 500 blackman gauss
//	taperinfo -all
//	taperinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/seisaki/bandwave/dsp/taper"
)

type taperEntry struct {
	name string
	typ  taper.Type
}

var registry = []taperEntry{
	{"rectangle", taper.TypeRectangle},
	{"hamming", taper.TypeHamming},
	{"blackman", taper.TypeBlackman},
	{"hanning", taper.TypeHanning},
	{"gauss", taper.TypeGauss},
}

func main() {
	halfLen := flag.Int("halflen", 250, "taper half length; windows span 2*halflen+1 samples")
	all := flag.Bool("all", false, "show all window types")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: taperinfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of the analysis taper windows.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  taperinfo hanning gauss\n")
		fmt.Fprintf(os.Stderr, "  taperinfo -halflen 500 blackman\n")
		fmt.Fprintf(os.Stderr, "  taperinfo -all\n")
		fmt.Fprintf(os.Stderr, "  taperinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	printAnalysis(entries, *halfLen)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []taperEntry {
	byName := make(map[string]taperEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []taperEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []taperEntry, halfLen int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tLength\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\tScallop [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t-------------\t-----------\t-------------\t-------------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		coeffs, err := taper.Generate(e.typ, halfLen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}
		a := taper.Analyze(coeffs)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\n",
			e.name,
			len(coeffs),
			a.CoherentGain,
			a.ENBW,
			a.MainLobe3dB,
			a.HighestSidelobedB,
			a.ScallopLossdB,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
