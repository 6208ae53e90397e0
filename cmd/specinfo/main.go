// Command specinfo prints the one-sided amplitude spectrum of a
// synthesized test tone, including the detected peak, and window metadata.
//
// Usage:
//
//	specinfo [flags]
//
// Examples:
//
//	specinfo -freq 440 -rate 48000 -size 4096
//	specinfo -freq 1000 -window blackman -top 10
//	specinfo -windows
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

var windowNames = []string{"rect", "hann", "hamming", "blackman"}

func main() {
	var (
		rate     = flag.Float64("rate", 48000, "sample rate in Hz")
		size     = flag.Int("size", 4096, "FFT size (power of two)")
		freq     = flag.Float64("freq", 1000, "tone frequency in Hz")
		amp      = flag.Float64("amp", 1, "tone amplitude")
		winName  = flag.String("window", "hann", "analysis window (rect, hann, hamming, blackman)")
		top      = flag.Int("top", 5, "number of largest bins to print")
		listWins = flag.Bool("windows", false, "print window metadata and exit")
	)

	flag.Parse()

	if *listWins {
		printWindows(*size)

		return
	}

	winType, err := window.Parse(*winName)
	if err != nil {
		fatal(err)
	}

	gen, err := signal.NewGenerator(*rate)
	if err != nil {
		fatal(err)
	}

	samples, err := gen.Sine(*freq, *amp, *size)
	if err != nil {
		fatal(err)
	}

	result, err := spectrum.Compute(samples,
		spectrum.WithSampleRate(*rate),
		spectrum.WithFFTSize(*size),
		spectrum.WithWindow(winType),
	)
	if err != nil {
		fatal(err)
	}

	printResult(result, *top)
}

func printResult(result *spectrum.Result, top int) {
	type bin struct {
		index int
		amp   float64
	}

	bins := make([]bin, len(result.Amplitude))
	for i, a := range result.Amplitude {
		bins[i] = bin{index: i, amp: a}
	}

	sort.Slice(bins, func(i, j int) bool { return bins[i].amp > bins[j].amp })
	if top > len(bins) {
		top = len(bins)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tFREQ [Hz]\tAMPLITUDE\tPHASE [rad]")

	for _, b := range bins[:top] {
		fmt.Fprintf(w, "%d\t%.2f\t%.6g\t%+.4f\n",
			b.index, result.Frequencies[b.index], b.amp, result.Phase[b.index])
	}

	w.Flush()

	fmt.Printf("\npeak: bin %d, %.2f Hz, amplitude %.6g\n",
		result.Peak.Index, result.Peak.Frequency, result.Peak.Amplitude)
}

func printWindows(size int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WINDOW\tENBW [bins]")

	for _, name := range windowNames {
		t, err := window.Parse(name)
		if err != nil {
			fatal(err)
		}

		coeffs, err := window.Generate(t, size)
		if err != nil {
			fatal(err)
		}

		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			fatal(err)
		}

		fmt.Fprintf(w, "%s\t%.4f\n", name, enbw)
	}

	w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "specinfo:", err)
	os.Exit(1)
}
