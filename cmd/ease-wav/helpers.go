package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	easing "github.com/rnavega/go-bezier-easing"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	rate := format.SampleRate
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", rate, channels, bitDepth)
	}

	// Total length drives the fade-out position.
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalFrames := int64(duration.Seconds() * float64(rate))

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        rate,
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// curveFlag is a parsed -curve value: either a preset name or explicit
// cubic-bezier() control values.
type curveFlag struct {
	preset         string
	x1, y1, x2, y2 float64
	custom         bool
}

// bezierComponents is the number of values in an explicit x1,y1,x2,y2 spec.
const bezierComponents = 4

// parseCurveFlag parses the -curve flag: a CSS keyword or four
// comma-separated cubic-bezier() control values.
func parseCurveFlag(s string) (curveFlag, error) {
	switch strings.ToLower(s) {
	case "ease", "ease-in", "ease-out", "ease-in-out":
		return curveFlag{preset: strings.ToLower(s)}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != bezierComponents {
		return curveFlag{}, fmt.Errorf("invalid curve %q: want a preset name or x1,y1,x2,y2", s)
	}
	vals := make([]float64, bezierComponents)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return curveFlag{}, fmt.Errorf("invalid curve %q: %w", s, err)
		}
		vals[i] = v
	}
	return curveFlag{x1: vals[0], y1: vals[1], x2: vals[2], y2: vals[3], custom: true}, nil
}

// build constructs the easing curve for a parsed flag.
func (c curveFlag) build() (*easing.Curve, error) {
	if c.custom {
		return easing.NewUnit(c.x1, c.y1, c.x2, c.y2)
	}
	switch c.preset {
	case "ease":
		return easing.Ease(), nil
	case "ease-in":
		return easing.EaseIn(), nil
	case "ease-out":
		return easing.EaseOut(), nil
	default:
		return easing.EaseInOut(), nil
	}
}

// envelope computes the per-frame gain of the fade-in and fade-out
// windows. Gain is 1 between the windows. When a lookup table is
// configured the per-frame cost is one interpolated read; otherwise every
// frame solves the curve exactly.
type envelope struct {
	curve         *easing.Curve
	table         *easing.Table
	fadeInFrames  int64
	fadeOutStart  int64
	fadeOutFrames int64
	totalFrames   int64
}

func newEnvelope(flag curveFlag, rate int, totalFrames int64, fadeIn, fadeOut float64, tableSize int) (*envelope, error) {
	curve, err := flag.build()
	if err != nil {
		return nil, err
	}

	fadeInFrames := int64(fadeIn * float64(rate))
	fadeOutFrames := int64(fadeOut * float64(rate))
	if fadeInFrames+fadeOutFrames > totalFrames {
		return nil, fmt.Errorf("fades (%d frames) exceed input length (%d frames)",
			fadeInFrames+fadeOutFrames, totalFrames)
	}

	env := &envelope{
		curve:         curve,
		fadeInFrames:  fadeInFrames,
		fadeOutFrames: fadeOutFrames,
		fadeOutStart:  totalFrames - fadeOutFrames,
		totalFrames:   totalFrames,
	}
	if tableSize > 0 {
		table, err := curve.Table(tableSize)
		if err != nil {
			return nil, fmt.Errorf("failed to build gain table: %w", err)
		}
		env.table = table
	}
	return env, nil
}

// progressAt evaluates the easing curve at a normalized position in [0,1].
func (e *envelope) progressAt(x float64) float64 {
	if e.table != nil {
		return e.table.At(x)
	}
	p, err := e.curve.At(x)
	if err != nil {
		// Curves accepted by newEnvelope are monotonic; an error here
		// means the curve was mutated mid-run, which applyEnvelope never
		// does.
		panic(err)
	}
	return p
}

// gainAt returns the gain for one frame position.
func (e *envelope) gainAt(frame int64) float64 {
	if frame < e.fadeInFrames {
		return e.progressAt(float64(frame) / float64(e.fadeInFrames))
	}
	if e.fadeOutFrames > 0 && frame >= e.fadeOutStart {
		remaining := float64(e.totalFrames-frame) / float64(e.fadeOutFrames)
		return e.progressAt(remaining)
	}
	return 1
}

// fadeBuffers holds the reusable read buffer and the PCM scale for the
// input bit depth.
type fadeBuffers struct {
	intBuffer *audio.IntBuffer
	maxVal    float64
}

func newFadeBuffers(channels, bitDepth int, format *audio.Format) *fadeBuffers {
	var maxVal float64
	switch bitDepth {
	case bitsPerSample24:
		maxVal = maxInt24
	case bitsPerSample32:
		maxVal = maxInt32
	default:
		maxVal = maxInt16
	}

	return &fadeBuffers{
		intBuffer: &audio.IntBuffer{
			Format: format,
			Data:   make([]int, bufferSize*channels),
		},
		maxVal: maxVal,
	}
}

// wavOutputWriter wraps the output file and fast writer.
type wavOutputWriter struct {
	file   *os.File
	writer *fastWAVWriter
}

// createWAVOutput creates the output file and writer.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	fastWriter, err := newFastWAVWriter(outputFile, sampleRate, bitDepth, channels)
	if err != nil {
		_ = outputFile.Close()
		return nil, fmt.Errorf("failed to create WAV writer: %w", err)
	}

	return &wavOutputWriter{
		file:   outputFile,
		writer: fastWriter,
	}, nil
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// progressTracker prints coarse progress on long files.
type progressTracker struct {
	total       int64
	verbose     bool
	lastPercent int
}

func newProgressTracker(total int64, verbose bool) *progressTracker {
	return &progressTracker{total: total, verbose: verbose, lastPercent: -1}
}

func (p *progressTracker) reportIfNeeded(done int64) {
	if !p.verbose || p.total <= 0 {
		return
	}
	percent := int(done * percentScale / p.total)
	if percent/progressInterval > p.lastPercent/progressInterval {
		log.Printf("Progress: %d%%", percent)
		p.lastPercent = percent
	}
}
