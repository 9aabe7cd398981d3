// Command audiofp is a thin CLI around the audiofp fingerprinting core:
// fingerprint a single file, batch-process a directory, render a debug
// spectrogram PNG, or dump the contents of an encoded fingerprint blob.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/sonicglyph/audiofp/pkg/audiofp"
	"github.com/sonicglyph/audiofp/pkg/audiofp/batch"
	"github.com/sonicglyph/audiofp/pkg/audiofp/codec"
	"github.com/sonicglyph/audiofp/pkg/audiofp/pipeline"
	"github.com/sonicglyph/audiofp/pkg/audiofp/runlog"
	"github.com/sonicglyph/audiofp/pkg/logger"
	"github.com/sonicglyph/audiofp/pkg/utils"
)

func main() {
	log := logger.GetLogger()
	printBanner()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	log.Infof("executing command: %s", command)

	switch command {
	case "fingerprint":
		handleFingerprint()
	case "batch":
		handleBatch()
	case "spectrogram":
		handleSpectrogram()
	case "decode":
		handleDecode()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: audiofp <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  fingerprint <wav> [-out <bin>]       fingerprint a single WAV file")
	fmt.Println("  batch <dir> [-db <sqlite-path>]      fingerprint every WAV file in a directory")
	fmt.Println("  spectrogram <wav> [-out <png>]       render a debug spectrogram PNG")
	fmt.Println("  decode <bin>                         dump the contents of an encoded fingerprint blob")
}

func printBanner() {
	banner := `
  ____            _ _       __
 / __ \          | (_)     / _|
| |  | |_   _  __| |_  ___| |_ _ __
| |  | | | | |/ _' | |/ _ \  _| '_ \
| |__| | |_| | (_| | | (_) | | | |_) |
 \____/ \__,_|\__,_|_|\___/|_| | .__/
                                | |
       landmark fingerprinting |_|
`
	fmt.Println(banner)
}

func handleFingerprint() {
	log := logger.GetLogger()
	if len(os.Args) < 3 {
		fmt.Println("Usage: audiofp fingerprint <wav> [-out <bin>]")
		os.Exit(1)
	}
	wavPath := os.Args[2]

	fingerprintCmd := flag.NewFlagSet("fingerprint", flag.ExitOnError)
	out := fingerprintCmd.String("out", "", "path to write the encoded fingerprint blob")
	fingerprintCmd.Parse(os.Args[3:])

	p, err := pipeline.New(audiofp.WithLogger(log))
	if err != nil {
		fmt.Printf("❌ Failed to build pipeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🔧 Decoding audio...")
	sample, err := loadWAV(wavPath)
	if err != nil {
		fmt.Printf("❌ Failed to decode %s: %v\n", wavPath, err)
		log.Errorf("loadWAV failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("🎵 Running fingerprint pipeline...")
	fps, err := p.ProcessSample(sample)
	if err != nil {
		fmt.Printf("❌ Fingerprinting failed: %v\n", err)
		log.Errorf("ProcessSample failed: %v", err)
		os.Exit(1)
	}

	stats := audiofp.Statistics(fps)
	fmt.Printf("\n✅ Generated %s fingerprints\n", humanize.Comma(int64(len(fps))))
	fmt.Printf("   %s\n", stats)

	if *out != "" {
		if dir := filepath.Dir(*out); dir != "." {
			if err := utils.MakeDir(dir); err != nil {
				fmt.Printf("❌ Failed to create output directory %s: %v\n", dir, err)
				os.Exit(1)
			}
		}
		if err := os.WriteFile(*out, codec.Encode(fps), 0o644); err != nil {
			fmt.Printf("❌ Failed to write %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("   wrote %s\n", *out)
	}
}

func handleBatch() {
	log := logger.GetLogger()
	if len(os.Args) < 3 {
		fmt.Println("Usage: audiofp batch <dir> [-db <sqlite-path>]")
		os.Exit(1)
	}
	dir := os.Args[2]

	batchCmd := flag.NewFlagSet("batch", flag.ExitOnError)
	dbPath := batchCmd.String("db", "", "path to a sqlite database to record the run in")
	batchCmd.Parse(os.Args[3:])

	p, err := pipeline.New(audiofp.WithLogger(log))
	if err != nil {
		fmt.Printf("❌ Failed to build pipeline: %v\n", err)
		os.Exit(1)
	}

	var samples []audiofp.Sample
	var ids []string

	fmt.Println("📥 Scanning directory for WAV files...")
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".wav" {
			return err
		}
		sample, loadErr := loadWAV(path)
		if loadErr != nil {
			log.Warnf("skipping %s: %v", path, loadErr)
			return nil
		}
		samples = append(samples, sample)
		ids = append(ids, filepath.Base(path))
		return nil
	})
	if err != nil {
		fmt.Printf("❌ Failed to walk %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Printf("🎵 Processing %d file(s)...\n", len(samples))
	run, err := batch.Process(p, samples, ids)
	if err != nil {
		fmt.Printf("❌ Batch processing failed: %v\n", err)
		os.Exit(1)
	}

	var succeeded int
	for _, r := range run.Results {
		if r.Success {
			succeeded++
			fmt.Printf("✅ %s: %s fingerprints (%dms)\n", r.SongID, humanize.Comma(int64(len(r.Fingerprints))), r.ProcessingTimeMs)
		} else {
			fmt.Printf("❌ %s: %s\n", r.SongID, r.ErrorMessage)
		}
	}
	fmt.Printf("\n📚 %d/%d succeeded (run %s)\n", succeeded, len(run.Results), run.ID)

	if *dbPath != "" {
		rl, err := runlog.Open(*dbPath)
		if err != nil {
			fmt.Printf("❌ Failed to open run log %s: %v\n", *dbPath, err)
			os.Exit(1)
		}
		defer rl.Close()
		if err := rl.Record(run); err != nil {
			fmt.Printf("❌ Failed to record run: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("   recorded to %s\n", *dbPath)
	}
}

func handleSpectrogram() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: audiofp spectrogram <wav> [-out <png>]")
		os.Exit(1)
	}
	wavPath := os.Args[2]

	spectrogramCmd := flag.NewFlagSet("spectrogram", flag.ExitOnError)
	out := spectrogramCmd.String("out", "", "path to write the spectrogram PNG")
	spectrogramCmd.Parse(os.Args[3:])
	if *out == "" {
		*out = wavPath + ".png"
	}

	sample, err := loadWAV(wavPath)
	if err != nil {
		fmt.Printf("❌ Failed to decode %s: %v\n", wavPath, err)
		os.Exit(1)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := utils.MakeDir(dir); err != nil {
			fmt.Printf("❌ Failed to create output directory %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	fmt.Println("🔍 Rendering spectrogram...")
	if err := renderSpectrogram(sample, *out); err != nil {
		fmt.Printf("❌ Failed to render spectrogram: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Saved spectrogram to %s\n", *out)
}

func handleDecode() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: audiofp decode <bin>")
		os.Exit(1)
	}
	binPath := os.Args[2]

	buf, err := os.ReadFile(binPath)
	if err != nil {
		fmt.Printf("❌ Failed to read %s: %v\n", binPath, err)
		os.Exit(1)
	}

	fps, err := codec.Decode(buf)
	if err != nil {
		fmt.Printf("❌ Failed to decode %s: %v\n", binPath, err)
		os.Exit(1)
	}

	fmt.Printf("📚 %s fingerprints (%s)\n\n", humanize.Comma(int64(len(fps))), humanize.Bytes(uint64(len(buf))))
	for i, fp := range fps {
		if i >= 10 {
			fmt.Printf("... and %d more\n", len(fps)-10)
			break
		}
		fmt.Printf("%d. hash=0x%08x offset=%dms anchor=%.1fHz target=%.1fHz dt=%dms\n",
			i+1, fp.HashValue, fp.TimeOffsetMs, fp.AnchorFreqHz, fp.TargetFreqHz, fp.TimeDeltaMs)
	}
	fmt.Printf("\n%s\n", audiofp.Statistics(fps))
}
