package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pixelbrush/gridtone"
)

var (
	flagID             string
	flagName           string
	flagWidth          int
	flagHeight         int
	flagMode           string
	flagPaletteSize    int
	flagBuckets        int
	flagAlphaThreshold int
	flagOutput         string
	flagPreview        string
	flagScale          int
	flagJobs           int
	flagLevel          string
)

var rootCmd = &cobra.Command{
	Use:   "gridtone [flags] input_image...",
	Short: "Convert images into color-by-number drawing templates",
	Long: `Gridtone converts an image into a fixed-size grid of palette indices and
emits it as a Swift DrawingTemplate factory snippet. The palette is either a
prefix of the built-in catalog (fixed) or derived from the image itself
(tonal, kmeans, dominant).`,
	Args:              cobra.MinimumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              run,
}

func init() {
	fl := rootCmd.Flags()
	fl.StringVar(&flagID, "id", "", "DrawingTemplate id (default: input file name)")
	fl.StringVar(&flagName, "name", "", "DrawingTemplate name / function suffix (default: derived from input file name)")
	fl.IntVar(&flagWidth, "width", 15, "target grid width in pixels")
	fl.IntVar(&flagHeight, "height", 15, "target grid height in pixels")
	fl.StringVar(&flagMode, "mode", "tonal", "palette mode: fixed, tonal, kmeans or dominant")
	fl.IntVar(&flagPaletteSize, "palette-size", 32, "catalog prefix length when mode=fixed (16 or 32)")
	fl.IntVar(&flagBuckets, "buckets", 6, "number of palette entries in the derived modes")
	fl.IntVar(&flagAlphaThreshold, "alpha-threshold", gridtone.DefaultAlphaThreshold,
		"pixels below this alpha become transparent (-1)")
	fl.StringVar(&flagOutput, "output", "", "output file for the generated snippet (default: stdout)")
	fl.StringVar(&flagPreview, "preview", "", "optional output file for a PNG preview of the grid")
	fl.IntVar(&flagScale, "scale", 8, "preview block size in pixels per grid cell")
	fl.IntVar(&flagJobs, "jobs", 4, "number of images converted concurrently")
	fl.StringVar(&flagLevel, "level", "info", "log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("conversion failed")
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	return nil
}

func run(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		for flag, value := range map[string]string{
			"--id": flagID, "--name": flagName,
			"--output": flagOutput, "--preview": flagPreview,
		} {
			if value != "" {
				return fmt.Errorf("%s can only be used with a single input image", flag)
			}
		}
	}

	jobs := flagJobs
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, input := range args {
		input := input
		g.Go(func() error {
			return convertOne(input, len(args) == 1)
		})
	}
	return g.Wait()
}

func convertOne(input string, single bool) error {
	opts := gridtone.Options{
		Width:          flagWidth,
		Height:         flagHeight,
		Mode:           gridtone.Mode(flagMode),
		PaletteSize:    flagPaletteSize,
		Buckets:        flagBuckets,
		AlphaThreshold: flagAlphaThreshold,
	}

	img, err := gridtone.LoadImage(input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	pixels := gridtone.ImagePixels(gridtone.ResizeImage(img, opts.Width, opts.Height))
	tpl, err := gridtone.Convert(pixels, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	snippet := snippetIdentity(input)
	output := gridtone.RenderComment(gridtone.ModeDescription(opts, tpl.Palette), tpl) +
		"\n" + gridtone.RenderSnippet(snippet, tpl) + "\n"

	dest := flagOutput
	if !single {
		dest = strings.TrimSuffix(input, filepath.Ext(input)) + ".swift"
	}
	if dest == "" {
		fmt.Print(output)
	} else {
		if err := os.WriteFile(dest, []byte(output), 0644); err != nil {
			return err
		}
	}

	if flagPreview != "" {
		if err := writePreview(flagPreview, tpl); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"input":  input,
		"mode":   opts.Mode,
		"name":   snippet.Name,
		"colors": len(tpl.Used),
	}).Info("template generated")
	return nil
}

func writePreview(path string, tpl *gridtone.Template) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, gridtone.PreviewImage(tpl, flagScale))
}

func snippetIdentity(input string) gridtone.Snippet {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	id := flagID
	if id == "" {
		id = strings.ToLower(base)
	}
	name := flagName
	if name == "" {
		name = exportName(base)
	}
	return gridtone.Snippet{ID: id, Name: name}
}

// exportName turns a file base name into a Swift-friendly CamelCase suffix.
func exportName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Template"
	}
	return b.String()
}
