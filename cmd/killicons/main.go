package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"killicons"
	"killicons/utils"
)

const helpBanner = `
┬┌─┬┬  ┬  ┬┌─┐┌─┐┌┐┌┌─┐
├┴┐││  │  ││  │ ││││└─┐
┴ ┴┴┴─┘┴─┘┴└─┘└─┘┘└┘└─┘

TF2 kill icon sprite sheet and CSS generator.
    Version: %s

`

// maxMissingShown limits how many unresolved names the summary lists.
const maxMissingShown = 20

// Version indicates the current build version.
var Version string

var (
	// Flags
	assets    = flag.String("assets", "", "Directory with the extracted official assets (required)")
	community = flag.String("community", "", "Directory with the community icon mod (optional)")
	outDir    = flag.String("out", "dist", "Output directory")
	imgName   = flag.String("img", "killicons.png", "Composite image file name")
	rowWidth  = flag.Int("rowwidth", killicons.DefaultRowWidth, "Target row width of the composite sheet")
	quality   = flag.Int("quality", 90, "JPEG quality, used when the image name has a .jpg extension")
	preview   = flag.Bool("preview", false, "Also render a labeled preview image")
	weapons   = flag.String("weapons", "", "File with one weapon name per line to filter the preview")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *assets == "" {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide the official asset directory with -assets!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	src, err := killicons.NewDirSource(*assets)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to open the asset source: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	gen := &killicons.Generator{
		Assets:   src,
		RowWidth: *rowWidth,
		Quality:  *quality,
		Verbose:  true,
	}

	if *community != "" {
		communitySrc, err := killicons.NewDirSource(*community)
		if err != nil {
			log.Printf(utils.DecorateText("Warning: community mod not available: %v", utils.ErrorMessage), err)
		} else {
			gen.Community = communitySrc
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to create the output directory: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	imgOut := filepath.Join(*outDir, *imgName)
	cssOut := filepath.Join(*outDir, strings.TrimSuffix(*imgName, filepath.Ext(*imgName))+".css")

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("☠ KILLICONS", utils.StatusMessage),
		utils.DecorateText("is generating the sprite sheet...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// The spinner garbles the output when stderr is redirected to a file.
	tty := term.IsTerminal(int(os.Stderr.Fd()))
	if tty {
		spinner.Start()
	}

	now := time.Now()
	summary, err := gen.Generate(imgOut, cssOut)
	if tty {
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("☠ KILLICONS", utils.StatusMessage),
			utils.DecorateText("is generating the sprite sheet... ✔", utils.DefaultMessage))
		spinner.Stop()
	}
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the sprite sheet: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	if *preview {
		if err := writePreview(summary, imgOut); err != nil {
			log.Fatalf(
				utils.DecorateText("\nError rendering the preview: %s", utils.ErrorMessage),
				utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
			)
		}
	}

	printSummary(summary, time.Since(now))
}

// writePreview re-reads the generated artifacts and renders the labeled
// preview table next to them.
func writePreview(summary *killicons.Summary, imgOut string) error {
	data, err := os.ReadFile(imgOut)
	if err != nil {
		return err
	}
	composite, err := killicons.DecodeSheet(data)
	if err != nil {
		return err
	}

	var names []string
	if *weapons != "" {
		names, err = readWeaponList(*weapons)
		if err != nil {
			return err
		}
	}

	previewPath := strings.TrimSuffix(imgOut, filepath.Ext(imgOut)) + "_preview.png"
	out, err := os.Create(previewPath)
	if err != nil {
		return err
	}
	defer out.Close()

	css, err := os.ReadFile(summary.CSSPath)
	if err != nil {
		return err
	}
	positions := killicons.ParseCSSPositions(string(css))

	return killicons.WritePreview(out, composite, positions, names)
}

// readWeaponList reads a plain list of weapon names, one per line.
func readWeaponList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names, sc.Err()
}

// printSummary displays the relevant information about the finished run.
func printSummary(summary *killicons.Summary, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "\n%d/%d icons packed into a %dx%d sheet\n",
		summary.Icons, summary.Definitions, summary.Width, summary.Height)

	if len(summary.Missing) > 0 {
		fmt.Fprintf(os.Stderr, utils.DecorateText("%d names have no icons:\n", utils.ErrorMessage), len(summary.Missing))
		for i, name := range summary.Missing {
			if i == maxMissingShown {
				fmt.Fprintf(os.Stderr, "  ... and %d more\n", len(summary.Missing)-maxMissingShown)
				break
			}
			fmt.Fprintf(os.Stderr, "  - %s\n", name)
		}
	}

	fmt.Fprintf(os.Stderr, "\nThe sprite sheet has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(summary.ImagePath), utils.SuccessMessage),
		utils.DefaultColor,
	)
	fmt.Fprintf(os.Stderr, "The stylesheet has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(summary.CSSPath), utils.SuccessMessage),
		utils.DefaultColor,
	)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(elapsed), utils.SuccessMessage))
}
