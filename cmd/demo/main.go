package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"hostel-franchise/internal/anim"
	"hostel-franchise/internal/carousel"
	"hostel-franchise/internal/config"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/scenario"

	"github.com/charmbracelet/lipgloss"
)

// Demo:
// - Load the scenario presets and the custom card defaults
// - Step through the scenario carousel the way autoplay does
// - Count each card's range up from zero, frame by frame
func main() {
	cfgPath := flag.String("config", "", "Path to YAML or TOML config (optional)")
	slides := flag.Int("slides", 4, "Number of carousel slides to show")
	fps := flag.Int("fps", 30, "Frames per second for the count-up")
	instant := flag.Bool("instant", false, "Print final values only (no animation)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		panic(err)
	}
	presets, err := data.Scenarios()
	if err != nil {
		panic(err)
	}
	all := scenario.Build(presets)
	if len(all) == 0 {
		panic("no scenarios")
	}
	for _, s := range all {
		if cs, ok := s.(*scenario.CustomScenario); ok {
			cs.Bounds = cfg.Calculator.CustomBounds.Bounds()
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5A1F"))
	money := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#A1A1AA"))

	step := time.Second / time.Duration(max(*fps, 1))
	car := carousel.New(len(all))
	for i := 0; i < *slides; i++ {
		if i > 0 {
			car.Next()
		}
		card := all[car.Index].Card(cfg.Calculator.CustomInputs())

		fmt.Println()
		fmt.Println(title.Render(fmt.Sprintf("%s %s", card.Preset.Emoji, card.Preset.Title)) + "  " + muted.Render(card.Preset.Tagline))
		fmt.Println(muted.Render(fmt.Sprintf("  %s · %s", card.Preset.ADR, card.Preset.Occupancy)))

		if !*instant {
			los, his := anim.RangeFrames(card.Low, card.High, step)
			for f := range los {
				line := currency.FormatRange(los[f], his[f])
				fmt.Fprintf(os.Stdout, "\r  %s", money.Render(line))
				time.Sleep(step)
			}
		}
		fmt.Fprintf(os.Stdout, "\r  %s  %s\n", money.Render(card.Display), muted.Render(card.INR))
		for _, b := range card.Preset.Bullets {
			fmt.Println(muted.Render("  • " + b))
		}
	}

	fmt.Println()
	fmt.Println(muted.Render(fmt.Sprintf("autoplay: slide %d after %s · %s",
		carousel.AutoplayIndex(len(all), 0, time.Duration(*slides)*carousel.AutoplayInterval, carousel.AutoplayInterval, false)+1,
		time.Duration(*slides)*carousel.AutoplayInterval,
		currency.RateNote())))
}
