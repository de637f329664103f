// Command posterdemo renders a couple of sample posters into tmp/ to
// eyeball layout, rounded corners and RTL handling.
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/user/postergen/pkg/adapters/logger"
	"github.com/user/postergen/pkg/poster"
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

func main() {
	log := logger.NewConsole(ports.LevelDebug)
	ctx := context.Background()

	if err := os.MkdirAll("tmp", 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := basic(ctx, log); err != nil {
		fmt.Fprintf(os.Stderr, "basic: %v\n", err)
		os.Exit(1)
	}
	if err := rtl(ctx, log); err != nil {
		fmt.Fprintf(os.Stderr, "rtl: %v\n", err)
		os.Exit(1)
	}
}

func basic(ctx context.Context, log ports.Logger) error {
	gen := poster.New(800, 600, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, poster.WithLogger(log))

	gen.AddBackground(scene.Background{
		Color:  color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
		Radius: scene.UniformRadius(20),
	})
	gen.AddText(scene.Text{
		Text:     "Hello, World!",
		X:        400,
		Y:        200,
		FontSize: 64,
		Color:    color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Align:    scene.AlignCenter,
		Bold:     true,
		ZIndex:   2,
	})
	gen.AddText(scene.Text{
		Text:     "A poster generation library",
		X:        400,
		Y:        280,
		FontSize: 24,
		Color:    color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		Align:    scene.AlignCenter,
		ZIndex:   2,
	})

	if err := gen.GenerateFile(ctx, "tmp/basic.png"); err != nil {
		return err
	}
	fmt.Println("Generated tmp/basic.png")
	return nil
}

func rtl(ctx context.Context, log ports.Logger) error {
	gen := poster.New(800, 600, color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}, poster.WithLogger(log))

	gen.AddText(scene.Text{
		Text:     "Multi-Language Poster Example",
		X:        400,
		Y:        80,
		FontSize: 32,
		Color:    color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		Align:    scene.AlignCenter,
		Bold:     true,
	})

	arabicBg := color.RGBA{R: 0xff, G: 0xe6, B: 0xe6, A: 0xff}
	gen.AddText(scene.Text{
		Text:            "مرحبا بالعالم",
		X:               400,
		Y:               180,
		FontSize:        48,
		Color:           color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
		Align:           scene.AlignCenter,
		Direction:       scene.DirectionRTL,
		BackgroundColor: &arabicBg,
		Padding:         15,
		BorderRadius:    scene.UniformRadius(10),
	})

	persianBg := color.RGBA{R: 0xe3, G: 0xf2, B: 0xfd, A: 0xff}
	gen.AddText(scene.Text{
		Text:            "سلام دنیا",
		X:               400,
		Y:               280,
		FontSize:        42,
		Color:           color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
		Align:           scene.AlignCenter,
		Direction:       scene.DirectionRTL,
		BackgroundColor: &persianBg,
		Padding:         12,
		BorderRadius:    scene.UniformRadius(10),
	})

	if err := gen.GenerateFile(ctx, "tmp/rtl.png"); err != nil {
		return err
	}
	fmt.Println("Generated tmp/rtl.png")
	return nil
}
