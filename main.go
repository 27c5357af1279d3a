package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

var sizes = []int{16, 48, 128}

func main() {
	outDir := flag.String("out", "", "Directory to write icons into")
	confPath := flag.String("config", "", "TOML file overriding colors and output directory")
	show := flag.Bool("preview", false, "Show the rendered icons in a window")
	flag.Parse()

	cfg := DefaultConfig()
	if *confPath != "" {
		var err error
		cfg, err = LoadConfig(*confPath)
		if err != nil {
			log.Fatalln(err)
		}
	}
	if *outDir != "" {
		cfg.Out = *outDir
	}

	icons := make([]*Icon, 0, len(sizes))
	for _, s := range sizes {
		icons = append(icons, Render(s, cfg.Background.NRGBA, cfg.Face.NRGBA))
	}

	if err := writeIcons(cfg.Out, icons); err != nil {
		log.Fatalln(err)
	}
	log.Println("all icons generated")

	if *show {
		preview(icons)
	}
}

func writeIcons(dir string, icons []*Icon) error {
	for _, ic := range icons {
		p := filepath.Join(dir, ic.Name())
		log.Printf("creating %s (%dx%d)", p, ic.Size(), ic.Size())

		f, err := os.Create(p)
		if err != nil {
			return err
		}
		if err := png.Encode(f, ic.Image()); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %v", p, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("saved %s", p)
	}
	return nil
}
