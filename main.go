// Command tether renders box-and-connector scenes. It reads a scene as
// JSON (from a file or stdin), routes every connector and writes the
// result in the chosen format. With -i it opens the interactive
// previewer instead.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tether/diagram"
	"tether/export"
	"tether/render"
	"tether/terminal"
)

func main() {
	var (
		format      = flag.String("format", "svg", "output format: svg, png, ascii or json")
		output      = flag.String("o", "", "output file (default stdout)")
		autoName    = flag.Bool("auto", false, "derive the output file name from the scene name")
		interactive = flag.Bool("i", false, "open the interactive previewer")
		listFormats = flag.Bool("list-formats", false, "list available output formats")
	)
	flag.Usage = usage
	flag.Parse()

	if *listFormats {
		for _, f := range export.GetAvailableFormats() {
			fmt.Println(f)
		}
		return
	}

	if *interactive {
		if err := terminal.NewPreview().Run(); err != nil {
			log.Fatalf("previewer: %v", err)
		}
		return
	}

	scene, err := loadScene(flag.Arg(0))
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	exporter, err := export.NewExporter(f)
	if err != nil {
		log.Fatal(err)
	}

	out, err := exporter.Export(render.ComposeScene(scene))
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	dest := *output
	if dest == "" && *autoName {
		name := scene.Metadata.Name
		if name == "" {
			name = "scene"
		}
		dest = strings.ReplaceAll(name, " ", "-") + exporter.GetFileExtension()
	}
	if dest == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		log.Fatalf("write %s: %v", dest, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%s)\n", dest, exporter.GetFormatName())
}

// loadScene reads a scene from the named file, or from stdin when the
// name is empty or "-".
func loadScene(name string) (*diagram.Scene, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}

	var scene diagram.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene JSON: %w", err)
	}
	return &scene, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `tether - box connector renderer

Usage:
  tether [flags] [scene.json]

Reads a scene from the given file (or stdin) and writes the rendered
output. Flags:

`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  tether -format svg scene.json > scene.svg
  tether -format png -o scene.png scene.json
  cat scene.json | tether -format ascii
  tether -i
`)
}
