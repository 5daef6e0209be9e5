package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/worldmap"
	"github.com/osuushi/worldmap/export"
	"github.com/osuushi/worldmap/noise"
	"github.com/osuushi/worldmap/render"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Generates a world and writes its cells to disk, standing in for the
// generate and cell layer endpoints of a map server.

var (
	app = kingpin.New("worldmap", "Procedural Voronoi world map generator.")

	generate   = app.Command("generate", "Generate a world and export its cell layer.").Default()
	width      = generate.Flag("width", "Screen width of the map.").Default("1920").Float64()
	height     = generate.Flag("height", "Screen height of the map.").Default("937").Float64()
	density    = generate.Flag("density", "Tiles per axis.").Default("1").Int()
	multiplier = generate.Flag("multiplier", "World size relative to the screen.").Default("1").Int()
	seed       = generate.Flag("seed", "Seed for the lattice jitter.").Default("1337").Int64()
	singleMesh = generate.Flag("single-mesh", "Triangulate all tiles as one mesh.").Bool()
	workers    = generate.Flag("workers", "Maximum concurrent workers.").Default("8").Int()
	out        = generate.Flag("out", "Output directory.").Default(".").String()
	name       = generate.Flag("name", "Base name of the output file. Defaults to a random name.").String()
	format     = generate.Flag("format", "Output format.").Default("json").Enum("json", "svg", "png")
	shading    = generate.Flag("noise", "Noise shading the png output.").Default("perlin").Enum("perlin", "simplex")
	preview    = generate.Flag("imgcat", "Print png output to the terminal.").Bool()
	quiet      = generate.Flag("quiet", "Do not log progress.").Short('q').Bool()
)

func init() {
	petname.NonDeterministicMode()
}

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case generate.FullCommand():
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
			os.Exit(1)
		}
	}
}

func run() error {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if *quiet {
		logger.SetOutput(ioutil.Discard)
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}
	base := *name
	if base == "" {
		base = petname.Generate(2, "-")
	}
	file := base + f.Extension()

	req := worldmap.Request{
		Width:      *width,
		Height:     *height,
		Density:    *density,
		Multiplier: *multiplier,
		Seed:       *seed,
		SingleMesh: *singleMesh,
	}
	w, err := worldmap.Generate(req, worldmap.Options{Workers: *workers, Logger: logger})
	if err != nil {
		return err
	}

	var layer *worldmap.CellLayer
	if f != export.FormatPNG {
		if layer, err = w.CellLayer(); err != nil {
			return err
		}
	}

	writer := &export.Writer{Filesystem: osfs.New(*out)}
	switch f {
	case export.FormatJSON:
		err = writer.JSON(file, layer)
	case export.FormatSVG:
		err = writer.SVG(file, layer, render.Bounds(w.Diagrams))
	case export.FormatPNG:
		style := render.Style{
			Field:   shadingField(*shading, w),
			Outline: true,
			Caption: base,
		}
		err = writer.PNG(file, w.Diagrams, style)
	}
	if err != nil {
		return err
	}

	path := filepath.Join(*out, file)
	fmt.Println(aurora.Green("wrote"), path, aurora.Cyan(fmt.Sprintf("(%d cells)", w.CellCount())))
	if *preview && f == export.FormatPNG {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// shadingField seeds the png shading from the seed the world was actually
// generated with, so a defaulted seed still shades deterministically.
func shadingField(kind string, w *worldmap.World) noise.Field {
	src := noise.NewSource(int(w.Request.Seed))
	if kind == "simplex" {
		return noise.NewSimplex(src, 0.004)
	}
	return noise.NewPerlin(src, 0.004)
}
