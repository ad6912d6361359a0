package main

import (
	"flag"
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/goccy/go-json"
	"github.com/kpango/glg"

	svgpoly "github.com/gucio321/svgpoly/pkg"
	"github.com/gucio321/svgpoly/pkg/geom"
	"github.com/gucio321/svgpoly/pkg/profile"
	"github.com/gucio321/svgpoly/pkg/svgdoc"
)

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	Profile        string
	Samples        uint
	Tolerance      float64
	Polygons       bool
	Inkscape       bool
	Debug          bool
	preset         string
	makePreset     bool
}

type outputPath struct {
	ID        string
	Style     string          `json:",omitempty"`
	Polylines []geom.Polyline `json:",omitempty"`
}

type output struct {
	Header *svgdoc.Header  `json:",omitempty"`
	Paths  []outputPath    `json:",omitempty"`
	Closed []geom.Polyline `json:",omitempty"`
	Open   []geom.Polyline `json:",omitempty"`
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path (stdout if empty)")
	flag.StringVar(&f.Profile, "profile", profile.DefaultName, "settings profile (-samples and -tol override it)")
	flag.UintVar(&f.Samples, "samples", 0, "samples per bezier curve (0: from profile)")
	flag.Float64Var(&f.Tolerance, "tol", 0, "stitching tolerance (0: from profile)")
	flag.BoolVar(&f.Polygons, "polygons", false, "reconstruct closed polygons instead of listing paths")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "convert all objects to paths with inkscape first")
	flag.BoolVar(&f.Debug, "debug", false, "debug output")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if !f.Debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		os.Exit(1)
	}

	// 1.0: settings
	settings, err := profile.Get(f.Profile)
	if err != nil {
		glg.Fatalf("Cannot load profile: %v", err)
	}

	if f.Samples != 0 {
		settings.Samples = f.Samples
	}

	if f.Tolerance != 0 {
		settings.Tolerance = f.Tolerance
	}

	glg.Debugf("Using %d samples per curve and tolerance %g", settings.Samples, settings.Tolerance)

	// 2.0: preprocessing
	inputFile := f.InputFilePath
	if f.Inkscape {
		inputFile = convert(f.InputFilePath)
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputFile, err)
	}

	// 3.0: load
	result := output{}
	if result.Header, err = svgdoc.ReadHeader(data); err != nil {
		glg.Warnf("Cannot read document header: %v", err)
	} else {
		glg.Infof("Document %q: %s x %s (view box: %s)", result.Header.Title, result.Header.Width, result.Header.Height, result.Header.ViewBox)
	}

	paths, err := svgpoly.NewLoader(svgpoly.WithSamples(settings.Samples)).LoadBytes(data)
	if err != nil {
		if paths == nil {
			glg.Fatalf("Cannot load file %s: %v", inputFile, err)
		}

		glg.Warnf("Some paths were not loaded: %v", err)
	}

	glg.Infof("Loaded %d paths", len(paths))

	// 4.0: output
	if f.Polygons {
		result.Closed, result.Open = svgpoly.PathsToClosedPolylines(paths, settings.Tolerance)
		glg.Infof("Found %d closed polygons and %d open chains", len(result.Closed), len(result.Open))
	} else {
		for _, p := range paths {
			result.Paths = append(result.Paths, outputPath{
				ID:        p.ID,
				Style:     p.Style,
				Polylines: p.Polylines,
			})
		}
	}

	out, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		glg.Fatalf("Cannot encode result: %v", err)
	}

	if f.OutputFilePath == "" {
		fmt.Println(string(out))
		return
	}

	if err := os.WriteFile(f.OutputFilePath, out, 0o644); err != nil {
		glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
	}
}

// convert runs inkscape so that every shape (rect, circle, text...) becomes a path.
func convert(input string) string {
	inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := inkscapeProxy.Run(); err != nil {
		glg.Fatalf("Cannot run inkscape: %v", err)
	}

	defer inkscapeProxy.Close()

	glg.Infof("running inkscape pre-processing")
	convertedFile := input + ".svgpoly.svg"
	inkscapeProxy.RawCommands(
		fmt.Sprintf("file-open:%s", input),
		fmt.Sprintf("export-filename:%s", convertedFile),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"export-do",
	)

	glg.Info("inkscape done.")

	return convertedFile
}
