package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	"css":  "text/css",
	"js":   "application/javascript",
	"html": "text/html",
}

func main() {
	var (
		inputFile  = flag.String("input", "", "Input file path")
		outputFile = flag.String("output", "", "Output file path")
		fileType   = flag.String("type", "", "File type (CSS, JS, or HTML)")
		all        = flag.Bool("all", false, "Minify templates/ and static/ into -dist")
		distDir    = flag.String("dist", "dist", "Output directory for -all")
	)
	flag.Parse()

	m := newMinifier()

	if *all {
		if err := minifyTree(m, *distDir, "templates", "static"); err != nil {
			log.Fatalf("Minification failed: %v", err)
		}
		fmt.Printf("Minified files are in the '%s' directory\n", *distDir)
		return
	}

	if *inputFile == "" || *outputFile == "" || *fileType == "" {
		log.Fatal("Usage: go run ./cmd/minify -input=<file> -output=<file> -type=<css|js|html> | -all [-dist=dir]")
	}
	mediaType, ok := mediaTypes[strings.ToLower(*fileType)]
	if !ok {
		log.Fatalf("Unsupported file type: %s (supported: css, js, html)", *fileType)
	}
	if err := minifyFile(m, *inputFile, *outputFile, mediaType); err != nil {
		log.Fatalf("Failed to minify %s: %v", *inputFile, err)
	}
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// minifyTree minifies every known asset under the given roots into dist,
// keeping relative paths.
func minifyTree(m *minify.M, dist string, roots ...string) error {
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			mediaType, ok := mediaTypes[strings.TrimPrefix(filepath.Ext(path), ".")]
			if !ok {
				return nil
			}
			return minifyFile(m, path, filepath.Join(dist, path), mediaType)
		})
		if err != nil {
			return fmt.Errorf("minifying %s: %w", root, err)
		}
	}
	return nil
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	ratio := 0.0
	if len(src) > 0 {
		ratio = float64(len(src)-len(minified)) / float64(len(src)) * 100
	}
	fmt.Printf("%s: %d bytes -> %d bytes (%.1f%% reduction)\n", srcPath, len(src), len(minified), ratio)
	return nil
}
