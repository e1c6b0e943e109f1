// Command cloudimg converts an ASCII PCD point cloud into its paired
// position/colour images and back-compatible exports: a colour PNG, a
// Z-channel heatmap PNG and a CloudCompare .asc file. With -db set, the
// cloud is also saved into a local sqlite store.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/banshee-data/cloudgrid/internal/cloud"
	"github.com/banshee-data/cloudgrid/internal/cloudstore"
	"github.com/banshee-data/cloudgrid/internal/grid"
	"github.com/banshee-data/cloudgrid/internal/visualiser"
)

func main() {
	input := flag.String("pcd", "", "input ASCII PCD file (fields x y z rgb)")
	outDir := flag.String("out", ".", "output directory")
	dbPath := flag.String("db", "", "optional sqlite store to save the cloud into")
	flag.Parse()

	if *input == "" {
		log.Fatal("cloudimg: -pcd is required")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("cloudimg: open %s: %v", *input, err)
	}
	c, err := cloud.ReadPCD(f)
	f.Close()
	if err != nil {
		log.Fatalf("cloudimg: read %s: %v", *input, err)
	}
	log.Printf("cloudimg: loaded %dx%d cloud (%d points)", c.Width, c.Height, len(c.Points))

	pos, color, err := cloud.ToImages(c)
	if err != nil {
		log.Fatalf("cloudimg: convert: %v", err)
	}
	log.Printf("cloudimg: position grid %s, colour grid %s",
		grid.TypeString(pos.Type()), grid.TypeString(color.Type()))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("cloudimg: %v", err)
	}

	writeFile(filepath.Join(*outDir, "color.png"), func(w *os.File) error {
		return visualiser.WritePNG(w, color)
	})
	writeFile(filepath.Join(*outDir, "depth_z.png"), func(w *os.File) error {
		return visualiser.RenderHeatMap(w, pos, 2, "Z position")
	})
	writeFile(filepath.Join(*outDir, "cloud.asc"), func(w *os.File) error {
		return cloud.ExportASC(w, c)
	})

	if *dbPath != "" {
		store, err := cloudstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("cloudimg: open store: %v", err)
		}
		defer store.Close()

		id, err := store.SaveCloud(c)
		if err != nil {
			log.Fatalf("cloudimg: save cloud: %v", err)
		}
		log.Printf("cloudimg: saved cloud %s to %s", id, *dbPath)
	}
}

func writeFile(path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("cloudimg: create %s: %v", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		log.Fatalf("cloudimg: write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("cloudimg: close %s: %v", path, err)
	}
	log.Printf("cloudimg: wrote %s", path)
}
