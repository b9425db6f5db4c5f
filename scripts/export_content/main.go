package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/camthoi/blog/internal/export"
	"github.com/camthoi/blog/internal/store"
)

func main() {
	var dbPath string
	var dir string
	var doImport bool
	flag.StringVar(&dbPath, "db", "blog.db", "sqlite db path")
	flag.StringVar(&dir, "dir", "content", "content directory")
	flag.BoolVar(&doImport, "import", false, "import the directory into the store instead of exporting")
	flag.Parse()

	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ex := export.New(st)
	if doImport {
		count, err := ex.Import(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("imported %d posts from %s\n", count, dir)
		return
	}

	count, about, err := ex.Export(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exported %d posts to %s (about page: %v)\n", count, dir, about)
}
