package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"link-swap/config"
	"link-swap/helpers"
	"link-swap/rewrite"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	directory := pflag.StringP("directory", "d", ".", "root directory to scan")
	extensions := pflag.StringP("extensions", "e", "", "comma-separated list of file extensions to process (default \".md\")")
	quiet := pflag.BoolP("quiet", "q", false, "suppress per-file output and show a progress bar instead")
	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		return fmt.Errorf("expected exactly two arguments: <owner/repo@branch> <domain>")
	}

	ref, err := helpers.ParseRepoRef(pflag.Arg(0))
	if err != nil {
		return err
	}
	domain := pflag.Arg(1)

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	extList := *extensions
	if extList == "" {
		extList = cfg.DefaultExtensions
	}
	exts, err := helpers.ParseExtensions(extList)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(*directory)
	if err != nil {
		absRoot = *directory
	}

	fmt.Printf("[-] Repository: %s\n", ref)
	fmt.Printf("[-] Custom Domain: %s\n", domain)
	fmt.Printf("[-] Scanning Directory: %s\n", absRoot)
	fmt.Printf("[-] File Extensions: %s\n", strings.Join(exts, ", "))
	fmt.Println(strings.Repeat("-", 40))

	rw := rewrite.New(ref, domain)
	files := helpers.CollectFiles(*directory, exts)

	var bar *pb.ProgressBar
	if *quiet && len(files) > 0 {
		bar = progressBar(cfg.ProgressBarStyle, len(files))
	}

	totalFiles := 0
	totalReplacements := 0
	for _, file := range files {
		rel, err := filepath.Rel(*directory, file)
		if err != nil {
			rel = file
		}

		if !*quiet {
			fmt.Printf("Processing: %s\n", rel)
		}
		totalFiles++

		count, err := rw.RewriteFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n", color.RedString("✗"), err)
		} else {
			if count > 0 && !*quiet {
				fmt.Printf("  %s Replaced %d links.\n", color.GreenString("✓"), count)
			}
			totalReplacements += count
		}

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Println(strings.Repeat("-", 40))
	if totalFiles == 0 {
		fmt.Printf("[-] No files with extensions (%s) found in %s\n", strings.Join(exts, ", "), *directory)
		return nil
	}
	fmt.Printf("[-] Processed %d file(s)\n", totalFiles)
	fmt.Printf("[-] Made a total of %d replacement(s)\n", totalReplacements)

	return nil
}

func progressBar(style string, total int) *pb.ProgressBar {
	if style == "" {
		style = config.DefaultConfig().ProgressBarStyle
	}
	tmpl := fmt.Sprintf(
		`{{ bar . "|" "%s" "%s" " " "|" }} {{ percent . }} {{ counters . }}`,
		style, style,
	)
	return pb.ProgressBarTemplate(tmpl).Start(total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <owner/repo@branch> <domain> [flags]\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Rewrites jsDelivr and raw GitHub links pointing at the given\nrepository branch to the custom domain.\n\nFlags:\n")
	pflag.PrintDefaults()
}
