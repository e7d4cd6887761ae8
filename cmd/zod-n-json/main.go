package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	zodnjson "github.com/HarveyLijh/zod-n-json"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "to-json":
		toJSONCmd(os.Args[2:])
	case "to-zod":
		toZodCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "zod-n-json CLI\n\nUsage:\n  zod-n-json to-json [-comments] [-format json|yaml] [-o out] [file]\n  zod-n-json to-zod [-format json|yaml] [-o out] [file]\n\nReads the input file, or stdin when no file is given.")
}

func toJSONCmd(args []string) {
	fs := flag.NewFlagSet("to-json", flag.ExitOnError)
	var comments bool
	var format string
	var out string
	fs.BoolVar(&comments, "comments", false, "emit descriptions as comment lines")
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)

	src := readInput(fs.Args())
	var doc string
	var err error
	switch format {
	case "yaml":
		doc, err = zodnjson.ConvertSourceToYAML(src, comments)
	case "json":
		doc, err = zodnjson.ConvertSourceToDocument(src, comments)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("%v", err)
	}
	writeOutput(out, doc)
}

func toZodCmd(args []string) {
	fs := flag.NewFlagSet("to-zod", flag.ExitOnError)
	var format string
	var out string
	fs.StringVar(&format, "format", "json", "input format: json or yaml")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)

	doc := readInput(fs.Args())
	var src string
	var err error
	switch format {
	case "yaml":
		src, err = zodnjson.ConvertYAMLToSource(doc)
	case "json":
		src, err = zodnjson.ConvertDocumentToSource(doc)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("%v", err)
	}
	writeOutput(out, src)
}

func readInput(args []string) string {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return string(data)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	return string(data)
}

func writeOutput(path, text string) {
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text += "\n"
	}
	if path == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		fatalf("writing %s: %v", path, err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
