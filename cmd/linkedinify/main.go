package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/HussainAbbasDev/linkedineese/internal/client"
	"github.com/HussainAbbasDev/linkedineese/internal/form"
)

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	copyOut := flag.Bool("copy", false, "copy the result to the system clipboard")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [text...]\n\nWith no text arguments the input is read from stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	text, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*url, &http.Client{})
	f := form.New(form.TransformerFunc(func(ctx context.Context, text string) (string, error) {
		res, err := api.Transform(ctx, text)
		return res.Text, err
	}), form.ClipboardFunc(clipboard.WriteAll))

	f.SetInput(text)
	fmt.Fprintln(os.Stderr, "Transforming...")
	f.Submit(ctx)

	s := f.State()
	if s.Error != "" {
		fmt.Fprintln(os.Stderr, s.Error)
		os.Exit(1)
	}
	fmt.Println(s.Output)

	if *copyOut {
		if err := f.Copy(); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
			os.Exit(1)
		}
		if f.State().Copied {
			fmt.Fprintln(os.Stderr, "Copied!")
		}
	}
}

// readInput joins args, or reads all of r when there are none.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
