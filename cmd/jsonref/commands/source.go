package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sgpinkus/jsonref/internal/cliutil"
	"github.com/sgpinkus/jsonref/internal/uriutil"
)

// SetupSourceFlags creates and configures a FlagSet for the source command.
func SetupSourceFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("source", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsonref source <file|url>\n\n")
		cliutil.Writef(fs.Output(), "Load a document and print its original raw text, exactly as read,\n")
		cliutil.Writef(fs.Output(), "unaffected by reference resolution.\n\n")
		cliutil.Writef(fs.Output(), "Examples:\n")
		cliutil.Writef(fs.Output(), "  jsonref source schema.json\n")
		cliutil.Writef(fs.Output(), "  jsonref source https://example.com/schema.yaml\n")
	}

	return fs
}

// HandleSource executes the source command
func HandleSource(args []string) error {
	fs := SetupSourceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("source command requires exactly one document path or URL")
	}

	return runSource(os.Stdout, fs.Arg(0))
}

func runSource(w io.Writer, doc string) error {
	uri, err := uriutil.FromPathOrURI(doc)
	if err != nil {
		return err
	}

	c := newCache()
	if _, err := c.LoadURI(uri); err != nil {
		return err
	}

	src, ok := c.Source(uri)
	if !ok {
		return fmt.Errorf("no source text available for %s", doc)
	}

	_, err = w.Write(src)
	return err
}
