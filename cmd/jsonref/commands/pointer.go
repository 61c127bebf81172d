package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgpinkus/jsonref/internal/cliutil"
	"github.com/sgpinkus/jsonref/internal/render"
	"github.com/sgpinkus/jsonref/internal/uriutil"
)

// PointerFlags contains flags for the pointer command
type PointerFlags struct {
	Format string
}

// SetupPointerFlags creates and configures a FlagSet for the pointer command.
func SetupPointerFlags() (*flag.FlagSet, *PointerFlags) {
	fs := flag.NewFlagSet("pointer", flag.ContinueOnError)
	flags := &PointerFlags{}

	fs.StringVar(&flags.Format, "f", FormatJSON, "output format (json or yaml)")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format (json or yaml)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsonref pointer [flags] <file|url> <pointer>\n\n")
		cliutil.Writef(fs.Output(), "Load a document, resolve every JSON Reference in it, and print the value\n")
		cliutil.Writef(fs.Output(), "the JSON Pointer addresses. An empty pointer prints the whole document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsonref pointer schema.json /definitions/user\n")
		cliutil.Writef(fs.Output(), "  jsonref pointer --format yaml schema.yaml \"\"\n")
		cliutil.Writef(fs.Output(), "  jsonref pointer https://example.com/schema.json /properties/name\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Pointer tokens use ~0 for '~' and ~1 for '/' (RFC 6901)\n")
		cliutil.Writef(fs.Output(), "  - A pointer not starting with '/' is looked up as an $id anchor first\n")
		cliutil.Writef(fs.Output(), "  - Values that contain themselves cannot be printed and fail with an error\n")
	}

	return fs, flags
}

// HandlePointer executes the pointer command
func HandlePointer(args []string) error {
	fs, flags := SetupPointerFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("pointer command requires exactly a document path and a JSON pointer")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	return runPointer(os.Stdout, fs.Arg(0), fs.Arg(1), flags.Format)
}

func runPointer(w io.Writer, doc, pointer, format string) error {
	uri, err := uriutil.FromPathOrURI(doc)
	if err != nil {
		return err
	}

	target := uri
	if pointer != "" {
		if strings.Contains(uri, "#") {
			target = uri + pointer
		} else {
			target = uri + "#" + pointer
		}
	}

	v, err := newCache().Pointer(target)
	if err != nil {
		return err
	}

	if render.Cyclic(v) {
		return fmt.Errorf("value at %q contains a cycle and cannot be serialized", pointer)
	}
	return OutputStructured(w, v, format)
}
