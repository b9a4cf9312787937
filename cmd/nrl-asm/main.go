// NRL assembler CLI - assembles text source into binary programs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/nrl/manifest"
	"github.com/chazu/nrl/pkg/asm"
	"github.com/chazu/nrl/server"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	output := flag.String("o", "", "Output file (default: <input>.nrlb, or out.nrlb for stdin)")
	disasm := flag.Bool("disasm", false, "Disassemble instead of writing a binary (input may be source or binary)")
	showBytes := flag.Bool("bytes", false, "Show raw instruction bytes in disassembly")
	hexOut := flag.Bool("hex", false, "Write the program as a hex dump to stdout")
	debugInfo := flag.Bool("debug-info", false, "Write a <output>.dbg debug info sidecar")
	manifestDir := flag.String("manifest", "", "Directory with an nrl.toml; its exports register as extensions")
	lspMode := flag.Bool("lsp", false, "Start the language server on stdio")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nrl-asm [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Assembles NRL source into a binary program. Reads stdin when no file is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm prog.asm                   # Assemble to prog.nrlb\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -o build/prog.bin prog.asm # Assemble to a chosen path\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -disasm prog.nrlb          # Disassemble a binary\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -disasm -bytes prog.asm    # Listing with raw encoding\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -hex prog.asm              # Hex dump to stdout\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -debug-info prog.asm       # Also write prog.nrlb.dbg\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -manifest ./ext prog.asm   # Register ext/nrl.toml exports\n")
		fmt.Fprintf(os.Stderr, "  nrl-asm -lsp                       # Language server on stdio\n")
	}
	flag.Parse()

	assembler := asm.NewAssembler()

	if *manifestDir != "" {
		m, err := manifest.Load(*manifestDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ids, err := manifest.NewDepResolver(m, *verbose).RegisterAll(assembler.Resolver())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Printf("Registered %d extension exports from %s\n", len(ids), *manifestDir)
		}
	}

	if *lspMode {
		commonlog.Configure(logVerbosity(*verbose), nil)
		if err := server.NewLSP(assembler).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "LSP server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	input, inputName, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *disasm {
		d := asm.NewDisassembler().WithBytes(*showBytes)
		listing, err := disassemble(d, assembler, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(listing)
		return
	}

	prog, err := assembler.Assemble(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	encoded := prog.Encode()

	if *verbose {
		fmt.Printf("Assembled %d instructions, %d code bytes, %d data bytes, entry %d\n",
			len(prog.Instructions), prog.CodeSize(), len(prog.DataSection), prog.EntryPoint)
	}

	if *hexOut {
		writeHexDump(os.Stdout, encoded)
		return
	}

	outPath := *output
	if outPath == "" {
		outPath = defaultOutput(inputName)
	}
	if err := os.WriteFile(outPath, encoded, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(encoded))
	}

	if *debugInfo {
		blob, err := assembler.DebugInfo().Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dbgPath := outPath + ".dbg"
		if err := os.WriteFile(dbgPath, blob, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Printf("Wrote %s (%d bytes)\n", dbgPath, len(blob))
		}
	}
}

// readInput reads the single positional file argument, or stdin when
// none is given.
func readInput(args []string) ([]byte, string, error) {
	if len(args) > 1 {
		return nil, "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return data, "", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

// disassemble accepts either an assembled binary or assembly source,
// detected by the format magic.
func disassemble(d *asm.Disassembler, assembler *asm.Assembler, input []byte) (string, error) {
	if listing, err := d.DisassembleBytes(input); err == nil {
		return listing, nil
	}
	prog, err := assembler.Assemble(string(input))
	if err != nil {
		return "", err
	}
	return d.Disassemble(prog), nil
}

// defaultOutput derives the output path from the input name.
func defaultOutput(inputName string) string {
	if inputName == "" {
		return "out.nrlb"
	}
	base := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return base + ".nrlb"
}

func writeHexDump(w io.Writer, data []byte) {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(w, "%08x: ", off)
		for i := off; i < end; i++ {
			fmt.Fprintf(w, "%02x ", data[i])
		}
		fmt.Fprintln(w)
	}
}

func logVerbosity(verbose bool) int {
	if verbose {
		return 1
	}
	return 0
}
