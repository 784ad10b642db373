// huffzip compresses and decompresses single files with the static Huffman
// container format.
//
//	huffzip compress <file>        writes <file>.huff
//	huffzip decompress <file.huff> writes <file>
//	huffzip stat <file.huff>       prints the container header
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"huffzip_go/internal/service"
	"huffzip_go/pkg/huffcodec"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: huffzip compress|decompress|stat <file>")
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "huffzip:", err)
		os.Exit(1)
	}
}

func run(cmd, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch cmd {
	case "compress":
		out, err := huffcodec.Compress(data)
		if err != nil {
			return err
		}
		dst := filepath.Join(filepath.Dir(path), service.CompressedFileName(path))
		return writeOut(dst, out, len(data))
	case "decompress":
		out, err := huffcodec.Decompress(data)
		if err != nil {
			return err
		}
		dst := filepath.Join(filepath.Dir(path), service.OriginalFileName(path))
		return writeOut(dst, out, len(data))
	case "stat":
		c, err := huffcodec.ParseContainer(data)
		if err != nil {
			return err
		}
		fmt.Printf("entries:  %d\n", len(c.Freqs))
		fmt.Printf("original: %d bytes\n", c.Freqs.Total())
		fmt.Printf("bits:     %d (+%d padding)\n", c.BitCount, c.Padding)
		fmt.Printf("payload:  %d bytes\n", len(c.Payload))
		fmt.Printf("ratio:    %.3f\n", c.Ratio())
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func writeOut(dst string, out []byte, inLen int) error {
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes\n", dst, inLen, len(out))
	return nil
}
