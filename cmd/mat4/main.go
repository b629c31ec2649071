// Command mat4 composes 4x4 transformation matrices from console commands.
//
// Commands are read from a YAML script given by -f, or line by line from
// stdin. The result of each command is printed to stdout.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/seqsense/vecmath/internal/console"
	"github.com/seqsense/vecmath/mat"
)

type options struct {
	outPath string
	points  pointsConfig
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mat4: ")

	var (
		scriptPath = flag.String("f", "", "YAML script to run instead of reading stdin")
		outPath    = flag.String("o", "", "write the final matrix as 16 little-endian float32")
		pointsPath = flag.String("points", "", "transform the points in this xyz text or .pcd file by the final matrix")
		crop       = flag.String("crop", "", "keep only input points inside minx,miny,minz,maxx,maxy,maxz")
		bbox       = flag.Bool("bbox", false, "print the bounding box of the transformed points")
		savePath   = flag.String("save", "", "write the transformed points to this .pcd file")
		precision  = flag.Int("precision", console.DefaultPrecision, "digits after the decimal point")
		history    = flag.Int("history", console.DefaultMaxHistory, "number of undo steps")
	)
	flag.Parse()

	o := options{
		outPath: *outPath,
		points: pointsConfig{
			path:     *pointsPath,
			bbox:     *bbox,
			savePath: *savePath,
		},
	}
	if *crop != "" {
		b, err := parseBox(*crop)
		if err != nil {
			log.Fatalf("-crop: %v", err)
		}
		o.points.crop = &b
	}

	c := console.New()
	c.SetPrecision(*precision)
	c.SetMaxHistory(*history)

	if *scriptPath != "" {
		if err := runScript(c, *scriptPath, os.Stdout); err != nil {
			log.Fatal(err)
		}
	} else if err := runInteractive(c, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}

	if err := finish(c, o, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// finish writes the outputs derived from the final console state.
func finish(c *console.Console, o options, w io.Writer) error {
	m := c.Matrix()
	if o.outPath != "" {
		if err := writeMatrix(o.outPath, m); err != nil {
			return err
		}
	}
	if o.points.path != "" {
		if err := processPoints(o.points, m, c.Precision(), w); err != nil {
			return err
		}
	}
	return nil
}

func runScript(c *console.Console, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := readScript(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if s.Precision != nil {
		c.SetPrecision(*s.Precision)
	}
	if s.History != nil {
		c.SetMaxHistory(*s.History)
	}
	for i, l := range s.Commands {
		res, err := c.Run(l)
		if err != nil {
			return fmt.Errorf("%s: command %d %q: %w", path, i+1, l, err)
		}
		if res != "" {
			fmt.Fprintln(w, res)
		}
	}
	return nil
}

// runInteractive reports command errors and keeps reading.
func runInteractive(c *console.Console, r io.Reader, w, ew io.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		res, err := c.Run(s.Text())
		if err != nil {
			fmt.Fprintf(ew, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(w, res)
		}
	}
	return s.Err()
}

func writeMatrix(path string, m mat.Mat4) error {
	b := mat.NewFloatBuffer(16)
	if err := m.IntoBuffer(b); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, b.Floats()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
