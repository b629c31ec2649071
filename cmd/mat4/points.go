package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/vecmath/mat"
	"github.com/seqsense/vecmath/pointcloud"
)

var errBoxArgs = errors.New("box needs 6 values: minx miny minz maxx maxy maxz")

type pointsConfig struct {
	path     string
	crop     *pointcloud.Box
	bbox     bool
	savePath string
}

// readPoints parses one "x y z" point per line. Empty lines and lines
// starting with # are skipped.
func readPoints(r io.Reader) (pc.Vec3Slice, error) {
	var out pc.Vec3Slice
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 values, got %d", n, len(fields))
		}
		var v pcmat.Vec3
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			v[i] = float32(x)
		}
		out = append(out, v)
	}
	return out, s.Err()
}

// loadPoints reads a .pcd file, or xyz text for any other extension.
func loadPoints(path string) (pc.Vec3RandomAccessor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filepath.Ext(path) == ".pcd" {
		pp, err := pc.Unmarshal(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return pp.Vec3Iterator()
	}
	ps, err := readPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// parseBox parses "minx,miny,minz,maxx,maxy,maxz". Spaces also separate.
func parseBox(s string) (pointcloud.Box, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 6 {
		return pointcloud.Box{}, errBoxArgs
	}
	var v [6]float32
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return pointcloud.Box{}, err
		}
		v[i] = float32(x)
	}
	return pointcloud.Box{
		Min: mat.NewVec3(v[0], v[1], v[2]),
		Max: mat.NewVec3(v[3], v[4], v[5]),
	}, nil
}

// processPoints crops the loaded points in their own frame, then prints
// them transformed by m.
func processPoints(cfg pointsConfig, m mat.Mat4, precision int, w io.Writer) error {
	ra, err := loadPoints(cfg.path)
	if err != nil {
		return err
	}
	if cfg.crop != nil {
		f, err := pointcloud.NewCropFilter(*cfg.crop)
		if err != nil {
			return err
		}
		ra = f.Crop(ra)
	}

	out := &pointcloud.TransformedVec3RandomAccessor{
		Vec3RandomAccessor: ra,
		Trans:              m,
	}
	if err := writePoints(w, out, precision); err != nil {
		return err
	}
	if cfg.bbox {
		b, err := pointcloud.BoundingBox(out)
		if err != nil {
			return err
		}
		if err := writeBox(w, b, precision); err != nil {
			return err
		}
	}
	if cfg.savePath != "" {
		return savePCD(cfg.savePath, ra, m)
	}
	return nil
}

func writePoints(w io.Writer, ra pc.Vec3RandomAccessor, precision int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < ra.Len(); i++ {
		v := ra.Vec3At(i)
		fmt.Fprintf(bw, "%.*f %.*f %.*f\n", precision, v[0], precision, v[1], precision, v[2])
	}
	return bw.Flush()
}

func writeBox(w io.Writer, b pointcloud.Box, precision int) error {
	_, err := fmt.Fprintf(w, "min %.*f %.*f %.*f\nmax %.*f %.*f %.*f\n",
		precision, b.Min[0], precision, b.Min[1], precision, b.Min[2],
		precision, b.Max[0], precision, b.Max[1], precision, b.Max[2],
	)
	return err
}

// savePCD writes the points of ra transformed by m as a binary pcd file.
func savePCD(path string, ra pc.Vec3RandomAccessor, m mat.Mat4) error {
	pp, err := pointcloud.NewXYZ(ra)
	if err != nil {
		return err
	}
	if err := pointcloud.Transform(pp, m); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pc.Marshal(pp, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
