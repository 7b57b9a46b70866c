package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"textart/canvas"
	"textart/core"
)

// Write encodes g as text, one line per row.
func Write(w io.Writer, g *canvas.Grid) error {
	bw := bufio.NewWriter(w)
	rows, _ := g.Size()
	for row := 0; row < rows; row++ {
		if _, err := bw.WriteString(g.Row(row)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read decodes text rows into dst. Characters beyond the grid width are
// ignored, short lines are padded with blanks, and rows past the end of the
// input are left as they were. A trailing carriage return is dropped so
// files written on Windows load cleanly. It returns the number of rows read.
func Read(r io.Reader, dst *canvas.Grid) (int, error) {
	rows, cols := dst.Size()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, cols*4+2), 1<<20)

	row := 0
	for row < rows && sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		dst.SetRow(row, line)
		row++
	}
	if err := sc.Err(); err != nil {
		return row, err
	}
	return row, nil
}

// WriteFile saves g to path, replacing any existing file.
func WriteFile(path string, g *canvas.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrNotWritable, cerr)
		}
	}()

	if err := Write(f, g); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, path, err)
	}
	return nil
}

// ReadFile loads path into a new blank grid of the given size.
func ReadFile(path string, cfg core.GridConfig) (*canvas.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}
	defer f.Close()

	g, err := canvas.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := Read(f, g); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotReadable, path, err)
	}
	return g, nil
}
