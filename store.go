// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package textindex

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Persistence is a versioned little-endian binary encoding. A stored file
// starts with a magic tag and a format version; each structure then writes
// its payload through WriteTo and restores it through ReadFrom. A load that
// hits a bad magic, an unknown version, an implausible field or a truncated
// stream fails immediately and leaves the target structure unusable; there
// is no partial recovery.

var storeMagic = [4]byte{'T', 'X', 'I', 'X'}

const storeVersion uint32 = 1

// Store writes x to a file at path, prefixed by the magic tag and version.
func Store(x io.WriterTo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create store file")
	}
	defer f.Close()
	if _, err := f.Write(storeMagic[:]); err != nil {
		return errors.Wrap(err, "write magic")
	}
	if err := binary.Write(f, binary.LittleEndian, storeVersion); err != nil {
		return errors.Wrap(err, "write version")
	}
	n, err := x.WriteTo(f)
	if err != nil {
		return errors.Wrapf(err, "store %s", path)
	}
	logger.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(n)+8)).Msg("structure stored")
	return nil
}

// Load reads x back from a file written by Store.
func Load(x io.ReaderFrom, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open store file")
	}
	defer f.Close()
	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return errors.Wrap(err, "read magic")
	}
	if magic != storeMagic {
		return errors.Errorf("load %s: bad magic %q", path, magic[:])
	}
	var version uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return errors.Wrap(err, "read version")
	}
	if version != storeVersion {
		return errors.Errorf("load %s: unsupported format version %d", path, version)
	}
	n, err := x.ReadFrom(f)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	logger.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(n)+8)).Msg("structure loaded")
	return nil
}

// countWriter tracks the number of bytes passed through to the inner writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// countReader tracks the number of bytes read from the inner reader.
type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// WriteTo serializes the vector as length, width and raw words.
func (v *IntVector) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	for _, field := range []any{uint64(v.n), v.width, v.words} {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return cw.n, errors.Wrap(err, "int vector")
		}
	}
	return cw.n, nil
}

// ReadFrom restores a vector serialized by WriteTo.
func (v *IntVector) ReadFrom(r io.Reader) (int64, error) {
	cr := &countReader{r: r}
	var n uint64
	var width uint8
	if err := binary.Read(cr, binary.LittleEndian, &n); err != nil {
		return cr.n, errors.Wrap(err, "int vector length")
	}
	if err := binary.Read(cr, binary.LittleEndian, &width); err != nil {
		return cr.n, errors.Wrap(err, "int vector width")
	}
	if width == 0 || width > wordBits {
		return cr.n, errors.Errorf("int vector width %d out of range", width)
	}
	v.n = int(n)
	v.width = width
	v.words = make([]uint64, (v.n*int(width)+wordBits-1)/wordBits)
	if err := binary.Read(cr, binary.LittleEndian, v.words); err != nil {
		return cr.n, errors.Wrap(err, "int vector words")
	}
	return cr.n, nil
}

// WriteTo serializes the bit vector as length and raw words.
func (v *BitVector) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	for _, field := range []any{uint64(v.n), v.words} {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return cw.n, errors.Wrap(err, "bit vector")
		}
	}
	return cw.n, nil
}

// ReadFrom restores a bit vector serialized by WriteTo.
func (v *BitVector) ReadFrom(r io.Reader) (int64, error) {
	cr := &countReader{r: r}
	var n uint64
	if err := binary.Read(cr, binary.LittleEndian, &n); err != nil {
		return cr.n, errors.Wrap(err, "bit vector length")
	}
	v.n = int(n)
	v.words = make([]uint64, (v.n+wordBits-1)/wordBits)
	if err := binary.Read(cr, binary.LittleEndian, v.words); err != nil {
		return cr.n, errors.Wrap(err, "bit vector words")
	}
	return cr.n, nil
}

// WriteTo serializes the alphabet as sigma, the comp-to-char table and the
// cumulative frequency table.
func (a *Alphabet) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, uint16(a.sigma)); err != nil {
		return cw.n, errors.Wrap(err, "alphabet sigma")
	}
	if _, err := cw.Write(a.comp2char); err != nil {
		return cw.n, errors.Wrap(err, "alphabet symbols")
	}
	for r := 0; r <= a.sigma; r++ {
		if err := binary.Write(cw, binary.LittleEndian, uint64(a.c[r])); err != nil {
			return cw.n, errors.Wrap(err, "alphabet C")
		}
	}
	return cw.n, nil
}

// ReadFrom restores an alphabet serialized by WriteTo, rebuilding the
// char-to-comp direction from the stored symbols.
func (a *Alphabet) ReadFrom(r io.Reader) (int64, error) {
	cr := &countReader{r: r}
	var sigma uint16
	if err := binary.Read(cr, binary.LittleEndian, &sigma); err != nil {
		return cr.n, errors.Wrap(err, "alphabet sigma")
	}
	if sigma > 256 {
		return cr.n, errors.Errorf("alphabet sigma %d out of range", sigma)
	}
	*a = Alphabet{sigma: int(sigma), comp2char: make([]byte, sigma)}
	if _, err := io.ReadFull(cr, a.comp2char); err != nil {
		return cr.n, errors.Wrap(err, "alphabet symbols")
	}
	for rank, ch := range a.comp2char {
		a.char2comp[ch] = byte(rank)
		a.present[ch] = true
	}
	a.c = make([]int, a.sigma+1)
	for rank := 0; rank <= a.sigma; rank++ {
		var v uint64
		if err := binary.Read(cr, binary.LittleEndian, &v); err != nil {
			return cr.n, errors.Wrap(err, "alphabet C")
		}
		a.c[rank] = int(v)
	}
	return cr.n, nil
}

// WriteTo serializes the sampling tables of the rank support. The supported
// bit vector is not part of the payload; after ReadFrom the caller must
// attach it again with SetVector.
func (rs *RankSupport) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	fields := []any{
		uint8(rs.pattern),
		uint64(rs.total),
		uint64(len(rs.superblocks)),
		rs.superblocks,
		uint64(len(rs.blocks)),
		rs.blocks,
	}
	for _, field := range fields {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return cw.n, errors.Wrap(err, "rank support")
		}
	}
	return cw.n, nil
}

// ReadFrom restores the sampling tables serialized by WriteTo.
func (rs *RankSupport) ReadFrom(r io.Reader) (int64, error) {
	cr := &countReader{r: r}
	var pattern uint8
	var total, nsuper, nblocks uint64
	if err := binary.Read(cr, binary.LittleEndian, &pattern); err != nil {
		return cr.n, errors.Wrap(err, "rank support pattern")
	}
	if pattern > uint8(Pattern00) {
		return cr.n, errors.Errorf("rank support pattern %d out of range", pattern)
	}
	if err := binary.Read(cr, binary.LittleEndian, &total); err != nil {
		return cr.n, errors.Wrap(err, "rank support total")
	}
	if err := binary.Read(cr, binary.LittleEndian, &nsuper); err != nil {
		return cr.n, errors.Wrap(err, "rank support superblocks")
	}
	rs.superblocks = make([]uint64, nsuper)
	if err := binary.Read(cr, binary.LittleEndian, rs.superblocks); err != nil {
		return cr.n, errors.Wrap(err, "rank support superblocks")
	}
	if err := binary.Read(cr, binary.LittleEndian, &nblocks); err != nil {
		return cr.n, errors.Wrap(err, "rank support blocks")
	}
	rs.blocks = make([]uint16, nblocks)
	if err := binary.Read(cr, binary.LittleEndian, rs.blocks); err != nil {
		return cr.n, errors.Wrap(err, "rank support blocks")
	}
	rs.pattern = BitPattern(pattern)
	rs.total = int(total)
	rs.v = nil
	return cr.n, nil
}

// WriteTo serializes the CSA as its suffix array, inverse and alphabet.
func (c *CSA) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if _, err := c.sa.WriteTo(cw); err != nil {
		return cw.n, err
	}
	if _, err := c.isa.WriteTo(cw); err != nil {
		return cw.n, err
	}
	if _, err := c.alpha.WriteTo(cw); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFrom restores a CSA serialized by WriteTo. Views bound to the previous
// contents of the receiver keep working; views bound to a different CSA must
// be rebound by the caller.
func (c *CSA) ReadFrom(r io.Reader) (int64, error) {
	cr := &countReader{r: r}
	c.sa = new(IntVector)
	c.isa = new(IntVector)
	if _, err := c.sa.ReadFrom(cr); err != nil {
		return cr.n, err
	}
	if _, err := c.isa.ReadFrom(cr); err != nil {
		return cr.n, err
	}
	if _, err := c.alpha.ReadFrom(cr); err != nil {
		return cr.n, err
	}
	if c.sa.Len() != c.isa.Len() || c.alpha.C(c.alpha.Sigma()) != c.sa.Len() {
		return cr.n, errors.Errorf("inconsistent csa payload: sa %d, isa %d, C total %d",
			c.sa.Len(), c.isa.Len(), c.alpha.C(c.alpha.Sigma()))
	}
	return cr.n, nil
}
