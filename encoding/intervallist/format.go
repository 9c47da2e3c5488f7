package intervallist

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/intervaldiff/interval"
)

// None is printed in place of an empty interval list.
const None = "(none)"

// OutputFormat selects how WriteFile renders intervals.
type OutputFormat int

const (
	// Text renders a single line in the ParseLine format.
	Text OutputFormat = iota
	// TSV renders a START/END header followed by one interval per row.
	TSV
)

// ParseOutputFormat converts "text" or "tsv" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "tsv":
		return TSV, nil
	}
	return Text, fmt.Errorf("intervallist.ParseOutputFormat: unknown format %q", s)
}

// Format renders intervals as "10-19, 31-100", or as None if there are none.
func Format(intervals []interval.Interval) string {
	if len(intervals) == 0 {
		return None
	}
	var buf []byte
	for i, iv := range intervals {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(iv.Start), 10)
		buf = append(buf, '-')
		buf = strconv.AppendInt(buf, int64(iv.End), 10)
	}
	return string(buf)
}

// WriteText writes Format(intervals) and a newline to w.
func WriteText(w io.Writer, intervals []interval.Interval) error {
	_, err := io.WriteString(w, Format(intervals)+"\n")
	return err
}

// WriteTSV writes intervals to w as a two-column TSV with a header row.
func WriteTSV(w io.Writer, intervals []interval.Interval) (err error) {
	out := tsv.NewWriter(w)
	out.WriteString("START\tEND")
	if err = out.EndLine(); err != nil {
		return
	}
	for _, iv := range intervals {
		out.WriteInt64(int64(iv.Start))
		out.WriteInt64(int64(iv.End))
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}

// Write renders intervals to w in the given format.
func Write(w io.Writer, format OutputFormat, intervals []interval.Interval) error {
	switch format {
	case Text:
		return WriteText(w, intervals)
	case TSV:
		return WriteTSV(w, intervals)
	}
	return fmt.Errorf("intervallist.Write: unknown format %d", format)
}

// Checksum returns a fingerprint of an interval list.  Equal lists always have
// equal checksums.
func Checksum(intervals []interval.Interval) uint64 {
	h := seahash.New()
	var buf [8]byte
	for _, iv := range intervals {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(iv.Start))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(iv.End))
		h.Write(buf[:]) // nolint: errcheck
	}
	return h.Sum64()
}
