package dijkstra

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// chainSep separates vertices of a predecessor chain in the dump.
const chainSep = " <- "

// FormatDistance renders d, printing Infinity as "inf".
func FormatDistance(d int64) string {
	if d == Infinity {
		return "inf"
	}

	return strconv.FormatInt(d, 10)
}

// WriteTo writes the diagnostic dump of t to w: one line per vertex in index
// order, "<index>\t<distance>\t<chain>", where chain runs from the vertex back
// to the source joined by " <- ". The source and unreachable vertices print
// their bare index. It implements io.WriterTo.
//
// Lines formatted before a failing Chain are flushed to w before the error
// is returned; the count covers only bytes that reached w.
func (t *Tables) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for v := range t.Dist {
		chain, err := t.Chain(v)
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return cw.n, ferr
			}
			return cw.n, err
		}
		parts := make([]string, len(chain))
		for i, c := range chain {
			parts[i] = strconv.Itoa(c)
		}
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\n", v, FormatDistance(t.Dist[v]), strings.Join(parts, chainSep)); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()

	return cw.n, err
}

// countingWriter counts bytes accepted by w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// WriteDOT writes the shortest-path tree as a Graphviz digraph: one node per
// vertex labelled with its distance and one edge Prev[v] -> v per reached vertex.
// The source is filled; unreachable vertices are dashed.
func (t *Tables) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph ShortestPathTree {\n")
	bw.WriteString("  rankdir=LR;\n")
	bw.WriteString("  node [shape=circle, fontsize=12];\n\n")

	for v, d := range t.Dist {
		label := fmt.Sprintf("%d\nd=%s", v, FormatDistance(d))
		attrs := []string{fmt.Sprintf("label=%q", label)}
		switch {
		case v == t.Source:
			attrs = append(attrs, "style=filled", "fillcolor=lightgreen")
		case d == Infinity:
			attrs = append(attrs, "style=dashed", "fontcolor=grey")
		}
		fmt.Fprintf(bw, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	bw.WriteString("\n")
	for v, p := range t.Prev {
		if p == NoVertex {
			continue
		}
		fmt.Fprintf(bw, "  %d -> %d [label=%q];\n", p, v, strconv.FormatInt(t.Dist[v]-t.Dist[p], 10))
	}
	bw.WriteString("}\n")

	return bw.Flush()
}
