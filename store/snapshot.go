package store

import (
	"fmt"
	"sort"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"

	"gopkg.in/yaml.v3"
)

// Serialization documents: the flat, stable shape levels cross the
// persistence boundary in. Only id/position/radius/neighbor-list and
// endpoint/crossing records — transient state (drag flags) stays out.

type circleDoc struct {
	ID        int     `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Radius    float64 `yaml:"radius"`
	Neighbors []int   `yaml:"neighbors,flow"`
}

type lineDoc struct {
	From     int  `yaml:"from"`
	To       int  `yaml:"to"`
	Crossing bool `yaml:"crossing,omitempty"`
}

type arrangementDoc struct {
	Circles []circleDoc `yaml:"circles"`
	Lines   []lineDoc   `yaml:"lines"`
}

type levelDoc struct {
	Number   int             `yaml:"number"`
	Width    float64         `yaml:"width"`
	Height   float64         `yaml:"height"`
	Circles  []circleDoc     `yaml:"circles"`
	Lines    []lineDoc       `yaml:"lines"`
	Solution *arrangementDoc `yaml:"solution,omitempty"`
}

// EncodeLevel serializes a level to its YAML document.
// Returns ErrNilLevel for a nil level.
// Complexity: O(V log V + E) — neighbor lists are sorted for stable output.
func EncodeLevel(lv *core.Level) ([]byte, error) {
	if lv == nil {
		return nil, ErrNilLevel
	}

	doc := levelDoc{
		Number:  lv.Number,
		Width:   lv.Extent.Width,
		Height:  lv.Extent.Height,
		Circles: encodeCircles(lv.Circles),
		Lines:   encodeLines(lv.Lines),
	}
	if lv.Solution != nil {
		doc.Solution = &arrangementDoc{
			Circles: encodeCircles(lv.Solution.Circles),
			Lines:   encodeLines(lv.Solution.Lines),
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("store: encode level %d: %w", lv.Number, err)
	}

	return out, nil
}

// DecodeLevel reconstructs a level from its YAML document. An empty
// document yields (nil, nil): no prior state, generate fresh. Structural
// inconsistencies (lines against absent circle ids) return ErrCorrupt.
// Complexity: O(V + E).
func DecodeLevel(data []byte) (*core.Level, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: %v: %w", err, ErrCorrupt)
	}
	if len(doc.Circles) == 0 {
		return nil, nil
	}

	lv := core.NewLevel(doc.Number, geom.Extent{Width: doc.Width, Height: doc.Height})
	circles, err := decodeCircles(doc.Circles)
	if err != nil {
		return nil, err
	}
	lines, err := decodeLines(doc.Lines, circles)
	if err != nil {
		return nil, err
	}
	lv.Circles, lv.Lines = circles, lines

	if doc.Solution != nil {
		solCircles, solErr := decodeCircles(doc.Solution.Circles)
		if solErr != nil {
			return nil, solErr
		}
		solLines, solErr := decodeLines(doc.Solution.Lines, solCircles)
		if solErr != nil {
			return nil, solErr
		}
		lv.Solution = &core.Snapshot{Circles: solCircles, Lines: solLines}
	}

	return lv, nil
}

func encodeCircles(circles []*core.Circle) []circleDoc {
	docs := make([]circleDoc, 0, len(circles))
	for _, c := range circles {
		neighbors := make([]int, 0, len(c.Neighbors))
		for id := range c.Neighbors {
			neighbors = append(neighbors, id)
		}
		sort.Ints(neighbors)
		docs = append(docs, circleDoc{
			ID:        c.ID,
			X:         c.Pos.X,
			Y:         c.Pos.Y,
			Radius:    c.Radius,
			Neighbors: neighbors,
		})
	}

	return docs
}

func encodeLines(lines []*core.Line) []lineDoc {
	docs := make([]lineDoc, 0, len(lines))
	for _, l := range lines {
		docs = append(docs, lineDoc{From: l.From, To: l.To, Crossing: l.Crossing})
	}

	return docs
}

func decodeCircles(docs []circleDoc) ([]*core.Circle, error) {
	circles := make([]*core.Circle, 0, len(docs))
	seen := make(map[int]struct{}, len(docs))
	for _, d := range docs {
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("store: duplicate circle id %d: %w", d.ID, ErrCorrupt)
		}
		seen[d.ID] = struct{}{}
		c := &core.Circle{
			ID:        d.ID,
			Pos:       geom.Point{X: d.X, Y: d.Y},
			Radius:    d.Radius,
			Neighbors: make(map[int]struct{}, len(d.Neighbors)),
		}
		for _, id := range d.Neighbors {
			c.Neighbors[id] = struct{}{}
		}
		circles = append(circles, c)
	}

	return circles, nil
}

func decodeLines(docs []lineDoc, circles []*core.Circle) ([]*core.Line, error) {
	ids := make(map[int]struct{}, len(circles))
	for _, c := range circles {
		ids[c.ID] = struct{}{}
	}

	lines := make([]*core.Line, 0, len(docs))
	for _, d := range docs {
		if _, ok := ids[d.From]; !ok {
			return nil, fmt.Errorf("store: line %d—%d references absent circle %d: %w",
				d.From, d.To, d.From, ErrCorrupt)
		}
		if _, ok := ids[d.To]; !ok {
			return nil, fmt.Errorf("store: line %d—%d references absent circle %d: %w",
				d.From, d.To, d.To, ErrCorrupt)
		}
		lines = append(lines, &core.Line{From: d.From, To: d.To, Crossing: d.Crossing})
	}

	return lines, nil
}
