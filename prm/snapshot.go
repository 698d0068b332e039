package prm

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/quadtree"
)

// Obstacle kinds in a Snapshot.
const (
	KindCircle  = "circle"
	KindRect    = "rect"
	KindUnknown = "unknown"
)

// Snapshot is a read-only view of the planner state for visualization.
type Snapshot struct {
	HalfExtent float64        `json:"half_extent"`
	Obstacles  []ObstacleView `json:"obstacles"`
	Nodes      []PointView    `json:"nodes"`
	Edges      []EdgeView     `json:"edges"`
	Cells      CellsView      `json:"cells"`
	Path       []PointView    `json:"path,omitempty"`
}

// PointView is a plane point.
type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ObstacleView describes one obstacle. Circles set Center and Radius;
// rectangles set Min and Max of the padded box. Other obstacle types are
// KindUnknown and carry only their bounding box in Min and Max.
type ObstacleView struct {
	Kind   string     `json:"kind"`
	Center *PointView `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Min    *PointView `json:"min,omitempty"`
	Max    *PointView `json:"max,omitempty"`
}

// EdgeView is an undirected roadmap edge between node indices.
type EdgeView struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// CellView is a decomposition leaf.
type CellView struct {
	ID     int64     `json:"id"`
	Center PointView `json:"center"`
	Half   float64   `json:"half"`
}

// CellsView groups leaves by classification.
type CellsView struct {
	Free         []CellView `json:"free"`
	Obstructed   []CellView `json:"obstructed"`
	Undetermined []CellView `json:"undetermined"`
}

// Snapshot captures the workspace, roadmap and last path.
// Nodes are listed by graph vertex id, so query nodes appear after sampled ones.
func (p *Planner) Snapshot() (Snapshot, error) {
	s := Snapshot{HalfExtent: p.ws.HalfExtent()}

	for _, ob := range p.ws.Obstacles() {
		s.Obstacles = append(s.Obstacles, obstacleView(ob))
	}
	for _, v := range p.graph.Vertices() {
		s.Nodes = append(s.Nodes, pointView(v.Pos))
	}
	for _, e := range p.graph.Edges() {
		s.Edges = append(s.Edges, EdgeView{From: e.From, To: e.To, Weight: e.Weight})
	}
	for _, pt := range p.lastPath {
		s.Path = append(s.Path, pointView(pt))
	}

	var err error
	tree := p.ws.Tree()
	if s.Cells.Free, err = cellViews(tree, p.ws.Free()); err != nil {
		return s, err
	}
	if s.Cells.Obstructed, err = cellViews(tree, p.ws.Obstructed()); err != nil {
		return s, err
	}
	if s.Cells.Undetermined, err = cellViews(tree, p.ws.Undetermined()); err != nil {
		return s, err
	}

	return s, nil
}

// WriteJSON encodes Snapshot to w as a single JSON document.
func (p *Planner) WriteJSON(w io.Writer) error {
	s, err := p.Snapshot()
	if err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("prm: encoding snapshot: %w", err)
	}

	return nil
}

func pointView(p geometry.Point) PointView { return PointView{X: p.X, Y: p.Y} }

func obstacleView(ob geometry.Obstacle) ObstacleView {
	switch o := ob.(type) {
	case *geometry.Circle:
		c := pointView(o.Center)
		return ObstacleView{Kind: KindCircle, Center: &c, Radius: o.Radius}
	case *geometry.Rect:
		a, b := pointView(o.Min()), pointView(o.Max())
		return ObstacleView{Kind: KindRect, Min: &a, Max: &b}
	default:
		lo, hi := ob.Bounds()
		a, b := pointView(lo), pointView(hi)
		return ObstacleView{Kind: KindUnknown, Min: &a, Max: &b}
	}
}

func cellViews(tree *quadtree.Tree, ids []int64) ([]CellView, error) {
	out := make([]CellView, 0, len(ids))
	for _, id := range ids {
		n, err := tree.Leaf(id)
		if err != nil {
			return nil, fmt.Errorf("prm: snapshot cell: %w", err)
		}
		out = append(out, CellView{ID: n.ID, Center: pointView(n.Center), Half: n.Half})
	}

	return out, nil
}
