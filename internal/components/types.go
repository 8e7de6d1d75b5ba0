package components

import "encoding/json"

// NodeType names a top-level component in a page's content sequence.
// Decoding does not validate the set; the renderer skips unknown types so
// content authored by newer tooling degrades to a no-op instead of an error.
type NodeType string

const (
	NodeText NodeType = "text"
	NodeCard NodeType = "card"
	NodeGrid NodeType = "grid"
	NodeHero NodeType = "hero"
)

// SubNodeType names a component nested inside a grid cell. The set is
// disjoint from NodeType: grids cannot nest further grids.
type SubNodeType string

const (
	SubNodeImage  SubNodeType = "image"
	SubNodeText   SubNodeType = "text"
	SubNodeButton SubNodeType = "button"
)

// Node is one entry in a page's component sequence. Data stays raw until a
// typed accessor decodes it, which keeps encode/decode round-trips
// byte-faithful for payload shapes this package does not model.
type Node struct {
	ID   string          `json:"id"`
	Type NodeType        `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// SubNode is one entry in a grid cell's component sequence.
type SubNode struct {
	ID   string          `json:"id"`
	Type SubNodeType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Cell is a single grid column owning an ordered sub-component sequence.
// Trees are exactly two levels deep: cells exist only under grid nodes and
// sub-components only under cells.
type Cell struct {
	Components []SubNode `json:"components"`
}
