// JSON codec for the grid model. The cells map is serialized as a
// row-major-sorted array of records so the output is stable, and
// unmarshaling re-validates the structural invariants so a grid restored
// from storage behaves identically to a freshly mutated one.
package grid

import (
	"encoding/json"
	"sort"
)

// cellRecord is the serialized form of one occupied cell.
type cellRecord struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	BlobID string `json:"blob_id"`
	Name   string `json:"name,omitempty"`
}

// gridRecord is the serialized form of a Grid.
type gridRecord struct {
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	Cells    []cellRecord `json:"cells"`
	Captions []string     `json:"captions"`
}

// MarshalJSON implements json.Marshaler.
func (g *Grid) MarshalJSON() ([]byte, error) {
	cells := make([]cellRecord, 0, len(g.Cells))
	for c, ref := range g.Cells {
		cells = append(cells, cellRecord{
			Row:    c.Row,
			Col:    c.Col,
			BlobID: ref.BlobID,
			Name:   ref.Name,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	captions := g.Captions
	if captions == nil {
		captions = []string{}
	}

	return json.Marshal(gridRecord{
		Rows:     g.Rows,
		Cols:     g.Cols,
		Cells:    cells,
		Captions: captions,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It rejects documents that
// violate the grid invariants or repeat a cell coordinate.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rec gridRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	cells := make(map[Coord]CellRef, len(rec.Cells))
	for _, cr := range rec.Cells {
		c := Coord{Row: cr.Row, Col: cr.Col}
		if _, ok := cells[c]; ok {
			return ErrDuplicateCell
		}
		cells[c] = CellRef{BlobID: cr.BlobID, Name: cr.Name}
	}

	restored := Grid{
		Rows:     rec.Rows,
		Cols:     rec.Cols,
		Cells:    cells,
		Captions: rec.Captions,
	}
	if err := restored.Validate(); err != nil {
		return err
	}

	*g = restored
	return nil
}
