// Package paging converts the two pagination envelope shapes returned by
// the remote search endpoint into one canonical page model.  Both shapes
// carry the item list under "content"; one keeps the paging fields
// (totalElements, totalPages, number, size) at the top level, the other
// nests them under a "metadata" object.  Nothing outside this package
// sees either wire shape.
package paging

// Metadata is the nested paging block of the second envelope variant.
// Fields are pointers for the same reason as the flat ones: a skewed
// payload that omits a field falls back to the defaults instead of
// passing a zero through.
type Metadata struct {
	Size          *int `json:"size,omitempty"`
	Number        *int `json:"number,omitempty"`
	TotalElements *int `json:"totalElements,omitempty"`
	TotalPages    *int `json:"totalPages,omitempty"`
}

// RawPage is the union of both observed envelope shapes.  The flat
// fields are pointers so that "absent" is distinguishable from zero.
type RawPage[T any] struct {
	Content       []T       `json:"content"`
	TotalElements *int      `json:"totalElements,omitempty"`
	TotalPages    *int      `json:"totalPages,omitempty"`
	Number        *int      `json:"number,omitempty"`
	Size          *int      `json:"size,omitempty"`
	Metadata      *Metadata `json:"metadata,omitempty"`
}

// Page is the canonical page shape exposed to the rest of the gateway
// and to the UI.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageIndex  int `json:"pageIndex"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Normalize maps a raw page onto the canonical shape.  It is pure and
// total: there is no failure mode, only defensive defaults.  When the
// metadata block is present its fields win outright and any flat
// top-level paging fields are ignored; the two variants are never
// merged, so paging cursors from incompatible sources cannot mix.
// Missing values default to: totalItems = len(items), pageIndex = 0,
// totalPages = 1, pageSize = len(items).
func Normalize[T any](raw RawPage[T]) Page[T] {
	items := raw.Content
	if items == nil {
		items = []T{}
	}
	p := Page[T]{
		Items:      items,
		PageIndex:  0,
		PageSize:   len(items),
		TotalItems: len(items),
		TotalPages: 1,
	}
	if m := raw.Metadata; m != nil {
		if m.Number != nil {
			p.PageIndex = *m.Number
		}
		if m.Size != nil {
			p.PageSize = *m.Size
		}
		if m.TotalElements != nil {
			p.TotalItems = *m.TotalElements
		}
		if m.TotalPages != nil {
			p.TotalPages = *m.TotalPages
		}
		return p
	}
	if raw.Number != nil {
		p.PageIndex = *raw.Number
	}
	if raw.Size != nil {
		p.PageSize = *raw.Size
	}
	if raw.TotalElements != nil {
		p.TotalItems = *raw.TotalElements
	}
	if raw.TotalPages != nil {
		p.TotalPages = *raw.TotalPages
	}
	return p
}
