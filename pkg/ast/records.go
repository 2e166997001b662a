package ast

type (
	// CustomType records a column whose ARRAY or OBJECT type was replaced with a
	// placeholder type before parsing.
	CustomType struct {
		Column      string
		Placeholder string
		Original    string
	}

	// ReplaceMarker records that CREATE OR REPLACE <Kind> was rewritten to
	// CREATE <Kind>.
	ReplaceMarker struct {
		Kind ObjectKind
	}

	// ArrayAccess records that Call[Index] was replaced by Placeholder.
	ArrayAccess struct {
		Placeholder string
		Call        string
		Index       int
	}

	// Records groups everything the codec produced for one statement.
	Records struct {
		Replace     []*ReplaceMarker
		CustomTypes []*CustomType
		ArrayAccess []*ArrayAccess
	}
)

// Empty reports whether no rewrite happened.
func (r Records) Empty() bool {
	return len(r.Replace) == 0 && len(r.CustomTypes) == 0 && len(r.ArrayAccess) == 0
}

// Len returns the total number of records.
func (r Records) Len() int {
	return len(r.Replace) + len(r.CustomTypes) + len(r.ArrayAccess)
}
