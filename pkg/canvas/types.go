package canvas

import (
	"fmt"
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
)

// Sex strings used in serialized person records.
const (
	SexMale      = "male"
	SexFemale    = "female"
	SexNonbinary = "nonbinary"
)

// Edge kind strings used in serialized canvases.
const (
	EdgeKindParent = "parent"
	EdgeKindSpouse = "spouse"
	EdgeKindCustom = "custom"
)

// PersonRecord is the serialization format for one person. Link fields
// reference other records by ID; referential integrity is not required, the
// tree layer tolerates dangling links.
type PersonRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Sex         string   `json:"sex,omitempty"` // "male", "female", "nonbinary", or empty
	BirthDate   string   `json:"birth_date,omitempty"`
	DeathDate   string   `json:"death_date,omitempty"`
	FatherID    string   `json:"father_id,omitempty"`
	MotherID    string   `json:"mother_id,omitempty"`
	SpouseIDs   []string `json:"spouse_ids,omitempty"`
	ChildrenIDs []string `json:"children_ids,omitempty"`
	Collections []string `json:"collections,omitempty"`
	SourceRef   string   `json:"source_ref,omitempty"`
}

// TreeFile is the canonical serialization format for a family tree. The
// format is human-readable and round-trip faithful: read → transform →
// write → re-read produces identical results.
type TreeFile struct {
	RootID string         `json:"root_id,omitempty"`
	People []PersonRecord `json:"people"`
}

// FromTree converts a tree to its serialization format. Records are sorted
// by ID for deterministic output.
func FromTree(t *tree.Tree) TreeFile {
	out := TreeFile{RootID: t.RootID(), People: make([]PersonRecord, 0, t.Size())}
	for _, p := range t.People() {
		out.People = append(out.People, recordFromPerson(p))
	}
	return out
}

// ToTree converts a TreeFile to a tree. Returns an error for duplicate
// person IDs or a root ID naming nobody in the file.
func ToTree(tf TreeFile) (*tree.Tree, error) {
	t := tree.New()
	for _, rec := range tf.People {
		if err := t.AddPerson(personFromRecord(rec)); err != nil {
			return nil, fmt.Errorf("add person %s: %w", rec.ID, err)
		}
	}
	if tf.RootID != "" {
		if err := t.SetRoot(tf.RootID); err != nil {
			return nil, fmt.Errorf("set root %s: %w", tf.RootID, err)
		}
	}
	return t, nil
}

func recordFromPerson(p *tree.Person) PersonRecord {
	return PersonRecord{
		ID:          p.ID,
		Name:        p.Name,
		Sex:         sexToString(p.Sex),
		BirthDate:   p.BirthDate,
		DeathDate:   p.DeathDate,
		FatherID:    p.FatherID,
		MotherID:    p.MotherID,
		SpouseIDs:   slices.Clone(p.SpouseIDs),
		ChildrenIDs: slices.Clone(p.ChildrenIDs),
		Collections: slices.Clone(p.Collections),
		SourceRef:   p.SourceRef,
	}
}

func personFromRecord(rec PersonRecord) *tree.Person {
	return &tree.Person{
		ID:          rec.ID,
		Name:        rec.Name,
		Sex:         ParseSex(rec.Sex),
		BirthDate:   rec.BirthDate,
		DeathDate:   rec.DeathDate,
		FatherID:    rec.FatherID,
		MotherID:    rec.MotherID,
		SpouseIDs:   slices.Clone(rec.SpouseIDs),
		ChildrenIDs: slices.Clone(rec.ChildrenIDs),
		Collections: slices.Clone(rec.Collections),
		SourceRef:   rec.SourceRef,
	}
}

// ParseSex maps a record's sex string to the tree enum. Unrecognized values
// map to unknown rather than failing: sex only drives label wording.
func ParseSex(s string) tree.Sex {
	switch s {
	case SexMale, "M":
		return tree.SexMale
	case SexFemale, "F":
		return tree.SexFemale
	case SexNonbinary:
		return tree.SexNonbinary
	}
	return tree.SexUnknown
}

func sexToString(s tree.Sex) string {
	switch s {
	case tree.SexMale:
		return SexMale
	case tree.SexFemale:
		return SexFemale
	case tree.SexNonbinary:
		return SexNonbinary
	}
	return ""
}

func edgeKindToString(k tree.EdgeKind) string {
	switch k {
	case tree.EdgeSpouse:
		return EdgeKindSpouse
	case tree.EdgeCustom:
		return EdgeKindCustom
	default:
		return EdgeKindParent
	}
}
