// Package gedcom imports GEDCOM 5.5 files into person records.
//
// The parser is deliberately minimal: it reads INDI records (NAME, SEX,
// BIRT/DEAT dates, FAMC/FAMS) and FAM records (HUSB, WIFE, CHIL) and drops
// everything else. GEDCOM in the wild is messy, so malformed lines are
// skipped rather than fatal; the downstream tree layer tolerates whatever
// dangling references survive.
package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/kintree/pkg/canvas"
	"github.com/matzehuels/kintree/pkg/tree"
)

// line is one decoded GEDCOM line: LEVEL [@XREF@] TAG [value].
type line struct {
	level int
	xref  string
	tag   string
	value string
}

// parseLine decodes one GEDCOM line. Returns false for lines that do not
// match the grammar; callers skip those.
func parseLine(s string) (line, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return line{}, false
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil || level < 0 {
		return line{}, false
	}

	var l line
	l.level = level
	rest := fields[1:]
	if strings.HasPrefix(rest[0], "@") && strings.HasSuffix(rest[0], "@") {
		l.xref = strings.Trim(rest[0], "@")
		rest = rest[1:]
		if len(rest) == 0 {
			return line{}, false
		}
	}
	l.tag = rest[0]
	l.value = strings.Join(rest[1:], " ")
	return l, true
}

// family accumulates one FAM record's links before they are applied.
type family struct {
	husband  string
	wife     string
	children []string
}

// Parse reads a GEDCOM document and returns the person records it
// describes, sorted by ID. Individuals keep their xref (without the
// @-signs) as record ID.
func Parse(r io.Reader) ([]canvas.PersonRecord, error) {
	people := make(map[string]*canvas.PersonRecord)
	var families []family

	var (
		person  *canvas.PersonRecord
		fam     *family
		dateFor *string // Set while inside a BIRT/DEAT substructure.
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		l, ok := parseLine(strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}
		if l.level <= 1 {
			dateFor = nil
		}

		if l.level == 0 {
			person, fam = nil, nil
			switch l.tag {
			case "INDI":
				if l.xref == "" {
					continue
				}
				p := &canvas.PersonRecord{ID: l.xref}
				people[l.xref] = p
				person = p
			case "FAM":
				families = append(families, family{})
				fam = &families[len(families)-1]
			}
			continue
		}

		switch {
		case person != nil && l.level == 1:
			switch l.tag {
			case "NAME":
				person.Name = cleanName(l.value)
			case "SEX":
				person.Sex = l.value
			case "BIRT":
				dateFor = &person.BirthDate
			case "DEAT":
				dateFor = &person.DeathDate
			}
		case person != nil && l.tag == "DATE" && dateFor != nil:
			*dateFor = l.value
		case fam != nil && l.level == 1:
			switch l.tag {
			case "HUSB":
				fam.husband = strings.Trim(l.value, "@")
			case "WIFE":
				fam.wife = strings.Trim(l.value, "@")
			case "CHIL":
				fam.children = append(fam.children, strings.Trim(l.value, "@"))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gedcom: %w", err)
	}

	for _, f := range families {
		applyFamily(people, f)
	}

	out := make([]canvas.PersonRecord, 0, len(people))
	for _, p := range people {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b canvas.PersonRecord) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// applyFamily wires one FAM record's links into the referenced people.
// References to individuals the file never declared are dropped here; the
// tree layer would tolerate them, but there is nothing useful to link.
func applyFamily(people map[string]*canvas.PersonRecord, f family) {
	husband, wife := people[f.husband], people[f.wife]

	if husband != nil && wife != nil {
		husband.SpouseIDs = appendUnique(husband.SpouseIDs, wife.ID)
		wife.SpouseIDs = appendUnique(wife.SpouseIDs, husband.ID)
	}
	for _, c := range f.children {
		child := people[c]
		if child == nil {
			continue
		}
		if husband != nil {
			child.FatherID = husband.ID
			husband.ChildrenIDs = appendUnique(husband.ChildrenIDs, c)
		}
		if wife != nil {
			child.MotherID = wife.ID
			wife.ChildrenIDs = appendUnique(wife.ChildrenIDs, c)
		}
	}
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// cleanName strips the GEDCOM surname slashes: "Ada /Lovelace/" becomes
// "Ada Lovelace".
func cleanName(name string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(name, "/", " ")), " ")
}

// ParseFile reads a GEDCOM file from disk.
func ParseFile(path string) ([]canvas.PersonRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Import parses a GEDCOM document straight into a tree, rooted at the
// first individual in ID order.
func Import(r io.Reader) (*tree.Tree, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, err
	}
	tf := canvas.TreeFile{People: records}
	if len(records) > 0 {
		tf.RootID = records[0].ID
	}
	return canvas.ToTree(tf)
}
