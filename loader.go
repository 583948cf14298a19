package voikko

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Files of a dictionary package.
const (
	indexFile        = "index.txt"
	paradigmFile     = "paradigms.txt"
	lexiconFile      = "lexicon.txt"
	abbreviationFile = "abbreviations.txt"
)

// loader accumulates the contents of one dictionary package.
type loader struct {
	fsys fs.FS
	dir  string

	// variables stores $name=value substitutions from paradigms.txt.
	variables map[string]string
	classes   map[string]*Class
	// order lists class names in definition order.
	order []string
	// compound holds the word classes allowed after a compound boundary.
	compound      map[string]bool
	lemmas        []*Lemma
	abbreviations []string
}

func newLoader(fsys fs.FS, dir string) *loader {
	return &loader{
		fsys:      fsys,
		dir:       dir,
		variables: make(map[string]string),
		classes:   make(map[string]*Class),
		compound:  make(map[string]bool),
	}
}

// scan calls fn for every non-empty, non-comment line of the named file,
// NFC-normalised and trimmed. A missing optional file is not an error.
func (ld *loader) scan(name string, optional bool, fn func(line string) error) error {
	f, err := ld.fsys.Open(path.Join(ld.dir, name))
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(norm.NFC.String(sc.Text()))
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// loadParadigms reads paradigms.txt into ld.classes.
func (ld *loader) loadParadigms() error {
	var cur *Class
	return ld.scan(paradigmFile, false, func(line string) error {
		// Variables: $name=value
		if strings.HasPrefix(line, "$") {
			if idx := strings.Index(line, "="); idx > 1 {
				ld.variables[line[1:idx]] = line[idx+1:]
				return nil
			}
			return fmt.Errorf("malformed variable %q", line)
		}
		line = ld.substituteVars(line)

		directive, rest, _ := strings.Cut(line, ":")
		switch directive {
		case "compound":
			for _, c := range strings.Split(rest, ",") {
				ld.compound[strings.TrimSpace(c)] = true
			}
		case "class":
			if _, dup := ld.classes[rest]; dup {
				return fmt.Errorf("class %s defined twice", rest)
			}
			if rest == nextEnd || rest == nextRoot || rest == nextCompound {
				return fmt.Errorf("reserved class name %s", rest)
			}
			cur = newClass(rest)
			ld.classes[rest] = cur
			ld.order = append(ld.order, rest)
		case "parent":
			if cur == nil {
				return fmt.Errorf("parent:%s outside a class", rest)
			}
			p := ld.classes[rest]
			if p == nil {
				return fmt.Errorf("unknown parent class %s", rest)
			}
			cur.inherit(p)
		case "suf":
			if cur == nil {
				return fmt.Errorf("suffix outside a class")
			}
			eclats := strings.SplitN(rest, ":", 3)
			if len(eclats) < 3 {
				return fmt.Errorf("malformed suffix %q", line)
			}
			surface := eclats[0]
			if surface == "0" {
				surface = ""
			}
			s := &Suffix{
				Surface: surface,
				Attrs:   parseAttrs(eclats[1], ","),
				Class:   cur,
			}
			for _, n := range strings.Split(eclats[2], ",") {
				if n = strings.TrimSpace(n); n != "" {
					s.Next = append(s.Next, n)
				}
			}
			if len(s.Next) == 0 {
				return fmt.Errorf("suffix %q has no continuation", line)
			}
			cur.Suffixes = append(cur.Suffixes, s)
		default:
			return fmt.Errorf("unknown directive %q", directive)
		}
		return nil
	})
}

// substituteVars replaces $name references in line with their values.
// A name runs over letters, digits and underscores.
func (ld *loader) substituteVars(line string) string {
	if !strings.Contains(line, "$") {
		return line
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] != '$' {
			b.WriteByte(line[i])
			continue
		}
		j := i + 1
		for j < len(line) && isVarByte(line[j]) {
			j++
		}
		val, ok := ld.variables[line[i+1:j]]
		if !ok {
			b.WriteString(line[i:j])
		} else {
			b.WriteString(val)
		}
		i = j - 1
	}
	return b.String()
}

func isVarByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// loadLemmas reads lexicon.txt into ld.lemmas, keeping file order.
func (ld *loader) loadLemmas() error {
	return ld.scan(lexiconFile, false, func(line string) error {
		lemma, err := newLemma(ld.substituteVars(line))
		if err != nil {
			return err
		}
		ld.lemmas = append(ld.lemmas, lemma)
		return nil
	})
}

// loadAbbreviations reads the optional abbreviations.txt.
func (ld *loader) loadAbbreviations() error {
	return ld.scan(abbreviationFile, true, func(line string) error {
		ld.abbreviations = append(ld.abbreviations, strings.TrimSuffix(line, "."))
		return nil
	})
}

// parseIndex reads the "Key: value" header lines of index.txt.
func parseIndex(fsys fs.FS, dir string) (map[string]string, error) {
	ld := newLoader(fsys, dir)
	fields := make(map[string]string)
	err := ld.scan(indexFile, false, func(line string) error {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("malformed header %q", line)
		}
		fields[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
		return nil
	})
	return fields, err
}
