package voikko

import "strings"

// Continuation targets with a fixed meaning in paradigms.txt.
const (
	nextEnd      = "#"
	nextRoot     = "Root"
	nextCompound = "Compound"
)

// Attr is one key=value attribute contributed by a morpheme.
type Attr struct {
	Key   string
	Value string
}

// parseAttrs parses "k=v<sep>k=v". Items without "=" are ignored.
func parseAttrs(s string, sep string) []Attr {
	if s == "" {
		return nil
	}
	var attrs []Attr
	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		k, v, ok := strings.Cut(item, "=")
		if !ok || k == "" {
			continue
		}
		attrs = append(attrs, Attr{Key: strings.ToLower(k), Value: v})
	}
	return attrs
}

// Suffix is one entry of a continuation class: the surface it consumes,
// the attributes it contributes and the classes that may follow it.
type Suffix struct {
	// Surface is the consumed text; empty for "0" entries.
	Surface string
	Attrs   []Attr
	// Next lists continuation class names, or "#", "Root", "Compound".
	Next []string
	// Class is the class that owns this entry.
	Class *Class
}

// Class is a continuation class of the lexicon.
type Class struct {
	Name     string
	Suffixes []*Suffix
	// parents lists the classes copied in with parent: directives.
	parents []*Class
}

func newClass(name string) *Class {
	return &Class{Name: name}
}

// Parents returns the classes this class inherits from.
func (c *Class) Parents() []*Class {
	return c.parents
}

// IsA reports whether this class or any ancestor has the given name.
func (c *Class) IsA(name string) bool {
	if c.Name == name {
		return true
	}
	for _, p := range c.parents {
		if p.IsA(name) {
			return true
		}
	}
	return false
}

// inherit appends copies of the entries of p, owned by c.
func (c *Class) inherit(p *Class) {
	c.parents = append(c.parents, p)
	for _, s := range p.Suffixes {
		c.Suffixes = append(c.Suffixes, cloneSuffix(s, c))
	}
}

// cloneSuffix creates a copy of s with Class set to owner.
func cloneSuffix(s *Suffix, owner *Class) *Suffix {
	return &Suffix{
		Surface: s.Surface,
		Attrs:   s.Attrs,
		Next:    s.Next,
		Class:   owner,
	}
}
