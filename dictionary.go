package voikko

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/cours-de-latin/voikko/data"
)

const (
	// DictionaryPathEnv lists extra dictionary roots, separated like PATH.
	DictionaryPathEnv = "VOIKKO_DICTIONARY_PATH"
	// morphologyBackend is the index.txt backend this package reads.
	morphologyBackend = "lexicon"
	variantPrefix     = "mor-"
	defaultVariant    = "standard"
	builtinRoot       = "builtin"
)

// Dictionary describes an installed dictionary package.
type Dictionary struct {
	Language    string
	Script      string
	Variant     string
	Description string
}

// Tag returns the BCP 47 tag selecting this dictionary, e.g. "fi-x-standard".
func (d Dictionary) Tag() string {
	tag := d.Language
	if d.Script != "" {
		tag += "-" + d.Script
	}
	if d.Variant != "" {
		tag += "-x-" + d.Variant
	}
	return tag
}

func (d Dictionary) key() string {
	return d.Language + "/" + d.Script + "/" + d.Variant
}

// dictionaryLocation is a dictionary package found on a search root.
type dictionaryLocation struct {
	Dictionary
	alphabet string
	root     string
	fsys     fs.FS
	dir      string
}

type dictionaryRoot struct {
	name string
	fsys fs.FS
}

// standardPaths returns the system locations searched after the
// caller-supplied paths.
func standardPaths() []string {
	var paths []string
	if env := os.Getenv(DictionaryPathEnv); env != "" {
		paths = append(paths, filepath.SplitList(env)...)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".voikko"))
	}
	return append(paths, "/etc/voikko", "/usr/lib/voikko", "/usr/share/voikko")
}

// searchRoots lists the roots in search order: the given paths, the
// standard paths and finally the bundled dictionary.
func searchRoots(paths []string) []dictionaryRoot {
	var roots []dictionaryRoot
	for _, p := range append(append([]string(nil), paths...), standardPaths()...) {
		if p == "" {
			continue
		}
		roots = append(roots, dictionaryRoot{name: p, fsys: os.DirFS(p)})
	}
	return append(roots, dictionaryRoot{name: builtinRoot, fsys: data.FS})
}

// scanRoot returns the usable dictionary packages directly under root.
func scanRoot(root dictionaryRoot) []dictionaryLocation {
	entries, err := fs.ReadDir(root.fsys, ".")
	if err != nil {
		tracer().Debugf("voikko: no dictionaries in %s: %v", root.name, err)
		return nil
	}
	var locs []dictionaryLocation
	for _, ent := range entries {
		if !ent.IsDir() || !strings.HasPrefix(ent.Name(), variantPrefix) {
			continue
		}
		loc, err := readLocation(root, ent.Name())
		if err != nil {
			tracer().Infof("voikko: skipping %s/%s: %v", root.name, ent.Name(), err)
			continue
		}
		locs = append(locs, loc)
	}
	return locs
}

func readLocation(root dictionaryRoot, dir string) (dictionaryLocation, error) {
	fields, err := parseIndex(root.fsys, dir)
	if err != nil {
		return dictionaryLocation{}, err
	}
	if b := fields["morphology-backend"]; b != morphologyBackend {
		return dictionaryLocation{}, fmt.Errorf("unsupported morphology backend %q", b)
	}
	lang := strings.ToLower(fields["language-code"])
	if lang == "" {
		return dictionaryLocation{}, fmt.Errorf("missing Language-Code")
	}
	return dictionaryLocation{
		Dictionary: Dictionary{
			Language:    lang,
			Script:      fields["script"],
			Variant:     strings.TrimPrefix(dir, variantPrefix),
			Description: fields["description"],
		},
		alphabet: fields["alphabet"],
		root:     root.name,
		fsys:     root.fsys,
		dir:      dir,
	}, nil
}

// locations lists every dictionary in search order; a dictionary shadows
// later ones with the same language, script and variant.
func locations(paths []string) []dictionaryLocation {
	seen := make(map[string]bool)
	var out []dictionaryLocation
	for _, root := range searchRoots(paths) {
		for _, loc := range scanRoot(root) {
			if seen[loc.key()] {
				continue
			}
			seen[loc.key()] = true
			out = append(out, loc)
		}
	}
	return out
}

// ListDictionaries returns the dictionaries available from searchPaths,
// the standard paths and the bundled dictionary.
func ListDictionaries(searchPaths ...string) ([]Dictionary, error) {
	for _, p := range searchPaths {
		if err := validateInput(p); err != nil {
			return nil, err
		}
	}
	locs := locations(searchPaths)
	out := make([]Dictionary, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc.Dictionary)
	}
	return out, nil
}

// languageRequest is a parsed language tag.
type languageRequest struct {
	lang, script, variant string
}

// parseLanguageTag reads a BCP 47 tag whose private-use subtag names the
// variant ("fi-x-standard"). Tags that do not parse fall back to their
// first subtag.
func parseLanguageTag(tag string) languageRequest {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if t, err := language.Parse(tag); err == nil {
		var req languageRequest
		base, _ := t.Base()
		req.lang = base.String()
		if s, conf := t.Script(); conf == language.Exact {
			req.script = s.String()
		}
		if ext, ok := t.Extension('x'); ok {
			req.variant = strings.TrimPrefix(ext.String(), "x-")
		}
		return req
	}
	parts := strings.Split(strings.ToLower(tag), "-")
	req := languageRequest{lang: parts[0]}
	for i, p := range parts {
		if p == "x" && i+1 < len(parts) {
			req.variant = strings.Join(parts[i+1:], "-")
			break
		}
	}
	return req
}

func (r languageRequest) matches(d Dictionary) bool {
	if d.Language != r.lang {
		return false
	}
	if r.script != "" && d.Script != "" && !strings.EqualFold(r.script, d.Script) {
		return false
	}
	return r.variant == "" || d.Variant == r.variant
}

// findDictionary picks the dictionary for tag. Without an explicit variant
// the standard variant is preferred, then the first match.
func findDictionary(tag string, paths []string) (dictionaryLocation, error) {
	req := parseLanguageTag(tag)
	var first *dictionaryLocation
	locs := locations(paths)
	for i := range locs {
		loc := &locs[i]
		if !req.matches(loc.Dictionary) {
			continue
		}
		if req.variant != "" || loc.Variant == defaultVariant {
			return *loc, nil
		}
		if first == nil {
			first = loc
		}
	}
	if first != nil {
		return *first, nil
	}
	return dictionaryLocation{}, &LoadError{Language: tag, Err: ErrVariantNotFound}
}
