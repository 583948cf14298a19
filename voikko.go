package voikko

import "fmt"

// Config selects the dictionary and the initial options of an engine.
type Config struct {
	// Language is a BCP 47 tag such as "fi" or "fi-x-standard".
	Language string
	// Paths are searched before the standard dictionary locations.
	Paths []string
	// Options defaults to DefaultOptions when nil.
	Options *Options
}

// Engine is a configured session over a Lexicon. It holds options and a
// speller cache and must not be used from several goroutines at once.
type Engine struct {
	lex   *Lexicon
	opts  Options
	cache *spellCache
}

// New loads the dictionary selected by cfg and returns an engine for it.
func New(cfg Config) (*Engine, error) {
	lex, err := LoadLexicon(cfg.Language, cfg.Paths...)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	if cfg.Options != nil {
		opts = *cfg.Options
	}
	return NewWithLexicon(lex, opts)
}

// Init is a shorthand for New with one optional extra dictionary path.
func Init(languageTag, dictionaryPath string) (*Engine, error) {
	cfg := Config{Language: languageTag}
	if dictionaryPath != "" {
		cfg.Paths = []string{dictionaryPath}
	}
	return New(cfg)
}

// NewWithLexicon returns an engine sharing an already loaded lexicon.
func NewWithLexicon(lex *Lexicon, opts Options) (*Engine, error) {
	if lex == nil {
		return nil, fmt.Errorf("%w: nil lexicon", ErrInternal)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		lex:   lex,
		opts:  opts,
		cache: newSpellCache(opts.SpellerCacheSize),
	}, nil
}

// Close releases the engine. Every later call returns ErrClosed.
func (e *Engine) Close() error {
	if e.lex == nil {
		return ErrClosed
	}
	e.cache.purge()
	e.lex = nil
	e.cache = nil
	return nil
}

func (e *Engine) ready() error {
	if e == nil || e.lex == nil {
		return ErrClosed
	}
	return nil
}

// Lexicon returns the lexicon the engine reads, nil after Close.
func (e *Engine) Lexicon() *Lexicon {
	return e.lex
}

// Dictionary describes the dictionary in use.
func (e *Engine) Dictionary() (Dictionary, error) {
	if err := e.ready(); err != nil {
		return Dictionary{}, err
	}
	return e.lex.Dictionary(), nil
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions replaces all options and clears the speller cache.
func (e *Engine) SetOptions(o Options) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := o.validate(); err != nil {
		return err
	}
	resize := o.SpellerCacheSize != e.opts.SpellerCacheSize
	e.opts = o
	if resize {
		e.cache = newSpellCache(o.SpellerCacheSize)
	} else {
		e.cache.purge()
	}
	return nil
}

// SetBoolOption changes one boolean option.
func (e *Engine) SetBoolOption(opt BoolOption, value bool) error {
	o := e.opts
	f := o.boolField(opt)
	if f == nil {
		return fmt.Errorf("%w: unknown boolean option %d", ErrInvalidInput, opt)
	}
	*f = value
	return e.SetOptions(o)
}

// SetIntOption changes one integer option.
func (e *Engine) SetIntOption(opt IntOption, value int) error {
	o := e.opts
	f := o.intField(opt)
	if f == nil {
		return fmt.Errorf("%w: unknown integer option %d", ErrInvalidInput, opt)
	}
	*f = value
	return e.SetOptions(o)
}

// AnalyzeWord returns the morphological analyses of word; an unknown
// word has none.
func (e *Engine) AnalyzeWord(word string) ([]Analysis, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(word); err != nil {
		return nil, err
	}
	return e.lex.analyze(apostropheReplacer.Replace(word))
}

// InflectedForms lists the surface forms of the lemmas with baseForm.
func (e *Engine) InflectedForms(baseForm string) ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if err := validateInput(baseForm); err != nil {
		return nil, err
	}
	return e.lex.Forms(baseForm), nil
}
