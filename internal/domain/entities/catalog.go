package entities

// Entry is one original/translation pair of a Catalog. Comments, Context,
// Plural and PluralForms are carried through untouched so a catalog keeps its
// content when written back.
type Entry struct {
	Original    string
	Translation string

	Comments    []string // raw "#..." lines preceding the entry
	Context     string   // msgctxt
	HasContext  bool     // msgctxt present, even when empty
	Plural      string   // msgid_plural
	PluralForms []string // msgstr[1..n]; msgstr[0] is Translation
}

// IsPlural reports whether the entry was declared with msgid_plural.
func (e *Entry) IsPlural() bool {
	return e.Plural != ""
}

// Catalog is one language's ordered original -> translation mapping.
type Catalog struct {
	Language string
	Header   *Entry // metadata block (empty msgid), nil when absent
	Entries  []*Entry
	Trailer  []string // comment lines after the last entry

	index map[string]int
}

// NewCatalog returns an empty catalog for the given language key.
func NewCatalog(language string) *Catalog {
	return &Catalog{
		Language: language,
		index:    make(map[string]int),
	}
}

// Append adds e at the end of the catalog. Duplicated originals are kept so
// that an export can see them; Find keeps returning the first occurrence.
func (c *Catalog) Append(e *Entry) {
	if c.index == nil {
		c.reindex()
	}
	if _, ok := c.index[e.Original]; !ok {
		c.index[e.Original] = len(c.Entries)
	}
	c.Entries = append(c.Entries, e)
}

// Find returns the first entry whose original is exactly original.
func (c *Catalog) Find(original string) (*Entry, bool) {
	if c.index == nil {
		c.reindex()
	}
	i, ok := c.index[original]
	if !ok {
		return nil, false
	}
	return c.Entries[i], true
}

// Upsert overwrites the translation of original, or appends a new entry.
// It reports whether a new entry was created.
func (c *Catalog) Upsert(original, translation string) bool {
	if e, ok := c.Find(original); ok {
		e.Translation = translation
		return false
	}
	c.Append(&Entry{Original: original, Translation: translation})
	return true
}

// Len returns the number of entries, duplicates included.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

func (c *Catalog) reindex() {
	c.index = make(map[string]int, len(c.Entries))
	for i, e := range c.Entries {
		if _, ok := c.index[e.Original]; !ok {
			c.index[e.Original] = i
		}
	}
}
