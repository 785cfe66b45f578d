// Package po reads and writes GNU gettext PO catalogs.
//
// Only the parts of the format needed to carry a catalog through a merge are
// interpreted (msgctxt, msgid, msgid_plural, msgstr, msgstr[n]); comment lines,
// including obsolete "#~" entries, are kept verbatim and written back in place.
package po

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"

	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

var _ output.CatalogCodec = (*Codec)(nil)

// Codec implements output.CatalogCodec for PO text.
type Codec struct{}

func NewCodec() *Codec { return &Codec{} }

// Decode parses data into a catalog for lang. The metadata block (empty
// msgid, no msgctxt) becomes Catalog.Header and is not a mergeable entry.
func (c *Codec) Decode(lang string, data []byte) (*entities.Catalog, error) {
	p := &parser{source: lang, cat: entities.NewCatalog(lang)}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.feed(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.ParseError{Source: lang, Line: p.line, Reason: err.Error()}
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	p.cat.Trailer = p.comments
	return p.cat, nil
}

// Encode renders c as PO text: header block first, then one block per entry
// in catalog order. A catalog without a header gets a minimal UTF-8 one.
func (c *Codec) Encode(cat *entities.Catalog) ([]byte, error) {
	var b bytes.Buffer

	header := cat.Header
	if header == nil {
		header = DefaultHeader(cat.Language)
	}
	writeEntry(&b, header)

	for _, e := range cat.Entries {
		b.WriteByte('\n')
		writeEntry(&b, e)
	}
	if len(cat.Trailer) > 0 {
		b.WriteByte('\n')
		for _, line := range cat.Trailer {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.Bytes(), nil
}

// DefaultHeader returns the metadata entry written for catalogs created from
// scratch. The Language field is set only when lang is a valid BCP 47 tag.
func DefaultHeader(lang string) *entities.Entry {
	var meta strings.Builder
	meta.WriteString("MIME-Version: 1.0\n")
	meta.WriteString("Content-Type: text/plain; charset=UTF-8\n")
	meta.WriteString("Content-Transfer-Encoding: 8bit\n")
	if tag, err := language.Parse(lang); err == nil {
		meta.WriteString("Language: " + tag.String() + "\n")
	}
	return &entities.Entry{Translation: meta.String()}
}

type pending struct {
	comments []string
	context  string
	id       string
	plural   string
	str      string
	forms    map[int]*string

	hasContext bool
	hasID      bool
	hasPlural  bool
	hasStr     bool
	line       int
}

func (p *pending) started() bool {
	return p.hasContext || p.hasID
}

type parser struct {
	source   string
	cat      *entities.Catalog
	cur      pending
	comments []string
	last     *string // field receiving continuation strings
	line     int
}

func (p *parser) fail(format string, args ...any) error {
	return &domain.ParseError{Source: p.source, Line: p.line, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) feed(raw string) error {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		p.last = nil
		return p.flush()
	case strings.HasPrefix(line, "#"):
		p.last = nil
		if p.cur.started() {
			if err := p.flush(); err != nil {
				return err
			}
		}
		p.comments = append(p.comments, line)
		return nil
	case strings.HasPrefix(line, `"`):
		if p.last == nil {
			return p.fail("string continuation outside of a keyword")
		}
		s, err := p.unquote(line)
		if err != nil {
			return err
		}
		*p.last += s
		return nil
	}

	keyword, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		keyword, rest = line[:i], line[i:]
	}
	value, err := p.unquote(strings.TrimSpace(rest))
	if err != nil {
		return err
	}

	switch {
	case keyword == "msgctxt":
		if p.cur.hasID {
			if err := p.flush(); err != nil {
				return err
			}
		}
		if p.cur.hasContext {
			return p.fail("duplicate msgctxt")
		}
		p.begin()
		p.cur.hasContext = true
		p.cur.context = value
		p.last = &p.cur.context
	case keyword == "msgid":
		if p.cur.hasStr {
			if err := p.flush(); err != nil {
				return err
			}
		}
		if p.cur.hasID {
			return p.fail("msgid without msgstr")
		}
		p.begin()
		p.cur.hasID = true
		p.cur.id = value
		p.last = &p.cur.id
	case keyword == "msgid_plural":
		if !p.cur.hasID || p.cur.hasPlural || p.cur.hasStr {
			return p.fail("unexpected msgid_plural")
		}
		p.cur.hasPlural = true
		p.cur.plural = value
		p.last = &p.cur.plural
	case keyword == "msgstr":
		if !p.cur.hasID || p.cur.hasStr {
			return p.fail("unexpected msgstr")
		}
		p.cur.hasStr = true
		p.cur.str = value
		p.last = &p.cur.str
	case strings.HasPrefix(keyword, "msgstr[") && strings.HasSuffix(keyword, "]"):
		n, err := strconv.Atoi(keyword[len("msgstr[") : len(keyword)-1])
		if err != nil || n < 0 {
			return p.fail("invalid plural index in %q", keyword)
		}
		if !p.cur.hasID {
			return p.fail("unexpected %s", keyword)
		}
		if p.cur.forms == nil {
			p.cur.forms = make(map[int]*string)
		}
		if _, dup := p.cur.forms[n]; dup {
			return p.fail("duplicate %s", keyword)
		}
		p.cur.hasStr = true
		p.cur.forms[n] = &value
		p.last = &value
	default:
		return p.fail("unknown keyword %q", keyword)
	}
	return nil
}

// begin attaches the comments collected so far to the entry being started.
func (p *parser) begin() {
	if p.cur.started() {
		return
	}
	p.cur.comments = p.comments
	p.cur.line = p.line
	p.comments = nil
}

// flush completes the entry under construction, if any.
func (p *parser) flush() error {
	cur := p.cur
	p.cur = pending{}
	p.last = nil
	if !cur.started() {
		return nil
	}
	if !cur.hasID {
		return &domain.ParseError{Source: p.source, Line: cur.line, Reason: "msgctxt without msgid"}
	}
	if !cur.hasStr {
		return &domain.ParseError{Source: p.source, Line: cur.line, Reason: fmt.Sprintf("msgid %q without msgstr", cur.id)}
	}

	e := &entities.Entry{
		Original:   cur.id,
		Comments:   cur.comments,
		Context:    cur.context,
		HasContext: cur.hasContext,
		Plural:     cur.plural,
	}
	if cur.forms == nil {
		e.Translation = cur.str
	} else {
		if v, ok := cur.forms[0]; ok {
			e.Translation = *v
		}
		highest := 0
		for n := range cur.forms {
			if n > highest {
				highest = n
			}
		}
		for n := 1; n <= highest; n++ {
			var v string
			if f, ok := cur.forms[n]; ok {
				v = *f
			}
			e.PluralForms = append(e.PluralForms, v)
		}
	}

	if e.Original == "" && !cur.hasContext {
		if p.cat.Header != nil {
			return &domain.ParseError{Source: p.source, Line: cur.line, Reason: "duplicate header entry"}
		}
		p.cat.Header = e
		return nil
	}
	p.cat.Append(e)
	return nil
}

// unquote decodes one PO string literal, including its surrounding quotes.
func (p *parser) unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", p.fail("expected quoted string, got %q", s)
	}
	inner := s[1 : len(s)-1]

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		switch ch {
		case '"':
			return "", p.fail("unescaped quote in %s", s)
		case '\\':
			if i+1 >= len(inner) {
				return "", p.fail("unterminated string %s", s)
			}
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte('\\')
				b.WriteByte(inner[i])
			}
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

func writeEntry(b *bytes.Buffer, e *entities.Entry) {
	for _, c := range e.Comments {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	if e.HasContext || e.Context != "" {
		writeField(b, "msgctxt", e.Context)
	}
	writeField(b, "msgid", e.Original)
	if !e.IsPlural() {
		writeField(b, "msgstr", e.Translation)
		return
	}
	writeField(b, "msgid_plural", e.Plural)
	writeField(b, "msgstr[0]", e.Translation)
	for i, f := range e.PluralForms {
		writeField(b, "msgstr["+strconv.Itoa(i+1)+"]", f)
	}
}

// writeField writes keyword and value, splitting values with inner newlines
// over several lines the way gettext tools do.
func writeField(b *bytes.Buffer, keyword, value string) {
	b.WriteString(keyword)
	b.WriteByte(' ')
	if !strings.Contains(strings.TrimSuffix(value, "\n"), "\n") {
		b.WriteString(quote(value))
		b.WriteByte('\n')
		return
	}
	b.WriteString(`""`)
	b.WriteByte('\n')
	for _, part := range splitAfterNewline(value) {
		b.WriteString(quote(part))
		b.WriteByte('\n')
	}
}

func splitAfterNewline(s string) []string {
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
