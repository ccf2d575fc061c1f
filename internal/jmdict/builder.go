// Package jmdict builds validated domain entries from a JMdict element tree.
// Pure function: tree in, domain structs out. No I/O.
package jmdict

import (
	"fmt"

	"github.com/heartmarshall/jmdict-prepare/internal/domain"
	"github.com/heartmarshall/jmdict-prepare/internal/xmltree"
)

// Options tunes a Builder. The zero value builds sequentially and keeps text as is.
type Options struct {
	// Workers bounds concurrent entry building. Values below 2 build sequentially.
	Workers int
	// NormalizeNFC applies Unicode NFC to every extracted text value.
	NormalizeNFC bool
}

// Builder interprets <entry> subtrees according to the JMdict grammar.
// It holds no mutable state and is safe for concurrent use.
type Builder struct {
	workers int
	text    func(string) string
}

// NewBuilder creates a Builder.
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		workers: opts.Workers,
		text:    func(s string) string { return s },
	}
	if opts.NormalizeNFC {
		b.text = domain.NormalizeText
	}
	return b
}

// Entry builds one entry from an <entry> element. Unrecognized children are
// skipped so that new top-level elements in future dictionary releases do not
// break the build; inside forms, readings and senses the grammar is closed.
func (b *Builder) Entry(n *xmltree.Node) (domain.Entry, error) {
	var entry domain.Entry

	for _, child := range n.Children {
		switch entryTags[child.Tag] {
		case entryTagSeq:
			// Not part of the output model.
		case entryTagForm:
			form, err := b.form(child)
			if err != nil {
				return domain.Entry{}, fmt.Errorf("%s %d: %w", tagForm, len(entry.Forms), err)
			}
			entry.Forms = append(entry.Forms, form)
		case entryTagReading:
			reading, err := b.reading(child)
			if err != nil {
				return domain.Entry{}, fmt.Errorf("%s %d: %w", tagReading, len(entry.Readings), err)
			}
			entry.Readings = append(entry.Readings, reading)
		case entryTagSense:
			sense, err := b.sense(child)
			if err != nil {
				return domain.Entry{}, fmt.Errorf("%s %d: %w", tagSense, len(entry.Senses), err)
			}
			entry.Senses = append(entry.Senses, sense)
		case entryTagUnknown:
			// Skipped.
		}
	}

	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (b *Builder) form(n *xmltree.Node) (domain.Form, error) {
	var form domain.Form

	for _, child := range n.Children {
		tag := formTags[child.Tag]
		if tag == formTagUnknown {
			return domain.Form{}, &domain.TagError{Parent: n.Tag, Tag: child.Tag}
		}

		text, err := b.leafText(child)
		if err != nil {
			return domain.Form{}, err
		}

		switch tag {
		case formTagText:
			form.Form = text
		case formTagInfo:
			form.Info = append(form.Info, text)
		case formTagPriority:
			form.Priority = append(form.Priority, text)
		}
	}

	if err := form.Validate(); err != nil {
		return domain.Form{}, err
	}
	return form, nil
}

func (b *Builder) reading(n *xmltree.Node) (domain.Reading, error) {
	var reading domain.Reading

	for _, child := range n.Children {
		tag := readingTags[child.Tag]
		switch tag {
		case readingTagUnknown:
			return domain.Reading{}, &domain.TagError{Parent: n.Tag, Tag: child.Tag}
		case readingTagNoKanji:
			// Flag element; its content is irrelevant.
			reading.NoKanji = true
			continue
		}

		text, err := b.leafText(child)
		if err != nil {
			return domain.Reading{}, err
		}

		switch tag {
		case readingTagText:
			reading.Reading = text
		case readingTagRestrict:
			reading.ToForm = append(reading.ToForm, text)
		case readingTagInfo:
			reading.Info = append(reading.Info, text)
		case readingTagPriority:
			reading.Priority = append(reading.Priority, text)
		}
	}

	if err := reading.Validate(); err != nil {
		return domain.Reading{}, err
	}
	return reading, nil
}

func (b *Builder) sense(n *xmltree.Node) (domain.Sense, error) {
	var sense domain.Sense

	for _, child := range n.Children {
		tag := senseTags[child.Tag]
		switch tag {
		case senseTagUnknown:
			return domain.Sense{}, &domain.TagError{Parent: n.Tag, Tag: child.Tag}
		case senseTagDiscarded:
			continue
		}

		text, err := b.leafText(child)
		if err != nil {
			return domain.Sense{}, err
		}

		switch tag {
		case senseTagToForm:
			sense.ToForm = append(sense.ToForm, text)
		case senseTagToReading:
			sense.ToReading = append(sense.ToReading, text)
		case senseTagPartOfSpeech:
			sense.PartOfSpeech = append(sense.PartOfSpeech, text)
		case senseTagMisc:
			sense.Misc = append(sense.Misc, text)
		case senseTagInfo:
			sense.Info = append(sense.Info, text)
		case senseTagDialect:
			sense.Dialect = append(sense.Dialect, text)
		case senseTagGloss:
			sense.Meaning = append(sense.Meaning, text)
		}
	}

	return sense, nil
}

// leafText returns the text of an element that must hold a plain scalar:
// no child elements and some character data.
func (b *Builder) leafText(n *xmltree.Node) (string, error) {
	if len(n.Children) > 0 {
		return "", &domain.StructureError{
			Tag:    n.Tag,
			Reason: fmt.Sprintf("expected text, found child <%s>", n.Children[0].Tag),
		}
	}
	if n.Text == nil {
		return "", &domain.StructureError{Tag: n.Tag, Reason: "missing text"}
	}
	return b.text(*n.Text), nil
}
