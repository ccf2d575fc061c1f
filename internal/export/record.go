// Package export serializes built dictionary entries into the gzip JSON
// artifact consumed downstream.
package export

import "github.com/heartmarshall/jmdict-prepare/internal/domain"

// Record is the wire shape of one entry. Empty sequences, empty strings and
// false flags are omitted.
type Record struct {
	Forms    []FormRecord    `json:"forms,omitempty"`
	Readings []ReadingRecord `json:"readings,omitempty"`
	Senses   []SenseRecord   `json:"senses,omitempty"`
}

type FormRecord struct {
	Form     string   `json:"form,omitempty"`
	Info     []string `json:"info,omitempty"`
	Priority []string `json:"priority,omitempty"`
}

type ReadingRecord struct {
	Reading  string   `json:"reading,omitempty"`
	NoKanji  bool     `json:"nokanji,omitempty"`
	ToForm   []string `json:"toForm,omitempty"`
	Info     []string `json:"info,omitempty"`
	Priority []string `json:"priority,omitempty"`
}

type SenseRecord struct {
	ToForm       []string `json:"toForm,omitempty"`
	ToReading    []string `json:"toReading,omitempty"`
	PartOfSpeech []string `json:"partOfSpeech,omitempty"`
	Misc         []string `json:"misc,omitempty"`
	Info         []string `json:"info,omitempty"`
	Dialect      []string `json:"dialect,omitempty"`
	Meaning      []string `json:"meaning,omitempty"`
}

// Records maps entries to wire records, preserving order.
func Records(entries []domain.Entry) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = toRecord(e)
	}
	return out
}

func toRecord(e domain.Entry) Record {
	r := Record{}
	if len(e.Forms) > 0 {
		r.Forms = make([]FormRecord, len(e.Forms))
		for i, f := range e.Forms {
			r.Forms[i] = FormRecord{Form: f.Form, Info: f.Info, Priority: f.Priority}
		}
	}
	if len(e.Readings) > 0 {
		r.Readings = make([]ReadingRecord, len(e.Readings))
		for i, rd := range e.Readings {
			r.Readings[i] = ReadingRecord{
				Reading:  rd.Reading,
				NoKanji:  rd.NoKanji,
				ToForm:   rd.ToForm,
				Info:     rd.Info,
				Priority: rd.Priority,
			}
		}
	}
	if len(e.Senses) > 0 {
		r.Senses = make([]SenseRecord, len(e.Senses))
		for i, s := range e.Senses {
			r.Senses[i] = SenseRecord{
				ToForm:       s.ToForm,
				ToReading:    s.ToReading,
				PartOfSpeech: s.PartOfSpeech,
				Misc:         s.Misc,
				Info:         s.Info,
				Dialect:      s.Dialect,
				Meaning:      s.Meaning,
			}
		}
	}
	return r
}
