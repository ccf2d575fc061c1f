package domain

// Entry is one JMdict headword unit (<entry>).
// Forms may be empty; Readings and Senses never are once built.
type Entry struct {
	Forms    []Form    // 0+ k_ele
	Readings []Reading // 1+ r_ele
	Senses   []Sense   // 1+ sense
}

// Validate checks the cardinality rules the XML schema does not enforce.
func (e *Entry) Validate() error {
	var errs []FieldError
	if len(e.Readings) == 0 {
		errs = append(errs, FieldError{Field: "readings", Message: "at least one required"})
	}
	if len(e.Senses) == 0 {
		errs = append(errs, FieldError{Field: "senses", Message: "at least one required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Form is a written variant of the headword, usually a kanji spelling (<k_ele>).
type Form struct {
	Form     string   // keb
	Info     []string // 0+ ke_inf
	Priority []string // 0+ ke_pri
}

// Validate checks that the spelling is present.
func (f *Form) Validate() error {
	if f.Form == "" {
		return NewValidationError("form", "required")
	}
	return nil
}

// Reading is a kana reading of the headword (<r_ele>).
type Reading struct {
	Reading string // reb
	// NoKanji is set when <re_nokanji> is present: the reading is not a true
	// reading of any of the forms.
	NoKanji  bool
	ToForm   []string // 0+ re_restr; empty means all forms
	Info     []string // 0+ re_inf
	Priority []string // 0+ re_pri
}

// Validate checks that the reading text is present.
func (r *Reading) Validate() error {
	if r.Reading == "" {
		return NewValidationError("reading", "required")
	}
	return nil
}

// Sense is one meaning of an entry (<sense>). A sense without glosses is
// legal in the source data.
type Sense struct {
	ToForm       []string // 0+ stagk
	ToReading    []string // 0+ stagr
	PartOfSpeech []string // pos
	Misc         []string // misc
	Info         []string // s_inf
	Dialect      []string // dial
	Meaning      []string // gloss, in document order
}
