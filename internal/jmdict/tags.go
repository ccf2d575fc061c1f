package jmdict

// Element names of the JMdict grammar, one closed set per nesting level.

const (
	tagEntry   = "entry"
	tagSeq     = "ent_seq"
	tagForm    = "k_ele"
	tagReading = "r_ele"
	tagSense   = "sense"
)

type entryTag int

const (
	entryTagUnknown entryTag = iota
	entryTagSeq
	entryTagForm
	entryTagReading
	entryTagSense
)

var entryTags = map[string]entryTag{
	tagSeq:     entryTagSeq,
	tagForm:    entryTagForm,
	tagReading: entryTagReading,
	tagSense:   entryTagSense,
}

type formTag int

const (
	formTagUnknown formTag = iota
	formTagText            // keb
	formTagInfo            // ke_inf
	formTagPriority        // ke_pri
)

var formTags = map[string]formTag{
	"keb":    formTagText,
	"ke_inf": formTagInfo,
	"ke_pri": formTagPriority,
}

type readingTag int

const (
	readingTagUnknown readingTag = iota
	readingTagText               // reb
	readingTagNoKanji            // re_nokanji
	readingTagRestrict           // re_restr
	readingTagInfo               // re_inf
	readingTagPriority           // re_pri
)

var readingTags = map[string]readingTag{
	"reb":        readingTagText,
	"re_nokanji": readingTagNoKanji,
	"re_restr":   readingTagRestrict,
	"re_inf":     readingTagInfo,
	"re_pri":     readingTagPriority,
}

type senseTag int

const (
	senseTagUnknown senseTag = iota
	senseTagToForm           // stagk
	senseTagToReading        // stagr
	senseTagPartOfSpeech     // pos
	senseTagMisc             // misc
	senseTagInfo             // s_inf
	senseTagDialect          // dial
	senseTagGloss            // gloss
	senseTagDiscarded        // recognized, not part of the output model
)

var senseTags = map[string]senseTag{
	"stagk": senseTagToForm,
	"stagr": senseTagToReading,
	"pos":   senseTagPartOfSpeech,
	"misc":  senseTagMisc,
	"s_inf": senseTagInfo,
	"dial":  senseTagDialect,
	"gloss": senseTagGloss,

	"lsource": senseTagDiscarded,
	"example": senseTagDiscarded,
	"xref":    senseTagDiscarded,
	"ant":     senseTagDiscarded,
	"field":   senseTagDiscarded,
}
