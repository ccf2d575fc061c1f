package jmdict

import "github.com/heartmarshall/jmdict-prepare/internal/domain"

// Stats holds dictionary statistics for logging.
type Stats struct {
	Entries  int
	Forms    int
	Readings int
	Senses   int
	Glosses  int
}

// Summarize counts the elements of a built dictionary.
func Summarize(entries []domain.Entry) Stats {
	s := Stats{Entries: len(entries)}
	for _, e := range entries {
		s.Forms += len(e.Forms)
		s.Readings += len(e.Readings)
		s.Senses += len(e.Senses)
		for _, sense := range e.Senses {
			s.Glosses += len(sense.Meaning)
		}
	}
	return s
}
