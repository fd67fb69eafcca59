package enrich

import "errors"

var (
	// ErrGeneration is returned when the hosted model call fails or its
	// output cannot be parsed as a JSON object. The caller reports the
	// failure; nothing is persisted.
	ErrGeneration = errors.New("text generation failed")

	// ErrWordNotRecognized is returned when the model reports that the
	// submitted text is not a recognizable word or phrase of the target
	// language. Distinguished from [ErrGeneration] so the API can answer
	// with a dedicated client-visible code instead of a gateway error.
	ErrWordNotRecognized = errors.New("word not recognized")
)
