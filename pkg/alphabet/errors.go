package alphabet

import "errors"

// ErrNoSeparator is returned by Register for a class that cannot match a
// space. Such a class would make the word-only check unsatisfiable for any
// multi-word sentence.
var ErrNoSeparator = errors.New("alphabet: character class does not include the separator")
