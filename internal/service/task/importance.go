package task

import (
	"encoding/json"
	"strconv"
	"strings"
)

// fallbackImportance is what an uncoercible importance value becomes.
// Clients have historically sent importance as a string; a non-numeric
// string silently degrades to the lowest importance instead of failing
// the request. Preserved behavior, do not turn this into an error.
const fallbackImportance = 1

// Importance accepts a JSON number or a numeric string and remembers
// whether the field was present at all, so partial updates can tell
// "omitted" apart from "set".
type Importance struct {
	set   bool
	value int
}

func (i *Importance) Set() bool  { return i.set }
func (i *Importance) Value() int { return i.value }

func (i *Importance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		i.set, i.value = true, n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			i.set, i.value = true, v
		} else {
			i.set, i.value = true, fallbackImportance
		}
		return nil
	}

	i.set, i.value = true, fallbackImportance
	return nil
}
