package skills

import (
	"encoding/json"
)

// List is a skill list decoded from loosely typed JSON. Array elements of any type
// are coerced to strings, a value that is not an array decodes as an empty list
// and null leaves the list unset.
type List []string

func (l *List) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		*l = List{}
		return nil
	}
	*l = Coerce(items)
	return nil
}
