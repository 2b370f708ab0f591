package schema

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the instance as a JSON object with keys in field
// declaration order. Absent fields are omitted entirely; null fields
// encode as explicit nulls. Nested instances and file uploads encode
// through their own marshalers.
func (in *Instance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for i := range in.record.fields {
		v := in.values[i]
		if v.Absent() {
			continue
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(in.record.fields[i].name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if v.Null() {
			buf.WriteString("null")
			continue
		}

		val, err := json.Marshal(v.val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
