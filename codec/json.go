package codec

import (
	json "github.com/goccy/go-json"

	chronos "github.com/reoring/chronos"
)

// JSONOffset is a thin wire adapter: an Offset that marshals to and from its
// extended text form ("Z", "+05:30") in JSON payloads.
type JSONOffset struct {
	chronos.Offset
}

func (o JSONOffset) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatOffset(o.Offset))
}

func (o *JSONOffset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return chronos.Issue{Code: CodeInvalidFormat, Message: "offset JSON value must be a string", Cause: err}
	}
	off, err := ParseOffset(s)
	if err != nil {
		return err
	}
	o.Offset = off
	return nil
}

// JSONOffsetDateTime is a thin wire adapter: an OffsetDateTime that marshals
// to and from its ISO-8601 extended text form in JSON payloads. Unmarshaled
// values are always Gregorian.
type JSONOffsetDateTime struct {
	chronos.OffsetDateTime
}

func (v JSONOffsetDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatOffsetDateTime(v.OffsetDateTime))
}

func (v *JSONOffsetDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return chronos.Issue{Code: CodeInvalidFormat, Message: "offset date-time JSON value must be a string", Cause: err}
	}
	odt, err := ParseOffsetDateTime(s)
	if err != nil {
		return err
	}
	v.OffsetDateTime = odt
	return nil
}
