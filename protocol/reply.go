package protocol

import (
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Reply is one decoded line of target output that carried a request id.
// The document is kept whole as an ldvalue.Value so tests and diagnostics
// can traverse any shape the target produced without further parsing.
type Reply struct {
	ID    string
	Value ldvalue.Value
}

// ParseReply decodes one line of output. It returns false for anything that
// is not a JSON object with a usable id: malformed JSON, scalars and arrays,
// server-initiated notifications, and plain log noise all fall into that
// bucket and are of no interest to the harness.
func ParseReply(line []byte) (Reply, bool) {
	var value ldvalue.Value
	if err := json.Unmarshal(line, &value); err != nil {
		return Reply{}, false
	}
	if value.Type() != ldvalue.ObjectType {
		return Reply{}, false
	}
	idValue, ok := value.TryGetByKey("id")
	if !ok {
		return Reply{}, false
	}
	id, ok := normalizeID(idValue)
	if !ok {
		return Reply{}, false
	}
	return Reply{ID: id, Value: value}, true
}

// IDString renders a request id the way normalizeID renders it, so callers
// can look up the reply to a request they built with Request.
func IDString(id int) string {
	return strconv.Itoa(id)
}

// normalizeID maps the JSON forms an id may legally take onto one string
// representation. JSON numbers arrive as floats; integral values are printed
// without a fraction so that 2 and 2.0 collide as "2".
func normalizeID(v ldvalue.Value) (string, bool) {
	switch v.Type() {
	case ldvalue.StringType:
		return v.StringValue(), true
	case ldvalue.NumberType:
		f := v.Float64Value()
		if f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10), true
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}

// ResultText extracts the conventional tool-call payload located at
// result.content[0].text. It returns false if the reply does not have that
// shape, whether because it is an error reply or because the result is
// structured differently.
func (r Reply) ResultText() (string, bool) {
	text := r.Value.GetByKey("result").GetByKey("content").GetByIndex(0).GetByKey("text")
	if text.Type() != ldvalue.StringType {
		return "", false
	}
	return text.StringValue(), true
}

// ResultToolNames extracts the tool names from a tools/list reply. A reply
// of any other shape yields nil.
func (r Reply) ResultToolNames() []string {
	tools := r.Value.GetByKey("result").GetByKey("tools")
	if tools.Type() != ldvalue.ArrayType {
		return nil
	}
	var names []string
	for i := 0; i < tools.Count(); i++ {
		name := tools.GetByIndex(i).GetByKey("name")
		if name.Type() == ldvalue.StringType {
			names = append(names, name.StringValue())
		}
	}
	return names
}

// IsError reports whether the reply carries a JSON-RPC error object.
func (r Reply) IsError() bool {
	_, ok := r.Value.TryGetByKey("error")
	return ok
}

// ErrorMessage returns the error.message text of an error reply, or "" if
// there is none.
func (r Reply) ErrorMessage() string {
	return r.Value.GetByKey("error").GetByKey("message").StringValue()
}

func (r Reply) String() string {
	return r.Value.JSONString()
}
