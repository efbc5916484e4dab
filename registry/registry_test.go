package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "messages": [],
  "response": {
    "header": {"id": 4242, "flags": "qr rd ra"},
    "question": [{"name": "example.com.", "type": "CSYNC"}],
    "answer": [
      {"name": "example.com.", "type": "CSYNC", "ttl": 3600, "data": "2021071001 3 A NS AAAA"},
      {"name": "example.com.", "type": "RRSIG", "ttl": 3600, "data": "..."}
    ]
  }
}`

func TestAnswerType(t *testing.T) {
	typ, err := AnswerType(strings.NewReader(sampleResponse))
	require.NoError(t, err)
	assert.Equal(t, "CSYNC", typ)
}

func TestAnswerTypes(t *testing.T) {
	types, err := AnswerTypes(strings.NewReader(sampleResponse))
	require.NoError(t, err)
	assert.Equal(t, []string{"CSYNC", "RRSIG"}, types)
}

func TestAnswerType_EmptyAnswer(t *testing.T) {
	doc := `{"response": {"answer": []}}`
	_, err := AnswerType(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrNoAnswer)

	_, err = AnswerTypes(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestAnswerType_MissingPath(t *testing.T) {
	_, err := AnswerType(strings.NewReader(`{"unrelated": true}`))
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestAnswerType_WrongValueType(t *testing.T) {
	// A numeric type field is a malformed document, not a missing answer.
	doc := `{"response": {"answer": [{"type": 123}]}}`
	_, err := AnswerType(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrBadDocument)
}
