package registry

import (
	"errors"
	"fmt"
	"io"

	"github.com/buger/jsonparser"
)

// Sentinel errors for response extraction.
var (
	// ErrBadDocument is returned when the input is not valid JSON.
	ErrBadDocument = errors.New("malformed response document")

	// ErrNoAnswer is returned when the response holds no answer records.
	ErrNoAnswer = errors.New("no answer records in response")
)

// AnswerType reads a JSON-encoded query response from r and returns the
// type of the first answer record (response.answer[0].type).
func AnswerType(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	typ, err := jsonparser.GetString(data, "response", "answer", "[0]", "type")
	if err != nil {
		return "", classify(err)
	}
	return typ, nil
}

// AnswerTypes reads a JSON-encoded query response from r and returns the
// types of all answer records in answer order.
func AnswerTypes(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var types []string
	_, err = jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		if typ, err := jsonparser.GetString(value, "type"); err == nil {
			types = append(types, typ)
		}
	}, "response", "answer")
	if err != nil {
		return nil, classify(err)
	}
	if len(types) == 0 {
		return nil, ErrNoAnswer
	}
	return types, nil
}

// classify maps jsonparser failures onto the package sentinels.
func classify(err error) error {
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fmt.Errorf("%w: %w", ErrNoAnswer, err)
	}
	return fmt.Errorf("%w: %w", ErrBadDocument, err)
}
