// Package registry pulls record types out of JSON-encoded query responses.
//
// The query tool can emit its response as a JSON document; when capturing
// samples for new record types it is useful to know which type actually
// came back without decoding the whole document:
//
//	dqy CSYNC example.com --json | rfcgen rrtype
//
// AnswerType returns the type of the first answer record; AnswerTypes
// returns all of them in answer order.
package registry
