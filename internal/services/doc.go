// Package services defines the [Service] interface for the Phish.net v5 API and implements it with [PhishNetService].
//
// # Transport
//
// [APIService] performs raw GET requests against the API. Every request carries the static API key as the
// apikey query parameter and waits on a client-side [rate.Limiter] before it is sent. The key is redacted from
// transport errors so it never reaches logs.
//
// # Queries
//
// Phish.net exposes filtered collections as {method}/{column}/{value}.json, e.g.
//
//	shows/showdate/1999-07-24.json
//	setlists/showid/1252698103.json
//
// Responses share one envelope:
//
//	{"error": false, "error_message": "", "data": [...]}
//
// [PhishNetService.Query] unwraps the envelope and returns the data array untouched. Records are decoded with
// [json.Decoder.UseNumber] so large show identifiers keep their exact digits.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrAPIRequest] : non-2xx status or an envelope with error set
//   - [shared.ErrInvalidArgument] : unknown method or column
//
// An empty data array is not an error. Callers decide what absence means.
package services
