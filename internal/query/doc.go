// Package query implements the three training reports over an in-memory record set:
// completion counts per training, attendees per training within a fiscal year,
// and expired or soon-to-expire trainings relative to a reference date.
//
// All functions are pure. They never modify the record set, and a query that
// meets a malformed date returns an error instead of a partial result.
package query
