// Package models defines the typed representations of Ophelos API objects.
//
// Models map one-to-one onto the API's JSON wire format. Fields that the API
// may return either as a bare identifier or as an expanded object (depending
// on the request's expand[] parameters) use the Expandable type. Date-only
// fields use the Date type, which marshals as "2006-01-02".
package models
