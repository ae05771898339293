// Package oa2table flattens OpenAlex work records into delimited
// tables that mirror the search UI export.
package oa2table

// Version of the oa2table tool.
const Version = "0.1.0"
