// Package data holds the in-memory Table and its CSV loader and writer.
package data
