// Package scan orchestrates a lint run: it picks the right extractor for
// each file, pushes every extracted fragment through the tokenizer and the
// classifier, and aggregates violations into a deterministic report.
package scan
