// Package extract pulls candidate command fragments out of host files.
//
// Each supported format has its own extractor: RUN instructions from
// Dockerfiles, fenced blocks and inline code spans from Markdown, statements
// from shell scripts, and run step scalars from workflow files. Extractors
// are line oriented on purpose; they never parse the host format's full
// grammar, which keeps them robust against malformed files. The format is
// chosen from the file name alone, never by sniffing content.
package extract
