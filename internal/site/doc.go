// Package site runs a full sissigen build: it reads posts, converts and
// renders them, and writes the output directory and root listing page.
//
// A build is a fixed sequence of stages sharing a BuildState. Stages run
// strictly in order; the first error aborts the remaining stages and nothing
// already written is rolled back. Only the final write stage touches the
// output, so setup problems (missing templates, static assets or content)
// leave a previous build intact.
package site
