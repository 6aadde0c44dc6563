package mcpserver

// MemoryFormatContract describes the conventions of the memory workspace
// so LLM consumers can interpret entries and their sources.
const MemoryFormatContract = `# Muninn Memory Format

Muninn is a read-only view over externally-authored Markdown files. It
never writes; the files are maintained by the workspace owner.

## Sources

- ` + "`MEMORY.md`" + ` — the single long-term file accumulating durable notes.
- ` + "`memory/<YYYY-MM-DD>.md`" + ` — one daily file per calendar day.

## How entries are derived

- Files are split into sections at headings of two or more ` + "`#`" + `
  (` + "`##`" + `, ` + "`###`" + `, ... all open a new section). A file with no such
  headings becomes a single entry titled with the file path.
- Entry dates come from, in priority order: a ` + "`YYYY-MM-DD`" + ` substring in
  the file name, a long-form date like ` + "`March 15, 2024`" + ` in the text,
  or the load time.
- Tags come from inline ` + "`#hashtags`" + ` and from ` + "`tags:`" + ` /
  ` + "`categories:`" + ` lines (comma or pipe separated). Tags are lowercase.
- Blank-line runs are collapsed and each entry carries a 220-character
  preview of its content.

## Entry identifiers

` + "`<sourceFile>-<sectionIndex>-<slug-of-title>`" + `. Ids are stable for a
given file state; editing a file may change them.
`
