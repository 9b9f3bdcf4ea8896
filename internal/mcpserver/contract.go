package mcpserver

// PageFormatContract describes the YAML page format accepted by the page
// directory source and produced by the export command.
const PageFormatContract = `# Leaflet Page Format

Each page is one YAML file (` + "`" + `.yaml` + "`" + ` or ` + "`" + `.yml` + "`" + `) in the content directory.

## Fields

` + "```" + `yaml
name: home                    # OPTIONAL – defaults to the file path without extension
time: 2024-03-01T10:00:00Z    # OPTIONAL – RFC 3339; defaults to the file modification time
version: 0.1.0                # OPTIONAL – opaque label, never parsed
blocks:                       # REQUIRED – rendered in exactly this order
  - kind: header              # one of: paragraph, header, list
    text: Welcome
    level: 2                  # any integer; defaults to 1
  - kind: paragraph
    text: Free text, <b>markup</b> is passed through untouched.
  - id: 3f2504e0-4f89-41d3-9a0c-0305e82c3301   # OPTIONAL – UUID
    kind: list
    style: ORDERED            # ORDERED or UNORDERED (default)
    items: [first, second]
` + "```" + `

## Rules

1. Page names are matched exactly and case-sensitively. Two files must not declare the same name.
2. Block ids must be unique across all pages. Omitted ids are derived from the page name and
   block position, so they stay stable across reloads but change when blocks are reordered.
3. Unknown fields and unknown kinds are rejected; a bad file keeps the previous pages in service.
4. Files and directories starting with a dot are ignored.
`
