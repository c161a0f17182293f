package index

import (
	"strings"
)

const declarationModule = "glyph/emojis"

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// RenderDeclaration returns the TypeScript declaration for entries.
func RenderDeclaration(entries []Entry) []byte {
	union := "never"
	if len(entries) > 0 {
		literals := make([]string, 0, len(entries))
		for _, e := range entries {
			literals = append(literals, "'"+literalEscaper.Replace(e.Name)+"'")
		}
		union = strings.Join(literals, " | ")
	}

	var b strings.Builder
	b.WriteString("declare module \"" + declarationModule + "\" {\n")
	b.WriteString("  export type Emojis = " + union + ";\n")
	b.WriteString("  export type EmojisRecord = Record<Emojis, { id: string; name: string; identifier: string }>;\n")
	b.WriteString("}\n")
	return []byte(b.String())
}
