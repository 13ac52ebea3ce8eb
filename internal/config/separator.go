// SPDX-License-Identifier: MIT
package config

import "strings"

// separatorNames are the spelled-out separators accepted on the command line,
// where a literal newline or tab is awkward to type.
var separatorNames = map[string]string{
	"comma":     ",",
	"semicolon": ";",
	"space":     " ",
	"newline":   "\n",
	"tab":       "\t",
}

var separatorEscapes = strings.NewReplacer(`\r`, "\r", `\n`, "\n", `\t`, "\t")

// DecodeSeparator turns a user-supplied separator into its literal form.
// Names (comma, semicolon, space, newline, tab) are matched case-insensitively;
// otherwise the escapes \n, \t and \r are expanded and the rest kept verbatim.
func DecodeSeparator(s string) string {
	if lit, ok := separatorNames[strings.ToLower(s)]; ok {
		return lit
	}

	return separatorEscapes.Replace(s)
}
