package check

import (
	"fmt"
	"io"
)

// Render writes a human-readable report to w, one line per problem,
// followed by a summary line.
func Render(w io.Writer, r Report) {
	for _, p := range r.Problems {
		fmt.Fprintf(w, "%s: [%s] %s\n", p.Severity, p.Kind, p.Detail)
	}
	errs, warns := r.Counts()
	if errs == 0 && warns == 0 {
		fmt.Fprintf(w, "ok: %d documents checked, no problems found\n", r.Checked)
		return
	}
	fmt.Fprintf(w, "%d documents checked: %d error(s), %d warning(s)\n", r.Checked, errs, warns)
}
