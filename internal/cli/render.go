// Package cli holds the prompt and rendering helpers shared by the
// patient and doctor terminals.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/gramcare/caselink/internal/models"
)

// isTerminalFn is a test seam for term.IsTerminal.
var isTerminalFn = term.IsTerminal

// ClearScreen emits an ANSI clear sequence when w is an interactive
// terminal, so each poll tick repaints in place. Piped output is left
// alone.
func ClearScreen(w io.Writer) {
	if f, ok := w.(*os.File); ok && isTerminalFn(int(f.Fd())) {
		fmt.Fprint(w, "\033[H\033[2J")
	}
}

func formatTime(millis int64) string {
	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

func summarize(c models.Case) string {
	s := c.SymptomText
	if s == "" && len(c.Images) > 0 {
		s = fmt.Sprintf("[%d image(s)]", len(c.Images))
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return s
}

// WriteCaseList renders one line per case under a title. An empty
// collection renders emptyMsg instead; that is the only signal the user
// gets whether the store is genuinely empty or unreadable upstream.
func WriteCaseList(w io.Writer, title string, cases []models.Case, emptyMsg string) {
	fmt.Fprintln(w, title)
	if len(cases) == 0 {
		fmt.Fprintln(w, emptyMsg)
		return
	}
	for _, c := range cases {
		fmt.Fprintf(w, "%s  %-8s  %s  %s  (%d replies)\n",
			c.CaseID, c.Status, formatTime(c.UpdatedAt), summarize(c), len(c.Replies))
	}
}

// WriteCaseDetail renders one case with its full reply thread.
func WriteCaseDetail(w io.Writer, c models.Case) {
	fmt.Fprintf(w, "Case %s  [%s]\n", c.CaseID, c.Status)
	fmt.Fprintf(w, "Patient: %s (%d), %s, %s  ph: %s\n",
		c.PatientName, c.PatientAge, c.PatientDistrict, c.PatientState, c.PatientPhone)
	fmt.Fprintf(w, "Submitted: %s\n", formatTime(c.CreatedAt))
	if c.SymptomText != "" {
		fmt.Fprintf(w, "Symptoms: %s\n", c.SymptomText)
	}
	for _, img := range c.Images {
		fmt.Fprintf(w, "Image: %s (%d bytes encoded)\n", img.Filename, len(img.Base64Data))
	}

	if len(c.Replies) == 0 {
		fmt.Fprintln(w, "Waiting for doctor response...")
		return
	}
	for _, r := range c.Replies {
		fmt.Fprintf(w, "--- %s (%s), %s [%s]\n", r.DoctorName, r.Specialization, formatTime(r.Timestamp), r.Type)
		fmt.Fprintln(w, r.Content)
		if r.Medication != "" {
			fmt.Fprintf(w, "Medication: %s\n", r.Medication)
		}
	}
}
