package charset

// Warning is a non-fatal observation made while decoding bytes into UTF-8
// text, e.g. an invalid byte sequence that was replaced with U+FFFD. The
// decoder package turns these into Diagnostics with SeverityWarning.
type Warning struct {
	Message string
}

// warningSink collects Warnings from a decode reader.
type warningSink struct {
	warnings []Warning
}

func (s *warningSink) warn(msg string) {
	s.warnings = append(s.warnings, Warning{Message: msg})
}

func (s *warningSink) Warnings() []Warning { return s.warnings }
