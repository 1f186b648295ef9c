package directory

import (
	"strconv"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"empdir/internal/domain"
)

// labelFields maps normalized form labels to fields. Besides each field's
// own label it accepts the short attribute names.
var labelFields = func() map[string]domain.Field {
	m := make(map[string]domain.Field)
	for _, f := range domain.Fields {
		m[NormalizeLabel(f.Label())] = f
	}
	m["mobile"] = domain.FieldMobile
	m["dob"] = domain.FieldDOB
	return m
}()

// NormalizeLabel case-folds label and strips every whitespace rune
func NormalizeLabel(label string) string {
	folded := cases.Fold().String(label)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// FieldForLabel resolves a human-readable label to a field
func FieldForLabel(label string) (domain.Field, bool) {
	f, ok := labelFields[NormalizeLabel(label)]
	return f, ok
}

// SetField stores raw into the draft attribute named by label. Unknown
// labels leave the draft untouched and report false.
func (s *Session) SetField(label, raw string) bool {
	f, ok := FieldForLabel(label)
	if !ok {
		log.WithField("label", label).Warn("SetField: unknown label")
		return false
	}
	s.SetDraftField(f, raw)
	return true
}

// SetDraftField replaces exactly one attribute of the draft. ID and Age are
// parsed with ParseLeadingInt; everything else is stored verbatim.
func (s *Session) SetDraftField(f domain.Field, raw string) {
	switch f {
	case domain.FieldID:
		s.draft.ID = ParseLeadingInt(raw)
	case domain.FieldName:
		s.draft.Name = raw
	case domain.FieldAge:
		s.draft.Age = ParseLeadingInt(raw)
	case domain.FieldAddress:
		s.draft.Address = raw
	case domain.FieldEmail:
		s.draft.Email = raw
	case domain.FieldMobile:
		s.draft.Mobile = raw
	case domain.FieldDOB:
		s.draft.DOB = raw
	default:
		return
	}
	s.render()
}

// ParseLeadingInt parses the leading integer of raw ("42abc" is 42,
// " -7" is -7). Anything without leading digits, or out of range, is 0.
func ParseLeadingInt(raw string) int {
	t := strings.TrimSpace(raw)
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(t[:end])
	if err != nil {
		return 0
	}
	return n
}
