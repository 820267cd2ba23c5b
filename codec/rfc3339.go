// Package codec provides optional extractors for common wire encodings that
// are not part of the builtin scalar set.
package codec

import (
	"time"

	treeval "github.com/reoring/treeval"
	"github.com/reoring/treeval/i18n"
)

// TimeRFC3339 returns an Extractor that decodes time.Time from RFC3339
// strings.
func TimeRFC3339() treeval.Extractor {
	return treeval.ExtractorFor[time.Time](func(ec *treeval.ExtractionContext, from any) (time.Time, error) {
		s, ok := from.(string)
		if !ok {
			return time.Time{}, ec.Problem(ec.Path(), i18n.T(treeval.CodeInvalidType, map[string]string{"expected": "string"}))
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return time.Time{}, ec.ProblemCause(ec.Path(), "invalid RFC3339 time", err)
		}
		return t, nil
	})
}

// DurationString returns an Extractor that decodes time.Duration from Go
// duration strings such as "1h30m".
func DurationString() treeval.Extractor {
	return treeval.ExtractorFor[time.Duration](func(ec *treeval.ExtractionContext, from any) (time.Duration, error) {
		s, ok := from.(string)
		if !ok {
			return 0, ec.Problem(ec.Path(), i18n.T(treeval.CodeInvalidType, map[string]string{"expected": "string"}))
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, ec.ProblemCause(ec.Path(), "invalid duration", err)
		}
		return d, nil
	})
}

// RegisterTime registers the time-related extractors on f.
func RegisterTime(f *treeval.Formats) error {
	if err := f.Register(TimeRFC3339()); err != nil {
		return err
	}
	return f.Register(DurationString())
}

// parseRFC3339 accepts both second and sub-second precision.
func parseRFC3339(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
