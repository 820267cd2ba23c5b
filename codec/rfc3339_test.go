package codec_test

import (
	"testing"
	"time"

	treeval "github.com/reoring/treeval"
	"github.com/reoring/treeval/codec"
)

func timeFormats(t *testing.T) *treeval.Formats {
	t.Helper()
	f := treeval.NewFormats()
	if err := codec.RegisterTime(f); err != nil {
		t.Fatalf("register: %v", err)
	}
	return f
}

func TestTimeRFC3339_Extract(t *testing.T) {
	f := timeFormats(t)
	got, err := treeval.ExtractFrom[time.Time]("2026-08-27T07:08:09Z", f)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2026, 8, 27, 7, 8, 9, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v", got)
	}
}

func TestTimeRFC3339_SubSecondAndOffset(t *testing.T) {
	f := timeFormats(t)
	got, err := treeval.ExtractFrom[time.Time]("2026-08-27T07:08:09.25+02:00", f)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Nanosecond() != 250000000 {
		t.Fatalf("got %v", got)
	}
}

func TestTimeRFC3339_Invalid(t *testing.T) {
	f := timeFormats(t)
	_, err := treeval.ExtractFrom[time.Time]("yesterday-ish", f)
	xe, ok := treeval.AsExtractionError(err)
	if !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if xe.Cause() == nil {
		t.Fatalf("expected the parse failure as the cause")
	}
	if _, err := treeval.ExtractFrom[time.Time](42, f); err == nil {
		t.Fatalf("expected non-string input to fail")
	}
}

func TestDurationString_Extract(t *testing.T) {
	f := timeFormats(t)
	got, err := treeval.ExtractFrom[time.Duration]("1h30m", f)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 90*time.Minute {
		t.Fatalf("got %v", got)
	}
	if _, err := treeval.ExtractFrom[time.Duration]("fortnight", f); err == nil {
		t.Fatalf("expected bad duration to fail")
	}
}

func TestTimeRFC3339_InsideDocument(t *testing.T) {
	fmts := treeval.Compose(timeFormats(t), treeval.DefaultFormats())
	doc, err := treeval.ParseBytes([]byte(`{"created_at":"2026-08-27T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, err := treeval.ExtractPath[time.Time](doc, treeval.MustParsePath(".created_at"), fmts)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Year() != 2026 {
		t.Fatalf("got %v", got)
	}
}
