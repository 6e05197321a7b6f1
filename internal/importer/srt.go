package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// speakerRe splits a cue text line of the form "Speaker: text". Greedy first
// group, so "Rep. Smith: text: more" keeps everything before the last ": "
// as the speaker.
var speakerRe = regexp.MustCompile(`(.*): (.*)`)

// importSRT parses blank-line-separated cue blocks. Each cue is an index
// line, a "start --> end" timecode line and a text line. Cues with fewer
// than three lines (malformed or trailing) are skipped.
func importSRT(input Input) (*transcript.Document, error) {
	gap := input.GapSeconds
	if gap <= 0 {
		gap = DefaultGapSeconds
	}

	doc := &transcript.Document{
		Info:    &transcript.Info{Filename: input.Filename},
		Raw:     &transcript.Raw{Srt: input.Text},
		Content: []transcript.Item{},
	}

	text := strings.ReplaceAll(input.Text, "\r\n", "\n")
	lastEnd := 0.0
	for _, block := range strings.Split(text, "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		start, end, err := parseTimecodeLine(lines[1])
		if err != nil {
			return nil, errors.NewParse("srt", err.Error())
		}

		speaker := "Unknown"
		body := lines[2]
		if m := speakerRe.FindStringSubmatch(lines[2]); m != nil {
			speaker = m[1]
			body = m[2]
		}
		if input.Normalize {
			body = transcript.NormalizeText(body)
		}

		// Gap heuristic: silence longer than the threshold becomes a
		// divider spanning [lastEnd, start).
		if start > lastEnd+gap {
			id, err := transcript.NewItemID()
			if err != nil {
				return nil, errors.NewInternal(err)
			}
			ds, de := lastEnd, start
			doc.Content = append(doc.Content, transcript.Item{
				ID:    id,
				Type:  transcript.ItemDivider,
				Start: &ds,
				End:   &de,
			})
		}
		lastEnd = end

		id, err := transcript.NewItemID()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		s, e := start, end
		doc.Content = append(doc.Content, transcript.Item{
			ID:      id,
			Type:    transcript.ItemSpeech,
			Start:   &s,
			End:     &e,
			Speaker: speaker,
			Text:    body,
		})
	}

	return doc, nil
}

// parseTimecodeLine parses "HH:MM:SS,mmm --> HH:MM:SS,mmm" into start and
// end seconds.
func parseTimecodeLine(line string) (float64, float64, error) {
	parts := strings.Split(line, " --> ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("timecode line %q does not contain ' --> '", line)
	}
	start, err := parseTimecode(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimecode(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimecode converts "HH:MM:SS,mmm" to seconds.
func parseTimecode(tc string) (float64, error) {
	tc = strings.TrimSpace(tc)
	fields := strings.Split(tc, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("timecode %q is not in HH:MM:SS,mmm form", tc)
	}
	secFields := strings.Split(fields[2], ",")
	if len(secFields) != 2 {
		return 0, fmt.Errorf("timecode %q is missing the millisecond part", tc)
	}

	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("timecode %q has a bad hour field", tc)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("timecode %q has a bad minute field", tc)
	}
	s, err := strconv.Atoi(secFields[0])
	if err != nil {
		return 0, fmt.Errorf("timecode %q has a bad second field", tc)
	}
	ms, err := strconv.Atoi(secFields[1])
	if err != nil {
		return 0, fmt.Errorf("timecode %q has a bad millisecond field", tc)
	}

	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}
