package main

import (
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"

	"vista/lists"
)

// Channels a release can ship on. The archive channel exists for the chain
// demo and carries no fixture releases, so its shard is empty.
const (
	channelStable  = "stable"
	channelBeta    = "beta"
	channelNightly = "nightly"
	channelArchive = "archive"
)

// release is one entry of the demo feed.
type release struct {
	ID        uuid.UUID
	Version   *semver.Version
	Channel   string
	Size      uint64
	Published time.Time
	Downloads int
	Verified  bool
}

// stable reports whether r shipped a final version on the stable channel.
func (r release) stable() bool {
	return r.Channel == channelStable && r.Version.Prerelease() == ""
}

const mib = 1 << 20

// buildFeed returns the fixture feed: five stable lines, a beta train and
// two nightlies, with sizes and ages spread out for the table columns.
func buildFeed(now time.Time) *lists.ArrayList[release] {
	day := 24 * time.Hour

	feed := lists.NewArrayList[release](16)
	feed.Add(
		release{ID: uuid.New(), Version: semver.MustParse("1.0.0"), Channel: channelStable, Size: 48 * mib, Published: now.Add(-340 * day), Downloads: 98210},
		release{ID: uuid.New(), Version: semver.MustParse("1.1.0"), Channel: channelStable, Size: 52 * mib, Published: now.Add(-250 * day), Downloads: 64400},
		release{ID: uuid.New(), Version: semver.MustParse("1.2.1"), Channel: channelStable, Size: 54 * mib, Published: now.Add(-160 * day), Downloads: 31250},
		release{ID: uuid.New(), Version: semver.MustParse("2.0.0"), Channel: channelStable, Size: 61 * mib, Published: now.Add(-75 * day), Downloads: 20190},
		release{ID: uuid.New(), Version: semver.MustParse("2.0.1"), Channel: channelStable, Size: 61 * mib, Published: now.Add(-30 * day), Downloads: 9875},
		release{ID: uuid.New(), Version: semver.MustParse("2.1.0-beta.1"), Channel: channelBeta, Size: 63 * mib, Published: now.Add(-21 * day), Downloads: 1420},
		release{ID: uuid.New(), Version: semver.MustParse("2.1.0-beta.2"), Channel: channelBeta, Size: 64 * mib, Published: now.Add(-9 * day), Downloads: 610},
		release{ID: uuid.New(), Version: semver.MustParse("2.2.0-nightly.34"), Channel: channelNightly, Size: 66 * mib, Published: now.Add(-2 * day), Downloads: 87},
		release{ID: uuid.New(), Version: semver.MustParse("2.2.0-nightly.35"), Channel: channelNightly, Size: 66 * mib, Published: now.Add(-1 * day), Downloads: 45},
	)

	return feed
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// paintChannel colors a channel name for the terminal.
func paintChannel(ch string) string {
	switch ch {
	case channelStable:
		return green(ch)
	case channelBeta:
		return yellow(ch)
	case channelNightly:
		return cyan(ch)
	}

	return ch
}

// renderTable renders rows in a borderless layout for terminal output.
func renderTable(headers []string, rows [][]string) (string, error) {
	str := &strings.Builder{}

	cfg := tablewriter.Config{
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "   "}},
		},
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "   "}},
		},
	}
	rendition := tw.Rendition{
		Borders: tw.BorderNone,
		Settings: tw.Settings{
			Lines:      tw.LinesNone,
			Separators: tw.SeparatorsNone,
		},
	}

	table := tablewriter.NewTable(str,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition)),
		tablewriter.WithConfig(cfg),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return "", errors.Wrapf(err, "failed to add rows to table")
	}
	if err := table.Render(); err != nil {
		return "", errors.Wrapf(err, "failed to render table")
	}

	return str.String(), nil
}
